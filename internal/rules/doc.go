// Package rules implements the rule language used by refined schemas.
//
// A rule is a call expression in CUE syntax:
//
//	and(trimmed, closed(1, 64))
//	or(empty, regex("^[a-z][a-z0-9_]*$"))
//	cue("int & >=0 & <=150")
//
// Parse turns source text into an Expr tree, Validate checks it against the
// builtin vocabulary, and Compile builds a Rule: a materialized
// refined.StatefulPredicate over document values. Bounds in a rule are
// ordinary runtime values, so rules are checked at construction only and
// never take part in implication or arithmetic.
//
// Magnitude builtins (lt, le, gt, ge, open, closed, nonzero, empty) compare
// the value of an Int and the length of a String (in bytes), Array or Object.
package rules
