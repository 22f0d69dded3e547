// Package boolean combines predicates.
//
// Every combinator evaluates left to right and short-circuits. The zero
// value combines the zero values of its operands; NewAnd, NewOr, NewXor and
// NewNot combine materialized instances for use with refined.RefineWithState.
//
//	type Username = refined.Refinement[string, boolean.And[string, str.Trimmed[string], unsigned.NonZero[string]]]
package boolean
