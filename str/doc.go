// Package str provides predicates over strings and string-like types.
//
// Literal arguments such as a substring or a pattern are lifted to types with
// refined.TypeString:
//
//	type SemVer struct{}
//
//	func (SemVer) TypeString() string { return `^v\d+\.\d+\.\d+$` }
//
//	type Version = refined.Refinement[string, str.Regex[string, SemVer]]
//
// Regex and Glob are stateful: NewRegex and NewGlob prepare the pattern once
// for use with refined.RefineWithState, while their zero values prepare it on
// every Test. An invalid pattern rejects every value.
//
// The Is functions and Message functions back the predicates and are
// exported for callers that choose arguments at run time.
package str
