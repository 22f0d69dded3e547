// Package refined provides constrained values: a Refinement[T, P] owns a
// value of type T that is guaranteed to satisfy the predicate P.
//
// The only ways to obtain a refined value are:
//   - Refine and RefineWithState, which run P.Test and fail with a
//     *RefinementError carrying P.Message()
//   - Modify and Replace on an existing value, which re-validate the result
//   - the implication and arithmetic functions, which re-tag or combine
//     already refined values after proving from the predicate types alone
//     that the result satisfies the target predicate
//   - decoding (JSON, YAML, database/sql), which goes through Refine
//
// Predicates are types. The zero value of a predicate type is its stateless
// form and is what Refine uses; a constructed instance may carry
// materialized state (a compiled matcher) and is passed to RefineWithState.
// Accept/reject decisions and messages never depend on which path is used.
//
// Bound literals for the boundedness predicates in boundable/unsigned and
// boundable/signed are lifted to types, so that the implication relation
// between two predicates is a property of their types:
//
//	type Percent = refined.Refinement[uint8, unsigned.ClosedInterval[uint8, boundable.U0, boundable.U100]]
//	type Score = refined.Refinement[uint8, unsigned.ClosedInterval[uint8, boundable.U25, boundable.U75]]
//
//	s := refined.MustRefine[uint8, unsigned.ClosedInterval[uint8, boundable.U25, boundable.U75]](50)
//	p, err := refined.ImplyUnsigned[unsigned.ClosedInterval[uint8, boundable.U0, boundable.U100]](s)
//
// Go has no arithmetic over type parameters, so the subset and interval
// arithmetic proofs run when the conversion is called. They never look at
// the value: a proof that fails for one value fails for every value. Family
// mismatches and the arithmetic shape policy are rejected at compile time by
// type constraints.
//
// A zero Refinement holds no validated value. It reports IsRefined false and
// its accessors panic.
package refined
