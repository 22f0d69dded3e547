// Package unsigned provides boundedness predicates over unsigned magnitudes:
// unsigned integers compared by value, strings and byte or rune slices
// compared by length. Len applies any of them to the element count of a
// boundable.Sized container.
//
// Bounds are type-level literals (see package boundable):
//
//	type Rating = refined.Refinement[uint8, unsigned.ClosedInterval[uint8, boundable.U1, boundable.U10]]
//	type Name = refined.Refinement[string, unsigned.LessThanEqual[string, boundable.U64]]
//	type Tags = refined.Refinement[boundable.Slice[string], unsigned.Len[boundable.Slice[string], unsigned.NonZero[uint64]]]
//
// Signed integers and floats are not unsigned-boundable; instantiating these
// predicates with them does not compile.
package unsigned
