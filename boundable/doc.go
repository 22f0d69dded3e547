// Package boundable provides the shared machinery behind the boundedness
// predicates in boundable/unsigned and boundable/signed.
//
// A boundedness predicate tests a magnitude derived from a value against one
// or two bound literals. Go has no literal values as type parameters, so
// literals are lifted into the type system as zero-sized tag types:
//
//	type U42 struct{}
//
//	func (U42) UnsignedBound() uint64 { return 42 }
//
// The package predeclares the tags most programs need (U0 through U10, U100,
// S0, SMinus1, ...). Any type implementing UnsignedBound or SignedBound works.
//
// MAGNITUDES:
//
// The unsigned magnitude of a value is the value itself for unsigned integers
// and the length for strings and byte or rune slices; UnsignedBoundable names
// exactly these types. Other containers satisfy Sized (Slice and Map are
// ready-made) and are measured by element count. The signed magnitude is the
// value of a signed integer.
//
// INTERVALS:
//
// Every boundedness predicate reports its accepted magnitudes as an Interval
// of consecutive integers. Open bounds are normalized to closed ones, so
// "less than 10" and "less than or equal to 9" denote the same Interval. The
// implication and arithmetic layers in package refined reason only about
// these intervals:
//
//	[25, 75] ⊆ [1, 100]            implication
//	[1, 10] + [1, 10] = [2, 20]    arithmetic
//
// SHAPES:
//
// UnsignedMin, UnsignedMax and UnsignedMinMax (and the signed analogues)
// describe which literal bounds a predicate carries. Package refined uses
// them as type constraints so that, for example, unsigned subtraction only
// compiles for operands bounded on both sides.
package boundable
