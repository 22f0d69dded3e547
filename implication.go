package refined

import "github.com/roach88/refined/boundable"

// UnsignedOperand is a predicate over T with an unsigned interval.
type UnsignedOperand[T any] interface {
	Predicate[T]
	boundable.UnsignedBounded
}

// UnsignedRange is an unsigned predicate carrying both a lower and an upper
// literal.
type UnsignedRange[T any] interface {
	Predicate[T]
	boundable.UnsignedMinMax
}

// SignedOperand is a predicate over T with a signed interval.
type SignedOperand[T any] interface {
	Predicate[T]
	boundable.SignedBounded
}

// SignedRange is a signed predicate carrying both a lower and an upper
// literal.
type SignedRange[T any] interface {
	Predicate[T]
	boundable.SignedMinMax
}

// ImpliesUnsigned reports whether every magnitude accepted by P is accepted
// by Q. It depends only on the two types.
func ImpliesUnsigned[P, Q boundable.UnsignedBounded]() bool {
	return zero[P]().UnsignedInterval().Subset(zero[Q]().UnsignedInterval())
}

// ImpliesSigned reports whether every value accepted by P is accepted by Q.
// It depends only on the two types.
func ImpliesSigned[P, Q boundable.SignedBounded]() bool {
	return zero[P]().SignedInterval().Subset(zero[Q]().SignedInterval())
}

// ImplyUnsigned re-tags r with the wider predicate Q without testing the
// value. It fails with a *ProofError when P does not imply Q.
//
//	wide, err := refined.ImplyUnsigned[unsigned.LessThanEqual[string, boundable.U100]](name)
func ImplyUnsigned[Q UnsignedOperand[T], T any, P UnsignedOperand[T]](r Refinement[T, P]) (Refinement[T, Q], error) {
	have, want := zero[P]().UnsignedInterval(), zero[Q]().UnsignedInterval()
	if !have.Subset(want) {
		return Refinement[T, Q]{}, &ProofError{Op: "imply", Have: have.String(), Want: want.String()}
	}
	return retag[Q](r), nil
}

// MustImplyUnsigned is like ImplyUnsigned but panics if P does not imply Q.
func MustImplyUnsigned[Q UnsignedOperand[T], T any, P UnsignedOperand[T]](r Refinement[T, P]) Refinement[T, Q] {
	out, err := ImplyUnsigned[Q](r)
	if err != nil {
		panic(err)
	}
	return out
}

// ImplySigned re-tags r with the wider predicate Q without testing the
// value. It fails with a *ProofError when P does not imply Q.
func ImplySigned[Q SignedOperand[T], T boundable.SignedInteger, P SignedOperand[T]](r Refinement[T, P]) (Refinement[T, Q], error) {
	have, want := zero[P]().SignedInterval(), zero[Q]().SignedInterval()
	if !have.Subset(want) {
		return Refinement[T, Q]{}, &ProofError{Op: "imply", Have: have.String(), Want: want.String()}
	}
	return retag[Q](r), nil
}

// MustImplySigned is like ImplySigned but panics if P does not imply Q.
func MustImplySigned[Q SignedOperand[T], T boundable.SignedInteger, P SignedOperand[T]](r Refinement[T, P]) Refinement[T, Q] {
	out, err := ImplySigned[Q](r)
	if err != nil {
		panic(err)
	}
	return out
}

func retag[Q Predicate[T], T any, P Predicate[T]](r Refinement[T, P]) Refinement[T, Q] {
	r.mustBeRefined("imply")
	return certified[T, Q](r.value)
}
