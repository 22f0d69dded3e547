package refined

import (
	"fmt"

	"github.com/roach88/refined/boundable"
)

// The arithmetic functions combine two refined integers into a value refined
// by R, which the caller names:
//
//	sum, err := refined.AddUnsigned[unsigned.ClosedInterval[uint8, boundable.U2, boundable.U20]](a, b)
//
// The operand intervals, clipped to the range of T, are combined with
// interval arithmetic. The result interval must lie within R, otherwise a
// *ProofError is returned and nothing is computed. The result is never
// tested against R. When the result interval also lies within the range of
// T the operation cannot overflow; otherwise an overflow is reported with
// boundable.ErrOverflow.
//
// Which operand shapes are accepted is fixed by the type constraints:
// unsigned Sub, and signed Sub, Mul and Div, need both a lower and an upper
// literal on each operand.

type intervalOp[N boundable.Magnitude] func(a, b boundable.Interval[N]) (boundable.Interval[N], error)

type valueOp[N boundable.Magnitude] func(a, b N) (N, bool)

var (
	unsignedOps = map[string]struct {
		interval intervalOp[uint64]
		value    valueOp[uint64]
	}{
		"add": {boundable.Interval[uint64].Add, boundable.CheckedAdd[uint64]},
		"sub": {boundable.Interval[uint64].Sub, boundable.CheckedSub[uint64]},
		"mul": {boundable.Interval[uint64].Mul, boundable.CheckedMul[uint64]},
		"div": {boundable.Interval[uint64].Div, boundable.CheckedDiv[uint64]},
	}
	signedOps = map[string]struct {
		interval intervalOp[int64]
		value    valueOp[int64]
	}{
		"add": {boundable.Interval[int64].Add, boundable.CheckedAdd[int64]},
		"sub": {boundable.Interval[int64].Sub, boundable.CheckedSub[int64]},
		"mul": {boundable.Interval[int64].Mul, boundable.CheckedMul[int64]},
		"div": {boundable.Interval[int64].Div, boundable.CheckedDiv[int64]},
	}
)

// AddUnsigned returns a + b refined by R.
func AddUnsigned[R UnsignedOperand[T], T boundable.UnsignedInteger, P UnsignedOperand[T], Q UnsignedOperand[T]](a Refinement[T, P], b Refinement[T, Q]) (Refinement[T, R], error) {
	return unsignedArith[R]("add", a, b)
}

// SubUnsigned returns a - b refined by R. The smallest possible difference
// must not be negative.
func SubUnsigned[R UnsignedOperand[T], T boundable.UnsignedInteger, P UnsignedRange[T], Q UnsignedRange[T]](a Refinement[T, P], b Refinement[T, Q]) (Refinement[T, R], error) {
	return unsignedArith[R]("sub", a, b)
}

// MulUnsigned returns a * b refined by R.
func MulUnsigned[R UnsignedOperand[T], T boundable.UnsignedInteger, P UnsignedOperand[T], Q UnsignedOperand[T]](a Refinement[T, P], b Refinement[T, Q]) (Refinement[T, R], error) {
	return unsignedArith[R]("mul", a, b)
}

// DivUnsigned returns a / b refined by R. Q must exclude zero.
func DivUnsigned[R UnsignedOperand[T], T boundable.UnsignedInteger, P UnsignedOperand[T], Q UnsignedOperand[T]](a Refinement[T, P], b Refinement[T, Q]) (Refinement[T, R], error) {
	return unsignedArith[R]("div", a, b)
}

// AddSigned returns a + b refined by R.
func AddSigned[R SignedOperand[T], T boundable.SignedInteger, P SignedOperand[T], Q SignedOperand[T]](a Refinement[T, P], b Refinement[T, Q]) (Refinement[T, R], error) {
	return signedArith[R]("add", a, b)
}

// SubSigned returns a - b refined by R.
func SubSigned[R SignedOperand[T], T boundable.SignedInteger, P SignedRange[T], Q SignedRange[T]](a Refinement[T, P], b Refinement[T, Q]) (Refinement[T, R], error) {
	return signedArith[R]("sub", a, b)
}

// MulSigned returns a * b refined by R.
func MulSigned[R SignedOperand[T], T boundable.SignedInteger, P SignedRange[T], Q SignedRange[T]](a Refinement[T, P], b Refinement[T, Q]) (Refinement[T, R], error) {
	return signedArith[R]("mul", a, b)
}

// DivSigned returns a / b refined by R, truncated toward zero. Q must
// exclude zero.
func DivSigned[R SignedOperand[T], T boundable.SignedInteger, P SignedRange[T], Q SignedRange[T]](a Refinement[T, P], b Refinement[T, Q]) (Refinement[T, R], error) {
	return signedArith[R]("div", a, b)
}

func unsignedArith[R UnsignedOperand[T], T boundable.UnsignedInteger, P UnsignedOperand[T], Q UnsignedOperand[T]](op string, a Refinement[T, P], b Refinement[T, Q]) (Refinement[T, R], error) {
	a.mustBeRefined(op)
	b.mustBeRefined(op)

	domain := boundable.UnsignedDomain[T]()
	x := zero[P]().UnsignedInterval().Intersect(domain)
	y := zero[Q]().UnsignedInterval().Intersect(domain)
	want := zero[R]().UnsignedInterval()

	ops := unsignedOps[op]
	have, err := ops.interval(x, y)
	if err != nil {
		return Refinement[T, R]{}, &ProofError{Op: op, Err: err}
	}
	if !have.Subset(want) {
		return Refinement[T, R]{}, &ProofError{Op: op, Have: have.String(), Want: want.String()}
	}

	av, bv := uint64(a.value), uint64(b.value)
	if have.Subset(domain) {
		v, _ := ops.value(av, bv)
		return certified[T, R](T(v)), nil
	}
	v, ok := ops.value(av, bv)
	if !ok || !domain.Contains(v) {
		return Refinement[T, R]{}, fmt.Errorf("%s %d, %d: %w", op, av, bv, boundable.ErrOverflow)
	}
	return certified[T, R](T(v)), nil
}

func signedArith[R SignedOperand[T], T boundable.SignedInteger, P SignedOperand[T], Q SignedOperand[T]](op string, a Refinement[T, P], b Refinement[T, Q]) (Refinement[T, R], error) {
	a.mustBeRefined(op)
	b.mustBeRefined(op)

	domain := boundable.SignedDomain[T]()
	x := zero[P]().SignedInterval().Intersect(domain)
	y := zero[Q]().SignedInterval().Intersect(domain)
	want := zero[R]().SignedInterval()

	ops := signedOps[op]
	have, err := ops.interval(x, y)
	if err != nil {
		return Refinement[T, R]{}, &ProofError{Op: op, Err: err}
	}
	if !have.Subset(want) {
		return Refinement[T, R]{}, &ProofError{Op: op, Have: have.String(), Want: want.String()}
	}

	av, bv := int64(a.value), int64(b.value)
	if have.Subset(domain) {
		v, _ := ops.value(av, bv)
		return certified[T, R](T(v)), nil
	}
	v, ok := ops.value(av, bv)
	if !ok || !domain.Contains(v) {
		return Refinement[T, R]{}, fmt.Errorf("%s %d, %d: %w", op, av, bv, boundable.ErrOverflow)
	}
	return certified[T, R](T(v)), nil
}
