package boundable

import (
	"fmt"
	"math"
)

// Magnitude is the domain an Interval ranges over: uint64 for unsigned
// magnitudes, int64 for signed ones.
type Magnitude interface {
	int64 | uint64
}

// Interval is a set of consecutive integers. Each end is either an inclusive
// literal or unbounded. Unsigned intervals are always bounded below by zero.
//
// The zero Interval is the unbounded signed interval; use the constructors.
type Interval[N Magnitude] struct {
	lo, hi       N
	hasLo, hasHi bool
	empty        bool
}

// Unbounded returns the whole domain of N.
func Unbounded[N Magnitude]() Interval[N] {
	if isSigned[N]() {
		return Interval[N]{}
	}
	return Interval[N]{hasLo: true}
}

// Empty returns the interval that contains nothing.
func Empty[N Magnitude]() Interval[N] {
	return Interval[N]{empty: true}
}

// Closed returns [lo, hi]. It is empty when lo > hi.
func Closed[N Magnitude](lo, hi N) Interval[N] {
	if lo > hi {
		return Empty[N]()
	}
	return Interval[N]{lo: lo, hi: hi, hasLo: true, hasHi: true}
}

// AtLeast returns [lo, +inf).
func AtLeast[N Magnitude](lo N) Interval[N] {
	return Interval[N]{lo: lo, hasLo: true}
}

// AtMost returns (-inf, hi], or [0, hi] for unsigned magnitudes.
func AtMost[N Magnitude](hi N) Interval[N] {
	i := Unbounded[N]()
	i.hi, i.hasHi = hi, true
	return i
}

// Above returns the values strictly greater than lo.
func Above[N Magnitude](lo N) Interval[N] {
	if lo == maxOf[N]() {
		return Empty[N]()
	}
	return AtLeast(lo + 1)
}

// Below returns the values strictly less than hi.
func Below[N Magnitude](hi N) Interval[N] {
	if hi == minOf[N]() {
		return Empty[N]()
	}
	return AtMost(hi - 1)
}

// Open returns the values strictly between lo and hi.
func Open[N Magnitude](lo, hi N) Interval[N] {
	return Above(lo).Intersect(Below(hi))
}

// IsEmpty reports whether the interval contains no value.
func (i Interval[N]) IsEmpty() bool {
	return i.empty
}

// Min returns the inclusive lower end, if bounded.
func (i Interval[N]) Min() (N, bool) {
	return i.lo, i.hasLo && !i.empty
}

// Max returns the inclusive upper end, if bounded.
func (i Interval[N]) Max() (N, bool) {
	return i.hi, i.hasHi && !i.empty
}

// Contains reports whether n lies in the interval.
func (i Interval[N]) Contains(n N) bool {
	if i.empty {
		return false
	}
	if i.hasLo && n < i.lo {
		return false
	}
	return !i.hasHi || n <= i.hi
}

// Subset reports whether every value of i is also a value of o.
// The empty interval is a subset of everything.
func (i Interval[N]) Subset(o Interval[N]) bool {
	if i.empty {
		return true
	}
	if o.empty {
		return false
	}
	if o.hasLo && (!i.hasLo || i.lo < o.lo) {
		return false
	}
	if o.hasHi && (!i.hasHi || i.hi > o.hi) {
		return false
	}
	return true
}

// Intersect returns the values present in both intervals.
func (i Interval[N]) Intersect(o Interval[N]) Interval[N] {
	if i.empty || o.empty {
		return Empty[N]()
	}
	r := i
	if o.hasLo && (!r.hasLo || o.lo > r.lo) {
		r.lo, r.hasLo = o.lo, true
	}
	if o.hasHi && (!r.hasHi || o.hi < r.hi) {
		r.hi, r.hasHi = o.hi, true
	}
	if r.hasLo && r.hasHi && r.lo > r.hi {
		return Empty[N]()
	}
	return r
}

// String renders the interval in mathematical notation, e.g. "[1, 10]" or
// "(-inf, 99]".
func (i Interval[N]) String() string {
	if i.empty {
		return "empty"
	}
	lo, hi := "(-inf", "+inf)"
	if i.hasLo {
		lo = fmt.Sprintf("[%d", i.lo)
	}
	if i.hasHi {
		hi = fmt.Sprintf("%d]", i.hi)
	}
	return lo + ", " + hi
}

// Add returns the interval of every x+y for x in i and y in o.
// A bound that overflows N becomes unbounded.
func (i Interval[N]) Add(o Interval[N]) (Interval[N], error) {
	if i.empty || o.empty {
		return Empty[N](), nil
	}
	r := Unbounded[N]()
	if i.hasLo && o.hasLo {
		if lo, ok := CheckedAdd(i.lo, o.lo); ok {
			r.lo, r.hasLo = lo, true
		}
	}
	if i.hasHi && o.hasHi {
		if hi, ok := CheckedAdd(i.hi, o.hi); ok {
			r.hi, r.hasHi = hi, true
		}
	}
	return r, nil
}

// Sub returns the interval of every x-y for x in i and y in o. For unsigned
// magnitudes the smallest difference must not be negative.
func (i Interval[N]) Sub(o Interval[N]) (Interval[N], error) {
	if i.empty || o.empty {
		return Empty[N](), nil
	}
	if !isSigned[N]() {
		if !o.hasHi || i.lo < o.hi {
			return Interval[N]{}, ErrNotRepresentable
		}
		r := AtLeast(i.lo - o.hi)
		if i.hasHi {
			r.hi, r.hasHi = i.hi-o.lo, true
		}
		return r, nil
	}
	r := Unbounded[N]()
	if i.hasLo && o.hasHi {
		if lo, ok := CheckedSub(i.lo, o.hi); ok {
			r.lo, r.hasLo = lo, true
		}
	}
	if i.hasHi && o.hasLo {
		if hi, ok := CheckedSub(i.hi, o.lo); ok {
			r.hi, r.hasHi = hi, true
		}
	}
	return r, nil
}

// Mul returns the interval of every x*y for x in i and y in o.
func (i Interval[N]) Mul(o Interval[N]) (Interval[N], error) {
	if i.empty || o.empty {
		return Empty[N](), nil
	}
	if !isSigned[N]() {
		r := Unbounded[N]()
		if lo, ok := CheckedMul(i.lo, o.lo); ok {
			r.lo = lo
		}
		if i.hasHi && o.hasHi {
			if hi, ok := CheckedMul(i.hi, o.hi); ok {
				r.hi, r.hasHi = hi, true
			}
		}
		return r, nil
	}
	if !i.bounded() || !o.bounded() {
		return Unbounded[N](), nil
	}
	return corners(i, o, CheckedMul[N]), nil
}

// Div returns the interval of every x/y (truncated) for x in i and y in o.
// The divisor interval must not contain zero.
func (i Interval[N]) Div(o Interval[N]) (Interval[N], error) {
	if o.Contains(0) {
		return Interval[N]{}, ErrDivisorMayBeZero
	}
	if i.empty || o.empty {
		return Empty[N](), nil
	}
	if !isSigned[N]() {
		r := Unbounded[N]()
		if o.hasHi {
			r.lo = i.lo / o.hi
		}
		if i.hasHi {
			r.hi, r.hasHi = i.hi/o.lo, true
		}
		return r, nil
	}
	if !i.bounded() || !o.bounded() {
		return Unbounded[N](), nil
	}
	return corners(i, o, CheckedDiv[N]), nil
}

func (i Interval[N]) bounded() bool {
	return i.hasLo && i.hasHi
}

// corners evaluates op at the four corners of i×o. For multiplication and
// truncated division by a sign-constant divisor the extremes lie on corners.
func corners[N Magnitude](i, o Interval[N], op func(a, b N) (N, bool)) Interval[N] {
	var lo, hi N
	for k, xy := range [4][2]N{{i.lo, o.lo}, {i.lo, o.hi}, {i.hi, o.lo}, {i.hi, o.hi}} {
		v, ok := op(xy[0], xy[1])
		if !ok {
			return Unbounded[N]()
		}
		if k == 0 || v < lo {
			lo = v
		}
		if k == 0 || v > hi {
			hi = v
		}
	}
	return Closed(lo, hi)
}

// CheckedAdd returns a+b and whether it did not overflow N.
func CheckedAdd[N Magnitude](a, b N) (N, bool) {
	s := a + b
	if isSigned[N]() {
		return s, !((b > 0 && s < a) || (b < 0 && s > a))
	}
	return s, s >= a
}

// CheckedSub returns a-b and whether it did not overflow N.
func CheckedSub[N Magnitude](a, b N) (N, bool) {
	d := a - b
	if isSigned[N]() {
		return d, !((b > 0 && d > a) || (b < 0 && d < a))
	}
	return d, a >= b
}

// CheckedMul returns a*b and whether it did not overflow N.
func CheckedMul[N Magnitude](a, b N) (N, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if isSigned[N]() {
		var zero N
		negOne := zero - 1
		if (a == negOne && b == minOf[N]()) || (b == negOne && a == minOf[N]()) {
			return a * b, false
		}
	}
	p := a * b
	return p, p/b == a
}

// CheckedDiv returns a/b and whether it is defined and did not overflow N.
func CheckedDiv[N Magnitude](a, b N) (N, bool) {
	if b == 0 {
		return 0, false
	}
	if isSigned[N]() {
		var zero N
		if a == minOf[N]() && b == zero-1 {
			return a, false
		}
	}
	return a / b, true
}

func isSigned[N Magnitude]() bool {
	var zero N
	return zero-1 < zero
}

func minOf[N Magnitude]() N {
	if isSigned[N]() {
		m := N(math.MaxInt64)
		return -m - 1
	}
	return 0
}

func maxOf[N Magnitude]() N {
	if isSigned[N]() {
		return N(math.MaxInt64)
	}
	var zero N
	return zero - 1
}
