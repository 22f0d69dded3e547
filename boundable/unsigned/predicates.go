package unsigned

import "github.com/roach88/refined/boundable"

// LessThan accepts magnitudes strictly below B.
type LessThan[T boundable.UnsignedBoundable, B boundable.UnsignedBound] struct{}

func (p LessThan[T, B]) Test(value T) bool { return within(value, p.UnsignedInterval()) }

func (LessThan[T, B]) Message() string {
	return boundable.LessThanMessage(boundable.Unsigned[B]())
}

func (LessThan[T, B]) UnsignedMax() uint64 { return boundable.Unsigned[B]() }

func (LessThan[T, B]) UnsignedInterval() boundable.Interval[uint64] {
	return boundable.Below(boundable.Unsigned[B]())
}

// LessThanEqual accepts magnitudes at most B.
type LessThanEqual[T boundable.UnsignedBoundable, B boundable.UnsignedBound] struct{}

func (p LessThanEqual[T, B]) Test(value T) bool { return within(value, p.UnsignedInterval()) }

func (LessThanEqual[T, B]) Message() string {
	return boundable.LessThanEqualMessage(boundable.Unsigned[B]())
}

func (LessThanEqual[T, B]) UnsignedMax() uint64 { return boundable.Unsigned[B]() }

func (LessThanEqual[T, B]) UnsignedInterval() boundable.Interval[uint64] {
	return boundable.AtMost(boundable.Unsigned[B]())
}

// GreaterThan accepts magnitudes strictly above B.
type GreaterThan[T boundable.UnsignedBoundable, B boundable.UnsignedBound] struct{}

func (p GreaterThan[T, B]) Test(value T) bool { return within(value, p.UnsignedInterval()) }

func (GreaterThan[T, B]) Message() string {
	return boundable.GreaterThanMessage(boundable.Unsigned[B]())
}

func (GreaterThan[T, B]) UnsignedMin() uint64 { return boundable.Unsigned[B]() }

func (GreaterThan[T, B]) UnsignedInterval() boundable.Interval[uint64] {
	return boundable.Above(boundable.Unsigned[B]())
}

// GreaterThanEqual accepts magnitudes of at least B.
type GreaterThanEqual[T boundable.UnsignedBoundable, B boundable.UnsignedBound] struct{}

func (p GreaterThanEqual[T, B]) Test(value T) bool { return within(value, p.UnsignedInterval()) }

func (GreaterThanEqual[T, B]) Message() string {
	return boundable.GreaterThanEqualMessage(boundable.Unsigned[B]())
}

func (GreaterThanEqual[T, B]) UnsignedMin() uint64 { return boundable.Unsigned[B]() }

func (GreaterThanEqual[T, B]) UnsignedInterval() boundable.Interval[uint64] {
	return boundable.AtLeast(boundable.Unsigned[B]())
}

// OpenInterval accepts magnitudes strictly between L and H.
type OpenInterval[T boundable.UnsignedBoundable, L, H boundable.UnsignedBound] struct{}

func (p OpenInterval[T, L, H]) Test(value T) bool { return within(value, p.UnsignedInterval()) }

func (OpenInterval[T, L, H]) Message() string {
	return boundable.OpenIntervalMessage(boundable.Unsigned[L](), boundable.Unsigned[H]())
}

func (OpenInterval[T, L, H]) UnsignedMin() uint64 { return boundable.Unsigned[L]() }

func (OpenInterval[T, L, H]) UnsignedMax() uint64 { return boundable.Unsigned[H]() }

func (OpenInterval[T, L, H]) UnsignedInterval() boundable.Interval[uint64] {
	return boundable.Open(boundable.Unsigned[L](), boundable.Unsigned[H]())
}

// ClosedInterval accepts magnitudes from L to H inclusive.
type ClosedInterval[T boundable.UnsignedBoundable, L, H boundable.UnsignedBound] struct{}

func (p ClosedInterval[T, L, H]) Test(value T) bool { return within(value, p.UnsignedInterval()) }

func (ClosedInterval[T, L, H]) Message() string {
	return boundable.ClosedIntervalMessage(boundable.Unsigned[L](), boundable.Unsigned[H]())
}

func (ClosedInterval[T, L, H]) UnsignedMin() uint64 { return boundable.Unsigned[L]() }

func (ClosedInterval[T, L, H]) UnsignedMax() uint64 { return boundable.Unsigned[H]() }

func (ClosedInterval[T, L, H]) UnsignedInterval() boundable.Interval[uint64] {
	return boundable.Closed(boundable.Unsigned[L](), boundable.Unsigned[H]())
}

// NonZero accepts any non-zero magnitude, e.g. a non-empty string.
type NonZero[T boundable.UnsignedBoundable] = GreaterThan[T, boundable.U0]

// Empty accepts only the zero magnitude.
type Empty[T boundable.UnsignedBoundable] = LessThanEqual[T, boundable.U0]

func within[T boundable.UnsignedBoundable](value T, accepted boundable.Interval[uint64]) bool {
	m, ok := boundable.UnsignedMagnitude(value)
	return ok && accepted.Contains(m)
}

// Len applies the unsigned predicate P to the element count of a container.
//
//	type Tags = refined.Refinement[boundable.Slice[string], unsigned.Len[boundable.Slice[string], unsigned.LessThanEqual[uint64, boundable.U10]]]
type Len[C boundable.Sized, P lengthBound] struct{}

type lengthBound interface {
	boundable.UnsignedBounded
	Message() string
}

func (p Len[C, P]) Test(value C) bool {
	n := value.Len()
	return n >= 0 && p.UnsignedInterval().Contains(uint64(n))
}

func (Len[C, P]) Message() string {
	var p P
	return p.Message()
}

func (Len[C, P]) UnsignedInterval() boundable.Interval[uint64] {
	var p P
	return p.UnsignedInterval()
}

type label string

var (
	_ LessThan[uint, boundable.U1]
	_ LessThan[uintptr, boundable.U1]
	_ LessThan[string, boundable.U1]
	_ LessThan[label, boundable.U1]
	_ LessThan[[]byte, boundable.U1]
	_ LessThan[[]rune, boundable.U1]
	_ Len[boundable.Slice[int], NonZero[uint64]]
	_ Len[boundable.Map[string, int], Empty[uint64]]

	_ boundable.UnsignedBounded = Len[boundable.Slice[int], NonZero[uint64]]{}
	_ boundable.UnsignedMax     = LessThan[uint8, boundable.U1]{}
	_ boundable.UnsignedMax     = LessThanEqual[uint8, boundable.U1]{}
	_ boundable.UnsignedMin     = GreaterThan[uint8, boundable.U1]{}
	_ boundable.UnsignedMin     = GreaterThanEqual[uint8, boundable.U1]{}
	_ boundable.UnsignedMinMax  = OpenInterval[uint8, boundable.U1, boundable.U2]{}
	_ boundable.UnsignedMinMax  = ClosedInterval[uint8, boundable.U1, boundable.U2]{}
)
