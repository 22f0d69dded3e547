package signed

import "github.com/roach88/refined/boundable"

// LessThan accepts values strictly below B.
type LessThan[T boundable.SignedInteger, B boundable.SignedBound] struct{}

func (p LessThan[T, B]) Test(value T) bool { return p.SignedInterval().Contains(int64(value)) }

func (LessThan[T, B]) Message() string {
	return boundable.LessThanMessage(boundable.Signed[B]())
}

func (LessThan[T, B]) SignedMax() int64 { return boundable.Signed[B]() }

func (LessThan[T, B]) SignedInterval() boundable.Interval[int64] {
	return boundable.Below(boundable.Signed[B]())
}

// LessThanEqual accepts values of at most B.
type LessThanEqual[T boundable.SignedInteger, B boundable.SignedBound] struct{}

func (p LessThanEqual[T, B]) Test(value T) bool { return p.SignedInterval().Contains(int64(value)) }

func (LessThanEqual[T, B]) Message() string {
	return boundable.LessThanEqualMessage(boundable.Signed[B]())
}

func (LessThanEqual[T, B]) SignedMax() int64 { return boundable.Signed[B]() }

func (LessThanEqual[T, B]) SignedInterval() boundable.Interval[int64] {
	return boundable.AtMost(boundable.Signed[B]())
}

// GreaterThan accepts values strictly above B.
type GreaterThan[T boundable.SignedInteger, B boundable.SignedBound] struct{}

func (p GreaterThan[T, B]) Test(value T) bool { return p.SignedInterval().Contains(int64(value)) }

func (GreaterThan[T, B]) Message() string {
	return boundable.GreaterThanMessage(boundable.Signed[B]())
}

func (GreaterThan[T, B]) SignedMin() int64 { return boundable.Signed[B]() }

func (GreaterThan[T, B]) SignedInterval() boundable.Interval[int64] {
	return boundable.Above(boundable.Signed[B]())
}

// GreaterThanEqual accepts values of at least B.
type GreaterThanEqual[T boundable.SignedInteger, B boundable.SignedBound] struct{}

func (p GreaterThanEqual[T, B]) Test(value T) bool {
	return p.SignedInterval().Contains(int64(value))
}

func (GreaterThanEqual[T, B]) Message() string {
	return boundable.GreaterThanEqualMessage(boundable.Signed[B]())
}

func (GreaterThanEqual[T, B]) SignedMin() int64 { return boundable.Signed[B]() }

func (GreaterThanEqual[T, B]) SignedInterval() boundable.Interval[int64] {
	return boundable.AtLeast(boundable.Signed[B]())
}

// OpenInterval accepts values strictly between L and H.
type OpenInterval[T boundable.SignedInteger, L, H boundable.SignedBound] struct{}

func (p OpenInterval[T, L, H]) Test(value T) bool {
	return p.SignedInterval().Contains(int64(value))
}

func (OpenInterval[T, L, H]) Message() string {
	return boundable.OpenIntervalMessage(boundable.Signed[L](), boundable.Signed[H]())
}

func (OpenInterval[T, L, H]) SignedMin() int64 { return boundable.Signed[L]() }

func (OpenInterval[T, L, H]) SignedMax() int64 { return boundable.Signed[H]() }

func (OpenInterval[T, L, H]) SignedInterval() boundable.Interval[int64] {
	return boundable.Open(boundable.Signed[L](), boundable.Signed[H]())
}

// ClosedInterval accepts values from L to H inclusive.
type ClosedInterval[T boundable.SignedInteger, L, H boundable.SignedBound] struct{}

func (p ClosedInterval[T, L, H]) Test(value T) bool {
	return p.SignedInterval().Contains(int64(value))
}

func (ClosedInterval[T, L, H]) Message() string {
	return boundable.ClosedIntervalMessage(boundable.Signed[L](), boundable.Signed[H]())
}

func (ClosedInterval[T, L, H]) SignedMin() int64 { return boundable.Signed[L]() }

func (ClosedInterval[T, L, H]) SignedMax() int64 { return boundable.Signed[H]() }

func (ClosedInterval[T, L, H]) SignedInterval() boundable.Interval[int64] {
	return boundable.Closed(boundable.Signed[L](), boundable.Signed[H]())
}

type (
	// Positive accepts values above zero.
	Positive[T boundable.SignedInteger] = GreaterThan[T, boundable.S0]
	// Negative accepts values below zero.
	Negative[T boundable.SignedInteger] = LessThan[T, boundable.S0]
	// NonNegative accepts zero and above.
	NonNegative[T boundable.SignedInteger] = GreaterThanEqual[T, boundable.S0]
	// NonPositive accepts zero and below.
	NonPositive[T boundable.SignedInteger] = LessThanEqual[T, boundable.S0]
)

var (
	_ boundable.SignedMax    = LessThan[int, boundable.S0]{}
	_ boundable.SignedMax    = LessThanEqual[int, boundable.S0]{}
	_ boundable.SignedMin    = GreaterThan[int, boundable.S0]{}
	_ boundable.SignedMin    = GreaterThanEqual[int, boundable.S0]{}
	_ boundable.SignedMinMax = OpenInterval[int, boundable.S0, boundable.S1]{}
	_ boundable.SignedMinMax = ClosedInterval[int, boundable.S0, boundable.S1]{}
)
