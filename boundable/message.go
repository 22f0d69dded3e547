package boundable

import "fmt"

// Failure messages shared by the typed predicates and runtime-built rules.

func LessThanMessage[N Magnitude](n N) string {
	return fmt.Sprintf("must be less than %d", n)
}

func LessThanEqualMessage[N Magnitude](n N) string {
	return fmt.Sprintf("must be less than or equal to %d", n)
}

func GreaterThanMessage[N Magnitude](n N) string {
	return fmt.Sprintf("must be greater than %d", n)
}

func GreaterThanEqualMessage[N Magnitude](n N) string {
	return fmt.Sprintf("must be greater than or equal to %d", n)
}

// OpenIntervalMessage describes the values strictly between lo and hi.
func OpenIntervalMessage[N Magnitude](lo, hi N) string {
	return GreaterThanMessage(lo) + " and " + LessThanMessage(hi)
}

// ClosedIntervalMessage describes the values from lo to hi inclusive.
func ClosedIntervalMessage[N Magnitude](lo, hi N) string {
	return GreaterThanEqualMessage(lo) + " and " + LessThanEqualMessage(hi)
}
