package signed

import (
	"github.com/roach88/refined/boolean"
	"github.com/roach88/refined/boundable"
)

// NonZero accepts every value except zero. It is not an interval, so it
// takes no part in implication or arithmetic.
type NonZero[T boundable.SignedInteger] = boolean.Or[T, Negative[T], Positive[T]]
