package boundable

import (
	"math"
	"reflect"
)

// UnsignedInteger is any type whose underlying type is an unsigned integer.
type UnsignedInteger interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// SignedInteger is any type whose underlying type is a signed integer.
type SignedInteger interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedBoundable is the set of types the unsigned predicates accept:
// unsigned integers by value, strings by length in bytes, byte and rune
// slices by element count. Other containers are measured through Sized.
type UnsignedBoundable interface {
	UnsignedInteger | ~string | ~[]byte | ~[]rune
}

// Sized is implemented by container-like types that report an element count.
type Sized interface {
	Len() int
}

// Slice is a Sized slice.
type Slice[E any] []E

func (s Slice[E]) Len() int { return len(s) }

// Map is a Sized map.
type Map[K comparable, V any] map[K]V

func (m Map[K, V]) Len() int { return len(m) }

// UnsignedMagnitude reduces v to an unsigned magnitude: the value of an
// unsigned integer, or the length of a string, slice, array, map, channel or
// Sized value. Strings are measured in bytes. The second result is false for
// values that have no unsigned magnitude.
func UnsignedMagnitude(v any) (uint64, bool) {
	switch x := v.(type) {
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	case string:
		return uint64(len(x)), true
	case []byte:
		return uint64(len(x)), true
	case Sized:
		n := x.Len()
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), true
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return uint64(rv.Len()), true
	default:
		return 0, false
	}
}

// UnsignedDomain returns the values representable by T.
func UnsignedDomain[T UnsignedInteger]() Interval[uint64] {
	return Closed(0, uint64(^T(0)))
}

// SignedDomain returns the values representable by T.
func SignedDomain[T SignedInteger]() Interval[int64] {
	bits := reflect.TypeFor[T]().Bits()
	hi := int64(math.MaxInt64 >> (64 - bits))
	return Closed(-hi-1, hi)
}
