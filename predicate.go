package refined

// Predicate is a decidable property of values of type T.
//
// Test must be pure, total and deterministic: the same value always yields
// the same answer, with no side effects and no shared mutable state. Message
// describes the violated invariant for a user, e.g. "must be less than 10".
//
// The zero value of a predicate type must be a usable predicate.
type Predicate[T any] interface {
	Test(value T) bool
	Message() string
}

// StatefulPredicate is a Predicate whose instances can carry state that is
// expensive to rebuild, such as a compiled regular expression. State is
// read-only after construction, so one instance may be shared between
// goroutines. The zero value rebuilds the state on every Test and must reach
// the same decisions with the same message.
type StatefulPredicate[T any] interface {
	Predicate[T]

	// Materialized reports whether the instance holds prebuilt state.
	Materialized() bool
}

// TypeString lifts a string into a type. Implementations return a constant
// from their zero value.
//
//	type UserName struct{}
//
//	func (UserName) TypeString() string { return "user_name" }
type TypeString interface {
	TypeString() string
}

// Lift returns the string carried by S.
func Lift[S TypeString]() string {
	var s S
	return s.TypeString()
}

func zero[P any]() P {
	var p P
	return p
}

// IsMaterialized reports whether p is a StatefulPredicate holding prebuilt
// state. Stateless predicates report false.
func IsMaterialized(p any) bool {
	sp, ok := p.(interface{ Materialized() bool })
	return ok && sp.Materialized()
}
