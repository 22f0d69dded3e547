package boolean

import "github.com/roach88/refined"

// And holds when both A and B hold. B is not tested when A fails.
type And[T any, A, B refined.Predicate[T]] struct {
	a A
	b B
}

// NewAnd combines two predicate instances.
func NewAnd[T any, A, B refined.Predicate[T]](a A, b B) And[T, A, B] {
	return And[T, A, B]{a: a, b: b}
}

func (p And[T, A, B]) Test(value T) bool {
	return p.a.Test(value) && p.b.Test(value)
}

// Message lists both clauses so every violated invariant is visible.
func (p And[T, A, B]) Message() string {
	return p.a.Message() + " and " + p.b.Message()
}

func (p And[T, A, B]) Materialized() bool {
	return refined.IsMaterialized(p.a) || refined.IsMaterialized(p.b)
}

// Or holds when A or B holds. B is not tested when A holds.
type Or[T any, A, B refined.Predicate[T]] struct {
	a A
	b B
}

// NewOr combines two predicate instances.
func NewOr[T any, A, B refined.Predicate[T]](a A, b B) Or[T, A, B] {
	return Or[T, A, B]{a: a, b: b}
}

func (p Or[T, A, B]) Test(value T) bool {
	return p.a.Test(value) || p.b.Test(value)
}

func (p Or[T, A, B]) Message() string {
	return p.a.Message() + " or " + p.b.Message()
}

func (p Or[T, A, B]) Materialized() bool {
	return refined.IsMaterialized(p.a) || refined.IsMaterialized(p.b)
}

// Xor holds when exactly one of A and B holds. Both are always tested.
type Xor[T any, A, B refined.Predicate[T]] struct {
	a A
	b B
}

// NewXor combines two predicate instances.
func NewXor[T any, A, B refined.Predicate[T]](a A, b B) Xor[T, A, B] {
	return Xor[T, A, B]{a: a, b: b}
}

func (p Xor[T, A, B]) Test(value T) bool {
	return p.a.Test(value) != p.b.Test(value)
}

func (p Xor[T, A, B]) Message() string {
	return p.a.Message() + " xor " + p.b.Message()
}

func (p Xor[T, A, B]) Materialized() bool {
	return refined.IsMaterialized(p.a) || refined.IsMaterialized(p.b)
}

// Not holds when A does not.
type Not[T any, A refined.Predicate[T]] struct {
	a A
}

// NewNot negates a predicate instance.
func NewNot[T any, A refined.Predicate[T]](a A) Not[T, A] {
	return Not[T, A]{a: a}
}

func (p Not[T, A]) Test(value T) bool {
	return !p.a.Test(value)
}

func (p Not[T, A]) Message() string {
	return "not " + p.a.Message()
}

func (p Not[T, A]) Materialized() bool {
	return refined.IsMaterialized(p.a)
}

var (
	_ refined.StatefulPredicate[int] = And[int, refined.Predicate[int], refined.Predicate[int]]{}
	_ refined.StatefulPredicate[int] = Or[int, refined.Predicate[int], refined.Predicate[int]]{}
	_ refined.StatefulPredicate[int] = Xor[int, refined.Predicate[int], refined.Predicate[int]]{}
	_ refined.StatefulPredicate[int] = Not[int, refined.Predicate[int]]{}
)
