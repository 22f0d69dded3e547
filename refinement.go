package refined

import "fmt"

// Refinement holds a value of type T that satisfies P.
//
// Refinements are values; copying one copies the validated value. The
// consuming operations Take, Modify and Replace leave the receiver unrefined.
type Refinement[T any, P Predicate[T]] struct {
	value   T
	refined bool
}

// Refine validates value against the zero value of P.
func Refine[T any, P Predicate[T]](value T) (Refinement[T, P], error) {
	return refineWith[T](zero[P](), value)
}

// MustRefine is like Refine but panics if value does not satisfy P. It is
// intended for package-level values built from literals.
func MustRefine[T any, P Predicate[T]](value T) Refinement[T, P] {
	r, err := Refine[T, P](value)
	if err != nil {
		panic(err)
	}
	return r
}

// RefineWithState validates value against a materialized predicate.
func RefineWithState[T any, P StatefulPredicate[T]](predicate P, value T) (Refinement[T, P], error) {
	return refineWith[T](predicate, value)
}

func refineWith[T any, P Predicate[T]](predicate P, value T) (Refinement[T, P], error) {
	if !predicate.Test(value) {
		return Refinement[T, P]{}, newRefinementError(predicate.Message())
	}
	return certified[T, P](value), nil
}

// certified wraps a value that is already known to satisfy P.
func certified[T any, P Predicate[T]](value T) Refinement[T, P] {
	return Refinement[T, P]{value: value, refined: true}
}

// IsRefined reports whether r holds a validated value. Only the zero
// Refinement and consumed ones are unrefined.
func (r Refinement[T, P]) IsRefined() bool {
	return r.refined
}

// Get returns the validated value without consuming r.
func (r Refinement[T, P]) Get() T {
	r.mustBeRefined("Get")
	return r.value
}

// Take returns the validated value and leaves r unrefined.
func (r *Refinement[T, P]) Take() T {
	r.mustBeRefined("Take")
	v := r.value
	*r = Refinement[T, P]{}
	return v
}

// Modify applies f to the value and validates the result against the zero
// value of P. r is consumed whether or not the result is valid.
func (r *Refinement[T, P]) Modify(f func(T) T) (Refinement[T, P], error) {
	r.mustBeRefined("Modify")
	return Refine[T, P](f(r.Take()))
}

// Replace validates value against the zero value of P. The check always
// runs, even when value equals the current one. r is consumed.
func (r *Refinement[T, P]) Replace(value T) (Refinement[T, P], error) {
	return r.Modify(func(T) T { return value })
}

// ModifyWithState is Modify with a materialized predicate.
func ModifyWithState[T any, P StatefulPredicate[T]](r *Refinement[T, P], predicate P, f func(T) T) (Refinement[T, P], error) {
	r.mustBeRefined("ModifyWithState")
	return refineWith[T](predicate, f(r.Take()))
}

// ReplaceWithState is Replace with a materialized predicate.
func ReplaceWithState[T any, P StatefulPredicate[T]](r *Refinement[T, P], predicate P, value T) (Refinement[T, P], error) {
	return ModifyWithState(r, predicate, func(T) T { return value })
}

// String formats the value with the %v verb.
func (r Refinement[T, P]) String() string {
	if !r.refined {
		return "<unrefined>"
	}
	return fmt.Sprint(r.value)
}

func (r Refinement[T, P]) mustBeRefined(op string) {
	if !r.refined {
		var p P
		panic(fmt.Sprintf("refined: %s on unrefined Refinement[%T, %T]", op, r.value, p))
	}
}
