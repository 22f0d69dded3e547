package refined

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Named is a Refinement whose failures name the field that was checked:
// with N lifting "age", a violation reads "refinement violated: age must be
// greater than 0".
type Named[N TypeString, T any, P Predicate[T]] struct {
	Refinement[T, P]
}

// RefineNamed validates value against the zero value of P.
func RefineNamed[N TypeString, T any, P Predicate[T]](value T) (Named[N, T, P], error) {
	return namedWith[N, T](zero[P](), value)
}

// RefineNamedWithState validates value against a materialized predicate.
func RefineNamedWithState[N TypeString, T any, P StatefulPredicate[T]](predicate P, value T) (Named[N, T, P], error) {
	return namedWith[N, T](predicate, value)
}

func namedWith[N TypeString, T any, P Predicate[T]](predicate P, value T) (Named[N, T, P], error) {
	if !predicate.Test(value) {
		return Named[N, T, P]{}, newRefinementError(Lift[N]() + " " + predicate.Message())
	}
	return Named[N, T, P]{Refinement: certified[T, P](value)}, nil
}

// Name returns the lifted field name.
func (Named[N, T, P]) Name() string {
	return Lift[N]()
}

// Unnamed returns the underlying Refinement.
func (n Named[N, T, P]) Unnamed() Refinement[T, P] {
	return n.Refinement
}

// Modify applies f and validates the result. n is consumed.
func (n *Named[N, T, P]) Modify(f func(T) T) (Named[N, T, P], error) {
	n.mustBeRefined("Modify")
	return RefineNamed[N, T, P](f(n.Take()))
}

// Replace validates value and swaps it in. n is consumed.
func (n *Named[N, T, P]) Replace(value T) (Named[N, T, P], error) {
	return n.Modify(func(T) T { return value })
}

// UnmarshalJSON decodes a T and validates it.
func (n *Named[N, T, P]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return n.set(v)
}

// UnmarshalYAML decodes a T and validates it.
func (n *Named[N, T, P]) UnmarshalYAML(node *yaml.Node) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	return n.set(v)
}

// Scan implements sql.Scanner.
func (n *Named[N, T, P]) Scan(src any) error {
	var v T
	if err := scanInto(&v, src); err != nil {
		return err
	}
	return n.set(v)
}

func (n *Named[N, T, P]) set(v T) error {
	out, err := RefineNamed[N, T, P](v)
	if err != nil {
		return err
	}
	*n = out
	return nil
}
