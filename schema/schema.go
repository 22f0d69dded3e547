// Package schema provides predicates backed by CUE constraints.
//
//	type Port struct{}
//
//	func (Port) TypeString() string { return "int & >=1 & <=65535" }
//
//	type ListenPort = refined.Refinement[int, schema.CUE[int, Port]]
//
// A value satisfies a constraint when unifying the two yields a concrete,
// error-free value.
package schema

import (
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/refined"
)

// Constraint is a compiled CUE expression. It is safe for concurrent use.
type Constraint struct {
	expr string

	// cue.Context is not safe for concurrent use.
	mu  sync.Mutex
	ctx *cue.Context
	val cue.Value
}

// Compile compiles a CUE expression such as `string & =~"^[a-z]+$"` or
// `{name: string, age?: int & >=0}`.
func Compile(expr string) (*Constraint, error) {
	ctx := cuecontext.New()
	val := ctx.CompileString(expr)
	if err := val.Err(); err != nil {
		return nil, fmt.Errorf("compile CUE constraint %q: %w", expr, err)
	}
	return &Constraint{expr: expr, ctx: ctx, val: val}, nil
}

// Expr returns the source expression.
func (c *Constraint) Expr() string {
	return c.expr
}

// Check unifies the constraint with v, which must be encodable by CUE
// (strings, integers, booleans, slices, maps and structs). It returns the
// CUE error when v does not satisfy the constraint.
func (c *Constraint) Check(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	encoded := c.ctx.Encode(v)
	if err := encoded.Err(); err != nil {
		return err
	}
	return c.val.Unify(encoded).Validate(cue.Concrete(true))
}

// Message describes the constraint.
func Message(expr string) string {
	return "must satisfy CUE constraint " + expr
}

// CUE accepts values that satisfy the CUE expression lifted by S. An
// expression that does not compile rejects every value.
type CUE[T any, S refined.TypeString] struct {
	c *Constraint
}

// NewCUE compiles the expression lifted by S.
func NewCUE[T any, S refined.TypeString]() (CUE[T, S], error) {
	c, err := Compile(refined.Lift[S]())
	if err != nil {
		return CUE[T, S]{}, err
	}
	return CUE[T, S]{c: c}, nil
}

func (p CUE[T, S]) Test(value T) bool {
	c := p.c
	if c == nil {
		var err error
		if c, err = Compile(refined.Lift[S]()); err != nil {
			return false
		}
	}
	return c.Check(value) == nil
}

func (CUE[T, S]) Message() string { return Message(refined.Lift[S]()) }

func (p CUE[T, S]) Materialized() bool { return p.c != nil }

var _ refined.StatefulPredicate[int] = CUE[int, refined.TypeString]{}
