package rules

import (
	"fmt"
	"strconv"
	"strings"

	"cuelang.org/go/cue/token"
)

// Expr is a node of a parsed rule.
//
// This is a sealed interface: Call, Int and String are the only
// implementations.
type Expr interface {
	exprNode()
	Pos() token.Pos
}

// Call applies a builtin to arguments. A bare identifier such as trimmed is
// a Call with no arguments.
type Call struct {
	Name    string
	Args    []Expr
	NamePos token.Pos
}

// Int is an integer literal argument.
type Int struct {
	Value    int64
	ValuePos token.Pos
}

// String is a string literal argument.
type String struct {
	Value    string
	ValuePos token.Pos
}

func (Call) exprNode()   {}
func (Int) exprNode()    {}
func (String) exprNode() {}

func (c Call) Pos() token.Pos   { return c.NamePos }
func (i Int) Pos() token.Pos    { return i.ValuePos }
func (s String) Pos() token.Pos { return s.ValuePos }

// Error is a rule that cannot be parsed, validated or compiled.
type Error struct {
	Code    string
	Message string
	Pos     token.Pos
}

// Error codes (E200-E299)
const (
	ErrCodeSyntax        = "E201" // not a valid rule expression
	ErrCodeUnknownRule   = "E202" // unknown builtin name
	ErrCodeArity         = "E203" // wrong number of arguments
	ErrCodeArgumentKind  = "E204" // argument has the wrong kind
	ErrCodeEmptyInterval = "E205" // interval bounds admit no value
	ErrCodeBadPattern    = "E206" // regex, glob or CUE argument does not compile
)

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%d:%d: %s: %s", e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Format renders the expression in rule syntax.
func Format(e Expr) string {
	var b strings.Builder
	format(&b, e)
	return b.String()
}

func format(b *strings.Builder, e Expr) {
	switch n := e.(type) {
	case Call:
		b.WriteString(n.Name)
		if len(n.Args) == 0 {
			return
		}
		b.WriteByte('(')
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			format(b, arg)
		}
		b.WriteByte(')')
	case Int:
		b.WriteString(strconv.FormatInt(n.Value, 10))
	case String:
		b.WriteString(strconv.Quote(n.Value))
	}
}
