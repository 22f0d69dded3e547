package rules

import (
	"fmt"
	"strconv"
	"strings"

	"cuelang.org/go/cue/ast"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/literal"
	"cuelang.org/go/cue/parser"
	"cuelang.org/go/cue/token"
)

// Parse parses a rule expression. It checks syntax only; see Validate.
func Parse(src string) (Expr, error) {
	node, err := parser.ParseExpr("rule", src)
	if err != nil {
		return nil, syntaxError(err)
	}
	return convert(node)
}

func convert(node ast.Expr) (Expr, error) {
	switch n := node.(type) {
	case *ast.ParenExpr:
		return convert(n.X)

	case *ast.Ident:
		return Call{Name: n.Name, NamePos: n.Pos()}, nil

	case *ast.CallExpr:
		fun, ok := n.Fun.(*ast.Ident)
		if !ok {
			return nil, &Error{Code: ErrCodeSyntax, Message: "only named rules can be called", Pos: n.Pos()}
		}
		call := Call{Name: fun.Name, NamePos: fun.Pos(), Args: make([]Expr, 0, len(n.Args))}
		for _, arg := range n.Args {
			e, err := convert(arg)
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, e)
		}
		return call, nil

	case *ast.BasicLit:
		return convertLit(n, false)

	case *ast.UnaryExpr:
		lit, ok := n.X.(*ast.BasicLit)
		if n.Op == token.SUB && ok && lit.Kind == token.INT {
			return convertLit(lit, true)
		}
		return nil, &Error{Code: ErrCodeSyntax, Message: fmt.Sprintf("unsupported operator %s", n.Op), Pos: n.Pos()}

	default:
		return nil, &Error{Code: ErrCodeSyntax, Message: fmt.Sprintf("unsupported expression %T", node), Pos: node.Pos()}
	}
}

func convertLit(lit *ast.BasicLit, negate bool) (Expr, error) {
	switch lit.Kind {
	case token.INT:
		text := strings.ReplaceAll(lit.Value, "_", "")
		if negate {
			text = "-" + text
		}
		n, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, &Error{Code: ErrCodeSyntax, Message: fmt.Sprintf("invalid integer %s", text), Pos: lit.Pos()}
		}
		return Int{Value: n, ValuePos: lit.Pos()}, nil

	case token.STRING:
		s, err := literal.Unquote(lit.Value)
		if err != nil {
			return nil, &Error{Code: ErrCodeSyntax, Message: err.Error(), Pos: lit.Pos()}
		}
		return String{Value: s, ValuePos: lit.Pos()}, nil

	case token.FLOAT:
		return nil, &Error{Code: ErrCodeArgumentKind, Message: "floats are not supported: " + lit.Value, Pos: lit.Pos()}

	default:
		return nil, &Error{Code: ErrCodeSyntax, Message: "unsupported literal " + lit.Value, Pos: lit.Pos()}
	}
}

func syntaxError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &Error{Code: ErrCodeSyntax, Message: err.Error()}
	}
	first := errs[0]
	e := &Error{Code: ErrCodeSyntax, Message: first.Error()}
	if positions := errors.Positions(first); len(positions) > 0 {
		e.Pos = positions[0]
	}
	return e
}
