package rules

import (
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/roach88/refined"
	"github.com/roach88/refined/boolean"
	"github.com/roach88/refined/boundable"
	"github.com/roach88/refined/character"
	"github.com/roach88/refined/internal/document"
	"github.com/roach88/refined/schema"
	"github.com/roach88/refined/str"
)

type predicate = refined.Predicate[document.Value]

// Rule is a compiled rule. It is a materialized predicate: patterns and CUE
// constraints are compiled once by Compile and shared by every Test, so a
// Rule may be used from several goroutines.
//
// A nil *Rule accepts every value.
type Rule struct {
	source string
	p      predicate
}

// Compile parses, validates and compiles a rule. The returned error is the
// first *Error found.
func Compile(src string) (*Rule, error) {
	e, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return CompileExpr(e)
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string) *Rule {
	r, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return r
}

// CompileExpr validates and compiles a parsed rule.
func CompileExpr(e Expr) (*Rule, error) {
	if errs := Validate(e); len(errs) > 0 {
		return nil, errs[0]
	}
	return &Rule{source: Format(e), p: build(e)}, nil
}

func (r *Rule) Test(v document.Value) bool {
	if r == nil || r.p == nil {
		return true
	}
	return r.p.Test(v)
}

func (r *Rule) Message() string {
	if r == nil || r.p == nil {
		return ""
	}
	return r.p.Message()
}

func (r *Rule) Materialized() bool {
	return r != nil && r.p != nil
}

// String returns the rule in canonical syntax.
func (r *Rule) String() string {
	if r == nil {
		return ""
	}
	return r.source
}

var _ refined.StatefulPredicate[document.Value] = (*Rule)(nil)

// build assumes e has been validated.
func build(e Expr) predicate {
	call := e.(Call)
	switch call.Name {
	case "lt", "le", "gt", "ge", "open", "closed":
		args := intArgs(call)
		return magnitude{interval: magnitudeInterval(call.Name, args...), message: magnitudeMessage(call.Name, args...)}
	case "nonzero":
		return boolean.NewOr[document.Value, predicate, predicate](
			magnitude{interval: boundable.Below[int64](0), message: boundable.LessThanMessage[int64](0)},
			magnitude{interval: boundable.Above[int64](0), message: boundable.GreaterThanMessage[int64](0)},
		)
	case "empty":
		return magnitude{interval: boundable.AtMost[int64](0), message: boundable.LessThanEqualMessage[int64](0)}

	case "and":
		p := build(call.Args[0])
		for _, arg := range call.Args[1:] {
			p = boolean.NewAnd[document.Value, predicate, predicate](p, build(arg))
		}
		return p
	case "or":
		p := build(call.Args[0])
		for _, arg := range call.Args[1:] {
			p = boolean.NewOr[document.Value, predicate, predicate](p, build(arg))
		}
		return p
	case "xor":
		return boolean.NewXor[document.Value, predicate, predicate](build(call.Args[0]), build(call.Args[1]))
	case "not":
		return boolean.NewNot[document.Value, predicate](build(call.Args[0]))

	case "trimmed":
		return text{test: str.IsTrimmed, message: str.TrimmedMessage}
	case "uuid":
		return text{test: str.IsUUID, message: str.UUIDMessage}
	case "nfc":
		return text{test: str.IsNFC, message: str.NFCMessage}
	case "dns_label":
		return text{test: str.IsDNSLabel, message: str.DNSLabelMessage}
	}

	arg := call.Args[0].(String).Value
	switch call.Name {
	case "contains":
		return text{test: func(s string) bool { return strings.Contains(s, arg) }, message: str.ContainsMessage(arg)}
	case "starts_with":
		return text{test: func(s string) bool { return strings.HasPrefix(s, arg) }, message: str.StartsWithMessage(arg)}
	case "ends_with":
		return text{test: func(s string) bool { return strings.HasSuffix(s, arg) }, message: str.EndsWithMessage(arg)}
	case "regex":
		return text{test: regexp.MustCompile(arg).MatchString, message: str.RegexMessage(arg)}
	case "glob":
		return text{test: func(s string) bool { return doublestar.MatchUnvalidated(arg, s) }, message: str.GlobMessage(arg)}
	case "cue":
		c, err := schema.Compile(arg)
		if err != nil {
			panic(err)
		}
		return constraint{c: c}
	case "runes":
		class := runeClasses[arg]
		return text{
			test: func(s string) bool {
				for _, r := range s {
					if !class.Test(r) {
						return false
					}
				}
				return true
			},
			message: class.Message() + " in every position",
		}
	}
	panic("rules: unknown builtin " + call.Name)
}

func magnitudeMessage(name string, args ...int64) string {
	switch name {
	case "lt":
		return boundable.LessThanMessage(args[0])
	case "le":
		return boundable.LessThanEqualMessage(args[0])
	case "gt":
		return boundable.GreaterThanMessage(args[0])
	case "ge":
		return boundable.GreaterThanEqualMessage(args[0])
	case "open":
		return boundable.OpenIntervalMessage(args[0], args[1])
	default:
		return boundable.ClosedIntervalMessage(args[0], args[1])
	}
}

// magnitude tests the value of an Int or the length of a String, Array or
// Object. Other values never pass.
type magnitude struct {
	interval boundable.Interval[int64]
	message  string
}

func (m magnitude) Test(v document.Value) bool {
	if n, ok := v.(document.Int); ok {
		return m.interval.Contains(int64(n))
	}
	n, ok := document.Len(v)
	return ok && m.interval.Contains(int64(n))
}

func (m magnitude) Message() string { return m.message }

// text tests String values. Other values never pass.
type text struct {
	test    func(string) bool
	message string
}

func (t text) Test(v document.Value) bool {
	s, ok := v.(document.String)
	return ok && t.test(string(s))
}

func (t text) Message() string { return t.message }

type constraint struct {
	c *schema.Constraint
}

func (c constraint) Test(v document.Value) bool {
	return c.c.Check(document.Native(v)) == nil
}

func (c constraint) Message() string { return schema.Message(c.c.Expr()) }

func (constraint) Materialized() bool { return true }

var runeClasses = map[string]refined.Predicate[rune]{
	"control":    character.IsControl[rune]{},
	"digit":      character.IsDigit[rune]{},
	"lowercase":  character.IsLowercase[rune]{},
	"uppercase":  character.IsUppercase[rune]{},
	"numeric":    character.IsNumeric[rune]{},
	"whitespace": character.IsWhitespace[rune]{},
	"hex":        character.IsHexDigit[rune]{},
}
