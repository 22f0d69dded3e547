package rules

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/roach88/refined/boundable"
	"github.com/roach88/refined/schema"
)

type argKind int

const (
	argInt argKind = iota
	argString
	argRule
)

func (k argKind) String() string {
	switch k {
	case argInt:
		return "an integer"
	case argString:
		return "a string"
	default:
		return "a rule"
	}
}

func (k argKind) short() string {
	switch k {
	case argInt:
		return "int"
	case argString:
		return "string"
	default:
		return "rule"
	}
}

// signature describes the arguments a builtin accepts. A variadic builtin
// repeats its last argument kind and needs at least len(args) arguments.
type signature struct {
	args     []argKind
	variadic bool
}

var builtins = map[string]signature{
	"lt":      {args: []argKind{argInt}},
	"le":      {args: []argKind{argInt}},
	"gt":      {args: []argKind{argInt}},
	"ge":      {args: []argKind{argInt}},
	"open":    {args: []argKind{argInt, argInt}},
	"closed":  {args: []argKind{argInt, argInt}},
	"nonzero": {},
	"empty":   {},

	"and": {args: []argKind{argRule, argRule}, variadic: true},
	"or":  {args: []argKind{argRule, argRule}, variadic: true},
	"xor": {args: []argKind{argRule, argRule}},
	"not": {args: []argKind{argRule}},

	"trimmed":     {},
	"uuid":        {},
	"nfc":         {},
	"dns_label":   {},
	"contains":    {args: []argKind{argString}},
	"starts_with": {args: []argKind{argString}},
	"ends_with":   {args: []argKind{argString}},
	"regex":       {args: []argKind{argString}},
	"glob":        {args: []argKind{argString}},
	"cue":         {args: []argKind{argString}},
	"runes":       {args: []argKind{argString}},
}

// Builtins returns the names of every builtin rule, sorted.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Usage returns the call syntax of a builtin, e.g. "closed(int, int)".
func Usage(name string) (string, bool) {
	sig, ok := builtins[name]
	if !ok {
		return "", false
	}
	if len(sig.args) == 0 {
		return name, true
	}
	params := make([]string, len(sig.args))
	for i, k := range sig.args {
		params[i] = k.short()
	}
	if sig.variadic {
		params = append(params, "...")
	}
	return name + "(" + strings.Join(params, ", ") + ")", true
}

// Validate checks a parsed rule against the builtin vocabulary and returns
// every problem found. Argument patterns are compiled to make sure they are
// valid. A nil result means Compile will succeed.
func Validate(e Expr) []*Error {
	v := &validator{}
	v.validateRule(e)
	return v.errs
}

type validator struct {
	errs []*Error
}

func (v *validator) add(code string, e Expr, format string, args ...any) {
	v.errs = append(v.errs, &Error{Code: code, Message: fmt.Sprintf(format, args...), Pos: e.Pos()})
}

func (v *validator) validateRule(e Expr) {
	call, ok := e.(Call)
	if !ok {
		v.add(ErrCodeArgumentKind, e, "expected a rule, got %s", Format(e))
		return
	}

	sig, ok := builtins[call.Name]
	if !ok {
		v.add(ErrCodeUnknownRule, call, "unknown rule %q", call.Name)
		return
	}
	if !sig.accepts(len(call.Args)) {
		v.add(ErrCodeArity, call, "%s takes %s, got %d", call.Name, sig.describe(), len(call.Args))
		return
	}

	kindsOK := true
	for i, arg := range call.Args {
		want := sig.kind(i)
		if want == argRule {
			v.validateRule(arg)
			continue
		}
		if kindOf(arg) != want {
			v.add(ErrCodeArgumentKind, arg, "argument %d of %s must be %s", i+1, call.Name, want)
			kindsOK = false
		}
	}
	if kindsOK {
		v.validateArgs(call)
	}
}

// validateArgs checks argument values once their kinds are known to be right.
func (v *validator) validateArgs(call Call) {
	switch call.Name {
	case "lt", "le", "gt", "ge", "open", "closed":
		if magnitudeInterval(call.Name, intArgs(call)...).IsEmpty() {
			v.add(ErrCodeEmptyInterval, call, "%s accepts no value", Format(call))
		}
	case "regex":
		if _, err := regexp.Compile(call.Args[0].(String).Value); err != nil {
			v.add(ErrCodeBadPattern, call.Args[0], "%v", err)
		}
	case "glob":
		if !doublestar.ValidatePattern(call.Args[0].(String).Value) {
			v.add(ErrCodeBadPattern, call.Args[0], "invalid glob %q", call.Args[0].(String).Value)
		}
	case "cue":
		if _, err := schema.Compile(call.Args[0].(String).Value); err != nil {
			v.add(ErrCodeBadPattern, call.Args[0], "%v", err)
		}
	case "runes":
		class := call.Args[0].(String).Value
		if _, ok := runeClasses[class]; !ok {
			v.add(ErrCodeArgumentKind, call.Args[0], "unknown character class %q, want one of %v", class, RuneClasses())
		}
	}
}

func (s signature) accepts(n int) bool {
	if s.variadic {
		return n >= len(s.args)
	}
	return n == len(s.args)
}

func (s signature) kind(i int) argKind {
	if i >= len(s.args) {
		return s.args[len(s.args)-1]
	}
	return s.args[i]
}

func (s signature) describe() string {
	switch {
	case len(s.args) == 0:
		return "no arguments"
	case s.variadic:
		return fmt.Sprintf("at least %d arguments", len(s.args))
	case len(s.args) == 1:
		return "1 argument"
	default:
		return fmt.Sprintf("%d arguments", len(s.args))
	}
}

func kindOf(e Expr) argKind {
	switch e.(type) {
	case Int:
		return argInt
	case String:
		return argString
	default:
		return argRule
	}
}

func intArgs(call Call) []int64 {
	out := make([]int64, len(call.Args))
	for i, arg := range call.Args {
		out[i] = arg.(Int).Value
	}
	return out
}

// magnitudeInterval returns the values accepted by an interval builtin.
func magnitudeInterval(name string, args ...int64) boundable.Interval[int64] {
	switch name {
	case "lt":
		return boundable.Below(args[0])
	case "le":
		return boundable.AtMost(args[0])
	case "gt":
		return boundable.Above(args[0])
	case "ge":
		return boundable.AtLeast(args[0])
	case "open":
		return boundable.Open(args[0], args[1])
	case "closed":
		return boundable.Closed(args[0], args[1])
	default:
		panic("rules: not an interval builtin: " + name)
	}
}

// RuneClasses returns the class names accepted by runes, sorted.
func RuneClasses() []string {
	names := make([]string, 0, len(runeClasses))
	for name := range runeClasses {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
