package str

import (
	"fmt"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/roach88/refined"
)

// Regex accepts strings matching the regular expression lifted by S. The
// expression is unanchored; use ^ and $ to match whole strings.
type Regex[T String, S refined.TypeString] struct {
	re *regexp.Regexp
}

// NewRegex compiles the expression lifted by S.
func NewRegex[T String, S refined.TypeString]() (Regex[T, S], error) {
	re, err := regexp.Compile(refined.Lift[S]())
	if err != nil {
		return Regex[T, S]{}, fmt.Errorf("compile %s: %w", refined.Lift[S](), err)
	}
	return Regex[T, S]{re: re}, nil
}

func (p Regex[T, S]) Test(value T) bool {
	re := p.re
	if re == nil {
		var err error
		if re, err = regexp.Compile(refined.Lift[S]()); err != nil {
			return false
		}
	}
	return re.MatchString(string(value))
}

func (Regex[T, S]) Message() string { return RegexMessage(refined.Lift[S]()) }

func (p Regex[T, S]) Materialized() bool { return p.re != nil }

// Glob accepts strings matching the doublestar glob lifted by S, e.g.
// "**/*.go" or "{docs,site}/*.md".
type Glob[T String, S refined.TypeString] struct {
	validated bool
}

// NewGlob validates the pattern lifted by S.
func NewGlob[T String, S refined.TypeString]() (Glob[T, S], error) {
	if !doublestar.ValidatePattern(refined.Lift[S]()) {
		return Glob[T, S]{}, fmt.Errorf("glob %q: %w", refined.Lift[S](), doublestar.ErrBadPattern)
	}
	return Glob[T, S]{validated: true}, nil
}

func (p Glob[T, S]) Test(value T) bool {
	if p.validated {
		return doublestar.MatchUnvalidated(refined.Lift[S](), string(value))
	}
	ok, err := doublestar.Match(refined.Lift[S](), string(value))
	return err == nil && ok
}

func (Glob[T, S]) Message() string { return GlobMessage(refined.Lift[S]()) }

func (p Glob[T, S]) Materialized() bool { return p.validated }

func RegexMessage(expr string) string   { return fmt.Sprintf("must match regular expression %s", expr) }
func GlobMessage(pattern string) string { return fmt.Sprintf("must match glob %s", pattern) }

var (
	_ refined.StatefulPredicate[string] = Regex[string, refined.TypeString]{}
	_ refined.StatefulPredicate[string] = Glob[string, refined.TypeString]{}
)
