package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormatsCanonically(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"trimmed", "trimmed"},
		{"(trimmed)", "trimmed"},
		{"closed(1,10)", "closed(1, 10)"},
		{"and( trimmed , closed(1, 10) )", "and(trimmed, closed(1, 10))"},
		{"closed(-5, 5)", "closed(-5, 5)"},
		{"le(0x10)", "le(16)"},
		{"le(1_000)", "le(1000)"},
		{`regex("^[a-z]+$")`, `regex("^[a-z]+$")`},
		{`contains('x')`, `contains("x")`},
		{`cue("int & >=0")`, `cue("int & >=0")`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Format(e))
		})
	}
}

func TestParseTree(t *testing.T) {
	e, err := Parse(`or(empty, starts_with("a"))`)
	require.NoError(t, err)

	call, ok := e.(Call)
	require.True(t, ok)
	assert.Equal(t, "or", call.Name)
	require.Len(t, call.Args, 2)
	assert.Equal(t, "empty", call.Args[0].(Call).Name)

	inner := call.Args[1].(Call)
	assert.Equal(t, "starts_with", inner.Name)
	assert.Equal(t, "a", inner.Args[0].(String).Value)
	assert.True(t, inner.Pos().IsValid())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  string
	}{
		{"syntax", "and(", ErrCodeSyntax},
		{"selector", "foo.bar", ErrCodeSyntax},
		{"binary", "lt(1) & lt(2)", ErrCodeSyntax},
		{"float", "lt(1.5)", ErrCodeArgumentKind},
		{"overflow", "lt(99999999999999999999)", ErrCodeSyntax},
		{"call on literal", `"x"(1)`, ErrCodeSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)

			var re *Error
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tt.code, re.Code)
		})
	}
}
