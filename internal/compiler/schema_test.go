package compiler

import (
	"testing"

	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/refined/internal/document"
	"github.com/roach88/refined/internal/rules"
)

func TestCompileSchema(t *testing.T) {
	ctx := cuecontext.New()
	v := ctx.CompileString(`
		strict: true
		fields: {
			name: "and(trimmed, closed(1, 10))"
			age: {
				rule:     "closed(0, 150)"
				required: false
			}
			"user-id": {rule: "uuid"}
		}
	`)
	require.NoError(t, v.Err())

	schema, errs := CompileSchema(v)
	require.Empty(t, errs)

	assert.True(t, schema.Strict)
	require.Len(t, schema.Fields, 3)

	assert.Equal(t, "age", schema.Fields[0].Name)
	assert.False(t, schema.Fields[0].Required)
	assert.Equal(t, "closed(0, 150)", schema.Fields[0].Rule.String())

	assert.Equal(t, "name", schema.Fields[1].Name)
	assert.True(t, schema.Fields[1].Required)
	assert.True(t, schema.Fields[1].Rule.Test(document.String("Alice")))

	assert.Equal(t, "user-id", schema.Fields[2].Name)
	assert.True(t, schema.Fields[2].Required)
}

func TestCompileSchemaErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		fields []string
	}{
		{"missing fields", `strict: false`, []string{"fields"}},
		{"empty fields", `fields: {}`, []string{"fields"}},
		{"bad strict", `strict: "yes", fields: {a: "uuid"}`, []string{"strict"}},
		{"rule not string", `fields: {a: 5}`, []string{"fields.a.rule"}},
		{"missing rule", `fields: {a: {required: true}}`, []string{"fields.a.rule"}},
		{"bad required", `fields: {a: {rule: "uuid", required: 1}}`, []string{"fields.a.required"}},
		{"collects all", `fields: {a: "bogus", b: "lt", c: "uuid"}`, []string{"fields.a.rule", "fields.b.rule"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := cuecontext.New().CompileString(tt.source)
			require.NoError(t, v.Err())

			schema, errs := CompileSchema(v)
			assert.Nil(t, schema)
			require.Len(t, errs, len(tt.fields))
			for i, err := range errs {
				var ce *CompileError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, tt.fields[i], ce.Field)
			}
		})
	}
}

func TestCompileFieldCarriesRuleCode(t *testing.T) {
	v := cuecontext.New().CompileString(`"closed(10, 1)"`)
	_, err := CompileField("qty", v)

	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, rules.ErrCodeEmptyInterval, ce.Code)
	assert.Equal(t, "fields.qty.rule", ce.Field)
	assert.Contains(t, ce.Message, "closed(10, 1) accepts no value")
}

func TestFormatCUEError(t *testing.T) {
	v := cuecontext.New().CompileString(`1 & 2`)
	_, errs := CompileSchema(v)
	require.Len(t, errs, 1)

	var ce *CompileError
	require.ErrorAs(t, errs[0], &ce)
	assert.Equal(t, "cue", ce.Field)
	assert.Contains(t, ce.Message, "conflicting values")
}
