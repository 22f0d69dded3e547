package compiler

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"cuelang.org/go/cue"

	"github.com/roach88/refined/internal/rules"
)

// CompileSchema compiles a schema value into a rules.Schema. Uses the CUE
// SDK's Go API directly.
//
// A field maps to a rule string, or to a struct with a rule and an optional
// required flag (default true):
//
//	strict: true
//	fields: {
//		name: "and(trimmed, closed(1, 64))"
//		age: {rule: "closed(0, 150)", required: false}
//	}
//
// Every field is compiled; all errors are returned together.
func CompileSchema(v cue.Value) (*rules.Schema, []error) {
	if err := v.Err(); err != nil {
		return nil, []error{sourceError(err)}
	}

	schema := &rules.Schema{}
	var errs []error

	if strictVal := v.LookupPath(cue.ParsePath("strict")); strictVal.Exists() {
		strict, err := strictVal.Bool()
		if err != nil {
			errs = append(errs, &CompileError{Field: "strict", Message: "strict must be a boolean", Pos: strictVal.Pos()})
		}
		schema.Strict = strict
	}

	fieldsVal := v.LookupPath(cue.ParsePath("fields"))
	if !fieldsVal.Exists() {
		return nil, append(errs, &CompileError{Field: "fields", Message: "fields is required", Pos: v.Pos()})
	}
	iter, err := fieldsVal.Fields()
	if err != nil {
		return nil, append(errs, &CompileError{Field: "fields", Message: "fields must be a struct", Pos: fieldsVal.Pos()})
	}

	for iter.Next() {
		field, err := CompileField(iter.Selector().Unquoted(), iter.Value())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		schema.Fields = append(schema.Fields, field)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if len(schema.Fields) == 0 {
		return nil, []error{&CompileError{Field: "fields", Message: "at least one field is required", Pos: fieldsVal.Pos()}}
	}

	slices.SortFunc(schema.Fields, func(a, b rules.Field) int {
		return strings.Compare(a.Name, b.Name)
	})
	return schema, nil
}

// CompileField compiles one entry of a schema's fields struct.
func CompileField(name string, v cue.Value) (rules.Field, error) {
	field := rules.Field{Name: name, Required: true}
	path := "fields." + name

	ruleVal := v
	if v.IncompleteKind() == cue.StructKind {
		ruleVal = v.LookupPath(cue.ParsePath("rule"))
		if !ruleVal.Exists() {
			return field, &CompileError{Field: path + ".rule", Message: "rule is required", Pos: v.Pos()}
		}
		if reqVal := v.LookupPath(cue.ParsePath("required")); reqVal.Exists() {
			required, err := reqVal.Bool()
			if err != nil {
				return field, &CompileError{Field: path + ".required", Message: "required must be a boolean", Pos: reqVal.Pos()}
			}
			field.Required = required
		}
	}

	src, err := ruleVal.String()
	if err != nil {
		return field, &CompileError{Field: path + ".rule", Message: "rule must be a string", Pos: ruleVal.Pos()}
	}

	rule, err := rules.Compile(src)
	if err != nil {
		var re *rules.Error
		if errors.As(err, &re) {
			return field, &CompileError{Field: path + ".rule", Code: re.Code, Message: fmt.Sprintf("%s: %s", src, re.Message), Pos: ruleVal.Pos()}
		}
		return field, &CompileError{Field: path + ".rule", Message: err.Error(), Pos: ruleVal.Pos()}
	}
	field.Rule = rule
	return field, nil
}
