package compiler

import (
	"strconv"
	"strings"

	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// CompileError reports an invalid schema entry, located by Pos when the
// schema came from a file.
type CompileError struct {
	// Field is the schema path, e.g. "fields.name.rule", or "cue" for an
	// error in the CUE source itself.
	Field string
	// Code is set when the rule expression is invalid.
	Code    string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	var b strings.Builder
	if e.Pos.IsValid() {
		b.WriteString(e.Pos.Filename())
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(e.Pos.Line()))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(e.Pos.Column()))
		b.WriteString(": ")
	}
	b.WriteString(e.Field)
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

// sourceError turns the first error of a CUE error list into a CompileError
// at the position CUE reports. Errors without a position pass through.
func sourceError(err error) error {
	list := errors.Errors(err)
	if len(list) == 0 {
		return err
	}
	positions := errors.Positions(list[0])
	if len(positions) == 0 {
		return err
	}
	return &CompileError{Field: "cue", Message: list[0].Error(), Pos: positions[0]}
}
