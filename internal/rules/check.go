package rules

import (
	"errors"

	"github.com/roach88/refined"
	"github.com/roach88/refined/internal/document"
)

// Field binds a rule to a record field.
type Field struct {
	Name     string
	Rule     *Rule
	Required bool
}

// Schema is the set of field rules a record must satisfy.
type Schema struct {
	// Fields are sorted by name.
	Fields []Field

	// Strict rejects record fields that have no rule.
	Strict bool
}

// Outcome classifies a single field check.
type Outcome string

const (
	OutcomePass    Outcome = "pass"
	OutcomeFail    Outcome = "fail"
	OutcomeMissing Outcome = "missing"
	OutcomeUnknown Outcome = "unknown"
)

// Violation is a field that does not satisfy its rule.
type Violation struct {
	Record  int     `json:"record"`
	Field   string  `json:"field"`
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message"`
}

// Observer is called once per field check.
type Observer func(field string, outcome Outcome)

// Check validates every record and returns the violations in record order,
// then field order. observe may be nil.
func (s *Schema) Check(records []document.Object, observe Observer) []Violation {
	if observe == nil {
		observe = func(string, Outcome) {}
	}

	var violations []Violation
	for i, rec := range records {
		for _, f := range s.Fields {
			v, ok := rec[f.Name]
			if !ok {
				if f.Required {
					observe(f.Name, OutcomeMissing)
					violations = append(violations, Violation{Record: i, Field: f.Name, Outcome: OutcomeMissing, Message: f.Name + " is required"})
				}
				continue
			}
			if msg, ok := CheckValue(f, v); !ok {
				observe(f.Name, OutcomeFail)
				violations = append(violations, Violation{Record: i, Field: f.Name, Outcome: OutcomeFail, Message: msg})
				continue
			}
			observe(f.Name, OutcomePass)
		}
		if s.Strict {
			for _, k := range rec.SortedKeys() {
				if s.field(k) == nil {
					observe(k, OutcomeUnknown)
					violations = append(violations, Violation{Record: i, Field: k, Outcome: OutcomeUnknown, Message: k + " is not allowed"})
				}
			}
		}
	}
	return violations
}

// CheckValue refines v with the field's rule. On failure it returns the
// violation message prefixed with the field name.
func CheckValue(f Field, v document.Value) (string, bool) {
	_, err := refined.RefineWithState(f.Rule, v)
	if err == nil {
		return "", true
	}
	var re *refined.RefinementError
	if errors.As(err, &re) {
		return f.Name + " " + re.Message(), false
	}
	return f.Name + ": " + err.Error(), false
}

func (s *Schema) field(name string) *Field {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}
	return nil
}
