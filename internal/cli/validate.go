package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ValidationError is one problem found in a schema.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Fields []FieldSummary    `json:"fields,omitempty"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// FieldSummary describes one compiled field of a valid schema.
type FieldSummary struct {
	Name     string `json:"name"`
	Rule     string `json:"rule"`
	Required bool   `json:"required"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <schema>",
		Short: "Validate a schema without checking a document",
		Long: `Validate a schema: CUE syntax, schema structure and every rule.

All errors are reported, not just the first. Rules are printed in
canonical form when the schema is valid.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, schemaPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	loaded, loadErrors := LoadSchema(schemaPath)
	if len(loadErrors) > 0 {
		var validationErrors []ValidationError
		for _, err := range loadErrors {
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				loadErr = &LoadError{Code: ErrCodeGeneric, Message: err.Error()}
			}
			// Missing or unreadable schemas are command errors, not validation results
			if !isSchemaCode(loadErr.Code) && len(loadErrors) == 1 {
				return outputCommandError(formatter, loadErr)
			}
			validationErrors = append(validationErrors, toValidationError(loadErr))
		}
		return outputValidationErrors(formatter, validationErrors)
	}

	formatter.VerboseLog("Read %d schema file(s) from %s", loaded.FileCount, schemaPath)

	result := ValidationResult{Valid: true}
	for _, f := range loaded.Schema.Fields {
		formatter.VerboseLog("Validated field: %s", f.Name)
		result.Fields = append(result.Fields, FieldSummary{Name: f.Name, Rule: f.Rule.String(), Required: f.Required})
	}
	return outputValidateSuccess(formatter, result)
}

func toValidationError(err *LoadError) ValidationError {
	v := ValidationError{Code: err.Code, Message: err.Message}
	if err.Pos.IsValid() {
		v.File = err.Pos.Filename()
		v.Line = err.Pos.Line()
	}
	return v
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, result ValidationResult) error {
	if formatter.JSON() {
		return formatter.Success(result)
	}

	fmt.Fprintln(formatter.Writer, "✓ Schema valid")
	for _, f := range result.Fields {
		req := ""
		if !f.Required {
			req = " (optional)"
		}
		fmt.Fprintf(formatter.Writer, "  %s%s: %s\n", f.Name, req, f.Rule)
	}
	return nil
}

// outputValidationErrors outputs multiple validation errors.
func outputValidationErrors(formatter *OutputFormatter, errs []ValidationError) error {
	msg := fmt.Sprintf("validation failed with %d error(s)", len(errs))

	if formatter.JSON() {
		result := ValidationResult{Valid: false, Errors: errs}
		if err := formatter.Failure(result, errs[0].Code, errs[0].Message); err != nil {
			return err
		}
		// Validation failures = exit code 1
		return NewExitError(ExitFailure, msg)
	}

	// Text format
	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, err := range errs {
		if err.Line > 0 {
			fmt.Fprintf(formatter.Writer, "line %d\n", err.Line)
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", err.Code, err.Message)
	}

	return NewExitError(ExitFailure, msg)
}
