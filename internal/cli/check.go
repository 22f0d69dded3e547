package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/refined/internal/document"
	"github.com/roach88/refined/internal/metrics"
	"github.com/roach88/refined/internal/rules"
	"github.com/roach88/refined/internal/store"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Watch    bool
	Debounce time.Duration
	Metrics  bool
	Record   string // run log database; empty disables recording
}

// CheckResult is the outcome of checking one document.
type CheckResult struct {
	Schema     string            `json:"schema"`
	Document   string            `json:"document"`
	Records    int               `json:"records"`
	Digest     string            `json:"digest"`
	Valid      bool              `json:"valid"`
	Violations []rules.Violation `json:"violations"`
	RunID      string            `json:"run_id,omitempty"`
	Metrics    []metrics.Count   `json:"metrics,omitempty"`

	collector *metrics.Collector
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <schema> <document>",
		Short: "Check document records against a schema",
		Long: `Check every record of a JSON or YAML document against a schema.

The schema is a CUE package directory or a .cue, .json, .yaml or .yml file
mapping field names to rules:

  strict: true
  fields: {
    name: "and(trimmed, closed(1, 64))"
    age:  {rule: "closed(0, 150)", required: false}
  }

A document is a single object or an array of objects.

Exit codes: 0 all records valid, 1 violations found, 2 command error.

Examples:
  refined check schema.cue users.json
  refined check schema.yaml users.yaml --metrics
  refined check schema.cue users.json --record ./runs.db
  refined check schema.cue users.json --watch`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "re-check when the schema or document changes")
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", 100*time.Millisecond, "delay before re-checking after a change")
	cmd.Flags().BoolVar(&opts.Metrics, "metrics", false, "print check counters")
	cmd.Flags().StringVar(&opts.Record, "record", "", "record the run in this SQLite database")

	return cmd
}

func runCheck(opts *CheckOptions, schemaPath, docPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr()).With("trace_id", formatter.TraceID)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if !opts.Watch {
		result, err := checkOnce(ctx, opts, schemaPath, docPath, logger)
		if err != nil {
			return outputCommandError(formatter, err)
		}
		return outputCheck(formatter, result)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := newPathWatcher([]string{schemaPath, docPath}, opts.Debounce, logger)
	if err != nil {
		return outputCommandError(formatter, WrapExitError(ExitCommandError, "failed to start watcher", err))
	}
	defer w.Close()

	rerun := func() {
		result, err := checkOnce(ctx, opts, schemaPath, docPath, logger)
		if err != nil {
			_ = outputCommandError(formatter, err)
			return
		}
		_ = outputCheck(formatter, result)
	}

	rerun()
	logger.Info("watching for changes", "schema", schemaPath, "document", docPath)
	return w.Run(ctx, rerun)
}

// checkOnce loads the schema and document and checks every record.
func checkOnce(ctx context.Context, opts *CheckOptions, schemaPath, docPath string, logger *slog.Logger) (*CheckResult, error) {
	start := time.Now()

	loaded, errs := LoadSchema(schemaPath)
	if len(errs) > 0 {
		return nil, schemaError(errs)
	}
	logger.Debug("schema loaded", "path", schemaPath, "files", loaded.FileCount, "fields", len(loaded.Schema.Fields))

	records, err := LoadDocument(docPath)
	if err != nil {
		return nil, err
	}
	digest, err := document.RecordsDigest(records)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeDecodeFailed, Message: fmt.Sprintf("%s: %v", docPath, err)}
	}

	var collector *metrics.Collector
	var observe rules.Observer
	if opts.Metrics {
		collector = metrics.NewCollector()
		observe = collector.Observe
	}

	violations := loaded.Schema.Check(records, observe)
	if violations == nil {
		violations = []rules.Violation{}
	}

	result := &CheckResult{
		Schema:     schemaPath,
		Document:   docPath,
		Records:    len(records),
		Digest:     digest,
		Valid:      len(violations) == 0,
		Violations: violations,
	}
	logger.Debug("document checked", "records", result.Records, "violations", len(violations))

	if opts.Record != "" {
		id, err := recordRun(ctx, opts.Record, result, logger)
		if err != nil {
			return nil, err
		}
		result.RunID = id
	}

	if collector != nil {
		collector.RunDone(time.Since(start))
		counts, err := collector.Counts()
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to gather metrics", err)
		}
		result.Metrics = counts
		result.collector = collector
	}
	return result, nil
}

func recordRun(ctx context.Context, path string, result *CheckResult, logger *slog.Logger) (string, error) {
	st, err := store.Open(path, store.WithLogger(logger))
	if err != nil {
		return "", &LoadError{Code: ErrCodeDatabase, Message: fmt.Sprintf("opening run log: %v", err)}
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	run := &store.Run{
		ID:         store.NewRunID(),
		Source:     result.Document,
		Schema:     result.Schema,
		Records:    result.Records,
		Digest:     result.Digest,
		Violations: result.Violations,
	}
	if err := st.WriteRun(ctx, run); err != nil {
		return "", &LoadError{Code: ErrCodeDatabase, Message: fmt.Sprintf("recording run: %v", err)}
	}
	logger.Info("run recorded", "run_id", run.ID.Get(), "seq", run.Seq)
	return run.ID.Get(), nil
}

// schemaError folds schema load errors into one LoadError for output.
// Details carry every error message.
func schemaError(errs []error) error {
	var first *LoadError
	if !errors.As(errs[0], &first) {
		first = &LoadError{Code: ErrCodeGeneric, Message: errs[0].Error()}
	}
	if len(errs) == 1 {
		return first
	}
	return &LoadError{
		Code:    first.Code,
		Message: fmt.Sprintf("%s (and %d more)", first.Message, len(errs)-1),
		Pos:     first.Pos,
	}
}

// outputCommandError prints err and returns it with an exit code.
// LoadErrors are command errors unless they describe an invalid schema.
func outputCommandError(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		_ = formatter.Error(loadErr.Code, loadErr.Error(), nil)
		code := ExitCommandError
		if isSchemaCode(loadErr.Code) {
			code = ExitFailure
		}
		return NewExitError(code, loadErr.Error())
	}
	_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
	if GetExitCode(err) == ExitFailure {
		return err
	}
	return WrapExitError(ExitCommandError, "check failed", err)
}

// isSchemaCode reports whether code describes a schema the user wrote wrong,
// as opposed to a file that could not be read.
func isSchemaCode(code string) bool {
	return len(code) == 4 && (code[1] == '1' || code[1] == '2')
}

func outputCheck(formatter *OutputFormatter, result *CheckResult) error {
	if !result.Valid {
		msg := fmt.Sprintf("%d violation(s) in %d record(s)", len(result.Violations), result.Records)
		if formatter.JSON() {
			if err := formatter.Failure(result, ErrCodeViolations, msg); err != nil {
				return err
			}
		} else {
			writeCheckText(formatter, result)
		}
		return NewExitError(ExitFailure, msg)
	}

	if formatter.JSON() {
		return formatter.Success(result)
	}
	writeCheckText(formatter, result)
	return nil
}

func writeCheckText(formatter *OutputFormatter, result *CheckResult) {
	w := formatter.Writer
	if result.Valid {
		fmt.Fprintf(w, "✓ %d record(s) valid\n", result.Records)
	} else {
		fmt.Fprintf(w, "✗ %d violation(s) in %d record(s)\n\n", len(result.Violations), result.Records)
		for _, v := range result.Violations {
			fmt.Fprintf(w, "record %d: %s: %s\n", v.Record, v.Outcome, v.Message)
		}
	}
	if result.RunID != "" {
		fmt.Fprintf(w, "\nrun %s recorded\n", result.RunID)
	}
	if result.collector != nil {
		fmt.Fprintln(w)
		_ = result.collector.WriteSummary(w)
	}
}
