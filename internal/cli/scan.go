package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/refined/internal/document"
	"github.com/roach88/refined/internal/metrics"
	"github.com/roach88/refined/internal/rules"
	"github.com/roach88/refined/internal/store"
)

// ScanOptions holds flags for the scan command.
type ScanOptions struct {
	*RootOptions
	Database string
	Table    string
	Column   string
	Rule     string
	Required bool
	Metrics  bool
}

// ScanResult is the outcome of auditing one column.
type ScanResult struct {
	Database   string            `json:"database"`
	Table      string            `json:"table"`
	Column     string            `json:"column"`
	Rule       string            `json:"rule"`
	Rows       int               `json:"rows"`
	Valid      bool              `json:"valid"`
	Violations []rules.Violation `json:"violations"`
	Metrics    []metrics.Count   `json:"metrics,omitempty"`

	collector *metrics.Collector
}

// NewScanCommand creates the scan command.
func NewScanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ScanOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Audit a SQLite column against a rule",
		Long: `Check every value of a SQLite column against a rule.

The database is opened read-only. INTEGER cells are checked as integers,
TEXT and BLOB cells as strings. NULL cells are skipped unless --required
is set. Violations report the rowid as the record.

Examples:
  refined scan --db app.db --table users --column email --rule 'regex("^[^@]+@[^@]+$")'
  refined scan --db app.db --table users --column age --rule 'closed(0, 150)' --required`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Table, "table", "", "table to scan (required)")
	_ = cmd.MarkFlagRequired("table")
	cmd.Flags().StringVar(&opts.Column, "column", "", "column to check (required)")
	_ = cmd.MarkFlagRequired("column")
	cmd.Flags().StringVar(&opts.Rule, "rule", "", "rule expression (required)")
	_ = cmd.MarkFlagRequired("rule")
	cmd.Flags().BoolVar(&opts.Required, "required", false, "report NULL cells as violations")
	cmd.Flags().BoolVar(&opts.Metrics, "metrics", false, "print check counters")

	return cmd
}

func runScan(opts *ScanOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr()).With("trace_id", formatter.TraceID)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	rule, err := rules.Compile(opts.Rule)
	if err != nil {
		var re *rules.Error
		if errors.As(err, &re) {
			return outputCommandError(formatter, &LoadError{Code: re.Code, Message: fmt.Sprintf("%s: %s", opts.Rule, re.Message)})
		}
		return outputCommandError(formatter, err)
	}

	st, err := store.OpenSource(opts.Database, store.WithLogger(logger))
	if err != nil {
		return outputCommandError(formatter, &LoadError{Code: ErrCodeDatabase, Message: fmt.Sprintf("opening database: %v", err)})
	}
	defer st.Close()

	result := &ScanResult{
		Database:   opts.Database,
		Table:      opts.Table,
		Column:     opts.Column,
		Rule:       rule.String(),
		Violations: []rules.Violation{},
	}

	observe := func(string, rules.Outcome) {}
	if opts.Metrics {
		result.collector = metrics.NewCollector()
		observe = result.collector.Observe
	}

	field := rules.Field{Name: opts.Column, Rule: rule, Required: opts.Required}
	err = st.ReadColumn(ctx, opts.Table, opts.Column, func(rowid int64, v document.Value) error {
		result.Rows++
		if _, isNull := v.(document.Null); isNull {
			if field.Required {
				observe(field.Name, rules.OutcomeMissing)
				result.Violations = append(result.Violations, rules.Violation{
					Record: int(rowid), Field: field.Name, Outcome: rules.OutcomeMissing, Message: field.Name + " is required",
				})
			}
			return nil
		}
		if msg, ok := rules.CheckValue(field, v); !ok {
			observe(field.Name, rules.OutcomeFail)
			result.Violations = append(result.Violations, rules.Violation{
				Record: int(rowid), Field: field.Name, Outcome: rules.OutcomeFail, Message: msg,
			})
			return nil
		}
		observe(field.Name, rules.OutcomePass)
		return nil
	})
	if err != nil {
		return outputCommandError(formatter, &LoadError{Code: ErrCodeDatabase, Message: err.Error()})
	}
	result.Valid = len(result.Violations) == 0
	logger.Debug("column scanned", "table", opts.Table, "column", opts.Column, "rows", result.Rows, "violations", len(result.Violations))

	if result.collector != nil {
		result.collector.RunDone(time.Since(start))
		counts, err := result.collector.Counts()
		if err != nil {
			return outputCommandError(formatter, err)
		}
		result.Metrics = counts
	}

	return outputScan(formatter, result)
}

func outputScan(formatter *OutputFormatter, result *ScanResult) error {
	w := formatter.Writer
	if !result.Valid {
		msg := fmt.Sprintf("%d violation(s) in %d row(s)", len(result.Violations), result.Rows)
		if formatter.JSON() {
			if err := formatter.Failure(result, ErrCodeViolations, msg); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(w, "✗ %s of %s.%s\n\n", msg, result.Table, result.Column)
			for _, v := range result.Violations {
				fmt.Fprintf(w, "rowid %d: %s: %s\n", v.Record, v.Outcome, v.Message)
			}
			writeScanMetrics(formatter, result)
		}
		return NewExitError(ExitFailure, msg)
	}

	if formatter.JSON() {
		return formatter.Success(result)
	}
	fmt.Fprintf(w, "✓ %d row(s) of %s.%s valid\n", result.Rows, result.Table, result.Column)
	writeScanMetrics(formatter, result)
	return nil
}

func writeScanMetrics(formatter *OutputFormatter, result *ScanResult) {
	if result.collector == nil {
		return
	}
	fmt.Fprintln(formatter.Writer)
	_ = result.collector.WriteSummary(formatter.Writer)
}
