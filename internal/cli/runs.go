package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/refined/internal/store"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	Database string
	Limit    int
	Run      string // optional - show one run with its violations
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List runs recorded by check --record",
		Long: `List recorded check runs, newest first, or show one run with its
violations.

Examples:
  refined runs --db ./runs.db
  refined runs --db ./runs.db --limit 5
  refined runs --db ./runs.db --run 0190c2a4-...`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of runs to list (0 for all)")
	cmd.Flags().StringVar(&opts.Run, "run", "", "show a single run by id")

	return cmd
}

func runRuns(opts *RunsOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Open would create a missing run log
	if _, err := os.Stat(opts.Database); err != nil {
		return outputCommandError(formatter, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("run log not found: %s", opts.Database)})
	}

	st, err := store.Open(opts.Database, store.WithLogger(logger))
	if err != nil {
		return outputCommandError(formatter, &LoadError{Code: ErrCodeDatabase, Message: fmt.Sprintf("opening run log: %v", err)})
	}
	defer st.Close()

	if opts.Run != "" {
		run, err := st.ReadRun(ctx, opts.Run)
		if errors.Is(err, store.ErrRunNotFound) {
			return outputCommandError(formatter, &LoadError{Code: ErrCodeNotFound, Message: err.Error()})
		}
		if err != nil {
			return outputCommandError(formatter, &LoadError{Code: ErrCodeDatabase, Message: err.Error()})
		}
		return outputRun(formatter, run)
	}

	runs, err := st.ListRuns(ctx, opts.Limit)
	if err != nil {
		return outputCommandError(formatter, &LoadError{Code: ErrCodeDatabase, Message: err.Error()})
	}
	return outputRunList(formatter, runs)
}

func outputRunList(formatter *OutputFormatter, runs []store.RunSummary) error {
	if formatter.JSON() {
		return formatter.Success(runs)
	}

	w := formatter.Writer
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(w, "%4d  %s  %s against %s: %d record(s), %d violation(s)\n",
			r.Seq, r.ID.Get(), r.Source, r.Schema, r.Records, r.Violations)
	}
	return nil
}

func outputRun(formatter *OutputFormatter, run store.Run) error {
	if formatter.JSON() {
		return formatter.Success(run)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "Run %s (seq %d)\n", run.ID.Get(), run.Seq)
	fmt.Fprintf(w, "  source:  %s\n", run.Source)
	fmt.Fprintf(w, "  schema:  %s\n", run.Schema)
	fmt.Fprintf(w, "  records: %d\n", run.Records)
	if run.Digest != "" {
		fmt.Fprintf(w, "  digest:  %s\n", run.Digest)
	}
	if len(run.Violations) == 0 {
		fmt.Fprintln(w, "\nNo violations")
		return nil
	}
	fmt.Fprintf(w, "\n%d violation(s):\n", len(run.Violations))
	for _, v := range run.Violations {
		fmt.Fprintf(w, "  record %d: %s: %s\n", v.Record, v.Outcome, v.Message)
	}
	return nil
}
