package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/refined/internal/rules"
)

// RuleInfo describes a builtin or a compiled rule expression.
type RuleInfo struct {
	Rule    string `json:"rule"`
	Message string `json:"message,omitempty"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules [expression]",
		Short: "List builtin rules or explain a rule expression",
		Long: `Without arguments, list every builtin rule with its call syntax.

With an expression, compile it and print its canonical form and the
message a failing value would be reported with.

Examples:
  refined rules
  refined rules 'and(trimmed, closed(1, 64))'`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if len(args) == 0 {
				return outputBuiltins(formatter)
			}
			return outputExplain(formatter, args[0])
		},
	}

	return cmd
}

func outputBuiltins(formatter *OutputFormatter) error {
	infos := []RuleInfo{}
	for _, name := range rules.Builtins() {
		usage, _ := rules.Usage(name)
		infos = append(infos, RuleInfo{Rule: usage})
	}

	if formatter.JSON() {
		return formatter.Success(infos)
	}
	for _, info := range infos {
		fmt.Fprintln(formatter.Writer, info.Rule)
	}
	fmt.Fprintf(formatter.Writer, "\nrunes classes: %v\n", rules.RuneClasses())
	return nil
}

func outputExplain(formatter *OutputFormatter, src string) error {
	rule, err := rules.Compile(src)
	if err != nil {
		var re *rules.Error
		if errors.As(err, &re) {
			return outputValidationErrors(formatter, []ValidationError{{Code: re.Code, Message: re.Error()}})
		}
		return outputCommandError(formatter, err)
	}

	info := RuleInfo{Rule: rule.String(), Message: rule.Message()}
	if formatter.JSON() {
		return formatter.Success(info)
	}
	fmt.Fprintf(formatter.Writer, "%s\n  fails with: %s\n", info.Rule, info.Message)
	return nil
}
