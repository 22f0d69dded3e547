// Command refined checks JSON and YAML records, or SQLite columns, against
// refinement rules.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/refined/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()

	// Commands print their own errors; flag and usage errors are printed here
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.GetExitCode(err))
}
