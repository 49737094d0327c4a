// Command jsonselect runs the selection engine from the command line:
// select, mutate, batch, and scenario subcommands over stdin or files.
package main

import (
	"os"

	"github.com/jacoelho/jsonselect/internal/exit"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := NewRootCmd().Execute(); err != nil {
		result := exit.Errorf("%v\n", err)
		result.Print()
		return result.ExitCode
	}
	return 0
}
