package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the jsonselect CLI: a thin cobra shell over
// pkg/jsonpath, pkg/batch, and pkg/scenario.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jsonselect",
		Short:         "Select, mutate, batch-evaluate, and test JSONPath expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newSelectCmd())
	cmd.AddCommand(newMutateCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newScenarioCmd())

	return cmd
}
