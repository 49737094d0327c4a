package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jacoelho/jsonselect/pkg/scenario"
)

func newScenarioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario <fixture.yaml>",
		Short: "Run a YAML fixture of selection cases against the engine and report pass/fail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, args[0])
		},
	}
	return cmd
}

func runScenario(cmd *cobra.Command, fixturePath string) error {
	f, err := os.Open(fixturePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", fixturePath, err)
	}
	defer f.Close()

	cases, err := scenario.Load(f)
	if err != nil {
		return fmt.Errorf("load %s: %w", fixturePath, err)
	}

	outcomes := scenario.Run(cases)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
	failures := 0
	for _, o := range outcomes {
		status := "ok"
		detail := ""
		switch {
		case o.Err != nil:
			status = "error"
			detail = o.Err.Error()
			failures++
		case !o.Pass:
			status = "fail"
			detail = fmt.Sprintf("got %v, want %v", o.Got, o.Case.Expect)
			failures++
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", status, o.Case.Name, detail)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d cases failed", failures, len(outcomes))
	}
	return nil
}
