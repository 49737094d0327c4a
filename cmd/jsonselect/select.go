package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacoelho/jsonselect/pkg/jsonpath"
)

func newSelectCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "select <path>",
		Short: "Select the values a JSONPath expression names in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, args[0], file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the document from this file instead of stdin")

	return cmd
}

func runSelect(cmd *cobra.Command, pathExpr, file string) error {
	doc, err := readDocument(cmd, file)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	path, err := jsonpath.Compile(pathExpr)
	if err != nil {
		return err
	}

	values, err := jsonpath.Select(doc, path)
	if err != nil {
		return err
	}

	b, err := jsonpath.MarshalSlice(values)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
