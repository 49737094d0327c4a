package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacoelho/jsonselect/pkg/jsonpath"
)

func newMutateCmd() *cobra.Command {
	var file, replaceWith string
	var remove bool

	cmd := &cobra.Command{
		Use:   "mutate <path>",
		Short: "Replace or remove the values a JSONPath expression selects, printing the rewritten document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMutate(cmd, args[0], file, replaceWith, remove)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the document from this file instead of stdin")
	cmd.Flags().StringVar(&replaceWith, "replace", "", "JSON literal every selected value is replaced with")
	cmd.Flags().BoolVar(&remove, "remove", false, "remove every selected value instead of replacing it")
	cmd.MarkFlagsMutuallyExclusive("replace", "remove")

	return cmd
}

func runMutate(cmd *cobra.Command, pathExpr, file, replaceWith string, remove bool) error {
	doc, err := readDocument(cmd, file)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	path, err := jsonpath.Compile(pathExpr)
	if err != nil {
		return err
	}

	switch {
	case remove:
		if _, err := jsonpath.NewMutSelector(doc, path).Remove(); err != nil {
			return err
		}
	case replaceWith != "":
		replacement, err := jsonpath.Parse([]byte(replaceWith))
		if err != nil {
			return fmt.Errorf("parse --replace value: %w", err)
		}
		newDoc, _, err := jsonpath.NewMutSelector(doc, path).Replace(func(*jsonpath.Value) *jsonpath.Value {
			return replacement
		})
		if err != nil {
			return err
		}
		doc = newDoc
	default:
		return fmt.Errorf("mutate requires either --replace or --remove")
	}

	if err := jsonpath.Encode(cmd.OutOrStdout(), doc); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
