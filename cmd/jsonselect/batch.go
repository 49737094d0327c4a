package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/spf13/cobra"

	"github.com/jacoelho/jsonselect/pkg/batch"
	"github.com/jacoelho/jsonselect/pkg/jsonpath"
)

func newBatchCmd() *cobra.Command {
	var file string
	var workers int
	var rate float64

	cmd := &cobra.Command{
		Use:   "batch <path>",
		Short: "Evaluate a JSONPath expression against a newline-delimited stream of JSON documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args[0], file, workers, rate)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read documents from this file instead of stdin (one JSON document per line)")
	cmd.Flags().IntVar(&workers, "workers", 1, "number of documents evaluated concurrently")
	cmd.Flags().Float64Var(&rate, "rate", 0, "maximum documents evaluated per second (0 = unlimited)")

	return cmd
}

func runBatch(cmd *cobra.Command, pathExpr, file string, workers int, rate float64) error {
	path, err := jsonpath.Compile(pathExpr)
	if err != nil {
		return err
	}

	r := cmd.InOrStdin()
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("open %s: %w", file, err)
		}
		defer f.Close()
		r = f
	}

	docs, err := jsonLines(r)
	if err != nil {
		return err
	}

	opts := batch.Options{Workers: workers, DocumentsPerSecond: rate}
	for res, err := range batch.Run(cmd.Context(), path, docs, opts) {
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "document %d: %v\n", res.Index, err)
			continue
		}
		b, err := jsonpath.MarshalSlice(res.Values)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", res.Index, string(b))
	}
	return nil
}

// jsonLines reads r fully and returns an iterator over its non-blank lines,
// each decoded as one JSON document. Collecting up front (rather than
// streaming line-by-line) keeps the iterator free of the underlying
// bufio.Scanner's own error state, which batch.Run has no way to surface
// mid-sequence.
func jsonLines(r io.Reader) (iter.Seq[*jsonpath.Value], error) {
	var docs []*jsonpath.Value

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		doc, err := jsonpath.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("parse document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}

	return func(yield func(*jsonpath.Value) bool) {
		for _, doc := range docs {
			if !yield(doc) {
				return
			}
		}
	}, nil
}
