package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jacoelho/jsonselect/pkg/jsonpath"
)

// readDocument decodes a single JSON document from file, or from cmd's
// stdin when file is empty.
func readDocument(cmd *cobra.Command, file string) (*jsonpath.Value, error) {
	if file == "" {
		return jsonpath.Decode(cmd.InOrStdin())
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return jsonpath.Decode(f)
}
