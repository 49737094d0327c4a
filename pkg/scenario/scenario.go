// Package scenario loads and runs a YAML fixture file of JSONPath
// regression cases, in the teacher's own test-fixture idiom
// (internal/rq/yaml wrapped goccy/go-yaml around a step's on-disk
// representation; here the on-disk representation is a selection case
// instead of an HTTP step).
package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/jsonselect/pkg/jsonpath"
)

// Case is one fixture entry: a document, a path to run against it, and the
// ordered values the path is expected to select.
type Case struct {
	Name     string `yaml:"name"`
	Document string `yaml:"document"`
	Path     string `yaml:"path"`
	Expect   []any  `yaml:"expect"`
}

// Load decodes a YAML fixture file into its cases. A fixture file is a
// top-level YAML sequence of Case entries.
func Load(r io.Reader) ([]Case, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read scenario fixture: %w", err)
	}

	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("decode scenario fixture: %w", err)
	}
	return cases, nil
}

// Outcome is one case's result after running it against the engine.
type Outcome struct {
	Case Case
	Got  []any
	Pass bool
	Err  error
}

// Run executes every case and reports whether its selection matched Expect.
// A case whose document or path fails to parse is recorded with Err set and
// Pass false rather than aborting the remaining cases.
func Run(cases []Case) []Outcome {
	outcomes := make([]Outcome, len(cases))
	for i, c := range cases {
		outcomes[i] = runCase(c)
	}
	return outcomes
}

func runCase(c Case) Outcome {
	doc, err := jsonpath.Parse([]byte(c.Document))
	if err != nil {
		return Outcome{Case: c, Err: fmt.Errorf("case %q: parse document: %w", c.Name, err)}
	}

	path, err := jsonpath.Compile(c.Path)
	if err != nil {
		return Outcome{Case: c, Err: fmt.Errorf("case %q: compile path %q: %w", c.Name, c.Path, err)}
	}

	values, err := jsonpath.Select(doc, path)
	if err != nil {
		return Outcome{Case: c, Err: fmt.Errorf("case %q: select: %w", c.Name, err)}
	}

	got, err := toAnySlice(values)
	if err != nil {
		return Outcome{Case: c, Err: fmt.Errorf("case %q: render selection: %w", c.Name, err)}
	}

	return Outcome{Case: c, Got: got, Pass: reflect.DeepEqual(got, normalizeExpect(c.Expect))}
}

// toAnySlice renders a selection through the same JSON encoding a caller
// would use to compare results, so Expect's plain Go literals (float64,
// string, bool, nil, map[string]any, []any) line up with what Select found.
func toAnySlice(values []*jsonpath.Value) ([]any, error) {
	b, err := jsonpath.MarshalSlice(values)
	if err != nil {
		return nil, err
	}
	var out []any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// normalizeExpect round-trips Expect through encoding/json so a fixture's
// YAML-decoded ints and the engine's JSON-decoded float64s compare equal.
func normalizeExpect(expect []any) []any {
	b, err := json.Marshal(expect)
	if err != nil {
		return expect
	}
	var out []any
	if err := json.Unmarshal(b, &out); err != nil {
		return expect
	}
	return out
}
