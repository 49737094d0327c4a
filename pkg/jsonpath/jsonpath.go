// Package jsonpath is the public façade over internal/engine and
// internal/parser: compile a path once, then run it against any number of
// documents. It owns no state of its own beyond the compiled Path — the
// engine is stateless and safe to call from multiple goroutines against
// distinct documents (never the same mutable document concurrently).
package jsonpath

import (
	"io"

	"github.com/jacoelho/jsonselect/internal/engine"
	"github.com/jacoelho/jsonselect/internal/jsonvalue"
	"github.com/jacoelho/jsonselect/internal/parser"
)

// Value is the borrowed JSON tree Select and MutSelector operate over.
type Value = jsonvalue.Value

// Kind tags a Value's underlying JSON type.
type Kind = jsonvalue.Kind

const (
	KindNull   = jsonvalue.KindNull
	KindBool   = jsonvalue.KindBool
	KindNumber = jsonvalue.KindNumber
	KindString = jsonvalue.KindString
	KindObject = jsonvalue.KindObject
	KindArray  = jsonvalue.KindArray
)

// Constructors re-exported from internal/jsonvalue so callers outside this
// module can build replacement values for MutSelector.Replace.
var (
	Null      = jsonvalue.Null
	Bool      = jsonvalue.Bool
	Number    = jsonvalue.Number
	String    = jsonvalue.String
	NewObject = jsonvalue.NewObject
	NewArray  = jsonvalue.NewArray
)

// Path is a compiled JSONPath expression, reusable across documents.
type Path struct {
	inner *parser.Path
}

// Compile parses a JSONPath string into a reusable Path.
func Compile(path string) (*Path, error) {
	p, err := parser.Compile(path)
	if err != nil {
		return nil, engine.ErrPath("%s", err.Error())
	}
	return &Path{inner: p}, nil
}

// MustCompile is like Compile but panics on error; for tests and constants.
func MustCompile(path string) *Path {
	return &Path{inner: parser.MustCompile(path)}
}

// String returns the path's original text.
func (p *Path) String() string { return p.inner.Raw }

// Select runs path against doc and returns the ordered, identity-
// deduplicated values it names.
func Select(doc *Value, path *Path) ([]*Value, error) {
	if path == nil || len(path.inner.Tokens()) == 0 {
		return nil, engine.ErrEmptyPath()
	}
	if doc == nil {
		return nil, engine.ErrEmptyValue()
	}
	return engine.Select(doc, path.inner), nil
}

// Selector binds a compiled Path to one document for repeated selection —
// useful when a caller re-runs the same path (e.g. one scenario case) many
// times without re-parsing it.
type Selector struct {
	doc  *Value
	path *Path
}

// NewSelector binds path to doc.
func NewSelector(doc *Value, path *Path) *Selector {
	return &Selector{doc: doc, path: path}
}

// Select re-runs the bound path against the bound document.
func (s *Selector) Select() ([]*Value, error) {
	return Select(s.doc, s.path)
}

// MutSelector binds a compiled Path to one document for in-place rewrite or
// removal of the values it selects (spec.md §4.E, §6).
type MutSelector struct {
	doc  *Value
	path *Path
}

// NewMutSelector binds path to doc for mutation.
func NewMutSelector(doc *Value, path *Path) *MutSelector {
	return &MutSelector{doc: doc, path: path}
}

// Replace rewrites every selected value via fn and returns the (possibly
// new, if the document root itself was selected) document and how many
// values were rewritten.
func (m *MutSelector) Replace(fn func(*Value) *Value) (*Value, int, error) {
	if m.path == nil || len(m.path.inner.Tokens()) == 0 {
		return m.doc, 0, engine.ErrEmptyPath()
	}
	if m.doc == nil {
		return m.doc, 0, engine.ErrEmptyValue()
	}
	doc, n, err := engine.Replace(m.doc, m.path.inner, fn)
	m.doc = doc
	return doc, n, err
}

// Remove deletes every selected value from its parent and returns how many
// were removed.
func (m *MutSelector) Remove() (int, error) {
	if m.path == nil || len(m.path.inner.Tokens()) == 0 {
		return 0, engine.ErrEmptyPath()
	}
	if m.doc == nil {
		return 0, engine.ErrEmptyValue()
	}
	return engine.Remove(m.doc, m.path.inner)
}

// Decode reads exactly one JSON document from r.
func Decode(r io.Reader) (*Value, error) {
	v, err := jsonvalue.Decode(r)
	if err != nil {
		return nil, engine.ErrSerde("%s", err.Error())
	}
	return v, nil
}

// Parse decodes data as a single JSON document.
func Parse(data []byte) (*Value, error) {
	v, err := jsonvalue.Parse(data)
	if err != nil {
		return nil, engine.ErrSerde("%s", err.Error())
	}
	return v, nil
}

// Encode writes v as JSON text, preserving object member order.
func Encode(w io.Writer, v *Value) error {
	if err := jsonvalue.Encode(w, v); err != nil {
		return engine.ErrSerde("%s", err.Error())
	}
	return nil
}

// MarshalSlice serializes an ordered selection result as a JSON array.
func MarshalSlice(values []*Value) ([]byte, error) {
	b, err := jsonvalue.MarshalSlice(values)
	if err != nil {
		return nil, engine.ErrSerde("%s", err.Error())
	}
	return b, nil
}

// Error is the four-kind error type every exported function returns
// (spec.md §7): EmptyPath, EmptyValue, Path(message) or Serde(message).
type Error = engine.Error

// ErrorKind tags an Error's case.
type ErrorKind = engine.ErrorKind

const (
	KindEmptyPath  = engine.KindEmptyPath
	KindEmptyValue = engine.KindEmptyValue
	KindPath       = engine.KindPath
	KindSerde      = engine.KindSerde
)
