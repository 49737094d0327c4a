// Package jsonvalue implements the borrowed JSON tree the selection engine
// walks: a recursive sum of null, boolean, number, string, object, and array,
// decoded once from JSON text and then never copied by the engine.
//
// Object children preserve insertion order (JSONPath's "document order" for
// object members), backed by github.com/wk8/go-ordered-map/v2 rather than a
// hand-rolled ordered map.
package jsonvalue

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind is the tag of a Value's sum type.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Object is an insertion-ordered string-keyed map of values.
type Object = orderedmap.OrderedMap[string, *Value]

// Value is a single node of a borrowed JSON document. The engine selects
// *Value pointers into an existing tree; it never clones a Value to produce
// a result, and Go pointer identity is what the engine uses for the
// identity-based deduplication spec §4.A and §9 require.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	obj  *Object
	arr  []*Value
}

// Null returns a null value.
func Null() *Value { return &Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// Number returns a numeric value.
func Number(n float64) *Value { return &Value{kind: KindNumber, n: n} }

// String returns a string value.
func String(s string) *Value { return &Value{kind: KindString, s: s} }

// NewObject returns an empty object value.
func NewObject() *Value {
	return &Value{kind: KindObject, obj: orderedmap.New[string, *Value]()}
}

// NewArray returns an array value wrapping the given elements (not copied).
func NewArray(elems ...*Value) *Value {
	return &Value{kind: KindArray, arr: elems}
}

// Kind reports the value's type tag.
func (v *Value) Kind() Kind { return v.kind }

func (v *Value) IsNull() bool   { return v.kind == KindNull }
func (v *Value) IsObject() bool { return v.kind == KindObject }
func (v *Value) IsArray() bool  { return v.kind == KindArray }

// Bool returns the boolean payload; only meaningful when Kind() == KindBool.
func (v *Value) Bool() bool { return v.b }

// Number returns the numeric payload; only meaningful when Kind() == KindNumber.
func (v *Value) Number() float64 { return v.n }

// String returns the string payload; only meaningful when Kind() == KindString.
func (v *Value) String() string { return v.s }

// Object returns the backing ordered map; nil when Kind() != KindObject.
func (v *Value) Object() *Object { return v.obj }

// Array returns the backing element slice; nil when Kind() != KindArray.
func (v *Value) Array() []*Value { return v.arr }

// Get returns the child at key when v is an object containing it.
func (v *Value) Get(key string) (*Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj.Get(key)
}

// Has reports whether v is an object containing key.
func (v *Value) Has(key string) bool {
	if v.kind != KindObject {
		return false
	}
	_, ok := v.obj.Get(key)
	return ok
}

// Set inserts or overwrites a child on an object value, appending new keys
// at the end to preserve insertion order.
func (v *Value) Set(key string, child *Value) {
	v.obj.Set(key, child)
}

// Delete removes a child from an object value. A no-op if key is absent.
func (v *Value) Delete(key string) {
	v.obj.Delete(key)
}

// Len returns the number of children: object members, array elements, or
// zero for scalars.
func (v *Value) Len() int {
	switch v.kind {
	case KindObject:
		return v.obj.Len()
	case KindArray:
		return len(v.arr)
	default:
		return 0
	}
}

// Values returns the object's children in insertion order. Nil for non-objects.
func (v *Value) Values() []*Value {
	if v.kind != KindObject {
		return nil
	}
	out := make([]*Value, 0, v.obj.Len())
	for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Keys returns the object's member names in insertion order. Nil for non-objects.
func (v *Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	out := make([]string, 0, v.obj.Len())
	for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Index returns the array element at i, or nil if out of range.
func (v *Value) Index(i int) *Value {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return nil
	}
	return v.arr[i]
}

// Append adds an element to an array value.
func (v *Value) Append(child *Value) {
	v.arr = append(v.arr, child)
}

// SetElements replaces an array value's elements wholesale. Used by the
// mutating selector, which rebuilds an array once per pass rather than
// splicing it element by element.
func (v *Value) SetElements(elems []*Value) {
	v.arr = elems
}

// Equal reports deep structural equality, used by tests.
func (v *Value) Equal(other *Value) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil || v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.n == other.n
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i, e := range v.arr {
			if !e.Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.obj.Len() != other.obj.Len() {
			return false
		}
		for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
			ov, ok := other.obj.Get(pair.Key)
			if !ok || !pair.Value.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
