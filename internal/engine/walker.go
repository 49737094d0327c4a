// Package engine is the selection engine of internal/parser-compiled
// JSONPath programs: a small tree-walking interpreter over a borrowed
// jsonvalue.Value document (spec.md §2). Selection never serializes, never
// validates path syntax, and never mutates the document it walks; Replace
// and Remove (mutate.go) are the only functions that edit it.
package engine

import "github.com/jacoelho/jsonselect/internal/jsonvalue"

// absIndex clamps a (possibly negative) JSONPath index to [0, length],
// Python-slice style: negative indices count from the end, and anything
// past either boundary is clamped rather than wrapped or erroring.
func absIndex(n, length int) int {
	if n < 0 {
		if r := n + length; r > 0 {
			return r
		}
		return 0
	}
	if n > length {
		return length
	}
	return n
}

// walker holds the three primitive descendant-search traversals used by the
// filter-term stack's collectors (spec.md §4.A). Identity-based dedup uses
// Go pointer equality directly — jsonvalue.Value pointers are already a
// stable node identity, so no arena or node-id scheme is needed here.
type walker struct{}

// all returns every descendant of every seed, preorder, including the seeds
// themselves, siblings in object-insertion order then array order.
func (walker) all(seed []*jsonvalue.Value) []*jsonvalue.Value {
	out := make([]*jsonvalue.Value, 0, len(seed))
	var walk func(v *jsonvalue.Value)
	walk = func(v *jsonvalue.Value) {
		out = append(out, v)
		switch v.Kind() {
		case jsonvalue.KindObject:
			for _, child := range v.Values() {
				walk(child)
			}
		case jsonvalue.KindArray:
			for _, child := range v.Array() {
				walk(child)
			}
		}
	}
	for _, s := range seed {
		walk(s)
	}
	return out
}

// allWithStr returns every descendant whose parent is an object containing
// key, specifically the values at that key. allowSelfMatch controls whether
// a seed that is itself an object with key contributes its own key-child as
// well as its descendants' (collectAllWithStr always passes true; see
// DESIGN.md OQ-2 for why the parameter still exists as a named, documented
// choice rather than being inlined away).
func (walker) allWithStr(seed []*jsonvalue.Value, key string, allowSelfMatch bool) []*jsonvalue.Value {
	var out []*jsonvalue.Value
	var walk func(v *jsonvalue.Value, isSeed bool)
	walk = func(v *jsonvalue.Value, isSeed bool) {
		switch v.Kind() {
		case jsonvalue.KindObject:
			if !isSeed || allowSelfMatch {
				if child, ok := v.Get(key); ok {
					out = append(out, child)
				}
			}
			for _, child := range v.Values() {
				walk(child, false)
			}
		case jsonvalue.KindArray:
			for _, child := range v.Array() {
				walk(child, false)
			}
		}
	}
	for _, s := range seed {
		walk(s, true)
	}
	return out
}

// allWithNum returns, for every descendant array (including seed arrays),
// the element at absIndex(index, len); arrays too short to have that
// element contribute nothing. An empty result signals "no change" to the
// caller (spec.md §4.C collect_all_with_num).
func (walker) allWithNum(seed []*jsonvalue.Value, index int) []*jsonvalue.Value {
	var out []*jsonvalue.Value
	var walk func(v *jsonvalue.Value)
	walk = func(v *jsonvalue.Value) {
		switch v.Kind() {
		case jsonvalue.KindArray:
			arr := v.Array()
			if idx := absIndex(index, len(arr)); idx < len(arr) {
				out = append(out, arr[idx])
			}
			for _, child := range arr {
				walk(child)
			}
		case jsonvalue.KindObject:
			for _, child := range v.Values() {
				walk(child)
			}
		}
	}
	for _, s := range seed {
		walk(s)
	}
	return out
}

// walkDedup appends to out, exactly once per pointer identity, the value at
// key for every object reachable from v through a chain of arrays — used by
// filter_next_with_str when a filter candidate is itself an array (spec.md
// §4.C). It never descends into an object's own properties.
func (walker) walkDedup(v *jsonvalue.Value, out *[]*jsonvalue.Value, key string, visited map[*jsonvalue.Value]struct{}) {
	switch v.Kind() {
	case jsonvalue.KindObject:
		if child, ok := v.Get(key); ok {
			if _, seen := visited[v]; !seen {
				visited[v] = struct{}{}
				*out = append(*out, child)
			}
		}
	case jsonvalue.KindArray:
		for _, child := range v.Array() {
			walker{}.walkDedup(child, out, key, visited)
		}
	}
}
