package engine

import "github.com/jacoelho/jsonselect/internal/jsonvalue"

// The collect* functions implement a `..` (recursive-descent) step: they
// search the full subtree under every value in current. The next* functions
// implement a `.`/bracket (child) step: they look only at current's direct
// children. Both families are pure functions of (current, key-or-index);
// none of them touch the filter-term stack themselves (spec.md §4.A, §4.C).
var wk = walker{}

// collectAll implements a bare `..*` / `..` descendant wildcard.
func collectAll(current []*jsonvalue.Value) []*jsonvalue.Value {
	return wk.all(current)
}

// collectAllWithStr implements `..name`: every descendant object's name
// child, including a seed that is itself such an object.
func collectAllWithStr(current []*jsonvalue.Value, key string) []*jsonvalue.Value {
	return wk.allWithStr(current, key, true)
}

// collectAllWithNum implements `..[n]`: the nth element of every descendant
// array, including arrays among current itself.
func collectAllWithNum(current []*jsonvalue.Value, index int) []*jsonvalue.Value {
	return wk.allWithNum(current, index)
}

// collectNextAll implements `.*`/`[*]`: current's direct children only.
func collectNextAll(current []*jsonvalue.Value) []*jsonvalue.Value {
	var out []*jsonvalue.Value
	for _, v := range current {
		switch v.Kind() {
		case jsonvalue.KindObject:
			out = append(out, v.Values()...)
		case jsonvalue.KindArray:
			out = append(out, v.Array()...)
		}
	}
	return out
}

// collectNextWithStr implements `.name`/`['name']`: the direct name child
// of every object in current.
func collectNextWithStr(current []*jsonvalue.Value, key string) []*jsonvalue.Value {
	var out []*jsonvalue.Value
	for _, v := range current {
		if child, ok := v.Get(key); ok {
			out = append(out, child)
		}
	}
	return out
}

// collectNextWithNum implements `[n]`: the nth element of every array in
// current.
func collectNextWithNum(current []*jsonvalue.Value, index int) []*jsonvalue.Value {
	var out []*jsonvalue.Value
	for _, v := range current {
		if v.Kind() != jsonvalue.KindArray {
			continue
		}
		arr := v.Array()
		if idx := absIndex(index, len(arr)); idx < len(arr) {
			out = append(out, arr[idx])
		}
	}
	return out
}

// filterNextWithStr implements a filter operand's direct-child name lookup:
// an object in current contributes its key child directly; an array in
// current contributes the key child of every object reachable through a
// chain of nested arrays, deduplicated by identity.
func filterNextWithStr(current []*jsonvalue.Value, key string) []*jsonvalue.Value {
	var out []*jsonvalue.Value
	visited := make(map[*jsonvalue.Value]struct{})
	for _, v := range current {
		switch v.Kind() {
		case jsonvalue.KindObject:
			if child, ok := v.Get(key); ok {
				out = append(out, child)
			}
		case jsonvalue.KindArray:
			for _, el := range v.Array() {
				wk.walkDedup(el, &out, key, visited)
			}
		}
	}
	return out
}
