package engine

import (
	"github.com/jacoelho/jsonselect/internal/jsonvalue"
	"github.com/jacoelho/jsonselect/internal/parser"
)

// Select runs a compiled Path against root and returns the ordered,
// identity-deduplicated set of values it names (spec.md §4.D, §6). The
// returned values are borrowed from root; nothing is copied or mutated.
func Select(root *jsonvalue.Value, path *parser.Path) []*jsonvalue.Value {
	toks := path.Tokens()
	if len(toks) == 0 {
		return nil
	}

	current := []*jsonvalue.Value{root}
	pos := 0
	switch toks[pos].Kind {
	case parser.Absolute, parser.Relative:
		pos++
	}

	current, _ = runSteps(toks, pos, current, root, false)
	return dedup(current)
}

// dedup preserves first-seen order while removing values already present by
// pointer identity — the engine's only notion of "the same selected value"
// (spec.md §4.A, §9).
func dedup(values []*jsonvalue.Value) []*jsonvalue.Value {
	if len(values) < 2 {
		return values
	}
	seen := make(map[*jsonvalue.Value]struct{}, len(values))
	out := make([]*jsonvalue.Value, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// runSteps consumes a run of In/Leaves/Array step tokens starting at pos,
// threading current through each, and returns as soon as it meets a token
// that isn't a further step — which is exactly where an operand inside a
// filter expression ends, since every operand's path is immediately
// followed by another operand or a Filter token (spec.md §6).
func runSteps(toks []parser.Token, pos int, current []*jsonvalue.Value, root *jsonvalue.Value, inFilter bool) ([]*jsonvalue.Value, int) {
	for pos < len(toks) {
		switch toks[pos].Kind {
		case parser.In:
			pos++
			switch toks[pos].Kind {
			case parser.All:
				current = collectNextAll(current)
				pos++
			case parser.Key:
				current = childStr(current, toks[pos].Key, inFilter)
				pos++
			default:
				panic("jsonselect: malformed child step in compiled path")
			}
		case parser.Leaves:
			pos++
			switch toks[pos].Kind {
			case parser.All:
				current = collectAll(current)
				pos++
			case parser.Key:
				current = collectAllWithStr(current, toks[pos].Key)
				pos++
			case parser.Array:
				current, pos = runBracket(toks, pos, current, root, true, inFilter)
			default:
				panic("jsonselect: malformed descendant step in compiled path")
			}
		case parser.Array:
			current, pos = runBracket(toks, pos, current, root, false, inFilter)
		default:
			return current, pos
		}
	}
	return current, pos
}

// childStr picks collectNextWithStr or filterNextWithStr depending on
// whether this child-name step lives inside a filter expression: filter
// operands additionally flatten through arrays of objects (spec.md §4.C).
func childStr(current []*jsonvalue.Value, key string, inFilter bool) []*jsonvalue.Value {
	if inFilter {
		return filterNextWithStr(current, key)
	}
	return collectNextWithStr(current, key)
}

// runBracket consumes one Array ... ArrayEof step. toks[pos] is the Array
// token; deep reports whether it was immediately preceded by a Leaves
// token (the `..[...]` form), which selects the descendant collectors
// instead of the direct-child ones. For a filter bracket (`[?(...)]`), deep
// additionally expands current to every descendant before the filter test
// runs, so `$..[?(...)]` tests all descendants rather than only the
// immediate current set.
func runBracket(toks []parser.Token, pos int, current []*jsonvalue.Value, root *jsonvalue.Value, deep, inFilter bool) ([]*jsonvalue.Value, int) {
	pos++ // past Array

	var result []*jsonvalue.Value
	switch toks[pos].Kind {
	case parser.All:
		pos++
		if deep {
			result = collectAll(current)
		} else {
			result = collectNextAll(current)
		}

	case parser.Key:
		key := toks[pos].Key
		pos++
		if deep {
			result = collectAllWithStr(current, key)
		} else {
			result = childStr(current, key, inFilter)
		}

	case parser.Keys:
		if inFilter {
			panic("jsonselect: a name union is not supported inside a filter expression")
		}
		keys := toks[pos].Keys
		pos++
		for _, key := range keys {
			if deep {
				result = append(result, collectAllWithStr(current, key)...)
			} else {
				result = append(result, collectNextWithStr(current, key)...)
			}
		}

	case parser.Number:
		n := int(toks[pos].Number)
		pos++
		if deep {
			result = collectAllWithNum(current, n)
		} else {
			result = collectNextWithNum(current, n)
		}

	case parser.Union:
		if inFilter {
			panic("jsonselect: an index union is not supported inside a filter expression")
		}
		indices := toks[pos].Union
		pos++
		for _, n := range indices {
			if deep {
				result = append(result, collectAllWithNum(current, n)...)
			} else {
				result = append(result, collectNextWithNum(current, n)...)
			}
		}

	case parser.Range:
		if inFilter {
			panic("jsonselect: a range is not supported inside a filter expression")
		}
		result = runRange(current, toks[pos])
		pos++

	case parser.Relative:
		pos++ // past the filter's context marker
		filterEnd := matchArrayEof(toks, pos)
		candidates := current
		if deep {
			candidates = collectAll(current)
		}
		for _, candidate := range flattenForFilter(candidates) {
			t := evalFilterExpr(toks, pos, filterEnd, root, candidate)
			if t.truthy() {
				result = append(result, candidate)
			}
		}
		pos = filterEnd

	default:
		panic("jsonselect: malformed bracket step in compiled path")
	}

	if toks[pos].Kind != parser.ArrayEof {
		panic("jsonselect: bracket step did not end at ']'")
	}
	pos++
	return result, pos
}

// runRange implements a `[from:to:step]` slice over every array in current,
// using Python-slice clamping semantics throughout (spec.md §4.A absIndex).
func runRange(current []*jsonvalue.Value, tok parser.Token) []*jsonvalue.Value {
	var out []*jsonvalue.Value
	step := 1
	if tok.Step != nil {
		step = *tok.Step
	}
	if step == 0 {
		step = 1
	}

	for _, v := range current {
		if v.Kind() != jsonvalue.KindArray {
			continue
		}
		arr := v.Array()
		n := len(arr)

		from := 0
		if tok.From != nil {
			from = absIndex(*tok.From, n)
		}
		to := n
		if tok.To != nil {
			to = absIndex(*tok.To, n)
		}

		if step > 0 {
			for i := from; i < to; i += step {
				out = append(out, arr[i])
			}
		} else {
			for i := from; i > to; i += step {
				if i >= 0 && i < n {
					out = append(out, arr[i])
				}
			}
		}
	}
	return out
}

// flattenForFilter reduces current to the candidates a `[?( ... )]` tests:
// the elements of each array in current, or the value itself for anything
// that isn't an array (so filtering a single object still works).
func flattenForFilter(current []*jsonvalue.Value) []*jsonvalue.Value {
	var out []*jsonvalue.Value
	for _, v := range current {
		if v.Kind() == jsonvalue.KindArray {
			out = append(out, v.Array()...)
		} else {
			out = append(out, v)
		}
	}
	return out
}

// matchArrayEof scans forward from pos (the first token of a bracket's
// content) and returns the index of the ArrayEof that closes it, skipping
// over any nested Array...ArrayEof pairs.
func matchArrayEof(toks []parser.Token, pos int) int {
	depth := 0
	for i := pos; i < len(toks); i++ {
		switch toks[i].Kind {
		case parser.Array:
			depth++
		case parser.ArrayEof:
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	panic("jsonselect: unterminated '[' in compiled path")
}
