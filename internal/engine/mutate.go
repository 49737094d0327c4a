package engine

import (
	"github.com/jacoelho/jsonselect/internal/jsonvalue"
	"github.com/jacoelho/jsonselect/internal/parser"
)

// Replace rewrites every value a Path selects in place, calling fn once per
// match to produce its replacement, and returns how many matches were
// rewritten. It runs in two passes (spec.md §4.E): first Select borrows the
// document to collect the target pointer identities, then a second,
// parent-aware walk performs the edits once that first pass has released
// its hold on the tree — so fn is free to build replacement values however
// it likes without the engine having to reconcile in-place mutation with
// a traversal still in progress.
func Replace(root *jsonvalue.Value, path *parser.Path, fn func(*jsonvalue.Value) *jsonvalue.Value) (*jsonvalue.Value, int, error) {
	if len(path.Tokens()) == 0 {
		return root, 0, ErrEmptyPath()
	}
	if root == nil {
		return root, 0, ErrEmptyValue()
	}

	targets := targetSet(Select(root, path))
	if len(targets) == 0 {
		return root, 0, nil
	}

	if _, ok := targets[root]; ok {
		return fn(root), 1, nil
	}

	m := &mutator{targets: targets, replace: fn}
	m.walk(root)
	return root, m.count, nil
}

// Remove deletes every value a Path selects from its parent object or
// array, returning how many matches were removed. The document root
// itself can never be removed, since it has no parent to edit.
func Remove(root *jsonvalue.Value, path *parser.Path) (int, error) {
	if len(path.Tokens()) == 0 {
		return 0, ErrEmptyPath()
	}
	if root == nil {
		return 0, ErrEmptyValue()
	}

	targets := targetSet(Select(root, path))
	if len(targets) == 0 {
		return 0, nil
	}
	if _, ok := targets[root]; ok {
		return 0, ErrPath("cannot remove the document root")
	}

	m := &mutator{targets: targets, remove: true}
	m.walk(root)
	return m.count, nil
}

func targetSet(values []*jsonvalue.Value) map[*jsonvalue.Value]struct{} {
	set := make(map[*jsonvalue.Value]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// mutator performs the second pass: a parent-aware preorder walk that edits
// an object or array as soon as it finds one of its direct children among
// the targets, and never recurses into a matched child's own subtree (it
// is being replaced or removed wholesale).
type mutator struct {
	targets map[*jsonvalue.Value]struct{}
	replace func(*jsonvalue.Value) *jsonvalue.Value
	remove  bool
	count   int
}

func (m *mutator) walk(v *jsonvalue.Value) {
	switch v.Kind() {
	case jsonvalue.KindObject:
		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			if _, ok := m.targets[child]; ok {
				m.count++
				if m.remove {
					v.Delete(key)
				} else {
					v.Set(key, m.replace(child))
				}
				continue
			}
			m.walk(child)
		}

	case jsonvalue.KindArray:
		arr := v.Array()
		out := make([]*jsonvalue.Value, 0, len(arr))
		changed := false
		for _, child := range arr {
			if _, ok := m.targets[child]; ok {
				changed = true
				m.count++
				if m.remove {
					continue
				}
				out = append(out, m.replace(child))
				continue
			}
			m.walk(child)
			out = append(out, child)
		}
		if changed {
			v.SetElements(out)
		}
	}
}
