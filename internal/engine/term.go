package engine

import (
	"github.com/jacoelho/jsonselect/internal/jsonvalue"
	"github.com/jacoelho/jsonselect/internal/parser"
)

// termKind tags the payload a filter operand or intermediate result holds.
type termKind uint8

const (
	termSlice termKind = iota
	termNumber
	termString
	termBool
	// termOpaque tags a slice element whose jsonvalue.Kind is object, array,
	// or null: not itself comparable, but still a value "itself" per spec.md
	// §4.B rule 2, so it must still take part in an existential comparison
	// (as a pair that never matches scalarCompare's number/string/bool
	// cases, falling through to its kind-mismatch default) rather than being
	// silently dropped from the slice.
	termOpaque
)

// term is one operand or intermediate result of a filter expression
// (spec.md §4.B). A path operand (`@...`, `$...`) always evaluates to a
// termSlice; literals evaluate to the scalar kinds.
type term struct {
	kind termKind

	values []*jsonvalue.Value // termSlice
	num    float64            // termNumber
	str    string             // termString
	boolv  bool               // termBool
}

func sliceTerm(values []*jsonvalue.Value) term { return term{kind: termSlice, values: values} }
func numberTerm(n float64) term                { return term{kind: termNumber, num: n} }
func stringTerm(s string) term                 { return term{kind: termString, str: s} }
func boolTerm(b bool) term                     { return term{kind: termBool, boolv: b} }

// truthy reports whether a term counts as "present" for a bare (non-
// comparison) filter operand: a non-empty slice, or a true boolean.
func (t term) truthy() bool {
	switch t.kind {
	case termSlice:
		return len(t.values) > 0
	case termBool:
		return t.boolv
	default:
		return false
	}
}

// compare applies op to lhs and rhs, producing a boolean term (spec.md §4.B
// rules 1-5). JsonSlice operands (of any cardinality) use existential
// semantics: the comparison is true when some scalar projected out of lhs
// satisfies op against some scalar projected out of rhs (rule 2 reduces to
// this with a single right-hand scalar, rule 3 is the general case).
// A kind mismatch on a given pair is simply not-equal rather than an
// error — a filter comparison can never fail the whole selection. An empty
// operand (e.g. a missing key) contributes no pairs at all, so it never
// satisfies any op, != included — there is nothing to retain existentially.
func compare(lhs, rhs term, op parser.FilterOp) term {
	switch op {
	case parser.OpAnd:
		return boolTerm(lhs.truthy() && rhs.truthy())
	case parser.OpOr:
		return boolTerm(lhs.truthy() || rhs.truthy())
	}

	for _, a := range scalarsOf(lhs) {
		for _, b := range scalarsOf(rhs) {
			if scalarCompare(a, b, op) {
				return boolTerm(true)
			}
		}
	}
	return boolTerm(false)
}

// scalarsOf flattens a term into the terms it projects for comparison: a
// termSlice contributes one term per element (number/string/bool verbatim,
// anything else as termOpaque), and a scalar term contributes itself.
func scalarsOf(t term) []term {
	if t.kind != termSlice {
		return []term{t}
	}
	out := make([]term, 0, len(t.values))
	for _, v := range t.values {
		switch v.Kind() {
		case jsonvalue.KindNumber:
			out = append(out, numberTerm(v.Number()))
		case jsonvalue.KindString:
			out = append(out, stringTerm(v.String()))
		case jsonvalue.KindBool:
			out = append(out, boolTerm(v.Bool()))
		default:
			out = append(out, term{kind: termOpaque})
		}
	}
	return out
}

// scalarCompare applies op to a single pair of scalar terms.
func scalarCompare(a, b term, op parser.FilterOp) bool {
	switch {
	case a.kind == termNumber && b.kind == termNumber:
		return numCompare(a.num, b.num, op)
	case a.kind == termBool && b.kind == termBool:
		return boolCompare(a.boolv, b.boolv, op)
	case a.kind == termString && b.kind == termString:
		return stringCompare(a.str, b.str, op)
	default:
		return op == parser.OpNotEqual
	}
}

func numCompare(a, b float64, op parser.FilterOp) bool {
	switch op {
	case parser.OpEqual:
		return a == b
	case parser.OpNotEqual:
		return a != b
	case parser.OpLess:
		return a < b
	case parser.OpLessEqual:
		return a <= b
	case parser.OpGreater:
		return a > b
	case parser.OpGreaterEqual:
		return a >= b
	default:
		return false
	}
}

func boolCompare(a, b bool, op parser.FilterOp) bool {
	switch op {
	case parser.OpEqual:
		return a == b
	case parser.OpNotEqual:
		return a != b
	default:
		return false // ordering comparisons on booleans are never true
	}
}

func stringCompare(a, b string, op parser.FilterOp) bool {
	switch op {
	case parser.OpEqual:
		return a == b
	case parser.OpNotEqual:
		return a != b
	case parser.OpLess:
		return a < b
	case parser.OpLessEqual:
		return a <= b
	case parser.OpGreater:
		return a > b
	case parser.OpGreaterEqual:
		return a >= b
	default:
		return false
	}
}
