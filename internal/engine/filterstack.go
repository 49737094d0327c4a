package engine

import (
	"github.com/jacoelho/jsonselect/internal/jsonvalue"
	"github.com/jacoelho/jsonselect/internal/parser"
	"github.com/jacoelho/jsonselect/internal/stack"
)

// evalFilterExpr evaluates the postfix token range toks[start:end) — a
// single `?( ... )` body with its leading context marker already consumed
// by the caller — against one candidate value, returning the resulting
// term. It never looks outside [start, end): operand paths recurse through
// runSteps, which stops as soon as it meets a token that isn't a further
// step (spec.md §4.B, §4.C).
//
// The expression's operand/operator stack is a fresh internal/stack.Stack
// per call — one None-sentinel's worth of scope, naturally reset between
// filters and candidates since each evaluation gets its own instance.
func evalFilterExpr(prog []parser.Token, start, end int, root, candidate *jsonvalue.Value) term {
	operands := stack.New[term]()
	pop := func() term {
		t, ok := operands.Pop()
		if !ok {
			panic("jsonselect: filter expression operator with missing operand")
		}
		return t
	}

	pos := start
	for pos < end {
		tok := &prog[pos]
		switch tok.Kind {
		case parser.Relative:
			pos++
			values, next := runSteps(prog, pos, []*jsonvalue.Value{candidate}, root, true)
			pos = next
			operands.Push(sliceTerm(values))
		case parser.Absolute:
			pos++
			values, next := runSteps(prog, pos, []*jsonvalue.Value{root}, root, true)
			pos = next
			operands.Push(sliceTerm(values))
		case parser.Number:
			operands.Push(numberTerm(tok.Number))
			pos++
		case parser.Bool:
			operands.Push(boolTerm(tok.Bool))
			pos++
		case parser.Key:
			operands.Push(stringTerm(tok.Key))
			pos++
		case parser.Filter:
			rhs := pop()
			lhs := pop()
			operands.Push(compare(lhs, rhs, tok.Op))
			pos++
		default:
			panic("jsonselect: unexpected token in filter expression")
		}
	}

	result, ok := operands.Pop()
	if !ok || operands.Size() != 0 {
		panic("jsonselect: filter expression did not reduce to a single value")
	}
	return result
}
