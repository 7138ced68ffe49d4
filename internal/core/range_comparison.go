package core

import (
	"fmt"
	"iter"

	"github.com/inoxlang/rangeseq/internal/ast"
	"github.com/inoxlang/rangeseq/internal/parse/position"
	"github.com/inoxlang/rangeseq/internal/utils"
)

// CompareRanges compares two sequences: the lengths are compared first, if they are equal
// the elements are compared pairwise with the operator of the host and the first false
// comparison makes the result false.
func CompareRanges(ctx *Context, span position.SourcePositionRange, op ast.BinaryOperator, left, right iter.Seq[Value]) (bool, error) {
	leftLen := countElements(left)
	rightLen := countElements(right)
	cmp := utils.Sign(leftLen - rightLen)

	switch op {
	case ast.Equal:
		if cmp != 0 {
			return false, nil
		}
	case ast.NotEqual:
		if cmp != 0 {
			return true, nil
		}
		if leftLen == 0 {
			return false, nil
		}
	case ast.LessThan, ast.LessOrEqual:
		if cmp < 0 {
			return true, nil
		}
		if cmp > 0 {
			return false, nil
		}
		if leftLen == 0 && op == ast.LessThan {
			return false, nil
		}
	case ast.GreaterThan, ast.GreaterOrEqual:
		if cmp < 0 {
			return false, nil
		}
		if cmp > 0 {
			return true, nil
		}
		if leftLen == 0 && op == ast.GreaterThan {
			return false, nil
		}
	default:
		msg := fmt.Sprintf("%s: `%s`", S_UNREACHABLE_RANGE_COMPARISON_OP, op)
		return false, NewRuntimeError(ErrUnreachable, span, msg)
	}

	nextLeft, stopLeft := iter.Pull(left)
	defer stopLeft()
	nextRight, stopRight := iter.Pull(right)
	defer stopRight()

	host := ctx.Host()

	for {
		leftElem, ok := nextLeft()
		if !ok {
			break
		}
		rightElem, ok := nextRight()
		if !ok {
			break
		}

		result, err := host.EvalBinary(ctx, span, op, leftElem, rightElem)
		if err != nil {
			return false, err
		}
		if !host.ToBool(span, result) {
			return false, nil
		}
	}

	return true, nil
}
