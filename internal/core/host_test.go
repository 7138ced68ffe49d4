package core

import (
	"fmt"
	"iter"
	"testing"

	"github.com/inoxlang/rangeseq/internal/ast"
	"github.com/inoxlang/rangeseq/internal/parse/position"
	"github.com/stretchr/testify/require"
)

// testHost supports ints, equality between any values and routes sequence operands to the range operators.
type testHost struct{}

func (testHost) ToInt(span position.SourcePositionRange, v Value) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case float64:
		return int(val), nil
	}
	return 0, NewRuntimeError(ErrIntConversion, span, fmt.Sprintf("cannot convert `%v` to an integer", v))
}

func (testHost) TypeName(v Value) string {
	if namer, ok := v.(TypeNamer); ok {
		return namer.TypeName()
	}

	switch v.(type) {
	case nil:
		return "null"
	case int:
		return "int"
	case string:
		return "string"
	case []Value:
		return "array"
	}
	return fmt.Sprintf("%T", v)
}

func (testHost) ToBool(span position.SourcePositionRange, v Value) bool {
	b, ok := v.(bool)
	return ok && b
}

func (testHost) EvalBinary(ctx *Context, span position.SourcePositionRange, op ast.BinaryOperator, left, right Value) (Value, error) {
	_, isLeftSeq := AsSequence(left)
	_, isRightSeq := AsSequence(right)

	if isLeftSeq || isRightSeq {
		if handled, result, err := TryEvaluateRangeOperation(ctx, span, op, span, left, span, right); handled {
			return result, err
		}
	}

	switch op {
	case ast.Equal:
		return ValuesEqual(left, right), nil
	case ast.NotEqual:
		return !ValuesEqual(left, right), nil
	}

	l, isLeftInt := left.(int)
	r, isRightInt := right.(int)
	if !isLeftInt || !isRightInt {
		return nil, NewRuntimeError(ErrUnsupportedOperand, span, "unsupported operands")
	}

	switch op {
	case ast.LessThan:
		return l < r, nil
	case ast.LessOrEqual:
		return l <= r, nil
	case ast.GreaterThan:
		return l > r, nil
	case ast.GreaterOrEqual:
		return l >= r, nil
	}
	return nil, NewRuntimeError(ErrUnsupportedOperand, span, "unsupported operator")
}

func newTestContext(t *testing.T) *Context {
	ctx, err := NewContext(ContextConfig{Host: testHost{}})
	require.NoError(t, err)
	return ctx
}

func spanAt(column int32) position.SourcePositionRange {
	return position.SourcePositionRange{
		SourceName:  "/test.tpl",
		StartLine:   1,
		StartColumn: column,
		EndLine:     1,
		EndColumn:   column + 1,
		Span:        position.NodeSpan{Start: column - 1, End: column},
	}
}

// elementsOf returns the elements of seq, the result is never nil.
func elementsOf(seq iter.Seq[Value]) []Value {
	elements := []Value{}
	for e := range seq {
		elements = append(elements, e)
	}
	return elements
}

// countingProducer counts the number of elements pulled by the consumers.
func countingProducer(pulled *int, values ...Value) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range values {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}
