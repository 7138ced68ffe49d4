package core

import (
	"bytes"
	"errors"
	"testing"

	"github.com/inoxlang/rangeseq/internal/ast"
	"github.com/inoxlang/rangeseq/internal/parse/position"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	exprSpan  = spanAt(1)
	leftSpan  = spanAt(2)
	rightSpan = spanAt(10)
)

func evalRangeOp(t *testing.T, op ast.BinaryOperator, left, right Value) (bool, Value, error) {
	ctx := newTestContext(t)
	return TryEvaluateRangeOperation(ctx, exprSpan, op, leftSpan, left, rightSpan, right)
}

func mustEvalRangeOp(t *testing.T, op ast.BinaryOperator, left, right Value) Value {
	handled, result, err := evalRangeOp(t, op, left, right)
	require.True(t, handled)
	require.NoError(t, err)
	return result
}

func requireRuntimeError(t *testing.T, err error, kind error, location position.SourcePositionRange) *RuntimeError {
	var runtimeErr *RuntimeError
	require.True(t, errors.As(err, &runtimeErr), "%v", err)
	assert.ErrorIs(t, err, kind)
	assert.Equal(t, location, runtimeErr.LocationRange())
	return runtimeErr
}

func TestTryEvaluateRangeOperation(t *testing.T) {
	t.Parallel()

	oneToThree := func() *ScriptRange { return NewIntRange(1, 3, true) }

	t.Run("end to end", func(t *testing.T) {
		sum := mustEvalRangeOp(t, ast.Add, NewIntRange(1, 3, true), NewIntRange(4, 5, true))
		assert.Equal(t, []Value{1, 2, 3, 4, 5}, elementsOf(sum.(*ScriptRange).All()))

		product := mustEvalRangeOp(t, ast.Mul, NewIntRange(1, 3, true), 2)
		assert.Equal(t, []Value{1, 2, 3, 1, 2, 3}, elementsOf(product.(*ScriptRange).All()))
	})

	t.Run("operators", func(t *testing.T) {
		testCases := []struct {
			name        string
			op          ast.BinaryOperator
			left, right Value
			expected    []Value
		}{
			{"union", ast.BinaryOr, NewScriptRangeFromValues(1, 2, 2), []Value{2, 3}, []Value{1, 2, 3}},
			{"intersection", ast.BinaryAnd, oneToThree(), []Value{3, 2, 7}, []Value{2, 3}},
			{"concatenation", ast.Add, []Value{"a"}, oneToThree(), []Value{"a", 1, 2, 3}},
			{"sequence * count", ast.Mul, oneToThree(), 2, []Value{1, 2, 3, 1, 2, 3}},
			{"count * sequence", ast.Mul, 2, oneToThree(), []Value{1, 2, 3, 1, 2, 3}},
			{"float count", ast.Mul, []Value{"a"}, 2.9, []Value{"a", "a"}},
			{"multiply by zero", ast.Mul, oneToThree(), 0, []Value{}},
			{"divide", ast.Div, NewScriptRangeFromValues("a", "b", "c", "d"), 1, []Value{"a", "b"}},
			{"rounding divide", ast.DivRound, NewScriptRangeFromValues("a", "b", "c", "d"), 2, []Value{"a", "b", "c"}},
			{"modulus", ast.Mod, NewScriptRangeFromValues("a", "b", "c", "d", "e"), 2, []Value{"a", "c", "e"}},
			{"shift left", ast.ShiftLeft, oneToThree(), 4, []Value{1, 2, 3, 4}},
			{"shift left with a sequence", ast.ShiftLeft, []Value{1}, []Value{2}, []Value{1, []Value{2}}},
			{"shift right", ast.ShiftRight, 0, oneToThree(), []Value{0, 1, 2, 3}},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				result := mustEvalRangeOp(t, testCase.op, testCase.left, testCase.right)
				r, ok := result.(*ScriptRange)
				require.True(t, ok)
				assert.False(t, r.IsMaterialized())
				assert.Equal(t, testCase.expected, elementsOf(r.All()))
			})
		}
	})

	t.Run("multiplying by zero does not pull the sequence", func(t *testing.T) {
		pulled := 0
		seq := NewScriptRange(countingProducer(&pulled, 1, 2))

		result := mustEvalRangeOp(t, ast.Mul, seq, 0)
		assert.Equal(t, 0, result.(*ScriptRange).Len())
		assert.Zero(t, pulled)
	})

	t.Run("comparisons", func(t *testing.T) {
		result := mustEvalRangeOp(t, ast.LessThan, []Value{1, 2}, oneToThree())
		assert.Equal(t, true, result)

		result = mustEvalRangeOp(t, ast.Equal, []Value{1, 3}, []Value{1, 2})
		assert.Equal(t, false, result)
	})

	t.Run("operator without range overloads", func(t *testing.T) {
		for _, op := range []ast.BinaryOperator{ast.Sub, ast.Power, ast.And, ast.Range, ast.EmptyCoalescing} {
			handled, result, err := evalRangeOp(t, op, oneToThree(), oneToThree())
			assert.False(t, handled, op.String())
			assert.Nil(t, result)
			assert.NoError(t, err)
			assert.False(t, IsRangeOperator(op))
		}
	})

	t.Run("right operand is not a sequence", func(t *testing.T) {
		handled, _, err := evalRangeOp(t, ast.BinaryAnd, oneToThree(), 5)
		assert.True(t, handled)

		runtimeErr := requireRuntimeError(t, err, ErrUnsupportedOperand, rightSpan)
		assert.Equal(t,
			"The operator `&` is not supported between `range` and `int`. Expecting an array for the right argument.",
			runtimeErr.MessageWithoutLocation())
		assert.Equal(t, rightSpan.String()+" "+runtimeErr.Message, err.Error())
	})

	t.Run("left operand is not a sequence", func(t *testing.T) {
		for _, op := range []ast.BinaryOperator{ast.Add, ast.Div, ast.Mod, ast.ShiftLeft, ast.LessOrEqual} {
			_, _, err := evalRangeOp(t, op, "abc", []Value{1})
			runtimeErr := requireRuntimeError(t, err, ErrUnsupportedOperand, leftSpan)
			assert.Contains(t, runtimeErr.Message, "between `string` and `array`. Expecting an array for the left argument.")
		}
	})

	t.Run("shift right requires a right sequence", func(t *testing.T) {
		_, _, err := evalRangeOp(t, ast.ShiftRight, []Value{1}, 2)
		requireRuntimeError(t, err, ErrUnsupportedOperand, rightSpan)
	})

	t.Run("neither operand is a sequence", func(t *testing.T) {
		_, _, err := evalRangeOp(t, ast.BinaryOr, 1, nil)
		runtimeErr := requireRuntimeError(t, err, ErrUnsupportedOperand, rightSpan)
		assert.Equal(t,
			"The operator `|` is not supported between `int` and `null`. Expecting an array for the right argument.",
			runtimeErr.Message)
	})

	t.Run("multiplication needs exactly one sequence", func(t *testing.T) {
		_, _, err := evalRangeOp(t, ast.Mul, oneToThree(), []Value{2})
		runtimeErr := requireRuntimeError(t, err, ErrUnsupportedOperand, exprSpan)
		assert.Equal(t,
			"The operator `*` is not supported between `range` and `array`. Expecting only one array for the left or right argument.",
			runtimeErr.Message)

		_, _, err = evalRangeOp(t, ast.Mul, 2, 3)
		requireRuntimeError(t, err, ErrUnsupportedOperand, exprSpan)
	})

	t.Run("negative modifier", func(t *testing.T) {
		_, _, err := evalRangeOp(t, ast.Mul, oneToThree(), -1)
		runtimeErr := requireRuntimeError(t, err, ErrNegativeModifier, rightSpan)
		assert.Equal(t, "Integer `-1` cannot be negative when multiplying.", runtimeErr.Message)

		_, _, err = evalRangeOp(t, ast.Mul, -2, oneToThree())
		requireRuntimeError(t, err, ErrNegativeModifier, leftSpan)

		for _, op := range []ast.BinaryOperator{ast.Div, ast.DivRound, ast.Mod} {
			_, _, err = evalRangeOp(t, op, oneToThree(), -3)
			runtimeErr := requireRuntimeError(t, err, ErrNegativeModifier, rightSpan)
			assert.Equal(t, "Integer `-3` cannot be negative when multiplying.", runtimeErr.Message)
		}
	})

	t.Run("division by zero", func(t *testing.T) {
		for _, op := range []ast.BinaryOperator{ast.Div, ast.DivRound, ast.Mod} {
			_, _, err := evalRangeOp(t, op, oneToThree(), 0)
			runtimeErr := requireRuntimeError(t, err, ErrIntDivisionByZero, rightSpan)
			assert.Equal(t, "Cannot divide by 0", runtimeErr.Message)
		}
	})

	t.Run("conversion failure is propagated", func(t *testing.T) {
		_, _, err := evalRangeOp(t, ast.Mul, oneToThree(), "x")
		requireRuntimeError(t, err, ErrIntConversion, rightSpan)

		_, _, err = evalRangeOp(t, ast.Mod, oneToThree(), "x")
		requireRuntimeError(t, err, ErrIntConversion, rightSpan)
	})

	t.Run("operands are not materialized", func(t *testing.T) {
		left := oneToThree()
		right := oneToThree()
		mustEvalRangeOp(t, ast.BinaryOr, left, right)
		mustEvalRangeOp(t, ast.GreaterThan, left, right)

		assert.False(t, left.IsMaterialized())
		assert.False(t, right.IsMaterialized())
	})
}

func TestBlamedSpan(t *testing.T) {
	t.Parallel()

	assert.Equal(t, leftSpan, blamedSpan(leftSide, exprSpan, leftSpan, rightSpan))
	assert.Equal(t, rightSpan, blamedSpan(rightSide, exprSpan, leftSpan, rightSpan))
	assert.Equal(t, exprSpan, blamedSpan(noSide, exprSpan, leftSpan, rightSpan))
}

func TestFormatUnsupportedOperands(t *testing.T) {
	t.Parallel()

	msg := formatUnsupportedOperands(ast.ShiftLeft, "int", "range", fmtExpectingArray("left"))
	assert.Equal(t, "The operator `<<` is not supported between `int` and `range`. Expecting an array for the left argument.", msg)
}

func TestRangeOperatorsLogging(t *testing.T) {
	t.Parallel()

	buf := bytes.NewBuffer(nil)
	logger := zerolog.New(buf)

	t.Run("internal debug logs enabled", func(t *testing.T) {
		buf.Reset()
		ctx, err := NewContext(ContextConfig{
			Host:      testHost{},
			Logger:    &logger,
			LogLevels: NewLogLevels(zerolog.DebugLevel, nil, true),
		})
		require.NoError(t, err)

		_, _, err = TryEvaluateRangeOperation(ctx, exprSpan, ast.Add, leftSpan, []Value{1}, rightSpan, []Value{2})
		require.NoError(t, err)

		assert.Contains(t, buf.String(), `"src":"range-operators"`)
		assert.Contains(t, buf.String(), `"op":"+"`)
		assert.Contains(t, buf.String(), `"lvl":"debug"`)
	})

	t.Run("internal debug logs disabled", func(t *testing.T) {
		buf.Reset()
		ctx, err := NewContext(ContextConfig{
			Host:   testHost{},
			Logger: &logger,
		})
		require.NoError(t, err)

		_, _, err = TryEvaluateRangeOperation(ctx, exprSpan, ast.Add, leftSpan, []Value{1}, rightSpan, []Value{2})
		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestNewContext(t *testing.T) {
	t.Parallel()

	_, err := NewContext(ContextConfig{})
	assert.ErrorIs(t, err, ErrMissingHost)

	ctx, err := NewContext(ContextConfig{Host: testHost{}})
	require.NoError(t, err)
	assert.NoError(t, ctx.Err())
	assert.Equal(t, testHost{}, ctx.Host())

	buf := bytes.NewBuffer(nil)
	logger := zerolog.New(buf)
	ctx, err = NewContext(ContextConfig{Host: testHost{}, Logger: &logger})
	require.NoError(t, err)

	contextLogger := ctx.Logger()
	contextLogger.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}
