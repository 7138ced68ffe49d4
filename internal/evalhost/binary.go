package evalhost

import (
	"fmt"
	"math"
	"strings"

	"github.com/inoxlang/rangeseq/internal/ast"
	"github.com/inoxlang/rangeseq/internal/core"
	"github.com/inoxlang/rangeseq/internal/parse/position"
)

// EvalBinary evaluates a binary operation whose operands have no location of their own (e.g. sequence elements).
func (e Evaluator) EvalBinary(ctx *core.Context, span position.SourcePositionRange, op ast.BinaryOperator, left, right core.Value) (core.Value, error) {
	return e.EvalBinaryAt(ctx, span, op, span, left, span, right)
}

// EvalBinaryAt evaluates a binary operation: the range overloads are tried first if one of the operands is
// sequence-like, then the scalar operators.
func (e Evaluator) EvalBinaryAt(
	ctx *core.Context,
	span position.SourcePositionRange,
	op ast.BinaryOperator,
	leftSpan position.SourcePositionRange, left core.Value,
	rightSpan position.SourcePositionRange, right core.Value,
) (core.Value, error) {

	_, isLeftSequence := core.AsSequence(left)
	_, isRightSequence := core.AsSequence(right)

	if isLeftSequence || isRightSequence {
		handled, result, err := core.TryEvaluateRangeOperation(ctx, span, op, leftSpan, left, rightSpan, right)
		if handled {
			return result, err
		}
	}

	switch op {
	case ast.Range, ast.ExclEndRange:
		start, err := e.ToInt(leftSpan, left)
		if err != nil {
			return nil, err
		}
		end, err := e.ToInt(rightSpan, right)
		if err != nil {
			return nil, err
		}
		return core.NewIntRange(start, end, op == ast.Range), nil
	case ast.And:
		return e.ToBool(leftSpan, left) && e.ToBool(rightSpan, right), nil
	case ast.Or:
		return e.ToBool(leftSpan, left) || e.ToBool(rightSpan, right), nil
	case ast.EmptyCoalescing:
		if left != nil {
			return left, nil
		}
		return right, nil
	case ast.Equal:
		return scalarsEqual(left, right), nil
	case ast.NotEqual:
		return !scalarsEqual(left, right), nil
	case ast.LessThan, ast.LessOrEqual, ast.GreaterThan, ast.GreaterOrEqual:
		cmp, ok := compareScalars(left, right)
		if !ok {
			break
		}
		switch op {
		case ast.LessThan:
			return cmp < 0, nil
		case ast.LessOrEqual:
			return cmp <= 0, nil
		case ast.GreaterThan:
			return cmp > 0, nil
		default:
			return cmp >= 0, nil
		}
	case ast.Add:
		leftStr, isLeftStr := left.(string)
		rightStr, isRightStr := right.(string)
		if isLeftStr || isRightStr {
			if !isLeftStr {
				leftStr = stringify(left)
			}
			if !isRightStr {
				rightStr = stringify(right)
			}
			return leftStr + rightStr, nil
		}
	}

	leftNumber, isLeftNumber := asNumber(left)
	rightNumber, isRightNumber := asNumber(right)

	if isLeftNumber && isRightNumber {
		result, ok, err := evalArithmeticBinaryExpression(op, leftNumber, rightNumber, rightSpan)
		if ok {
			return result, err
		}
	}

	msg := fmt.Sprintf("The operator `%s` is not supported between `%s` and `%s`.", op, e.TypeName(left), e.TypeName(right))
	return nil, core.NewRuntimeError(core.ErrUnsupportedOperand, span, msg)
}

// evalArithmeticBinaryExpression returns ok=false if op is not an arithmetic or bitwise operator.
func evalArithmeticBinaryExpression(op ast.BinaryOperator, left, right number, rightSpan position.SourcePositionRange) (result core.Value, ok bool, err error) {
	divisionByZero := func() (core.Value, bool, error) {
		return nil, true, core.NewRuntimeError(core.ErrIntDivisionByZero, rightSpan, core.S_CANNOT_DIVIDE_BY_ZERO)
	}

	if !left.isFloat && !right.isFloat {
		l, r := left.i, right.i

		switch op {
		case ast.Add:
			return l + r, true, nil
		case ast.Sub:
			return l - r, true, nil
		case ast.Mul:
			return l * r, true, nil
		case ast.DivRound:
			if r == 0 {
				return divisionByZero()
			}
			return l / r, true, nil
		case ast.Mod:
			if r == 0 {
				return divisionByZero()
			}
			return l % r, true, nil
		case ast.ShiftLeft:
			if r < 0 {
				break
			}
			return l << r, true, nil
		case ast.ShiftRight:
			if r < 0 {
				break
			}
			return l >> r, true, nil
		case ast.BinaryAnd:
			return l & r, true, nil
		case ast.BinaryOr:
			return l | r, true, nil
		}
	}

	l, r := left.float(), right.float()

	switch op {
	case ast.Add:
		return l + r, true, nil
	case ast.Sub:
		return l - r, true, nil
	case ast.Mul:
		return l * r, true, nil
	case ast.Div:
		if r == 0 {
			return divisionByZero()
		}
		return l / r, true, nil
	case ast.DivRound:
		if r == 0 {
			return divisionByZero()
		}
		return math.Floor(l / r), true, nil
	case ast.Mod:
		if r == 0 {
			return divisionByZero()
		}
		return math.Mod(l, r), true, nil
	case ast.Power:
		return math.Pow(l, r), true, nil
	}
	return nil, false, nil
}

// scalarsEqual compares numbers by value regardless of their Go types, other values with core.ValuesEqual.
func scalarsEqual(left, right core.Value) bool {
	leftNumber, isLeftNumber := asNumber(left)
	rightNumber, isRightNumber := asNumber(right)
	if isLeftNumber && isRightNumber {
		return compareNumbers(leftNumber, rightNumber) == 0 && leftNumber.isFinite() && rightNumber.isFinite()
	}
	return core.ValuesEqual(left, right)
}

func compareScalars(left, right core.Value) (int, bool) {
	leftNumber, isLeftNumber := asNumber(left)
	rightNumber, isRightNumber := asNumber(right)
	if isLeftNumber && isRightNumber {
		if !leftNumber.isFinite() || !rightNumber.isFinite() {
			return 0, false
		}
		return compareNumbers(leftNumber, rightNumber), true
	}

	switch l := left.(type) {
	case string:
		if r, ok := right.(string); ok {
			return strings.Compare(l, r), true
		}
	case bool:
		if r, ok := right.(bool); ok {
			return compareOrdered(boolToInt(l), boolToInt(r)), true
		}
	}
	return 0, false
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func stringify(v core.Value) string {
	if v == nil {
		return ""
	}
	if n, ok := asNumber(v); ok {
		return fmt.Sprint(n.value())
	}
	return fmt.Sprint(v)
}
