package core

import (
	"fmt"
	"iter"

	"github.com/inoxlang/rangeseq/internal/ast"
	"github.com/inoxlang/rangeseq/internal/parse/position"
)

// sequenceRequirement tells which operand(s) of a range operator should be sequence-like.
type sequenceRequirement int

const (
	bothSequences sequenceRequirement = iota + 1
	exactlyOneSequence
	leftSequence
	rightSequence
)

type rangeOperatorDescriptor struct {
	requirement sequenceRequirement

	//if true the operand that is not sequence-like is converted to an integer.
	intModifier bool

	//if true a modifier of 0 is a division by zero.
	divides bool
}

var rangeOperators = map[ast.BinaryOperator]rangeOperatorDescriptor{
	ast.BinaryOr:       {requirement: bothSequences},
	ast.BinaryAnd:      {requirement: bothSequences},
	ast.Add:            {requirement: bothSequences},
	ast.Equal:          {requirement: bothSequences},
	ast.NotEqual:       {requirement: bothSequences},
	ast.LessThan:       {requirement: bothSequences},
	ast.LessOrEqual:    {requirement: bothSequences},
	ast.GreaterThan:    {requirement: bothSequences},
	ast.GreaterOrEqual: {requirement: bothSequences},

	ast.Mul: {requirement: exactlyOneSequence, intModifier: true},

	ast.Div:      {requirement: leftSequence, intModifier: true, divides: true},
	ast.DivRound: {requirement: leftSequence, intModifier: true, divides: true},
	ast.Mod:      {requirement: leftSequence, intModifier: true, divides: true},

	ast.ShiftLeft:  {requirement: leftSequence},
	ast.ShiftRight: {requirement: rightSequence},
}

// IsRangeOperator returns true if op has range overloads.
func IsRangeOperator(op ast.BinaryOperator) bool {
	_, ok := rangeOperators[op]
	return ok
}

type operandSide int

const (
	noSide operandSide = iota
	leftSide
	rightSide
)

func (s operandSide) String() string {
	switch s {
	case leftSide:
		return "left"
	case rightSide:
		return "right"
	}
	return "(no side)"
}

// rangeOperation is the state of a single call to TryEvaluateRangeOperation.
type rangeOperation struct {
	op         ast.BinaryOperator
	descriptor rangeOperatorDescriptor

	span, leftSpan, rightSpan position.SourcePositionRange
	left, right               Value
	leftSeq, rightSeq         iter.Seq[Value]

	modifier     int
	modifierSide operandSide

	failureReason string
	blamedSide    operandSide //noSide if the whole expression is blamed
}

// checkOperands records the first unmet sequence requirement, a violation on the right side takes precedence.
func (o *rangeOperation) checkOperands() bool {
	switch o.descriptor.requirement {
	case bothSequences:
		if o.leftSeq == nil {
			o.fail(leftSide, fmtExpectingArray(leftSide.String()))
		}
		if o.rightSeq == nil {
			o.fail(rightSide, fmtExpectingArray(rightSide.String()))
		}
	case exactlyOneSequence:
		if (o.leftSeq == nil) == (o.rightSeq == nil) {
			o.fail(noSide, S_EXPECTING_ONE_ARRAY)
		} else if o.leftSeq == nil {
			o.modifierSide = leftSide
		} else {
			o.modifierSide = rightSide
		}
	case leftSequence:
		if o.leftSeq == nil {
			o.fail(leftSide, fmtExpectingArray(leftSide.String()))
		} else {
			o.modifierSide = rightSide
		}
	case rightSequence:
		if o.rightSeq == nil {
			o.fail(rightSide, fmtExpectingArray(rightSide.String()))
		}
	}

	if !o.descriptor.intModifier {
		o.modifierSide = noSide
	}
	return o.failureReason == ""
}

func (o *rangeOperation) fail(side operandSide, reason string) {
	o.blamedSide = side
	o.failureReason = reason
}

func (o *rangeOperation) operand(side operandSide) (Value, position.SourcePositionRange) {
	switch side {
	case leftSide:
		return o.left, o.leftSpan
	case rightSide:
		return o.right, o.rightSpan
	}
	panic(ErrUnreachable)
}

// blamedSpan returns the span an error about side should be attached to.
func blamedSpan(side operandSide, span, leftSpan, rightSpan position.SourcePositionRange) position.SourcePositionRange {
	switch side {
	case leftSide:
		return leftSpan
	case rightSide:
		return rightSpan
	}
	return span
}

func formatUnsupportedOperands(op ast.BinaryOperator, leftTypeName, rightTypeName, reason string) string {
	return fmt.Sprintf("The operator `%s` is not supported between `%s` and `%s`. %s", op, leftTypeName, rightTypeName, reason)
}

// TryEvaluateRangeOperation evaluates op if at least one of its overloads accepts sequence-like operands.
// If op has no such overload handled is false and the host should try other overloads.
// If op has range overloads but the operands do not satisfy them a *RuntimeError is returned.
func TryEvaluateRangeOperation(
	ctx *Context,
	span position.SourcePositionRange,
	op ast.BinaryOperator,
	leftSpan position.SourcePositionRange, left Value,
	rightSpan position.SourcePositionRange, right Value,
) (handled bool, result Value, err error) {

	descriptor, ok := rangeOperators[op]
	if !ok {
		return false, nil, nil
	}

	logger := ctx.NewChildLoggerForInternalSource(RANGE_OPERATORS_LOG_SRC)

	operation := &rangeOperation{
		op:         op,
		descriptor: descriptor,
		span:       span,
		leftSpan:   leftSpan,
		rightSpan:  rightSpan,
		left:       left,
		right:      right,
	}
	operation.leftSeq, _ = AsSequence(left)
	operation.rightSeq, _ = AsSequence(right)

	if !operation.checkOperands() {
		host := ctx.Host()
		location := blamedSpan(operation.blamedSide, span, leftSpan, rightSpan)
		msg := formatUnsupportedOperands(op, host.TypeName(left), host.TypeName(right), operation.failureReason)

		logger.Debug().Stringer("op", op).Str("reason", operation.failureReason).Msg("unsupported range operands")
		return true, nil, NewRuntimeError(ErrUnsupportedOperand, location, msg)
	}

	if operation.modifierSide != noSide {
		modifierValue, modifierSpan := operation.operand(operation.modifierSide)

		operation.modifier, err = ctx.Host().ToInt(modifierSpan, modifierValue)
		if err != nil {
			return true, nil, err
		}

		if operation.modifier < 0 {
			return true, nil, NewRuntimeError(ErrNegativeModifier, modifierSpan, fmtNegativeModifier(operation.modifier))
		}

		if operation.modifier == 0 && descriptor.divides {
			return true, nil, NewRuntimeError(ErrIntDivisionByZero, modifierSpan, S_CANNOT_DIVIDE_BY_ZERO)
		}
	}

	logger.Debug().Stringer("op", op).Int("modifier", operation.modifier).Msg("range operation")

	result, err = operation.apply(ctx)
	if err != nil {
		return true, nil, err
	}
	return true, result, nil
}

func (o *rangeOperation) apply(ctx *Context) (Value, error) {
	switch o.op {
	case ast.Equal, ast.NotEqual, ast.LessThan, ast.LessOrEqual, ast.GreaterThan, ast.GreaterOrEqual:
		ok, err := CompareRanges(ctx, o.span, o.op, o.leftSeq, o.rightSeq)
		if err != nil {
			return nil, err
		}
		return ok, nil
	case ast.Mul:
		if o.modifier == 0 {
			return NewEmptyScriptRange(), nil
		}
		seq := o.leftSeq
		if seq == nil {
			seq = o.rightSeq
		}
		return Multiply(seq, o.modifier), nil
	case ast.Div, ast.DivRound:
		return Divide(o.leftSeq, o.modifier), nil
	case ast.Mod:
		return Modulus(o.leftSeq, o.modifier), nil
	case ast.ShiftLeft:
		return ShiftLeft(o.leftSeq, o.right), nil
	case ast.ShiftRight:
		return ShiftRight(o.left, o.rightSeq), nil
	case ast.Add:
		return Concat(o.leftSeq, o.rightSeq), nil
	case ast.BinaryOr:
		return BinaryOr(o.leftSeq, o.rightSeq), nil
	case ast.BinaryAnd:
		return BinaryAnd(o.leftSeq, o.rightSeq), nil
	}
	panic(ErrUnreachable)
}
