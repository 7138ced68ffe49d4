package core

import (
	"errors"
	"fmt"

	"github.com/inoxlang/rangeseq/internal/parse/position"
)

const (
	S_CANNOT_DIVIDE_BY_ZERO           = "Cannot divide by 0"
	S_EXPECTING_ONE_ARRAY             = "Expecting only one array for the left or right argument."
	S_NIL_TRANSFORM_FUNCTION          = "the transform function should not be nil"
	S_UNREACHABLE_RANGE_COMPARISON_OP = "unexpected operator in range comparison"
)

var (
	ErrIndexOutOfRange          = errors.New("index out of range")
	ErrInsertionIndexOutOfRange = errors.New("insertion index out of range")
	ErrNegativeOffset           = errors.New("negative offset")
	ErrDestinationTooSmall      = errors.New("destination is too small")
	ErrUnreachable              = errors.New("unreachable")

	//operators
	ErrUnsupportedOperand = errors.New("unsupported operand")
	ErrNegativeModifier   = errors.New("negative integer modifier")
	ErrIntDivisionByZero  = errors.New("integer division by zero")

	//conversion
	ErrIntConversion = errors.New("value cannot be converted to an integer")

	ErrNilTransformFunction = errors.New("nil transform function")
)

var _ = position.LocatedError((*RuntimeError)(nil))

func fmtExpectingArray(side string) string {
	return fmt.Sprintf("Expecting an array for the %s argument.", side)
}

func fmtNegativeModifier(n int) string {
	return fmt.Sprintf("Integer `%d` cannot be negative when multiplying.", n)
}

// RuntimeError is an error raised during the evaluation of a template, it is located at
// the span of the expression or operand that caused it.
type RuntimeError struct {
	error    //kind of the error, e.g. ErrNegativeModifier
	Message  string
	Location position.SourcePositionRange
}

func NewRuntimeError(kind error, location position.SourcePositionRange, msg string) *RuntimeError {
	return &RuntimeError{
		error:    kind,
		Message:  msg,
		Location: location,
	}
}

func (err *RuntimeError) Error() string {
	return err.Location.String() + " " + err.Message
}

func (err *RuntimeError) Unwrap() error {
	return err.error
}

func (err *RuntimeError) MessageWithoutLocation() string {
	return err.Message
}

func (err *RuntimeError) LocationRange() position.SourcePositionRange {
	return err.Location
}
