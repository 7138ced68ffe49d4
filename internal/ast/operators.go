package ast

// BinaryOperator is a binary operator of the template language.
type BinaryOperator int

const (
	Add BinaryOperator = iota
	Sub
	Mul
	Div
	DivRound
	Mod
	Power
	ShiftLeft
	ShiftRight
	BinaryAnd
	BinaryOr
	Equal
	NotEqual
	LessThan
	LessOrEqual
	GreaterThan
	GreaterOrEqual
	And
	Or
	Range
	ExclEndRange
	EmptyCoalescing
)

var BINARY_OPERATOR_STRINGS = [...]string{
	Add:             "+",
	Sub:             "-",
	Mul:             "*",
	Div:             "/",
	DivRound:        "//",
	Mod:             "%",
	Power:           "^",
	ShiftLeft:       "<<",
	ShiftRight:      ">>",
	BinaryAnd:       "&",
	BinaryOr:        "|",
	Equal:           "==",
	NotEqual:        "!=",
	LessThan:        "<",
	LessOrEqual:     "<=",
	GreaterThan:     ">",
	GreaterOrEqual:  ">=",
	And:             "&&",
	Or:              "||",
	Range:           "..",
	ExclEndRange:    "..<",
	EmptyCoalescing: "??",
}

func (operator BinaryOperator) String() string {
	if operator < 0 || int(operator) >= len(BINARY_OPERATOR_STRINGS) {
		return "(unknown operator)"
	}
	return BINARY_OPERATOR_STRINGS[int(operator)]
}

// IsComparison returns true for ==, !=, <, <=, > and >=.
func (operator BinaryOperator) IsComparison() bool {
	switch operator {
	case Equal, NotEqual, LessThan, LessOrEqual, GreaterThan, GreaterOrEqual:
		return true
	}
	return false
}
