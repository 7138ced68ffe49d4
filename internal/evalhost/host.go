// Package evalhost implements the collaborators the range values need from an evaluator: integer conversion,
// type names, truthiness and scalar binary operators.
package evalhost

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/inoxlang/rangeseq/internal/core"
	"github.com/inoxlang/rangeseq/internal/parse/position"
)

var _ = core.Host(Evaluator{})

const (
	NULL_TYPE_NAME   = "null"
	BOOL_TYPE_NAME   = "bool"
	INT_TYPE_NAME    = "int"
	FLOAT_TYPE_NAME  = "float"
	STRING_TYPE_NAME = "string"
	ARRAY_TYPE_NAME  = "array"
)

// Evaluator is a core.Host for the scalar values of the template language: nil, bools, Go numbers and strings.
type Evaluator struct{}

// NewContext returns a context whose host is an Evaluator.
func NewContext(config core.ContextConfig) (*core.Context, error) {
	config.Host = Evaluator{}
	return core.NewContext(config)
}

func (Evaluator) ToInt(span position.SourcePositionRange, v core.Value) (int, error) {
	switch val := v.(type) {
	case bool:
		if val {
			return 1, nil
		}
		return 0, nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(val))
		if err == nil {
			return i, nil
		}
	default:
		n, ok := asNumber(v)
		if !ok {
			break
		}
		if !n.isFloat {
			return n.i, nil
		}
		if n.isFinite() && n.f >= math.MinInt && n.f < math.MaxInt {
			return int(n.f), nil
		}
	}

	msg := fmt.Sprintf("Unable to convert `%s` to an integer", Evaluator{}.TypeName(v))
	return 0, core.NewRuntimeError(core.ErrIntConversion, span, msg)
}

func (Evaluator) TypeName(v core.Value) string {
	if namer, ok := v.(core.TypeNamer); ok {
		return namer.TypeName()
	}

	switch v.(type) {
	case nil:
		return NULL_TYPE_NAME
	case bool:
		return BOOL_TYPE_NAME
	case string:
		return STRING_TYPE_NAME
	case []core.Value, core.Iterable:
		return ARRAY_TYPE_NAME
	}

	if n, ok := asNumber(v); ok {
		if n.isFloat {
			return FLOAT_TYPE_NAME
		}
		return INT_TYPE_NAME
	}
	return fmt.Sprintf("%T", v)
}

// ToBool returns false for nil and false, true for any other value.
func (Evaluator) ToBool(span position.SourcePositionRange, v core.Value) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	}
	return true
}
