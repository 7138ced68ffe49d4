package evalhost

import (
	"math"

	"github.com/inoxlang/rangeseq/internal/core"
	"golang.org/x/exp/constraints"
)

// number is an int or a float64 obtained from any Go numeric type.
type number struct {
	i       int
	f       float64
	isFloat bool
}

func intNumber[T constraints.Integer](n T) number {
	return number{i: int(n)}
}

func floatNumber[T constraints.Float](n T) number {
	return number{f: float64(n), isFloat: true}
}

func asNumber(v core.Value) (number, bool) {
	switch n := v.(type) {
	case int:
		return intNumber(n), true
	case int8:
		return intNumber(n), true
	case int16:
		return intNumber(n), true
	case int32:
		return intNumber(n), true
	case int64:
		return intNumber(n), true
	case uint8:
		return intNumber(n), true
	case uint16:
		return intNumber(n), true
	case uint32:
		return intNumber(n), true
	case float32:
		return floatNumber(n), true
	case float64:
		return floatNumber(n), true
	}
	return number{}, false
}

func (n number) float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func (n number) value() core.Value {
	if n.isFloat {
		return n.f
	}
	return n.i
}

func (n number) isFinite() bool {
	return !n.isFloat || !(math.IsNaN(n.f) || math.IsInf(n.f, 0))
}

// compareNumbers returns -1, 0 or 1, ints are promoted to floats if one of the numbers is a float.
func compareNumbers(a, b number) int {
	if !a.isFloat && !b.isFloat {
		return compareOrdered(a.i, b.i)
	}
	return compareOrdered(a.float(), b.float())
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
