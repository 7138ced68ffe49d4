package core

import (
	"iter"
	"reflect"
)

var (
	_ = []Iterable{(*ScriptRange)(nil)}
	_ = []Transformable{(*ScriptRange)(nil)}
	_ = []TypeNamer{(*ScriptRange)(nil)}
)

// Value is any value of the template language, the element type of sequences is open.
type Value = any

// Iterable is implemented by values exposing an ordered and repeatable iteration over their elements.
type Iterable interface {
	//All should return a producer that starts from the first element each time it is ranged over.
	All() iter.Seq[Value]
}

// Equaler is implemented by values that define their own equality.
type Equaler interface {
	Equal(other Value) bool
}

// TypeNamer is implemented by values that have a name in the template language.
type TypeNamer interface {
	TypeName() string
}

// ValuesEqual reports whether a and b are equal: values implementing Equaler decide themselves,
// comparable values are compared with == (the dynamic types must be the same) and other values
// are deeply compared.
func ValuesEqual(a, b Value) bool {
	if equaler, ok := a.(Equaler); ok {
		return equaler.Equal(b)
	}
	if equaler, ok := b.(Equaler); ok {
		return equaler.Equal(a)
	}

	if a == nil || b == nil {
		return a == nil && b == nil
	}

	typeA := reflect.TypeOf(a)
	if typeA != reflect.TypeOf(b) {
		return false
	}

	if isHashableType(typeA) {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// AsSequence returns the ordered-iteration view of v, ok is false for scalars
// (strings, numbers, booleans, nil) and maps.
func AsSequence(v Value) (seq iter.Seq[Value], ok bool) {
	switch val := v.(type) {
	case *ScriptRange:
		if val == nil {
			return nil, false
		}
		return val.All(), true
	case Iterable:
		return val.All(), true
	case []Value:
		return sliceProducer(val), true
	}
	return nil, false
}

func sliceProducer(elements []Value) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, e := range elements {
			if !yield(e) {
				return
			}
		}
	}
}

func emptyProducer(yield func(Value) bool) {}

// countElements enumerates seq fully.
func countElements(seq iter.Seq[Value]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

func collectElements(seq iter.Seq[Value]) []Value {
	var elements []Value
	for e := range seq {
		elements = append(elements, e)
	}
	return elements
}
