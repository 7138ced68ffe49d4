package core

import (
	"reflect"

	"github.com/bits-and-blooms/bitset"
)

const MAX_DENSE_SET_INT = 1 << 12

// valueSet is a set of values whose membership test agrees with ValuesEqual.
// Small non-negative ints are stored in a bitset, other comparable values in a map and
// the remaining values (Equaler implementations, slices, maps...) in a slice.
// An Equaler may be equal to values of other types, so lookups involving one scan the whole set.
type valueSet struct {
	smallInts *bitset.BitSet
	hashable  map[Value]struct{}
	others    []Value

	hasEqualers bool
}

func newValueSet() *valueSet {
	return &valueSet{}
}

func (s *valueSet) Has(v Value) bool {
	if _, ok := v.(Equaler); ok {
		return s.scan(v)
	}

	if i, ok := v.(int); ok && i >= 0 && i < MAX_DENSE_SET_INT {
		if s.smallInts != nil && s.smallInts.Test(uint(i)) {
			return true
		}
	} else if isHashable(v) {
		if _, ok := s.hashable[v]; ok {
			return true
		}
	} else {
		return s.scanOthers(v)
	}

	return s.hasEqualers && s.scanOthers(v)
}

func (s *valueSet) scanOthers(v Value) bool {
	for _, e := range s.others {
		if ValuesEqual(e, v) {
			return true
		}
	}
	return false
}

// scan compares v with every element of the set.
func (s *valueSet) scan(v Value) bool {
	if s.smallInts != nil {
		for i, ok := s.smallInts.NextSet(0); ok; i, ok = s.smallInts.NextSet(i + 1) {
			if ValuesEqual(int(i), v) {
				return true
			}
		}
	}

	for e := range s.hashable {
		if ValuesEqual(e, v) {
			return true
		}
	}

	return s.scanOthers(v)
}

// Add adds v to the set and returns true if v was not already present.
func (s *valueSet) Add(v Value) bool {
	if s.Has(v) {
		return false
	}

	if i, ok := v.(int); ok && i >= 0 && i < MAX_DENSE_SET_INT {
		if s.smallInts == nil {
			s.smallInts = bitset.New(uint(i) + 1)
		}
		s.smallInts.Set(uint(i))
		return true
	}

	if isHashable(v) {
		if s.hashable == nil {
			s.hashable = map[Value]struct{}{}
		}
		s.hashable[v] = struct{}{}
		return true
	}

	if _, ok := v.(Equaler); ok {
		s.hasEqualers = true
	}
	s.others = append(s.others, v)
	return true
}

func isHashable(v Value) bool {
	if v == nil {
		return true
	}
	if _, ok := v.(Equaler); ok {
		return false
	}

	return isHashableType(reflect.TypeOf(v))
}

// isHashableType returns true if values of type t can be compared with == without panicking.
func isHashableType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Array, reflect.Struct:
		//arrays and structs may contain non comparable interface values.
		return false
	}
	return t.Comparable()
}
