package core

import (
	"iter"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// The functions in this file build new lazy ranges from producers. A nil producer means that the input is absent.
// Inputs are never mutated and are never pulled further than needed.

// Offset skips the first n elements, n <= 0 skips nothing.
func Offset(seq iter.Seq[Value], n int) *ScriptRange {
	if seq == nil {
		return nil
	}

	return NewScriptRange(func(yield func(Value) bool) {
		index := 0
		for e := range seq {
			if index >= n && !yield(e) {
				return
			}
			index++
		}
	})
}

// Limit yields at most n elements, n <= 0 results in an empty range.
func Limit(seq iter.Seq[Value], n int) *ScriptRange {
	if seq == nil {
		return nil
	}

	return NewScriptRange(func(yield func(Value) bool) {
		if n <= 0 {
			return
		}

		remaining := n
		for e := range seq {
			if !yield(e) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	})
}

// Compact drops nil elements, an absent input results in an empty range.
func Compact(seq iter.Seq[Value]) *ScriptRange {
	if seq == nil {
		return NewEmptyScriptRange()
	}

	return NewScriptRange(func(yield func(Value) bool) {
		for e := range seq {
			if e != nil && !yield(e) {
				return
			}
		}
	})
}

// Uniq removes duplicates, the first occurrence of each element is kept.
func Uniq(seq iter.Seq[Value]) *ScriptRange {
	if seq == nil {
		return nil
	}

	return NewScriptRange(func(yield func(Value) bool) {
		seen := newValueSet()
		for e := range seq {
			if seen.Add(e) && !yield(e) {
				return
			}
		}
	})
}

// Reverse yields the elements in reverse order, an absent input results in an empty range.
func Reverse(seq iter.Seq[Value]) *ScriptRange {
	if seq == nil {
		return NewEmptyScriptRange()
	}

	return NewScriptRange(func(yield func(Value) bool) {
		stack := arraystack.New()
		for e := range seq {
			stack.Push(e)
		}

		for {
			e, ok := stack.Pop()
			if !ok || !yield(e) {
				return
			}
		}
	})
}

// Concat yields the elements of a then the elements of b. If only one of the inputs is present
// the returned range wraps it directly.
func Concat(a, b iter.Seq[Value]) *ScriptRange {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return NewScriptRange(b)
	case b == nil:
		return NewScriptRange(a)
	}

	return NewScriptRange(func(yield func(Value) bool) {
		for e := range a {
			if !yield(e) {
				return
			}
		}
		for e := range b {
			if !yield(e) {
				return
			}
		}
	})
}

// BinaryOr returns the union of a and b: elements are yielded in first-seen order, without duplicates.
func BinaryOr(a, b iter.Seq[Value]) *ScriptRange {
	return NewScriptRange(func(yield func(Value) bool) {
		seen := newValueSet()
		for _, seq := range [2]iter.Seq[Value]{a, b} {
			if seq == nil {
				continue
			}
			for e := range seq {
				if seen.Add(e) && !yield(e) {
					return
				}
			}
		}
	})
}

// BinaryAnd returns the intersection of a and b: the elements of a present in b, in a's order, without duplicates.
func BinaryAnd(a, b iter.Seq[Value]) *ScriptRange {
	return NewScriptRange(func(yield func(Value) bool) {
		if a == nil || b == nil {
			return
		}

		inB := newValueSet()
		for e := range b {
			inB.Add(e)
		}

		yielded := newValueSet()
		for e := range a {
			if inB.Has(e) && yielded.Add(e) && !yield(e) {
				return
			}
		}
	})
}

// ShiftLeft yields the elements of a then v.
func ShiftLeft(a iter.Seq[Value], v Value) *ScriptRange {
	return NewScriptRange(func(yield func(Value) bool) {
		if a != nil {
			for e := range a {
				if !yield(e) {
					return
				}
			}
		}
		yield(v)
	})
}

// ShiftRight yields v then the elements of b.
func ShiftRight(v Value, b iter.Seq[Value]) *ScriptRange {
	return NewScriptRange(func(yield func(Value) bool) {
		if !yield(v) || b == nil {
			return
		}
		for e := range b {
			if !yield(e) {
				return
			}
		}
	})
}

// Multiply yields the elements of seq n times.
func Multiply(seq iter.Seq[Value], n int) *ScriptRange {
	if seq == nil {
		return nil
	}

	return NewScriptRange(func(yield func(Value) bool) {
		for i := 0; i < n; i++ {
			for e := range seq {
				if !yield(e) {
					return
				}
			}
		}
	})
}

// Divide yields elements while decrementing a countdown starting at n and stops as soon as the countdown
// becomes negative: for n >= 0 the first n+1 elements are yielded.
func Divide(seq iter.Seq[Value], n int) *ScriptRange {
	if seq == nil {
		return nil
	}

	return NewScriptRange(func(yield func(Value) bool) {
		countdown := n
		if countdown < 0 {
			return
		}

		for e := range seq {
			if !yield(e) {
				return
			}
			countdown--
			if countdown < 0 {
				return
			}
		}
	})
}

// Modulus yields the elements whose zero-based position is a multiple of n, n should be positive.
func Modulus(seq iter.Seq[Value], n int) *ScriptRange {
	if seq == nil {
		return nil
	}

	return NewScriptRange(func(yield func(Value) bool) {
		if n <= 0 {
			return
		}

		position := 0
		for e := range seq {
			if position%n == 0 && !yield(e) {
				return
			}
			position++
		}
	})
}
