package core

// NewIntRange returns the lazy range of a range literal: start..end (inclusiveEnd) or start..<end.
// The range is descending if start > end.
func NewIntRange(start, end int, inclusiveEnd bool) *ScriptRange {
	return NewScriptRange(func(yield func(Value) bool) {
		if start <= end {
			last := end
			if !inclusiveEnd {
				if start == end {
					return
				}
				last--
			}

			for i := start; ; i++ {
				if !yield(i) || i == last {
					return
				}
			}
		}

		last := end
		if !inclusiveEnd {
			last++
		}

		for i := start; ; i-- {
			if !yield(i) || i == last {
				return
			}
		}
	})
}
