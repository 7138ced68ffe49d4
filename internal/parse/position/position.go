package position

import (
	"fmt"
)

type NodeSpan struct {
	Start int32 `json:"start"` //0-indexed
	End   int32 `json:"end"`   //exclusive end, 0-indexed
}

// SourcePositionRange locates an expression or an operand in a template.
type SourcePositionRange struct {
	SourceName  string   `json:"sourceName"`
	StartLine   int32    `json:"line"`      //1-indexed
	StartColumn int32    `json:"column"`    //1-indexed
	EndLine     int32    `json:"endLine"`   //1-indexed
	EndColumn   int32    `json:"endColumn"` //1-indexed
	Span        NodeSpan `json:"span"`
}

// IsZero reports whether the range carries no location at all (e.g. values built outside of a template).
func (pos SourcePositionRange) IsZero() bool {
	return pos == SourcePositionRange{}
}

func (pos SourcePositionRange) String() string {
	if pos.IsZero() {
		return "<unknown>:"
	}
	return fmt.Sprintf("%s:%d:%d:", pos.SourceName, pos.StartLine, pos.StartColumn)
}

// LocatedError is implemented by errors attached to a location in a template.
type LocatedError interface {
	error
	MessageWithoutLocation() string
	LocationRange() SourcePositionRange
}
