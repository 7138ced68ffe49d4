package core

import (
	"bytes"
	"fmt"
	"iter"
	"reflect"

	"github.com/goccy/go-json"
	"github.com/inoxlang/rangeseq/internal/parse/position"
	"github.com/inoxlang/rangeseq/internal/utils"
)

const (
	RANGE_TYPE_NAME = "range"

	LIST_SHRINK_DIVIDER        = 2
	MIN_SHRINKABLE_LIST_LENGTH = 10 * LIST_SHRINK_DIVIDER
)

// Transformable is implemented by values supporting the generic 'apply to every element' facility of the host.
type Transformable interface {
	CanTransform(targetType reflect.Type) bool

	//Visit should call visit on each element until it returns false.
	Visit(ctx *Context, span position.SourcePositionRange, visit func(Value) bool) bool

	//Transform should return a value whose elements are the results of apply.
	Transform(ctx *Context, span position.SourcePositionRange, apply func(Value) Value, targetType reflect.Type) (Value, error)
}

// A ScriptRange is the value of range literals and of the sequence operators/built-ins. It starts as a lazy producer
// of elements and is promoted to a mutable list the first time it is mutated.
type ScriptRange struct {
	source rangeSource //nil is an empty lazy source
}

// rangeSource is either a lazySource or a *listSource.
type rangeSource interface {
	elements() iter.Seq[Value]
}

type lazySource struct {
	producer iter.Seq[Value]
}

func (s lazySource) elements() iter.Seq[Value] {
	return s.producer
}

// listSource is copy-on-write: producers returned by elements() read a snapshot of the list and
// the next mutation of a shared list works on a copy.
type listSource struct {
	list   []Value
	shared bool
}

func (s *listSource) elements() iter.Seq[Value] {
	s.shared = true
	return sliceProducer(s.list)
}

// own makes the list exclusively owned by the source before a mutation.
func (s *listSource) own() {
	if s.shared {
		s.list = utils.CopySlice(s.list)
		s.shared = false
	}
}

// NewScriptRange returns a lazy range producing the elements of producer, a nil producer results in an empty range.
// The producer should be restartable and free of side effects.
func NewScriptRange(producer iter.Seq[Value]) *ScriptRange {
	if producer == nil {
		producer = emptyProducer
	}
	return &ScriptRange{source: lazySource{producer: producer}}
}

// NewScriptRangeFromValues returns a lazy range over a copy of values.
func NewScriptRangeFromValues(values ...Value) *ScriptRange {
	return NewScriptRange(sliceProducer(utils.CopySlice(values)))
}

func NewEmptyScriptRange() *ScriptRange {
	return NewScriptRange(nil)
}

// materialize replaces a lazy source with a list holding all of its elements, this is the only place where
// the representation changes from lazy to materialized.
func (r *ScriptRange) materialize() *listSource {
	switch src := r.source.(type) {
	case *listSource:
		return src
	case lazySource:
		list := &listSource{list: collectElements(src.producer)}
		r.source = list
		return list
	case nil:
		list := &listSource{}
		r.source = list
		return list
	}
	panic(ErrUnreachable)
}

func (r *ScriptRange) IsMaterialized() bool {
	_, ok := r.source.(*listSource)
	return ok
}

// All returns a producer of the elements, ranging over it several times always starts from the first element.
// The producer of a materialized range yields the elements present when All was called, later mutations of the
// range are not visible through it.
func (r *ScriptRange) All() iter.Seq[Value] {
	if r.source == nil {
		return emptyProducer
	}
	return r.source.elements()
}

func (r *ScriptRange) Len() int {
	if list, ok := r.source.(*listSource); ok {
		return len(list.list)
	}
	return countElements(r.All())
}

// At returns the element at index i or nil if i is out of range. If the range is lazy the elements are
// enumerated up to i, otherwise the access is direct.
func (r *ScriptRange) At(i int) Value {
	if list, ok := r.source.(*listSource); ok {
		if i < 0 || i >= len(list.list) {
			return nil
		}
		return list.list[i]
	}

	if i < 0 {
		return nil
	}

	index := 0
	for e := range r.All() {
		if index == i {
			return e
		}
		index++
	}
	return nil
}

func (r *ScriptRange) Set(i int, v Value) error {
	list := r.materialize()
	if i < 0 || i >= len(list.list) {
		return ErrIndexOutOfRange
	}
	list.own()
	list.list[i] = v
	return nil
}

func (r *ScriptRange) Append(v Value) {
	list := r.materialize()
	list.own()
	list.list = append(list.list, v)
}

func (r *ScriptRange) InsertAt(i int, v Value) error {
	list := r.materialize()
	if i < 0 || i > len(list.list) {
		return ErrInsertionIndexOutOfRange
	}
	list.own()
	list.list = utils.InsertAt(list.list, i, v)
	return nil
}

func (r *ScriptRange) RemoveAt(i int) error {
	list := r.materialize()
	if i < 0 || i >= len(list.list) {
		return ErrIndexOutOfRange
	}
	list.removeIndex(i)
	return nil
}

// Remove removes the first element equal to v, it returns true if such an element was present.
func (r *ScriptRange) Remove(v Value) bool {
	list := r.materialize()
	for i, e := range list.list {
		if ValuesEqual(e, v) {
			list.removeIndex(i)
			return true
		}
	}
	return false
}

func (s *listSource) removeIndex(i int) {
	s.own()
	s.list = utils.RemoveIndex(s.list, i)
	s.list = utils.ShrinkSliceIfWastedCapacity(s.list, MIN_SHRINKABLE_LIST_LENGTH, LIST_SHRINK_DIVIDER)
}

// Clear resets the range to an empty lazy range, the previous elements are not enumerated.
func (r *ScriptRange) Clear() {
	r.source = lazySource{producer: emptyProducer}
}

func (r *ScriptRange) Contains(v Value) bool {
	return r.IndexOf(v) >= 0
}

// IndexOf returns the index of the first element equal to v or -1.
func (r *ScriptRange) IndexOf(v Value) int {
	index := 0
	for e := range r.All() {
		if ValuesEqual(e, v) {
			return index
		}
		index++
	}
	return -1
}

// CopyTo copies the elements into dst starting at offset.
func (r *ScriptRange) CopyTo(dst []Value, offset int) error {
	if offset < 0 {
		return ErrNegativeOffset
	}

	if list, ok := r.source.(*listSource); ok {
		if len(dst)-offset < len(list.list) {
			return ErrDestinationTooSmall
		}
		copy(dst[offset:], list.list)
		return nil
	}

	elements := collectElements(r.All())
	if len(dst)-offset < len(elements) {
		return ErrDestinationTooSmall
	}
	copy(dst[offset:], elements)
	return nil
}

func (r *ScriptRange) CanTransform(targetType reflect.Type) bool {
	return true
}

func (r *ScriptRange) Visit(ctx *Context, span position.SourcePositionRange, visit func(Value) bool) bool {
	for e := range r.All() {
		if !visit(e) {
			return false
		}
	}
	return true
}

// Transform returns a lazy range whose elements are the results of apply, apply is called once per element
// when the returned range is iterated.
func (r *ScriptRange) Transform(ctx *Context, span position.SourcePositionRange, apply func(Value) Value, targetType reflect.Type) (Value, error) {
	if apply == nil {
		return nil, NewRuntimeError(ErrNilTransformFunction, span, S_NIL_TRANSFORM_FUNCTION)
	}

	source := r.All()
	return NewScriptRange(func(yield func(Value) bool) {
		for e := range source {
			if !yield(apply(e)) {
				return
			}
		}
	}), nil
}

func (r *ScriptRange) TypeName() string {
	return RANGE_TYPE_NAME
}

func (r *ScriptRange) String() string {
	buff := bytes.NewBufferString("[")
	first := true

	for e := range r.All() {
		if !first {
			buff.WriteString(", ")
		}
		first = false

		if e == nil {
			buff.WriteString("null")
		} else {
			fmt.Fprintf(buff, "%v", e)
		}
	}

	buff.WriteByte(']')
	return buff.String()
}

func (r *ScriptRange) MarshalJSON() ([]byte, error) {
	elements := make([]Value, 0)
	for e := range r.All() {
		elements = append(elements, e)
	}
	return json.Marshal(elements)
}
