// Package stream defines the lookahead stream contract shared by the UTF-8
// decoder and the token stream.
//
// A stream is a read-only view over a fixed, fully materialised sequence with
// a single cursor. The cursor only moves forward and only through Consume*.
package stream

// Stream is a peekable, sequentially consumed sequence of T.
type Stream[T any] interface {
	// EOS reports whether the cursor has reached the end of the sequence.
	EOS() bool
	// Remaining returns the number of elements left after the cursor.
	Remaining() int
	// Peek returns the element at cursor+offset without moving the cursor.
	Peek(offset int) (T, bool)
	// ConsumeUnchecked returns the current element and advances the cursor.
	// Calling it at end of stream is a programming error and panics.
	ConsumeUnchecked() T
	// Consume is ConsumeUnchecked that reports false at end of stream.
	Consume() (T, bool)
	// ConsumeIf consumes the current element only when pred accepts it.
	ConsumeIf(pred func(T) bool) (T, bool)
}

// Slice is the slice-backed Stream implementation.
type Slice[T any] struct {
	items []T
	pos   int
}

var _ Stream[int] = (*Slice[int])(nil)

// NewSlice wraps items. The slice is owned by the stream afterwards.
func NewSlice[T any](items []T) *Slice[T] {
	return &Slice[T]{items: items}
}

// EOS reports whether the cursor equals the sequence length.
func (s *Slice[T]) EOS() bool {
	return s.pos == len(s.items)
}

// Remaining returns len - cursor.
func (s *Slice[T]) Remaining() int {
	return len(s.items) - s.pos
}

// Len returns the length of the backing sequence.
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// Pos returns the cursor.
func (s *Slice[T]) Pos() int {
	return s.pos
}

// Peek returns the element at cursor+offset, or false when out of range.
func (s *Slice[T]) Peek(offset int) (T, bool) {
	if offset < 0 || offset >= s.Remaining() {
		var zero T
		return zero, false
	}
	return s.items[s.pos+offset], true
}

// ConsumeUnchecked returns the current element and advances the cursor.
func (s *Slice[T]) ConsumeUnchecked() T {
	if s.EOS() {
		panic("stream: ConsumeUnchecked at end of stream")
	}
	item := s.items[s.pos]
	s.pos++
	return item
}

// Consume returns the current element and advances, or false at end of stream.
func (s *Slice[T]) Consume() (T, bool) {
	if s.EOS() {
		var zero T
		return zero, false
	}
	return s.ConsumeUnchecked(), true
}

// ConsumeIf consumes the current element if pred holds for it.
// On a failed predicate the cursor stays where it was.
func (s *Slice[T]) ConsumeIf(pred func(T) bool) (T, bool) {
	item, ok := s.Peek(0)
	if !ok || !pred(item) {
		var zero T
		return zero, false
	}
	s.pos++
	return item, true
}

// Items returns a copy of the backing sequence, independent of the cursor.
func (s *Slice[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
