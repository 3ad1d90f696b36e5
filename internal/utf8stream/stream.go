// Package utf8stream decodes a complete byte buffer into Unicode codepoints and
// exposes them through the stream.Stream contract.
//
// Decoding is eager: New walks the whole buffer before returning. Every
// codepoint remembers the byte offset of its lead byte so that consumers can
// map codepoint positions back to source spans.
package utf8stream

import (
	"fmt"

	"fortio.org/safecast"

	"slof/internal/stream"
)

// Stream is a lookahead stream over decoded codepoints.
type Stream struct {
	*stream.Slice[Codepoint]
	offsets   []uint32
	size      uint32
	truncated int
}

var _ stream.Stream[Codepoint] = (*Stream)(nil)

// New decodes src. In ModeStrict the first malformed run aborts decoding and
// is returned as a *DecodeError. In ModeLegacy decoding stops at that run and
// the stream keeps everything decoded before it; see Truncated.
func New(src []byte, mode Mode) (*Stream, error) {
	size, err := safecast.Conv[uint32](len(src))
	if err != nil {
		return nil, fmt.Errorf("utf8stream: input too large: %w", err)
	}

	d := decoder{src: src, mode: mode}
	cps := make([]Codepoint, 0, len(src))
	offsets := make([]uint32, 0, len(src))
	truncated := -1
	for {
		cp, start, ok, derr := d.next()
		if derr != nil {
			if mode == ModeStrict {
				return nil, derr
			}
			truncated = start
			break
		}
		if !ok {
			break
		}
		cps = append(cps, cp)
		offsets = append(offsets, uint32(start)) // start <= size, checked above
	}

	return &Stream{
		Slice:     stream.NewSlice(cps),
		offsets:   offsets,
		size:      size,
		truncated: truncated,
	}, nil
}

// FromString is New over the bytes of s.
func FromString(s string, mode Mode) (*Stream, error) {
	return New([]byte(s), mode)
}

// ByteOffset returns the byte offset of the codepoint under the cursor, or
// the end offset of the decoded input at end of stream.
func (s *Stream) ByteOffset() uint32 {
	return s.byteOffsetAt(s.Pos())
}

// PeekByteOffset is ByteOffset for cursor+offset.
func (s *Stream) PeekByteOffset(offset int) uint32 {
	return s.byteOffsetAt(s.Pos() + offset)
}

func (s *Stream) byteOffsetAt(i int) uint32 {
	if i < 0 {
		return 0
	}
	if i < len(s.offsets) {
		return s.offsets[i]
	}
	if s.truncated >= 0 {
		return uint32(s.truncated)
	}
	return s.size
}

// Truncated reports the byte offset where ModeLegacy decoding stopped early.
func (s *Stream) Truncated() (offset int, ok bool) {
	return s.truncated, s.truncated >= 0
}

// Codepoints returns a copy of the decoded sequence.
func (s *Stream) Codepoints() []Codepoint {
	return s.Items()
}
