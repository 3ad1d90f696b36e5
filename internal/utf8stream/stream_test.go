package utf8stream

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_ValidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []Codepoint
		offsets []uint32
	}{
		{"empty", "", []Codepoint{}, []uint32{}},
		{"ascii", "let", []Codepoint{'l', 'e', 't'}, []uint32{0, 1, 2}},
		{"two byte", "é", []Codepoint{0xE9}, []uint32{0}},
		{"three byte", "€", []Codepoint{0x20AC}, []uint32{0}},
		{"four byte", "😀", []Codepoint{0x1F600}, []uint32{0}},
		{"mixed", "aé€😀b", []Codepoint{'a', 0xE9, 0x20AC, 0x1F600, 'b'}, []uint32{0, 1, 3, 6, 10}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := FromString(tc.input, ModeStrict)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.Codepoints())
			assert.Equal(t, tc.offsets, s.offsets)
			_, truncated := s.Truncated()
			assert.False(t, truncated)
		})
	}
}

func TestDecode_StrictRejectsMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  []byte
		offset int
	}{
		{"stray continuation", []byte{'a', 0x80}, 1},
		{"bad continuation", []byte{0xC3, 'a'}, 0},
		{"truncated", []byte{'x', 'y', 0xE2, 0x82}, 2},
		{"five byte lead", []byte{0xF8, 0x88, 0x80, 0x80, 0x80}, 0},
		{"six byte lead", []byte{0xFC, 0x84, 0x80, 0x80, 0x80, 0x80}, 0},
		{"overlong slash", []byte{0xC0, 0xAF}, 0},
		{"surrogate", []byte{0xED, 0xA0, 0x80}, 0},
		{"above max", []byte{0xF4, 0x90, 0x80, 0x80}, 0},
		{"all ones", []byte{0xFF}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := New(tc.input, ModeStrict)
			require.Error(t, err)
			assert.Nil(t, s)

			var derr *DecodeError
			require.True(t, errors.As(err, &derr))
			assert.Equal(t, tc.offset, derr.Offset)
			assert.NotEmpty(t, derr.Reason)
		})
	}
}

func TestDecode_LegacyAcceptsSixBytes(t *testing.T) {
	t.Parallel()

	// 0x7FFFFFFF, the largest six-byte value.
	s, err := New([]byte{0xFD, 0xBF, 0xBF, 0xBF, 0xBF, 0xBF}, ModeLegacy)
	require.NoError(t, err)
	assert.Equal(t, []Codepoint{0x7FFFFFFF}, s.Codepoints())

	// five bytes: 0x200000
	s, err = New([]byte{0xF8, 0x88, 0x80, 0x80, 0x80}, ModeLegacy)
	require.NoError(t, err)
	assert.Equal(t, []Codepoint{0x200000}, s.Codepoints())
}

func TestDecode_LegacyTruncatesOnBadRun(t *testing.T) {
	t.Parallel()

	s, err := New([]byte{'a', 'b', 0xE2, 'c', 'd'}, ModeLegacy)
	require.NoError(t, err)
	assert.Equal(t, []Codepoint{'a', 'b'}, s.Codepoints())

	off, ok := s.Truncated()
	require.True(t, ok)
	assert.Equal(t, 2, off)
	s.ConsumeUnchecked()
	s.ConsumeUnchecked()
	assert.Equal(t, uint32(2), s.ByteOffset())
}

func TestDecode_LegacyStrayContinuationKeepsLowBits(t *testing.T) {
	t.Parallel()

	s, err := New([]byte{0x81}, ModeLegacy)
	require.NoError(t, err)
	assert.Equal(t, []Codepoint{0x01}, s.Codepoints())
}

func TestStream_ByteOffsets(t *testing.T) {
	t.Parallel()

	s, err := FromString("é=1", ModeStrict)
	require.NoError(t, err)

	assert.Equal(t, uint32(0), s.ByteOffset())
	assert.Equal(t, uint32(2), s.PeekByteOffset(1))
	assert.Equal(t, uint32(4), s.PeekByteOffset(3))

	for !s.EOS() {
		s.ConsumeUnchecked()
	}
	assert.Equal(t, uint32(4), s.ByteOffset())
}

func TestStream_LookaheadContract(t *testing.T) {
	t.Parallel()

	s, err := FromString("ab", ModeStrict)
	require.NoError(t, err)

	cp, ok := s.ConsumeIf(func(c Codepoint) bool { return c == 'x' })
	assert.False(t, ok)
	assert.Zero(t, cp)
	assert.Equal(t, 2, s.Remaining())

	cp, ok = s.Consume()
	require.True(t, ok)
	assert.Equal(t, Codepoint('a'), cp)

	cp, ok = s.Peek(0)
	require.True(t, ok)
	assert.Equal(t, Codepoint('b'), cp)
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	m, err := ParseMode("legacy")
	require.NoError(t, err)
	assert.Equal(t, ModeLegacy, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeStrict, m)

	_, err = ParseMode("loose")
	assert.Error(t, err)
}

func TestCodepointString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "U+0041", Codepoint('A').String())
	assert.Equal(t, "U+1F600", Codepoint(0x1F600).String())
	assert.Equal(t, rune(0xFFFD), Codepoint(0xFFFFFFFF).Rune())
}
