package utf8stream

import (
	"fmt"
	"math/bits"
)

// Codepoint is one decoded Unicode scalar value.
type Codepoint uint32

// MaxCodepoint is the largest scalar value accepted in ModeStrict.
const MaxCodepoint Codepoint = 0x10FFFF

// Rune converts the codepoint for printing; values outside the rune range
// (possible only in ModeLegacy) become utf8.RuneError when printed.
func (c Codepoint) Rune() rune {
	if c > 0x7FFFFFFF {
		return 0xFFFD
	}
	return rune(c)
}

func (c Codepoint) String() string {
	return fmt.Sprintf("U+%04X", uint32(c))
}

// Mode selects how strictly byte runs are validated.
type Mode uint8

const (
	// ModeStrict accepts only well-formed UTF-8 (at most 4 bytes, no overlong
	// forms, no surrogates, nothing above U+10FFFF) and reports the first
	// malformed run as a *DecodeError.
	ModeStrict Mode = iota
	// ModeLegacy accepts lead bytes announcing up to 6 bytes and stops decoding
	// silently at the first malformed run.
	ModeLegacy
)

func (m Mode) String() string {
	switch m {
	case ModeStrict:
		return "strict"
	case ModeLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode converts a configuration string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "strict":
		return ModeStrict, nil
	case "legacy":
		return ModeLegacy, nil
	default:
		return ModeStrict, fmt.Errorf("invalid utf8 mode: %q (expected: strict|legacy)", s)
	}
}

// DecodeError describes the first malformed byte run.
type DecodeError struct {
	Offset int // byte offset of the lead byte
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed UTF-8 at byte %d: %s", e.Offset, e.Reason)
}

const (
	continuationMask = 0b1100_0000
	continuationBits = 0b1000_0000
	maxLegacyLen     = 6
	maxStrictLen     = 4
)

// minForLen is the smallest value that needs the given encoded length;
// anything below it is an overlong encoding.
var minForLen = [...]Codepoint{0, 0, 0x80, 0x800, 0x10000}

// decoder walks the byte buffer one codepoint at a time.
type decoder struct {
	src  []byte
	off  int
	mode Mode
}

// next decodes the codepoint starting at d.off. It returns ok=false at the end
// of input; err is non-nil for a malformed run.
func (d *decoder) next() (cp Codepoint, start int, ok bool, err error) {
	start = d.off
	if d.off >= len(d.src) {
		return 0, start, false, nil
	}
	lead := d.src[d.off]
	d.off++

	ones := bits.LeadingZeros8(^lead)
	count := 1
	if ones > 0 {
		count = ones
	}

	switch d.mode {
	case ModeStrict:
		if ones == 1 {
			return 0, start, false, &DecodeError{Offset: start, Reason: fmt.Sprintf("unexpected continuation byte 0x%02X", lead)}
		}
		if count > maxStrictLen {
			return 0, start, false, &DecodeError{Offset: start, Reason: fmt.Sprintf("lead byte 0x%02X announces %d bytes", lead, count)}
		}
	default:
		if count > maxLegacyLen {
			return 0, start, false, &DecodeError{Offset: start, Reason: fmt.Sprintf("lead byte 0x%02X announces %d bytes", lead, count)}
		}
	}

	cp = Codepoint(lead & leadMask(count))
	for i := 1; i < count; i++ {
		if d.off >= len(d.src) {
			return 0, start, false, &DecodeError{Offset: start, Reason: fmt.Sprintf("truncated sequence: want %d bytes, have %d", count, i)}
		}
		b := d.src[d.off]
		if b&continuationMask != continuationBits {
			return 0, start, false, &DecodeError{Offset: start, Reason: fmt.Sprintf("invalid continuation byte 0x%02X", b)}
		}
		d.off++
		cp = cp<<6 | Codepoint(b&^continuationMask)
	}

	if d.mode == ModeStrict && count > 1 {
		switch {
		case cp < minForLen[count]:
			return 0, start, false, &DecodeError{Offset: start, Reason: fmt.Sprintf("overlong encoding of %s", cp)}
		case cp >= 0xD800 && cp <= 0xDFFF:
			return 0, start, false, &DecodeError{Offset: start, Reason: fmt.Sprintf("surrogate %s", cp)}
		case cp > MaxCodepoint:
			return 0, start, false, &DecodeError{Offset: start, Reason: fmt.Sprintf("%s is above U+10FFFF", cp)}
		}
	}
	return cp, start, true, nil
}

// leadMask keeps the payload bits of a lead byte for a run of count bytes.
func leadMask(count int) byte {
	if count == 1 {
		return 0b0111_1111
	}
	return 0xFF >> (count + 1)
}
