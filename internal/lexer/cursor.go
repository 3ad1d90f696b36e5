package lexer

import (
	"slof/internal/source"
	"slof/internal/utf8stream"
)

// Cursor walks the decoded codepoints of one file.
type Cursor struct {
	in   *utf8stream.Stream
	file source.FileID
}

// NewCursor creates a cursor over in; spans are attributed to file.
func NewCursor(in *utf8stream.Stream, file source.FileID) Cursor {
	return Cursor{in: in, file: file}
}

// EOF reports whether every codepoint has been consumed.
func (c *Cursor) EOF() bool {
	return c.in.EOS()
}

// Peek returns the current codepoint, or 0 at EOF.
func (c *Cursor) Peek() utf8stream.Codepoint {
	cp, _ := c.in.Peek(0)
	return cp
}

// Peek2 returns the current and the next codepoint when both exist.
func (c *Cursor) Peek2() (c0, c1 utf8stream.Codepoint, ok bool) {
	if c.in.Remaining() < 2 {
		return 0, 0, false
	}
	c0, _ = c.in.Peek(0)
	c1, _ = c.in.Peek(1)
	return c0, c1, true
}

// Bump consumes the current codepoint; at EOF it returns 0 and stays put.
func (c *Cursor) Bump() utf8stream.Codepoint {
	cp, _ := c.in.Consume()
	return cp
}

// Eat consumes the current codepoint if it equals want.
func (c *Cursor) Eat(want utf8stream.Codepoint) bool {
	_, ok := c.in.ConsumeIf(func(cp utf8stream.Codepoint) bool { return cp == want })
	return ok
}

// Mark remembers a cursor position for SpanFrom and length checks.
type Mark struct {
	off uint32 // byte offset
	pos int    // codepoint index
}

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark{off: c.in.ByteOffset(), pos: c.in.Pos()}
}

// SpanFrom returns the byte span from m to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.file, Start: m.off, End: c.in.ByteOffset()}
}

// Since returns the number of codepoints consumed after m.
func (c *Cursor) Since(m Mark) int {
	return c.in.Pos() - m.pos
}
