package lexer

import (
	"testing"

	"slof/internal/source"
	"slof/internal/utf8stream"
)

func createCursor(t *testing.T, content string) Cursor {
	t.Helper()
	in, err := utf8stream.FromString(content, utf8stream.ModeStrict)
	if err != nil {
		t.Fatalf("decode %q: %v", content, err)
	}
	return NewCursor(in, source.FileID(1))
}

func TestSequentialReading(t *testing.T) {
	cursor := createCursor(t, "a\nb")

	for _, want := range []utf8stream.Codepoint{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want.Rune())
		}
		if got := cursor.Peek(); got != want {
			t.Errorf("Expected peek %q, got %q", want.Rune(), got.Rune())
		}
		if got := cursor.Bump(); got != want {
			t.Errorf("Expected bump %q, got %q", want.Rune(), got.Rune())
		}
	}
	if !cursor.EOF() {
		t.Error("Expected EOF at the end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Expected zero codepoint at EOF")
	}
}

func TestPeek2(t *testing.T) {
	cursor := createCursor(t, "ab")
	c0, c1, ok := cursor.Peek2()
	if !ok || c0 != 'a' || c1 != 'b' {
		t.Errorf("Expected ('a', 'b', true), got (%q, %q, %v)", c0.Rune(), c1.Rune(), ok)
	}

	cursor.Bump()
	if _, _, ok := cursor.Peek2(); ok {
		t.Error("Expected Peek2 to fail with one codepoint left")
	}
}

func TestEat(t *testing.T) {
	cursor := createCursor(t, "=>")
	if cursor.Eat('>') {
		t.Error("Eat must not consume a different codepoint")
	}
	if !cursor.Eat('=') || !cursor.Eat('>') {
		t.Error("Expected to eat '=' then '>'")
	}
	if cursor.Eat('>') {
		t.Error("Eat at EOF must fail")
	}
}

func TestSpanFromCountsBytes(t *testing.T) {
	cursor := createCursor(t, "é€x")
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()

	sp := cursor.SpanFrom(m)
	if sp.File != 1 || sp.Start != 0 || sp.End != 5 {
		t.Errorf("Expected span 1:0..5, got %v", sp)
	}
	if n := cursor.Since(m); n != 2 {
		t.Errorf("Expected 2 codepoints since mark, got %d", n)
	}

	cursor.Bump()
	if sp := cursor.SpanFrom(m); sp.End != 6 {
		t.Errorf("Expected end offset 6 at EOF, got %d", sp.End)
	}
}
