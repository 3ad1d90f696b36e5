package token

import "slof/internal/stream"

// Stream is the finished, read-only token sequence handed to a parser.
type Stream struct {
	*stream.Slice[Token]
}

var _ stream.Stream[Token] = (*Stream)(nil)

// NewStream takes ownership of toks.
func NewStream(toks []Token) *Stream {
	return &Stream{Slice: stream.NewSlice(toks)}
}

// Tokens returns a copy of every token, regardless of the cursor.
func (s *Stream) Tokens() []Token {
	return s.Items()
}

// Kinds returns the kind of every token, regardless of the cursor.
func (s *Stream) Kinds() []Kind {
	out := make([]Kind, 0, s.Len())
	for _, tok := range s.Items() {
		out = append(out, tok.Kind)
	}
	return out
}
