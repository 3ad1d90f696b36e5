package token

import (
	"fmt"
	"strings"

	"slof/internal/source"
)

// Token is an immutable classified unit of source text.
type Token struct {
	Kind    Kind
	Literal Literal
	Span    source.Span
}

// New builds a token and panics when lit does not match kind; such a
// mismatch is a bug in the producer, not an input error.
func New(kind Kind, lit Literal, span source.Span) Token {
	if !literalFits(kind, lit) {
		panic(fmt.Sprintf("token: literal %T does not fit kind %s", lit, kind))
	}
	return Token{Kind: kind, Literal: lit, Span: span}
}

// HasLiteral reports whether the token carries a payload.
func (t Token) HasLiteral() bool { return t.Literal != nil }

// Text returns the Text payload, or "" for other payloads.
func (t Token) Text() string {
	if s, ok := t.Literal.(Text); ok {
		return string(s)
	}
	return ""
}

// Uint returns the integer payload of an IntegerLiteral token.
func (t Token) Uint() (uint64, bool) {
	u, ok := t.Literal.(Uint)
	return uint64(u), ok
}

// Float returns the payload of a FloatLiteral token.
func (t Token) Float() (float64, bool) {
	f, ok := t.Literal.(Float)
	return float64(f), ok
}

// Bool returns a boolean payload.
func (t Token) Bool() (bool, bool) {
	b, ok := t.Literal.(Bool)
	return bool(b), ok
}

// String renders "Token type=<Kind>[, literal=<literal>]".
func (t Token) String() string {
	var b strings.Builder
	b.WriteString("Token type=")
	b.WriteString(t.Kind.String())
	if t.Literal != nil {
		b.WriteString(", literal=")
		b.WriteString(t.Literal.String())
	}
	return b.String()
}
