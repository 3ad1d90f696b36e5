package lexer

import (
	"strings"

	"slof/internal/token"
)

// scanIdentOrKeyword reads [_A-Za-z][_A-Za-z0-9]* and resolves keywords.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	var b strings.Builder
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		b.WriteByte(byte(lx.cursor.Bump())) // ASCII only
	}
	if tok, tooLong := lx.tooLong(start); tooLong {
		return tok
	}

	text := b.String()
	sp := lx.cursor.SpanFrom(start)
	if k, ok := token.LookupKeyword(text); ok {
		return token.New(k, nil, sp)
	}
	return token.New(token.Identifier, token.Text(text), sp)
}
