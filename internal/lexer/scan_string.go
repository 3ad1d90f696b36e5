package lexer

import (
	"strings"

	"slof/internal/diag"
	"slof/internal/token"
)

// scanString reads a double-quoted string. The text is kept verbatim:
// a backslash stays in the payload together with the character after it,
// which therefore cannot close the string.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	var b strings.Builder
	for {
		if lx.cursor.EOF() {
			return lx.invalid(diag.LexUnterminatedString, start, msgUnexpectedEOF)
		}
		ch := lx.cursor.Bump()
		if ch == '"' {
			break
		}
		b.WriteRune(ch.Rune())
		if ch == '\\' {
			if lx.cursor.EOF() {
				return lx.invalid(diag.LexUnterminatedString, start, msgUnexpectedEOF)
			}
			b.WriteRune(lx.cursor.Bump().Rune())
		}
	}
	if tok, tooLong := lx.tooLong(start); tooLong {
		return tok
	}
	return token.New(token.StringLiteral, token.Text(b.String()), lx.cursor.SpanFrom(start))
}
