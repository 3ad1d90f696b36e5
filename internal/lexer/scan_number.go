package lexer

import (
	"errors"
	"strconv"
	"strings"

	"slof/internal/diag"
	"slof/internal/token"
)

// scanNumber reads a decimal integer or a decimal float.
// A '.' only starts a fraction when a digit follows it, so "1." is an
// integer followed by Dot and "1..2" is a range.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	var b strings.Builder
	lx.digits(&b)

	isFloat := false
	if c0, c1, ok := lx.cursor.Peek2(); ok && c0 == '.' && isDec(c1) {
		isFloat = true
		b.WriteByte(byte(lx.cursor.Bump()))
		lx.digits(&b)
	}
	if tok, tooLong := lx.tooLong(start); tooLong {
		return tok
	}

	text := b.String()
	sp := lx.cursor.SpanFrom(start)
	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return lx.invalid(diag.LexBadNumber, start, "cannot parse %q as a float: %s", text, numErrReason(err))
		}
		return token.New(token.FloatLiteral, token.Float(v), sp)
	}
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return lx.invalid(diag.LexBadNumber, start, "cannot parse %q as an integer: %s", text, numErrReason(err))
	}
	return token.New(token.IntegerLiteral, token.Uint(v), sp)
}

func (lx *Lexer) digits(b *strings.Builder) {
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		b.WriteByte(byte(lx.cursor.Bump()))
	}
}

func numErrReason(err error) string {
	if errors.Is(err, strconv.ErrRange) {
		return "value out of range"
	}
	return "malformed literal"
}
