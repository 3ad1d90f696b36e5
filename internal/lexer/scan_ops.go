package lexer

import (
	"strings"

	"slof/internal/diag"
	"slof/internal/token"
	"slof/internal/utf8stream"
)

// Characters whose only longer form is self followed by '='.
var compoundAssign = map[utf8stream.Codepoint][2]token.Kind{
	'+': {token.Plus, token.PlusEquals},
	'%': {token.Percent, token.PercentEquals},
	'&': {token.Ampersand, token.AmpersandEquals},
	'|': {token.Pipe, token.PipeEquals},
	'^': {token.Caret, token.CaretEquals},
	'!': {token.ExclamationPoint, token.ExclamationPointEquals},
}

var punct = map[utf8stream.Codepoint]token.Kind{
	',': token.Comma,
	':': token.Colon,
	';': token.Semicolon,
	'(': token.LeftParen,
	')': token.RightParen,
	'[': token.LeftBracket,
	']': token.RightBracket,
	'{': token.LeftBrace,
	'}': token.RightBrace,
}

// scanOperatorOrComment consumes one character and extends it greedily:
// the longest spelling is tried first and nothing is ever put back.
func (lx *Lexer) scanOperatorOrComment() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		return token.New(k, nil, lx.cursor.SpanFrom(start))
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '.':
		if lx.cursor.Eat('.') {
			if lx.cursor.Eat('=') {
				return emit(token.TwoDotsEquals)
			}
			return emit(token.TwoDots)
		}
		return emit(token.Dot)
	case '<':
		switch {
		case lx.cursor.Eat('<'):
			if lx.cursor.Eat('=') {
				return emit(token.LessThanLessThanEquals)
			}
			return emit(token.LessThanLessThan)
		case lx.cursor.Eat('='):
			return emit(token.LessThanEquals)
		}
		return emit(token.LessThan)
	case '>':
		switch {
		case lx.cursor.Eat('>'):
			if lx.cursor.Eat('=') {
				return emit(token.GreaterThanGreaterThanEquals)
			}
			return emit(token.GreaterThanGreaterThan)
		case lx.cursor.Eat('='):
			return emit(token.GreaterThanEquals)
		}
		return emit(token.GreaterThan)
	case '=':
		switch {
		case lx.cursor.Eat('='):
			return emit(token.EqualsEquals)
		case lx.cursor.Eat('>'):
			return emit(token.EqualsGreaterThan)
		}
		return emit(token.Equals)
	case '-':
		switch {
		case lx.cursor.Eat('='):
			return emit(token.MinusEquals)
		case lx.cursor.Eat('>'):
			return emit(token.MinusGreaterThan)
		}
		return emit(token.Minus)
	case '*':
		switch {
		case lx.cursor.Eat('*'):
			return emit(token.StarStar)
		case lx.cursor.Eat('='):
			return emit(token.StarEquals)
		}
		return emit(token.Star)
	case '/':
		switch {
		case lx.cursor.Eat('/'):
			return lx.scanLineComment(start)
		case lx.cursor.Eat('='):
			return emit(token.SlashEquals)
		}
		return emit(token.Slash)
	case '?':
		// A lone '?' exists only at end of input; any other follower
		// makes "??" and is left in place unless it is the second '?'.
		switch {
		case lx.cursor.Eat('='):
			return emit(token.QuestionMarkEquals)
		case lx.cursor.Eat('?'), !lx.cursor.EOF():
			return emit(token.QuestionMarkQuestionMark)
		}
		return emit(token.QuestionMark)
	}

	if pair, ok := compoundAssign[ch]; ok {
		if lx.cursor.Eat('=') {
			return emit(pair[1])
		}
		return emit(pair[0])
	}
	if k, ok := punct[ch]; ok {
		return emit(k)
	}
	return lx.invalid(diag.LexUnknownChar, start, "unexpected character %q (code %d)", ch.Rune(), uint32(ch))
}

// scanLineComment runs after "//" up to, not including, the newline.
func (lx *Lexer) scanLineComment(start Mark) token.Token {
	var b strings.Builder
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		b.WriteRune(lx.cursor.Bump().Rune())
	}
	if tok, tooLong := lx.tooLong(start); tooLong {
		return tok
	}
	return token.New(token.Comment, token.Text(b.String()), lx.cursor.SpanFrom(start))
}
