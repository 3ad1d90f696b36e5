package lexer

import "slof/internal/utf8stream"

// Classifiers are ASCII only; any other codepoint falls through to the
// operator scanner and is reported as an unknown character.

func isSpace(c utf8stream.Codepoint) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlpha(c utf8stream.Codepoint) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDec(c utf8stream.Codepoint) bool { return c >= '0' && c <= '9' }

func isIdentStart(c utf8stream.Codepoint) bool {
	return c == '_' || isAlpha(c)
}

func isIdentContinue(c utf8stream.Codepoint) bool {
	return isIdentStart(c) || isDec(c)
}
