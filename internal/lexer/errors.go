package lexer

import (
	"slof/internal/diag"
	"slof/internal/source"
)

// Error is the first fatal lexical error of a tokenization.
// Error() is exactly the diagnostic text the Invalid token carried.
type Error struct {
	Code    diag.Code
	Span    source.Span
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Diagnostic converts the error for rendering.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code, e.Span, e.Message)
}

const (
	msgUnexpectedEOF = "unexpected end of file reached"
)
