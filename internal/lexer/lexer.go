// Package lexer turns decoded source text into a token.Stream.
//
// Tokenization is all or nothing: the first lexical error stops the scan and
// is returned as an *Error; no partial token sequence is ever handed out.
// Comments are scanned but never surface in the result.
package lexer

import (
	"errors"
	"fmt"

	"slof/internal/diag"
	"slof/internal/source"
	"slof/internal/token"
	"slof/internal/utf8stream"
)

type Lexer struct {
	cursor Cursor
	opts   Options
	done   bool

	lastCode diag.Code // code of the Invalid token last produced
}

// New creates a lexer over an already decoded stream.
func New(in *utf8stream.Stream, opts Options) *Lexer {
	return &Lexer{
		cursor: NewCursor(in, opts.File),
		opts:   opts,
	}
}

// Next returns the next raw token, comments included. ok is false at end of
// input and after an Invalid token has been returned.
func (lx *Lexer) Next() (tok token.Token, ok bool) {
	if lx.done {
		return token.Token{}, false
	}
	lx.skipSpace()
	if lx.cursor.EOF() {
		lx.done = true
		return token.Token{}, false
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStart(ch):
		tok = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '"':
		tok = lx.scanString()
	default:
		tok = lx.scanOperatorOrComment()
	}
	if tok.Kind == token.Invalid {
		lx.done = true
	}
	return tok, true
}

func (lx *Lexer) skipSpace() {
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// Run drains the lexer. Comments are dropped; an Invalid token ends the run
// and is converted to an *Error which is also sent to the Reporter.
func (lx *Lexer) Run() (*token.Stream, error) {
	var toks []token.Token
	for {
		tok, ok := lx.Next()
		if !ok {
			return token.NewStream(toks), nil
		}
		switch tok.Kind {
		case token.Comment:
			continue
		case token.Invalid:
			err := lx.errorFor(tok)
			lx.report(err)
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// Tokenize converts text with default options.
func Tokenize(text string) (*token.Stream, error) {
	return TokenizeBytes([]byte(text), Options{})
}

// TokenizeBytes decodes src according to opts.UTF8 and tokenizes the result.
func TokenizeBytes(src []byte, opts Options) (*token.Stream, error) {
	in, err := Decode(src, opts)
	if err != nil {
		return nil, err
	}
	return New(in, opts).Run()
}

// Decode runs the UTF-8 stage on its own. A malformed run is returned as an
// *Error with code LexMalformedUTF8 and sent to opts.Reporter.
func Decode(src []byte, opts Options) (*utf8stream.Stream, error) {
	in, err := utf8stream.New(src, opts.UTF8)
	if err == nil {
		return in, nil
	}
	var derr *utf8stream.DecodeError
	if !errors.As(err, &derr) {
		return nil, err
	}
	off := uint32(derr.Offset) // bounded by len(src), checked by utf8stream.New
	lexErr := &Error{
		Code:    diag.LexMalformedUTF8,
		Span:    source.Span{File: opts.File, Start: off, End: off + 1},
		Message: derr.Error(),
	}
	diag.ReportError(opts.Reporter, lexErr.Diagnostic())
	return nil, lexErr
}

// invalid builds the Invalid token for a lexical error starting at m.
// The code travels with the lexer until Run converts the token.
func (lx *Lexer) invalid(code diag.Code, m Mark, format string, args ...any) token.Token {
	lx.lastCode = code
	msg := fmt.Sprintf(format, args...)
	return token.New(token.Invalid, token.Text(msg), lx.cursor.SpanFrom(m))
}

func (lx *Lexer) errorFor(tok token.Token) *Error {
	code := lx.lastCode
	if code == 0 {
		code = diag.LexUnknownChar
	}
	return &Error{Code: code, Span: tok.Span, Message: tok.Text()}
}

// tooLong reports whether the token started at m exceeds MaxTokenLength and
// returns the Invalid token to emit instead.
func (lx *Lexer) tooLong(m Mark) (token.Token, bool) {
	limit := lx.opts.maxTokenLength()
	if n := lx.cursor.Since(m); n > limit {
		return lx.invalid(diag.LexTokenTooLong, m, "token too long: %d codepoints (limit %d)", n, limit), true
	}
	return token.Token{}, false
}
