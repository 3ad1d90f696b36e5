package lexer

import (
	"fmt"

	"slof/internal/diag"
	"slof/internal/source"
	"slof/internal/utf8stream"
)

// DefaultMaxTokenLength bounds identifiers, numbers, strings and comments,
// in codepoints.
const DefaultMaxTokenLength = 1 << 16

type Options struct {
	// Reporter receives the diagnostic of the error that stops tokenization;
	// may be nil.
	Reporter diag.Reporter
	// MaxTokenLength overrides DefaultMaxTokenLength when positive.
	MaxTokenLength int
	// UTF8 selects how the input bytes are decoded.
	UTF8 utf8stream.Mode
	// File is stamped on every produced span.
	File source.FileID
}

func (o Options) maxTokenLength() int {
	if o.MaxTokenLength > 0 {
		return o.MaxTokenLength
	}
	return DefaultMaxTokenLength
}

// Fingerprint identifies the options that influence the produced tokens.
func (o Options) Fingerprint() string {
	return fmt.Sprintf("utf8=%s;max=%d", o.UTF8, o.maxTokenLength())
}

func (lx *Lexer) report(err *Error) {
	diag.ReportError(lx.opts.Reporter, err.Diagnostic())
}
