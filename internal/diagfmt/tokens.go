package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"slof/internal/source"
	"slof/internal/token"
)

type TokenOutput struct {
	Kind    string      `json:"kind"`
	Literal any         `json:"literal,omitempty"`
	Span    source.Span `json:"span"`
	Line    uint32      `json:"line,omitempty"`
	Col     uint32      `json:"col,omitempty"`
}

// literalValue unwraps a literal to its JSON-native value.
func literalValue(lit token.Literal) any {
	switch v := lit.(type) {
	case token.Bool:
		return bool(v)
	case token.Uint:
		return uint64(v)
	case token.Float:
		return float64(v)
	case token.Text:
		return string(v)
	default:
		return nil
	}
}

// FormatTokensPretty prints one token per line with its position.
// fs may be nil, in which case byte offsets are shown.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		lit := ""
		if tok.Literal != nil {
			lit = tok.Literal.String()
		}
		if _, err := fmt.Fprintf(w, "%3d: %-28s %-16s", i+1, tok.Kind.String(), lit); err != nil {
			return err
		}
		var err error
		if fs != nil {
			start, end := fs.Resolve(tok.Span)
			_, err = fmt.Fprintf(w, " at %d:%d-%d:%d\n", start.Line, start.Col, end.Line, end.Col)
		} else {
			_, err = fmt.Fprintf(w, " at %d..%d\n", tok.Span.Start, tok.Span.End)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensPlain prints Token.String() of every token, one per line.
func FormatTokensPlain(w io.Writer, tokens []token.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, tok.String()); err != nil {
			return err
		}
	}
	return nil
}

// BuildTokensOutput converts tokens for JSON output.
func BuildTokensOutput(tokens []token.Token, fs *source.FileSet) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:    tok.Kind.String(),
			Literal: literalValue(tok.Literal),
			Span:    tok.Span,
		}
		if fs != nil {
			start, _ := fs.Resolve(tok.Span)
			out.Line, out.Col = start.Line, start.Col
		}
		output = append(output, out)
	}
	return output
}

// FormatTokensJSON writes the tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTokensOutput(tokens, fs))
}
