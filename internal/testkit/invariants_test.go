package testkit

import (
	"strings"
	"testing"

	"slof/internal/source"
	"slof/internal/token"
)

func span(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func TestCheckTokenInvariants(t *testing.T) {
	valid := []token.Token{
		token.New(token.Identifier, token.Text("x"), span(0, 1)),
		token.New(token.Equals, nil, span(2, 3)),
		token.New(token.IntegerLiteral, token.Uint(1), span(4, 5)),
	}
	if err := CheckTokenInvariants(valid, 1, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := CheckTokenInvariants(nil, 1, 0); err != nil {
		t.Fatalf("empty stream: %v", err)
	}

	tests := []struct {
		name string
		toks []token.Token
		want string
	}{
		{"invalid kind", []token.Token{token.New(token.Invalid, token.Text("bad"), span(0, 1))}, "must not appear"},
		{"wrong file", []token.Token{token.New(token.Equals, nil, source.Span{File: 2, Start: 0, End: 1})}, "file mismatch"},
		{"empty span", []token.Token{token.New(token.Equals, nil, span(1, 1))}, "empty span"},
		{"beyond end", []token.Token{token.New(token.Equals, nil, span(4, 6))}, "beyond source end"},
		{"overlap", []token.Token{
			token.New(token.Equals, nil, span(0, 2)),
			token.New(token.Equals, nil, span(1, 3)),
		}, "overlaps"},
		{"literal mismatch", []token.Token{{Kind: token.IntegerLiteral, Literal: token.Text("1"), Span: span(0, 1)}}, "does not fit"},
		{"missing literal", []token.Token{{Kind: token.Identifier, Span: span(0, 1)}}, "does not fit"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckTokenInvariants(tc.toks, 1, 5)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}
