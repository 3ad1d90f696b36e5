package lexer_test

import (
	"testing"

	"slof/internal/lexer"
	"slof/internal/testkit"
	"slof/internal/utf8stream"
)

func FuzzTokenize(f *testing.F) {
	for _, seed := range []string{
		"let x = 1", "a <<= b >>= c", "\"str\\\"ing\"", "1.5..2", "// c\nx", "??=", "\xff", "é @",
	} {
		f.Add([]byte(seed), false)
	}
	f.Fuzz(func(t *testing.T, src []byte, legacy bool) {
		opts := lexer.Options{}
		if legacy {
			opts.UTF8 = utf8stream.ModeLegacy
		}
		ts, err := lexer.TokenizeBytes(src, opts)
		if (ts == nil) == (err == nil) {
			t.Fatalf("expected exactly one of stream and error, got %v and %v", ts, err)
		}
		if err != nil {
			return
		}
		if err := testkit.CheckTokenInvariants(ts.Tokens(), opts.File, len(src)); err != nil {
			t.Fatal(err)
		}
	})
}
