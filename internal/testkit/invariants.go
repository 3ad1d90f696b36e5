// Package testkit holds checks shared by tests of several packages.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"slof/internal/source"
	"slof/internal/token"
)

// CheckTokenInvariants verifies a token sequence produced for a source of
// srcLen bytes in file:
// 1) no Invalid or Comment token is present
// 2) every span is non-empty, belongs to file and lies within the source
// 3) spans are ordered and do not overlap
// 4) each literal matches its kind
func CheckTokenInvariants(toks []token.Token, file source.FileID, srcLen int) error {
	size, err := safecast.Conv[uint32](srcLen)
	if err != nil {
		return fmt.Errorf("source length overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range toks {
		if tok.Kind == token.Invalid || tok.Kind == token.Comment {
			return fmt.Errorf("token %d: %v must not appear in a stream", i, tok.Kind)
		}
		sp := tok.Span
		if sp.File != file {
			return fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, sp.File, file)
		}
		if sp.End <= sp.Start {
			return fmt.Errorf("token %d: empty span %v", i, sp)
		}
		if sp.End > size {
			return fmt.Errorf("token %d: span %v beyond source end %d", i, sp, size)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d: span %v overlaps previous end %d", i, sp, prevEnd)
		}
		prevEnd = sp.End

		if tok.HasLiteral() != tok.Kind.HasLiteral() || (tok.HasLiteral() && !tok.Kind.Accepts(tok.Literal)) {
			return fmt.Errorf("token %d: literal %v does not fit %v", i, tok.Literal, tok.Kind)
		}
	}
	return nil
}
