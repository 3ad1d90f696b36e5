package token

import (
	"maps"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const keywordSuffix = "Keyword"

// keywords maps the lower-case spelling of every keyword kind to the kind.
// It is built once from kindNames ("LetKeyword" -> "let") and never written
// again.
var keywords = buildKeywordTable()

func buildKeywordTable() map[string]Kind {
	lower := cases.Lower(language.Und)
	table := make(map[string]Kind, lastKeyword-firstKeyword+1)
	for k := firstKeyword; k <= lastKeyword; k++ {
		spelling := lower.String(strings.TrimSuffix(kindNames[k], keywordSuffix))
		table[spelling] = k
	}
	return table
}

func keywordSpelling(k Kind) string {
	for spelling, kind := range keywords {
		if kind == k {
			return spelling
		}
	}
	return ""
}

// LookupKeyword returns the keyword kind for ident.
// Keywords are case sensitive: only the lower-case spellings match.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Keywords returns a copy of the keyword table.
func Keywords() map[string]Kind {
	return maps.Clone(keywords)
}
