package token

import (
	"strconv"
)

// Literal is the payload of a token. It is a closed set: Bool, Uint, Float
// and Text. A nil Literal means "no payload".
type Literal interface {
	String() string
	isLiteral()
}

type (
	// Bool is a boolean payload. The language has no boolean literal yet, so
	// no Kind accepts it; it completes the payload set a parser may build on.
	Bool bool
	// Uint is the payload of IntegerLiteral tokens.
	Uint uint64
	// Float is the payload of FloatLiteral tokens.
	Float float64
	// Text is the payload of Identifier, StringLiteral, Comment and Invalid tokens.
	Text string
)

func (Bool) isLiteral()  {}
func (Uint) isLiteral()  {}
func (Float) isLiteral() {}
func (Text) isLiteral()  {}

func (b Bool) String() string  { return strconv.FormatBool(bool(b)) }
func (u Uint) String() string  { return strconv.FormatUint(uint64(u), 10) }
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (t Text) String() string  { return strconv.Quote(string(t)) }

// literalFits reports whether lit is the payload variant kind k expects.
func literalFits(k Kind, lit Literal) bool {
	switch k {
	case IntegerLiteral:
		_, ok := lit.(Uint)
		return ok
	case FloatLiteral:
		_, ok := lit.(Float)
		return ok
	case Identifier, StringLiteral, Comment, Invalid:
		_, ok := lit.(Text)
		return ok
	default:
		return lit == nil
	}
}

// Accepts reports whether k is a known kind and lit is a valid payload for it.
// Decoders of untrusted token data check this before calling New.
func (k Kind) Accepts(lit Literal) bool {
	return k < numKinds && literalFits(k, lit)
}
