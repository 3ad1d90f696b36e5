package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks a lexical error; its literal is the diagnostic message.
	Invalid Kind = iota

	// IfKeyword represents the 'if' keyword.
	IfKeyword
	// ElseKeyword represents the 'else' keyword.
	ElseKeyword
	// LetKeyword represents the 'let' keyword.
	LetKeyword
	// FuncKeyword represents the 'func' keyword.
	FuncKeyword
	// NotKeyword represents the 'not' keyword.
	NotKeyword
	// AndKeyword represents the 'and' keyword.
	AndKeyword
	// OrKeyword represents the 'or' keyword.
	OrKeyword

	// Identifier represents a name; its literal is the name text.
	Identifier
	// IntegerLiteral represents a decimal integer literal (Uint literal).
	IntegerLiteral
	// FloatLiteral represents a decimal floating point literal (Float literal).
	FloatLiteral
	// StringLiteral represents a string literal without its quotes (Text literal).
	StringLiteral
	// Comment represents a line comment; the lexer never surfaces it.
	Comment

	Dot                          // .
	TwoDots                      // ..
	TwoDotsEquals                // ..=
	LessThan                     // <
	LessThanEquals               // <=
	LessThanLessThan             // <<
	LessThanLessThanEquals       // <<=
	GreaterThan                  // >
	GreaterThanEquals            // >=
	GreaterThanGreaterThan       // >>
	GreaterThanGreaterThanEquals // >>=
	Equals                       // =
	EqualsEquals                 // ==
	EqualsGreaterThan            // =>
	Plus                         // +
	PlusEquals                   // +=
	Minus                        // -
	MinusEquals                  // -=
	MinusGreaterThan             // ->
	Star                         // *
	StarStar                     // **
	StarEquals                   // *=
	Slash                        // /
	SlashEquals                  // /=
	Percent                      // %
	PercentEquals                // %=
	Ampersand                    // &
	AmpersandEquals              // &=
	Pipe                         // |
	PipeEquals                   // |=
	Caret                        // ^
	CaretEquals                  // ^=
	ExclamationPoint             // !
	ExclamationPointEquals       // !=
	QuestionMark                 // ?
	QuestionMarkEquals           // ?=
	QuestionMarkQuestionMark     // ??
	Comma                        // ,
	Colon                        // :
	Semicolon                    // ;
	LeftParen                    // (
	RightParen                   // )
	LeftBracket                  // [
	RightBracket                 // ]
	LeftBrace                    // {
	RightBrace                   // }

	numKinds
)

const (
	firstKeyword  = IfKeyword
	lastKeyword   = OrKeyword
	firstOperator = Dot
	lastOperator  = RightBrace
)

var kindNames = [numKinds]string{
	Invalid:                      "Invalid",
	IfKeyword:                    "IfKeyword",
	ElseKeyword:                  "ElseKeyword",
	LetKeyword:                   "LetKeyword",
	FuncKeyword:                  "FuncKeyword",
	NotKeyword:                   "NotKeyword",
	AndKeyword:                   "AndKeyword",
	OrKeyword:                    "OrKeyword",
	Identifier:                   "Identifier",
	IntegerLiteral:               "IntegerLiteral",
	FloatLiteral:                 "FloatLiteral",
	StringLiteral:                "StringLiteral",
	Comment:                      "Comment",
	Dot:                          "Dot",
	TwoDots:                      "TwoDots",
	TwoDotsEquals:                "TwoDotsEquals",
	LessThan:                     "LessThan",
	LessThanEquals:               "LessThanEquals",
	LessThanLessThan:             "LessThanLessThan",
	LessThanLessThanEquals:       "LessThanLessThanEquals",
	GreaterThan:                  "GreaterThan",
	GreaterThanEquals:            "GreaterThanEquals",
	GreaterThanGreaterThan:       "GreaterThanGreaterThan",
	GreaterThanGreaterThanEquals: "GreaterThanGreaterThanEquals",
	Equals:                       "Equals",
	EqualsEquals:                 "EqualsEquals",
	EqualsGreaterThan:            "EqualsGreaterThan",
	Plus:                         "Plus",
	PlusEquals:                   "PlusEquals",
	Minus:                        "Minus",
	MinusEquals:                  "MinusEquals",
	MinusGreaterThan:             "MinusGreaterThan",
	Star:                         "Star",
	StarStar:                     "StarStar",
	StarEquals:                   "StarEquals",
	Slash:                        "Slash",
	SlashEquals:                  "SlashEquals",
	Percent:                      "Percent",
	PercentEquals:                "PercentEquals",
	Ampersand:                    "Ampersand",
	AmpersandEquals:              "AmpersandEquals",
	Pipe:                         "Pipe",
	PipeEquals:                   "PipeEquals",
	Caret:                        "Caret",
	CaretEquals:                  "CaretEquals",
	ExclamationPoint:             "ExclamationPoint",
	ExclamationPointEquals:       "ExclamationPointEquals",
	QuestionMark:                 "QuestionMark",
	QuestionMarkEquals:           "QuestionMarkEquals",
	QuestionMarkQuestionMark:     "QuestionMarkQuestionMark",
	Comma:                        "Comma",
	Colon:                        "Colon",
	Semicolon:                    "Semicolon",
	LeftParen:                    "LeftParen",
	RightParen:                   "RightParen",
	LeftBracket:                  "LeftBracket",
	RightBracket:                 "RightBracket",
	LeftBrace:                    "LeftBrace",
	RightBrace:                   "RightBrace",
}

var operatorSpellings = [numKinds]string{
	Dot: ".", TwoDots: "..", TwoDotsEquals: "..=",
	LessThan: "<", LessThanEquals: "<=", LessThanLessThan: "<<", LessThanLessThanEquals: "<<=",
	GreaterThan: ">", GreaterThanEquals: ">=", GreaterThanGreaterThan: ">>", GreaterThanGreaterThanEquals: ">>=",
	Equals: "=", EqualsEquals: "==", EqualsGreaterThan: "=>",
	Plus: "+", PlusEquals: "+=",
	Minus: "-", MinusEquals: "-=", MinusGreaterThan: "->",
	Star: "*", StarStar: "**", StarEquals: "*=",
	Slash: "/", SlashEquals: "/=",
	Percent: "%", PercentEquals: "%=",
	Ampersand: "&", AmpersandEquals: "&=",
	Pipe: "|", PipeEquals: "|=",
	Caret: "^", CaretEquals: "^=",
	ExclamationPoint: "!", ExclamationPointEquals: "!=",
	QuestionMark: "?", QuestionMarkEquals: "?=", QuestionMarkQuestionMark: "??",
	Comma: ",", Colon: ":", Semicolon: ";",
	LeftParen: "(", RightParen: ")",
	LeftBracket: "[", RightBracket: "]",
	LeftBrace: "{", RightBrace: "}",
}

// String returns the programmatic name of the kind, e.g. "LetKeyword".
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Spelling returns the source form of a keyword or operator kind and ""
// for kinds whose text varies.
func (k Kind) Spelling() string {
	switch {
	case k.IsKeyword():
		return keywordSpelling(k)
	case k.IsOperator():
		return operatorSpellings[k]
	default:
		return ""
	}
}

// IsKeyword reports whether k is one of the keyword kinds.
func (k Kind) IsKeyword() bool { return k >= firstKeyword && k <= lastKeyword }

// IsOperator reports whether k is an operator or punctuation kind.
func (k Kind) IsOperator() bool { return k >= firstOperator && k <= lastOperator }

// HasLiteral reports whether tokens of kind k must carry a literal.
func (k Kind) HasLiteral() bool {
	switch k {
	case Invalid, Identifier, IntegerLiteral, FloatLiteral, StringLiteral, Comment:
		return true
	default:
		return false
	}
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, bool) {
	for k := Kind(0); k < numKinds; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return Invalid, false
}
