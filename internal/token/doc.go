// Package token defines the token model of the slof front end.
// Invariants:
//   - Token.Literal is non-nil exactly for Identifier, IntegerLiteral,
//     FloatLiteral, StringLiteral, Comment and Invalid; keywords and
//     operators never carry one.
//   - Invalid tokens carry a diagnostic message as their Text literal,
//     never source text.
//   - The keyword table is derived from the keyword kinds' names at package
//     initialisation and is read-only afterwards.
//   - Token.Span covers the token's bytes in the source file (quotes of a
//     string literal included).
package token
