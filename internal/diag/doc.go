// Package diag defines the diagnostic model shared by the lexer, the driver
// and the CLI.
//
// A Diagnostic carries a Severity, a stable Code, a short message and a
// primary source.Span. Producers emit through a Reporter; BagReporter collects
// into a Bag, which supports limits, sorting and deduplication. Rendering
// lives in internal/diagfmt; this package does no formatting or IO beyond
// the one-line Short form used in tests and the repl.
package diag
