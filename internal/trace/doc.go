// Package trace is the leveled tracing facility of the slof tools.
//
// The driver opens spans around every file it processes and around each pass
// over that file (load, decode, lex). The lexer core never traces.
//
// Enable tracing from the command line:
//
//	slof tokenize --trace=- --trace-level=detail src/
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only error points
//   - LevelPhase: driver and per-file spans
//   - LevelDetail: per-pass spans as well
//   - LevelDebug: everything
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "lex", parentID)
//	defer span.End("")
package trace
