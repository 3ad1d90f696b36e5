// Package driver runs the lexer over files and directories on behalf of
// the command line tools.
package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"slof/internal/diag"
	"slof/internal/lexer"
	"slof/internal/observ"
	"slof/internal/project"
	"slof/internal/source"
	"slof/internal/token"
	"slof/internal/trace"
)

// Options configures a driver run.
type Options struct {
	// Lexer is applied to every file; Reporter and File are set per file.
	Lexer          lexer.Options
	MaxDiagnostics int
	Jobs           int          // TokenizeDir parallelism, 0 = GOMAXPROCS
	Cache          *TokenCache  // nil disables caching
	Progress       ProgressSink // may be nil
	Timer          *observ.Timer
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics > 0 {
		return o.MaxDiagnostics
	}
	return 16
}

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	// Err is the lexical error that stopped tokenization, if any.
	Err    *lexer.Error
	Cached bool
	Timing observ.Report
}

// Tokenize loads and tokenizes one file. The returned error is reserved for
// I/O failures; lexical errors are reported in the result.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	if opts.Timer == nil {
		opts.Timer = observ.NewTimer()
	}
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "tokenize")
	defer span.End("")

	fs := source.NewFileSet()
	fileID, err := loadFile(ctx, fs, path, opts)
	if err != nil {
		return nil, err
	}

	res := tokenizeFile(ctx, fs, fileID, opts)
	res.Timing = opts.Timer.Report()
	return res, nil
}

func loadFile(ctx context.Context, fs *source.FileSet, path string, opts Options) (source.FileID, error) {
	_, span := trace.Start(ctx, trace.ScopePass, "load")
	defer span.End(path)

	idx := opts.Timer.Begin(string(StageLoad))
	fileID, err := fs.Load(path)
	opts.Timer.End(idx, "")
	if err != nil {
		trace.Point(ctx, trace.KindError, trace.ScopePass, "load", err.Error())
		return 0, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return fileID, nil
}

// tokenizeFile runs decode and lex over a loaded file, consulting the cache
// first. It never returns nil.
func tokenizeFile(ctx context.Context, fs *source.FileSet, fileID source.FileID, opts Options) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.maxDiagnostics())
	res := &TokenizeResult{FileSet: fs, File: file, Bag: bag}

	ctx, span := trace.Start(ctx, trace.ScopeFile, "file:"+file.Path)
	defer func() {
		span.WithExtra("tokens", strconv.Itoa(len(res.Tokens)))
		span.WithExtra("cached", strconv.FormatBool(res.Cached))
		status := "ok"
		if res.Err != nil {
			status = res.Err.Code.ID()
		}
		span.End(status)
	}()

	lexOpts := opts.Lexer
	lexOpts.File = fileID
	lexOpts.Reporter = diag.BagReporter{Bag: bag}
	fingerprint := lexOpts.Fingerprint()
	content := project.Digest(file.Hash)

	if toks, ok, err := opts.Cache.Get(content, fingerprint, fileID); err != nil {
		bag.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: diag.IOCacheError, Message: err.Error(),
			Primary: source.Span{File: fileID}})
	} else if ok {
		res.Tokens, res.Cached = toks, true
		return res
	}

	ts, err := runPasses(ctx, file.Content, lexOpts, opts.Timer)
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			res.Err = lexErr
		} else {
			res.Err = &lexer.Error{Code: diag.LexMalformedUTF8, Span: source.Span{File: fileID}, Message: err.Error()}
			bag.Add(res.Err.Diagnostic())
		}
		trace.Point(ctx, trace.KindError, trace.ScopeFile, "file:"+file.Path, res.Err.Message)
		return res
	}
	res.Tokens = ts.Tokens()

	if err := opts.Cache.Put(content, fingerprint, res.Tokens); err != nil {
		bag.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: diag.IOCacheError, Message: err.Error(),
			Primary: source.Span{File: fileID}})
	}
	return res
}

// runPasses decodes and lexes src under separate trace spans and timer phases.
func runPasses(ctx context.Context, src []byte, opts lexer.Options, timer *observ.Timer) (*token.Stream, error) {
	_, span := trace.Start(ctx, trace.ScopePass, string(StageDecode))
	start := time.Now()
	in, err := lexer.Decode(src, opts)
	timer.Add(string(StageDecode), time.Since(start), "")
	if err != nil {
		span.End("error")
		return nil, err
	}
	span.WithExtra("codepoints", strconv.Itoa(in.Len())).End("")

	_, span = trace.Start(ctx, trace.ScopePass, string(StageLex))
	start = time.Now()
	ts, err := lexer.New(in, opts).Run()
	timer.Add(string(StageLex), time.Since(start), "")
	if err != nil {
		span.End("error")
		return nil, err
	}
	span.WithExtra("tokens", strconv.Itoa(ts.Len())).End("")
	return ts, nil
}
