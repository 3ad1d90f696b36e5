package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"slof/internal/diag"
	"slof/internal/observ"
	"slof/internal/source"
	"slof/internal/trace"
)

// SourceExt is the file extension TokenizeDir picks up.
const SourceExt = ".slof"

// ListSourceFiles returns the sorted list of *.slof files under dir.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TokenizeDirResult is the outcome for one file of a directory run.
type TokenizeDirResult struct {
	Path string
	*TokenizeResult
}

// Failed reports whether the file could not be loaded or tokenized.
func (r TokenizeDirResult) Failed() bool {
	return r.Err != nil || r.Bag.HasErrors()
}

// TokenizeDir tokenizes every *.slof file under dir in parallel. Results
// follow the sorted file order. Per-file failures are reported in the
// results; the error is reserved for walking the directory and for
// context cancellation.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	if opts.Timer == nil {
		opts.Timer = observ.NewTimer()
	}

	ctx, span := trace.Start(ctx, trace.ScopeDriver, "tokenize-dir")
	defer span.End(dir)

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Status: StatusQueued})
	}

	// Files are loaded up front so that FileIDs follow the sorted order.
	fileIDs := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	for i, path := range files {
		fileIDs[i], loadErrs[i] = loadFile(ctx, fileSet, path, opts)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine writes only its own index.
	results := make([]TokenizeDirResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErrs[i] != nil {
				bag := diag.NewBag(opts.maxDiagnostics())
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  loadErrs[i].Error(),
				})
				results[i] = TokenizeDirResult{Path: path, TokenizeResult: &TokenizeResult{FileSet: fileSet, Bag: bag}}
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErrs[i]})
				return nil
			}

			emit(opts.Progress, Event{File: path, Stage: StageLex, Status: StatusWorking})
			start := time.Now()
			res := tokenizeFile(gctx, fileSet, fileIDs[i], opts)
			results[i] = TokenizeDirResult{Path: path, TokenizeResult: res}

			evt := Event{File: path, Stage: StageLex, Status: StatusDone, Elapsed: time.Since(start)}
			switch {
			case res.Err != nil:
				evt.Status, evt.Err = StatusError, res.Err
			case res.Cached:
				evt.Status = StatusCached
			}
			emit(opts.Progress, evt)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	timing := opts.Timer.Report()
	for i := range results {
		results[i].Timing = timing
	}
	return fileSet, results, nil
}
