package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"slof/internal/diag"
	"slof/internal/diagfmt"
	"slof/internal/driver"
	"slof/internal/observ"
	"slof/internal/project"
	"slof/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file.slof|dir]",
	Short: "Tokenize a slof source file or directory",
	Long: `Tokenize decodes a source file and breaks it down into tokens.
Given a directory, every *.slof file below it is tokenized in parallel.
Without an argument the project root is tokenized: the directory holding
slof.toml, or else the enclosing repository root.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (pretty|json)")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel files for directories (0 = GOMAXPROCS)")
	tokenizeUI := uiModeAuto
	tokenizeCmd.Flags().Var(&tokenizeUI, "ui", "progress UI for directories")
	tokenizeCmd.Flags().Bool("no-cache", false, "do not read or write the token cache")
}

type tokenizeFlags struct {
	format  string
	jobs    int
	ui      uiMode
	noCache bool
}

func readTokenizeFlags(cmd *cobra.Command, s settings) (tokenizeFlags, error) {
	var f tokenizeFlags
	var err error
	if f.format, err = cmd.Flags().GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	if f.format == "" {
		f.format = s.cfg.Output.Format
	}
	switch f.format {
	case "", "pretty":
		f.format = "pretty"
	case "json":
	default:
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	if f.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if f.jobs <= 0 {
		f.jobs = s.cfg.Driver.Jobs
	}
	uiFlag := cmd.Flags().Lookup("ui")
	if uiFlag == nil {
		return f, fmt.Errorf("missing ui flag")
	}
	f.ui = *uiFlag.Value.(*uiMode)
	if f.noCache, err = cmd.Flags().GetBool("no-cache"); err != nil {
		return f, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	return f, nil
}

func runTokenize(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	flags, err := readTokenizeFlags(cmd, s)
	if err != nil {
		return err
	}
	lexOpts, err := s.lexerOptions()
	if err != nil {
		return err
	}

	opts := driver.Options{
		Lexer: lexOpts,
		Jobs:  flags.jobs,
		Timer: observ.NewTimer(),
	}
	if s.cfg.CacheEnabled() && !flags.noCache {
		cache, cacheErr := driver.OpenTokenCache("slof")
		if cacheErr != nil {
			if !s.quiet {
				fmt.Fprintf(os.Stderr, "warning: token cache disabled: %v\n", cacheErr)
			}
		} else {
			opts.Cache = cache
		}
	}

	path, err := tokenizeTarget(args)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if info.IsDir() {
		err = tokenizeDir(cmd, path, s, flags, opts)
	} else {
		err = tokenizeSingle(cmd, path, s, flags, opts)
	}
	if s.timings {
		fmt.Fprint(os.Stderr, opts.Timer.Summary())
	}
	return err
}

// tokenizeTarget returns the explicit argument or the project root.
func tokenizeTarget(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	root, ok, err := project.FindProjectRoot(wd)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("no %s or repository root above %s; pass a file or directory", project.ConfigFileName, wd)
	}
	return root, nil
}

func tokenizeSingle(cmd *cobra.Command, path string, s settings, flags tokenizeFlags, opts driver.Options) error {
	res, err := driver.Tokenize(cmd.Context(), path, opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if flags.format == "json" {
		if res.Err != nil {
			if err := diagfmt.JSON(out, res.Bag, res.FileSet, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
				return err
			}
			return exitError{code: 1}
		}
		return diagfmt.FormatTokensJSON(out, res.Tokens, res.FileSet)
	}

	if res.Bag.HasErrors() || (res.Bag.HasWarnings() && !s.quiet) {
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:     s.useColor(os.Stderr),
			ShowNotes: true,
		})
	}
	if res.Err != nil {
		return exitError{code: 1}
	}
	if !s.quiet {
		printNormalizationNote(os.Stderr, res.File)
	}
	return diagfmt.FormatTokensPretty(out, res.Tokens, res.FileSet)
}

// printNormalizationNote tells that token text was read from the normalised
// content rather than the raw bytes.
func printNormalizationNote(w io.Writer, f *source.File) {
	if f == nil || !f.Flags.Normalized() {
		return
	}
	fmt.Fprintf(w, "note: %s: lexed after normalization (%s)\n", f.Path, f.Flags)
}

// dirFileOutput is one entry of `tokenize --format json <dir>`.
type dirFileOutput struct {
	Path        string                   `json:"path"`
	Cached      bool                     `json:"cached,omitempty"`
	Tokens      []diagfmt.TokenOutput    `json:"tokens,omitempty"`
	Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics,omitempty"`
}

func tokenizeDir(cmd *cobra.Command, dir string, s settings, flags tokenizeFlags, opts driver.Options) error {
	var (
		fileSet *source.FileSet
		results []driver.TokenizeDirResult
		err     error
	)
	if flags.format == "pretty" && !s.quiet && shouldUseTUI(flags.ui) {
		fileSet, results, err = runTokenizeDirWithUI(cmd.Context(), "tokenize "+dir, dir, opts)
	} else {
		fileSet, results, err = driver.TokenizeDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}

	out := cmd.OutOrStdout()
	if flags.format == "json" {
		if err := writeDirJSON(out, fileSet, results); err != nil {
			return err
		}
	} else {
		color := s.useColor(os.Stderr)
		for _, r := range results {
			printDirDiagnostics(os.Stderr, r, fileSet, color)
			if !s.quiet {
				printDirSummary(out, r)
			}
		}
	}
	if failed > 0 {
		if flags.format == "pretty" {
			fmt.Fprintf(os.Stderr, "%d of %d files failed\n", failed, len(results))
		}
		return exitError{code: 1}
	}
	return nil
}

// printDirDiagnostics prints the diagnostics of one file. Files that could
// not be loaded have no source to point into.
func printDirDiagnostics(w io.Writer, r driver.TokenizeDirResult, fs *source.FileSet, color bool) {
	if r.Bag.Len() == 0 {
		return
	}
	if r.File == nil {
		for _, d := range r.Bag.Items() {
			fmt.Fprintf(w, "%s: %s[%s]: %s\n", r.Path, d.Severity.Label(), d.Code.ID(), d.Message)
		}
		return
	}
	diagfmt.Pretty(w, r.Bag, fs, diagfmt.PrettyOpts{Color: color, ShowNotes: true})
}

func printDirSummary(w io.Writer, r driver.TokenizeDirResult) {
	switch {
	case r.Failed():
		fmt.Fprintf(w, "%s: failed\n", r.Path)
	case r.Cached:
		fmt.Fprintf(w, "%s: %d tokens (cached)\n", r.Path, len(r.Tokens))
	default:
		fmt.Fprintf(w, "%s: %d tokens\n", r.Path, len(r.Tokens))
	}
}

func writeDirJSON(w io.Writer, fs *source.FileSet, results []driver.TokenizeDirResult) error {
	files := make([]dirFileOutput, 0, len(results))
	for _, r := range results {
		entry := dirFileOutput{Path: r.Path, Cached: r.Cached}
		if r.File != nil {
			entry.Tokens = diagfmt.BuildTokensOutput(r.Tokens, fs)
			entry.Diagnostics = diagfmt.BuildDiagnosticsOutput(r.Bag, fs, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
			}).Diagnostics
		} else {
			for _, d := range r.Bag.Items() {
				entry.Diagnostics = append(entry.Diagnostics, unplacedDiagnostic(r.Path, d))
			}
		}
		files = append(files, entry)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"files": files})
}

func unplacedDiagnostic(path string, d diag.Diagnostic) diagfmt.DiagnosticJSON {
	return diagfmt.DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Message:  d.Message,
		Location: diagfmt.LocationJSON{File: path},
	}
}
