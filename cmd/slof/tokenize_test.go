package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slof/internal/diag"
	"slof/internal/driver"
	"slof/internal/project"
)

func TestWriteDirJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.slof"), []byte("let x = 1;"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.slof"), []byte("@"), 0o600); err != nil {
		t.Fatal(err)
	}

	fs, results, err := driver.TokenizeDir(t.Context(), dir, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := writeDirJSON(&buf, fs, results); err != nil {
		t.Fatal(err)
	}

	var out struct {
		Files []struct {
			Path        string            `json:"path"`
			Tokens      []json.RawMessage `json:"tokens"`
			Diagnostics []struct {
				Code string `json:"code"`
			} `json:"diagnostics"`
		} `json:"files"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(out.Files))
	}
	if len(out.Files[0].Tokens) != 5 || len(out.Files[0].Diagnostics) != 0 {
		t.Errorf("a.slof: unexpected output %+v", out.Files[0])
	}
	if len(out.Files[1].Diagnostics) != 1 || out.Files[1].Diagnostics[0].Code != diag.LexUnknownChar.ID() {
		t.Errorf("b.slof: unexpected output %+v", out.Files[1])
	}
}

func TestPrintDirDiagnosticsUnloadedFile(t *testing.T) {
	bag := diag.NewBag(1)
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.IOLoadFileError, Message: "permission denied"})
	r := driver.TokenizeDirResult{Path: "x.slof", TokenizeResult: &driver.TokenizeResult{Bag: bag}}

	var buf bytes.Buffer
	printDirDiagnostics(&buf, r, nil, false)
	want := "x.slof: error[" + diag.IOLoadFileError.ID() + "]: permission denied\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestSettingsLexerOptions(t *testing.T) {
	cfg := project.Default()
	cfg.Lexer.UTF8 = "legacy"
	cfg.Lexer.MaxTokenLength = 32
	opts, err := settings{cfg: cfg}.lexerOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.MaxTokenLength != 32 || !strings.Contains(opts.Fingerprint(), "legacy") {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestPrintNormalizationNote(t *testing.T) {
	dir := t.TempDir()
	crlf := filepath.Join(dir, "crlf.slof")
	if err := os.WriteFile(crlf, []byte("let s = \"a\r\nb\"\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	res, err := driver.Tokenize(t.Context(), crlf, driver.Options{})
	if err != nil || res.Err != nil {
		t.Fatalf("Tokenize: %v / %v", err, res.Err)
	}
	if got := res.Tokens[3].Text(); got != "a\nb" {
		t.Errorf("string literal = %q", got)
	}

	var buf bytes.Buffer
	printNormalizationNote(&buf, res.File)
	if !strings.Contains(buf.String(), "lexed after normalization (crlf)") {
		t.Errorf("unexpected note %q", buf.String())
	}

	buf.Reset()
	printNormalizationNote(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("nil file must print nothing, got %q", buf.String())
	}
}

func TestTokenizeTargetExplicit(t *testing.T) {
	got, err := tokenizeTarget([]string{"x.slof"})
	if err != nil || got != "x.slof" {
		t.Errorf("got %q, %v", got, err)
	}
}
