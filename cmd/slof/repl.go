package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"slof/internal/diag"
	"slof/internal/diagfmt"
	"slof/internal/lexer"
	"slof/internal/source"
)

const (
	replHistoryFile = ".slof_history"
	promptMain      = "slof> "
	promptCont      = "  ... "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Tokenize lines interactively",
	Long: `Repl reads source text from the terminal and prints its tokens.
A line ending inside a string literal continues on the next prompt.
Type :quit or press Ctrl-D to exit.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	lexOpts, err := s.lexerOptions()
	if err != nil {
		return err
	}
	red := color.New(color.FgRed).SprintFunc()
	if !s.useColor(os.Stderr) {
		red = fmt.Sprint
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, replHistoryFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	out := cmd.OutOrStdout()
	fs := source.NewFileSet()
	for n := 1; ; n++ {
		src, ok := readUntilTerminated(ln, lexOpts)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		trimmed := strings.TrimSpace(src)
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, ":"):
			if trimmed == ":quit" || trimmed == ":q" {
				return nil
			}
			fmt.Fprintln(out, "unknown command. Type :quit to exit.")
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		fileID := fs.AddVirtual(fmt.Sprintf("<repl:%d>", n), []byte(src))
		bag := diag.NewBag(1)
		opts := lexOpts
		opts.File = fileID
		opts.Reporter = diag.BagReporter{Bag: bag}
		ts, err := lexer.TokenizeBytes([]byte(src), opts)
		if err != nil {
			var sb strings.Builder
			diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{Color: s.useColor(os.Stderr)})
			if sb.Len() == 0 {
				sb.WriteString(red(err.Error()) + "\n")
			}
			fmt.Fprint(os.Stderr, sb.String())
			continue
		}
		if err := diagfmt.FormatTokensPlain(out, ts.Tokens()); err != nil {
			return err
		}
	}
}

// readUntilTerminated keeps prompting while the collected text ends inside
// a string literal.
func readUntilTerminated(ln *liner.State, opts lexer.Options) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			if b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		}
		if err != nil {
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !unterminatedString(b.String(), opts) {
			return b.String(), true
		}
	}
}

func unterminatedString(src string, opts lexer.Options) bool {
	opts.Reporter = nil
	_, err := lexer.TokenizeBytes([]byte(src), opts)
	var lexErr *lexer.Error
	return errors.As(err, &lexErr) && lexErr.Code == diag.LexUnterminatedString
}
