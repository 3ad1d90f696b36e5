package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"slof/internal/utf8stream"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] <file>",
	Short: "Print the codepoints of a UTF-8 file",
	Long: `Decode runs the UTF-8 decoding stream over a file and prints every
codepoint with the byte offset of its lead byte.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	mode, err := utf8stream.ParseMode(s.cfg.Lexer.UTF8)
	if err != nil {
		return err
	}

	path := args[0]
	// #nosec G304 -- path is provided by the user
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	in, err := utf8stream.New(content, mode)
	if err != nil {
		var derr *utf8stream.DecodeError
		if errors.As(err, &derr) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, derr)
			return exitError{code: 1}
		}
		return err
	}

	out := cmd.OutOrStdout()
	for !in.EOS() {
		off := in.ByteOffset()
		cp := in.ConsumeUnchecked()
		fmt.Fprintf(out, "%8d  %-9s %s\n", off, cp, printable(cp))
	}
	if off, ok := in.Truncated(); ok && !s.quiet {
		fmt.Fprintf(os.Stderr, "%s: decoding stopped at byte %d\n", path, off)
	}
	return nil
}

// printable quotes cp the way Go quotes runes, so control characters and
// invalid values stay on one line.
func printable(cp utf8stream.Codepoint) string {
	return strconv.QuoteRune(cp.Rune())
}
