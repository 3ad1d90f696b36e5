package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"slof/internal/lexer"
	"slof/internal/project"
	"slof/internal/utf8stream"
)

// settings is slof.toml merged with command line overrides.
type settings struct {
	cfg     project.Config
	quiet   bool
	timings bool
}

// loadSettings reads --config or discovers slof.toml from the working
// directory and applies the global flags on top.
func loadSettings(cmd *cobra.Command) (settings, error) {
	flags := cmd.Root().PersistentFlags()
	configPath, err := flags.GetString("config")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg project.Config
	if configPath != "" {
		cfg, err = project.LoadConfig(configPath)
	} else {
		var wd string
		wd, err = os.Getwd()
		if err == nil {
			cfg, err = project.Discover(wd)
		}
	}
	if err != nil {
		return settings{}, err
	}

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get color flag: %w", err)
	}
	if colorFlag != "" {
		cfg.Output.Color = colorFlag
	}
	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}

	s := settings{cfg: cfg}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return settings{}, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return settings{}, fmt.Errorf("failed to get timings flag: %w", err)
	}
	return s, nil
}

// lexerOptions converts the [lexer] section.
func (s settings) lexerOptions() (lexer.Options, error) {
	mode, err := utf8stream.ParseMode(s.cfg.Lexer.UTF8)
	if err != nil {
		return lexer.Options{}, err
	}
	return lexer.Options{MaxTokenLength: s.cfg.Lexer.MaxTokenLength, UTF8: mode}, nil
}

// useColor resolves the color setting for output written to f.
func (s settings) useColor(f *os.File) bool {
	switch strings.ToLower(s.cfg.Output.Color) {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}
