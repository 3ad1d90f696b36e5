package project

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config mirrors slof.toml. Zero values mean "not set".
type Config struct {
	Lexer  LexerConfig  `toml:"lexer"`
	Output OutputConfig `toml:"output"`
	Driver DriverConfig `toml:"driver"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`
}

type LexerConfig struct {
	MaxTokenLength int    `toml:"max_token_length"`
	UTF8           string `toml:"utf8"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type DriverConfig struct {
	Jobs  int   `toml:"jobs"`
	Cache *bool `toml:"cache"`
}

// Default returns the configuration used without slof.toml.
func Default() Config {
	cache := true
	return Config{
		Lexer:  LexerConfig{UTF8: "strict"},
		Output: OutputConfig{Format: "pretty", Color: "auto"},
		Driver: DriverConfig{Cache: &cache},
	}
}

// CacheEnabled reports the [driver].cache setting, true when unset.
func (c Config) CacheEnabled() bool {
	return c.Driver.Cache == nil || *c.Driver.Cache
}

// LoadConfig decodes path over the defaults and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Discover finds slof.toml above startDir and loads it, falling back to
// Default when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return LoadConfig(path)
}

func (c Config) Validate() error {
	if c.Lexer.MaxTokenLength < 0 {
		return fmt.Errorf("[lexer].max_token_length must not be negative, got %d", c.Lexer.MaxTokenLength)
	}
	if !slices.Contains([]string{"", "strict", "legacy"}, c.Lexer.UTF8) {
		return fmt.Errorf("[lexer].utf8 must be strict or legacy, got %q", c.Lexer.UTF8)
	}
	if !slices.Contains([]string{"", "pretty", "json"}, c.Output.Format) {
		return fmt.Errorf("[output].format must be pretty or json, got %q", c.Output.Format)
	}
	if !slices.Contains([]string{"", "auto", "on", "off"}, c.Output.Color) {
		return fmt.Errorf("[output].color must be auto, on or off, got %q", c.Output.Color)
	}
	if c.Driver.Jobs < 0 {
		return fmt.Errorf("[driver].jobs must not be negative, got %d", c.Driver.Jobs)
	}
	return nil
}
