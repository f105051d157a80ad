// Package config loads the scanner, parser and output settings of the sexpr
// command from a TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/xiam/sexpr-parser/lexer"
	"github.com/xiam/sexpr-parser/parser"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidValue      = errors.New("invalid config value")
)

// Unknown character policies
const (
	UnknownSkip   = "skip"
	UnknownReject = "reject"
)

// Output formats
const (
	FormatArray = "array"
	FormatSexpr = "sexpr"
	FormatTree  = "tree"
)

// Config holds the complete command configuration
type Config struct {
	Scanner ScannerConfig `toml:"scanner" yaml:"scanner"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Log     LogConfig     `toml:"log" yaml:"log"`
}

// ScannerConfig holds lexer settings
type ScannerConfig struct {
	Unknown string `toml:"unknown" yaml:"unknown"`
}

// ParserConfig holds parser settings
type ParserConfig struct {
	Strict bool `toml:"strict" yaml:"strict"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Verbose bool `toml:"verbose" yaml:"verbose"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Scanner: ScannerConfig{Unknown: UnknownSkip},
		Output:  OutputConfig{Format: FormatArray},
	}
}

// Load reads a configuration file. The format is picked from the extension:
// .toml, .yaml or .yml. Keys missing from the file keep their default value.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}

	case ".yaml", ".yml":
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every enumerated setting holds a known value
func (c *Config) Validate() error {
	switch c.Scanner.Unknown {
	case UnknownSkip, UnknownReject:
	default:
		return fmt.Errorf("%w: scanner.unknown = %q", ErrInvalidValue, c.Scanner.Unknown)
	}

	switch c.Output.Format {
	case FormatArray, FormatSexpr, FormatTree:
	default:
		return fmt.Errorf("%w: output.format = %q", ErrInvalidValue, c.Output.Format)
	}

	return nil
}

// LexerOptions maps the scanner section to lexer options
func (c *Config) LexerOptions() lexer.Options {
	opts := lexer.Options{Unknown: lexer.SkipUnknown}
	if c.Scanner.Unknown == UnknownReject {
		opts.Unknown = lexer.RejectUnknown
	}
	return opts
}

// ParserOptions maps the parser and scanner sections to parser options
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{
		Strict: c.Parser.Strict,
		Lexer:  c.LexerOptions(),
	}
}
