package project

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// TokenizerConfig — секция [tokenizer] в pycst.toml.
type TokenizerConfig struct {
	EmitCommentLines bool `toml:"emit_comment_lines"`
	MaxTokenLen      int  `toml:"max_token_len"`
	MaxDiagnostics   int  `toml:"max_diagnostics"`
}

// OutputConfig — секция [output] в pycst.toml.
type OutputConfig struct {
	Format         string `toml:"format"` // pretty | json
	Color          string `toml:"color"`  // auto | always | never
	ShowWhitespace bool   `toml:"show_whitespace"`
}

// Config объединяет настройки проекта.
type Config struct {
	Tokenizer TokenizerConfig `toml:"tokenizer"`
	Output    OutputConfig    `toml:"output"`
}

// ErrBadConfig indicates an invalid configuration value.
var ErrBadConfig = errors.New("invalid configuration")

// DefaultConfig возвращает конфигурацию по умолчанию.
func DefaultConfig() Config {
	return Config{
		Tokenizer: TokenizerConfig{
			MaxDiagnostics: 64,
		},
		Output: OutputConfig{
			Format: "pretty",
			Color:  "auto",
		},
	}
}

// LoadConfig parses pycst.toml at path. Отсутствующие поля берут значения
// по умолчанию.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigFrom ищет pycst.toml вверх от startDir; если манифеста нет,
// возвращает значения по умолчанию.
func LoadConfigFrom(startDir string) (Config, string, error) {
	path, ok, err := FindPycstToml(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadConfig(path)
	return cfg, path, err
}

func (c Config) validate() error {
	switch c.Output.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("%w: output.format must be pretty or json, got %q",
			ErrBadConfig, c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: output.color must be auto, always or never, got %q",
			ErrBadConfig, c.Output.Color)
	}
	if c.Tokenizer.MaxTokenLen < 0 {
		return fmt.Errorf("%w: tokenizer.max_token_len must be non-negative", ErrBadConfig)
	}
	if c.Tokenizer.MaxDiagnostics < 0 {
		return fmt.Errorf("%w: tokenizer.max_diagnostics must be non-negative", ErrBadConfig)
	}
	return nil
}
