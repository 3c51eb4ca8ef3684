package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load returns the default configuration overlaid with the file at path
// (if path is not empty) and then with environment variables.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile loads configuration from a YAML or TOML file, chosen by
// extension.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml", "":
		err = yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("config file %s: %w", path, ErrUnknownFileType)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.expandEnv()
	return nil
}

// expandEnv substitutes ${VAR} references in the string settings. It runs
// after decoding, so substituted text is never parsed as YAML or TOML.
func (c *Config) expandEnv() {
	fields := []*string{
		&c.TintColor,
		&c.BackgroundColor,
		&c.Gradient.X1,
		&c.Gradient.Y1,
		&c.Gradient.X2,
		&c.Gradient.Y2,
		&c.Gradient.Offset1,
		&c.Gradient.Offset2,
		&c.Gradient.Color1,
		&c.Gradient.Color2,
		&c.Label.Format,
		&c.Label.Color,
		&c.Label.FontSize,
		&c.Output.Format,
		&c.Output.Path,
	}
	for _, f := range fields {
		*f = os.ExpandEnv(*f)
	}
}

// loadFromEnv loads configuration from environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv(EnvFill); v != "" {
		fill, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFill, err)
		}
		cfg.Fill = fill
	}
	if v := os.Getenv(EnvSize); v != "" {
		size, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSize, err)
		}
		cfg.Size = size
	}
	return nil
}

// Validate validates the configuration. The library draws whatever it is
// given; the CLI refuses input that cannot produce an image.
func (c *Config) Validate() error {
	if !(c.Size > 0) || math.IsInf(c.Size, 0) {
		return ErrInvalidSize
	}
	if c.Width < 0 || c.BackgroundWidth < 0 || math.IsNaN(c.Width) {
		return ErrInvalidWidth
	}
	if math.Max(c.Width, c.BackgroundWidth)*2 > c.Size {
		return ErrInvalidWidth
	}
	switch c.Output.Format {
	case FormatSVG, FormatPNG:
	default:
		return ErrUnknownFormat
	}
	return nil
}

// Error types for configuration validation.
type ConfigError string

func (e ConfigError) Error() string {
	return string(e)
}

const (
	ErrInvalidSize     ConfigError = "invalid size: must be a positive number"
	ErrInvalidWidth    ConfigError = "invalid width: strokes must be non-negative and at most half the size"
	ErrUnknownFormat   ConfigError = "unknown output format: use svg or png"
	ErrUnknownFileType ConfigError = "unknown config file type: use .yaml, .yml or .toml"
)
