// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned for configuration values that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config represents the configuration of a render run.
type Config struct {
	// Surface size; zero means "size of the image", or the fallback size
	// when there is no image.
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`

	// Input/Output
	Image   string `yaml:"image" toml:"image"`
	Output  string `yaml:"output" toml:"output"`
	Quality int    `yaml:"quality" toml:"quality"`

	// Drawing
	Color string `yaml:"color" toml:"color"`
	Items Items  `yaml:"items" toml:"items"`

	// Debug
	Debug    bool   `yaml:"debug" toml:"debug"`
	DebugDir string `yaml:"debug_dir" toml:"debug_dir"`
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// Fallback surface size when neither a size nor an image is given.
const (
	FallbackWidth  = 640
	FallbackHeight = 480
)

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Quality:  90,
		Color:    "#64aafaaa",
		DebugDir: "./debug",
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration on top of Defaults. Files ending in
// .toml are read as TOML, everything else as YAML.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the values that cannot be corrected later.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("%w: quality %d", ErrInvalid, c.Quality)
	}
	if _, err := ParseColor(c.Color); err != nil {
		return err
	}
	return nil
}

// StrokeColor returns the parsed Color.
func (c Config) StrokeColor() (color.NRGBA, error) {
	return ParseColor(c.Color)
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseColor(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: color %q", ErrInvalid, hex)
	}
	if len(s) == 6 {
		s += "ff"
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: color %q", ErrInvalid, hex)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
