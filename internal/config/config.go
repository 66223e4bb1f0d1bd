// Package config loads the textedit command's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	textedit "github.com/arran4/golang-textedit"
	"github.com/arran4/golang-textedit/diff"
	"github.com/arran4/golang-textedit/editstack"
	"github.com/arran4/golang-textedit/internal/logger"
)

const (
	AppName               = "textedit"
	DefaultConfigFileName = "config.toml"
)

// Config holds the command's combined configuration.
type Config struct {
	Diff   DiffConfig   `toml:"diff"`
	Logger LoggerConfig `toml:"logger"`
	Stack  StackConfig  `toml:"stack"`
}

// DiffConfig mirrors textedit.Options plus the algorithm choice.
type DiffConfig struct {
	Algorithm            string `toml:"algorithm"`
	IgnoreTrimWhitespace bool   `toml:"ignore_trim_whitespace"`
	MaxComputationTimeMs int    `toml:"max_computation_time_ms"`
	MaxSteps             int    `toml:"max_steps"`
	ComputeMoves         bool   `toml:"compute_moves"`
	Mmap                 bool   `toml:"mmap"`
}

type LoggerConfig struct {
	Level string `toml:"level"`
}

type StackConfig struct {
	Capacity int `toml:"capacity"`
}

// NewDefaultConfig creates a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Diff: DiffConfig{
			Algorithm:            diff.Default.String(),
			MaxComputationTimeMs: 5000,
			ComputeMoves:         true,
		},
		Logger: LoggerConfig{Level: "warn"},
		Stack:  StackConfig{Capacity: editstack.DefaultCapacity},
	}
}

// DefaultPath returns the per-user config file location, or "" when there is none.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// Load reads the file at path over the defaults and validates the result. A missing file
// leaves the defaults in place; an empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	metadata, err := toml.DecodeFile(path, c)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debugf("Config file not found: %s", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", path, undecoded)
	}
	logger.Debugf("Loaded configuration from: %s", path)
	return nil
}

// Validate rejects unknown names and resets out of range numbers to their defaults.
func (c *Config) Validate() error {
	defaults := NewDefaultConfig()
	if _, err := diff.ParseAlgorithm(c.Diff.Algorithm); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := logger.ParseLevel(c.Logger.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Diff.MaxComputationTimeMs < 0 {
		c.Diff.MaxComputationTimeMs = defaults.Diff.MaxComputationTimeMs
	}
	if c.Diff.MaxSteps < 0 {
		c.Diff.MaxSteps = defaults.Diff.MaxSteps
	}
	if c.Stack.Capacity <= 0 {
		c.Stack.Capacity = defaults.Stack.Capacity
	}
	return nil
}

// Options returns the diff options the config describes.
func (c DiffConfig) Options() textedit.Options {
	return textedit.Options{
		IgnoreTrimWhitespace: c.IgnoreTrimWhitespace,
		MaxComputationTimeMs: c.MaxComputationTimeMs,
		MaxSteps:             c.MaxSteps,
		ComputeMoves:         c.ComputeMoves,
	}
}

// Algo returns the configured algorithm.
func (c DiffConfig) Algo() (diff.Algorithm, error) {
	return diff.ParseAlgorithm(c.Algorithm)
}

// ReadOptions returns the file reading options the config describes.
func (c DiffConfig) ReadOptions() []textedit.ReadOption {
	return []textedit.ReadOption{textedit.WithMmap(c.Mmap)}
}
