package config

import (
	"github.com/spf13/pflag"

	"github.com/arran4/golang-textedit/internal/logger"
)

// Flags holds command line overrides. Only flags the user set are applied.
type Flags struct {
	ConfigFilePath       string
	LogLevel             string
	Algorithm            string
	IgnoreTrimWhitespace bool
	MaxComputationTimeMs int
	MaxSteps             int
	ComputeMoves         bool
	Mmap                 bool
}

// Register defines the persistent flags on fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.ConfigFilePath, "config", "", "Path to TOML configuration file (default "+DefaultPath()+")")
	fs.StringVar(&f.LogLevel, "loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	fs.StringVar(&f.Algorithm, "algorithm", "", "Diff algorithm (default, legacy) - Overrides config file")
	fs.BoolVar(&f.IgnoreTrimWhitespace, "ignore-trim-whitespace", false, "Ignore leading and trailing whitespace changes")
	fs.IntVar(&f.MaxComputationTimeMs, "max-time", 0, "Line alignment time budget in milliseconds, 0 for none")
	fs.IntVar(&f.MaxSteps, "max-steps", 0, "Line alignment step budget, 0 for none")
	fs.BoolVar(&f.ComputeMoves, "moves", false, "Detect moved blocks")
	fs.BoolVar(&f.Mmap, "mmap", false, "Read files through mmap")
}

// ConfigPath returns the config file to load: the flag value, or the default location.
func (f *Flags) ConfigPath(fs *pflag.FlagSet) string {
	if fs.Changed("config") {
		return f.ConfigFilePath
	}
	return DefaultPath()
}

// ApplyOverrides copies the flags that were set on fs into cfg.
func (f *Flags) ApplyOverrides(cfg *Config, fs *pflag.FlagSet) {
	fs.Visit(func(fl *pflag.Flag) {
		logger.Debugf("Applying flag override: %s=%s", fl.Name, fl.Value)
		switch fl.Name {
		case "loglevel":
			cfg.Logger.Level = f.LogLevel
		case "algorithm":
			cfg.Diff.Algorithm = f.Algorithm
		case "ignore-trim-whitespace":
			cfg.Diff.IgnoreTrimWhitespace = f.IgnoreTrimWhitespace
		case "max-time":
			cfg.Diff.MaxComputationTimeMs = f.MaxComputationTimeMs
		case "max-steps":
			cfg.Diff.MaxSteps = f.MaxSteps
		case "moves":
			cfg.Diff.ComputeMoves = f.ComputeMoves
		case "mmap":
			cfg.Diff.Mmap = f.Mmap
		}
	})
}
