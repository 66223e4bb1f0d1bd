package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arran4/golang-textedit/internal/config"
	"github.com/arran4/golang-textedit/internal/logger"
)

// rootFlags carries the persistent flags and the configuration they produce.
type rootFlags struct {
	config.Flags
	cfg *config.Config
}

// load reads the config file, applies the flags set on the command line and starts logging.
func (f *rootFlags) load(cmd *cobra.Command) error {
	fs := cmd.Flags()
	cfg, err := config.Load(f.ConfigPath(fs))
	if err != nil {
		return err
	}
	f.ApplyOverrides(cfg, fs)
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := logger.ParseLevel(cfg.Logger.Level)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger.Init(level, os.Stderr)
	f.cfg = cfg
	return nil
}
