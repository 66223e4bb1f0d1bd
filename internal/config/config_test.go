package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"

	textedit "github.com/arran4/golang-textedit"
	"github.com/arran4/golang-textedit/diff"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    func(*Config)
		wantErr bool
	}{
		{name: "empty file", content: "", want: func(*Config) {}},
		{
			name: "diff section",
			content: `
[diff]
algorithm = "legacy"
ignore_trim_whitespace = true
max_steps = 1000
compute_moves = false
`,
			want: func(c *Config) {
				c.Diff.Algorithm = "legacy"
				c.Diff.IgnoreTrimWhitespace = true
				c.Diff.MaxSteps = 1000
				c.Diff.ComputeMoves = false
			},
		},
		{
			name: "out of range values reset",
			content: `
[diff]
max_computation_time_ms = -5
[stack]
capacity = 0
`,
			want: func(*Config) {},
		},
		{
			name:    "unknown key is ignored",
			content: "[diff]\ncolour = \"blue\"\n",
			want:    func(*Config) {},
		},
		{name: "unknown algorithm", content: "[diff]\nalgorithm = \"patience\"\n", wantErr: true},
		{name: "unknown level", content: "[logger]\nlevel = \"loud\"\n", wantErr: true},
		{name: "syntax error", content: "[diff\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeConfig(t, tt.content))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			want := NewDefaultConfig()
			tt.want(want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(NewDefaultConfig(), got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyOverrides(t *testing.T) {
	var f Flags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Register(fs)
	if err := fs.Parse([]string{"--algorithm=legacy", "--max-steps=7", "--moves=false"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg := NewDefaultConfig()
	f.ApplyOverrides(cfg, fs)

	algo, err := cfg.Diff.Algo()
	if err != nil || algo != diff.Legacy {
		t.Errorf("Algo() = %v, %v; want legacy", algo, err)
	}
	want := textedit.Options{MaxComputationTimeMs: 5000, MaxSteps: 7}
	if diff := cmp.Diff(want, cfg.Diff.Options()); diff != "" {
		t.Errorf("Options() mismatch (-want +got):\n%s", diff)
	}
	if cfg.Logger.Level != "warn" {
		t.Errorf("unset loglevel flag changed level to %q", cfg.Logger.Level)
	}
	if got := f.ConfigPath(fs); got != DefaultPath() {
		t.Errorf("ConfigPath() = %q, want default", got)
	}
}
