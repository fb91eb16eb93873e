package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/depaudit/pkg/errors"
	"github.com/matzehuels/depaudit/pkg/integrations/npm"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Registry.URL != npm.DefaultRegistry {
		t.Errorf("URL = %q", cfg.Registry.URL)
	}
	if cfg.Registry.Timeout.Duration != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Registry.Timeout)
	}
	if cfg.Versions.Concurrency != 10 {
		t.Errorf("Concurrency = %d, want 10", cfg.Versions.Concurrency)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[registry]
url = "https://npm.example.com"
timeout = "3s"

[peers]
skip_optional = true
ignore = ["typescript", "@types/node"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Registry.URL != "https://npm.example.com" {
		t.Errorf("URL = %q", cfg.Registry.URL)
	}
	if cfg.Registry.Timeout.Duration != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Registry.Timeout)
	}
	if cfg.Registry.Retries != 1 || cfg.Registry.BreakerThreshold != 5 {
		t.Errorf("unset registry keys lost their defaults: %+v", cfg.Registry)
	}
	if cfg.Versions.Concurrency != 10 {
		t.Errorf("Concurrency = %d, want default 10", cfg.Versions.Concurrency)
	}
	if !cfg.Peers.SkipOptional || len(cfg.Peers.Ignore) != 2 {
		t.Errorf("Peers = %+v", cfg.Peers)
	}

	opts := cfg.ClientOptions()
	if opts.Timeout != 3*time.Second || opts.Attempts != 1 || opts.BreakerThreshold != 5 {
		t.Errorf("ClientOptions() = %+v", opts)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"syntax", "[registry\nurl = 1", errors.ErrCodeInvalidConfig},
		{"bad duration", "[registry]\ntimeout = \"soon\"", errors.ErrCodeInvalidConfig},
		{"bad url", "[registry]\nurl = \"ftp://mirror\"", errors.ErrCodeInvalidConfig},
		{"zero concurrency", "[versions]\nconcurrency = 0", errors.ErrCodeInvalidConfig},
		{"zero retries", "[registry]\nretries = 0", errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadDir(t *testing.T) {
	cfg, err := LoadDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadDir(empty) error: %v", err)
	}
	if cfg.Registry.URL != npm.DefaultRegistry {
		t.Errorf("LoadDir(empty) did not return defaults")
	}

	path := writeConfig(t, "[versions]\nconcurrency = 4\n")
	cfg, err = LoadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if cfg.Versions.Concurrency != 4 {
		t.Errorf("Concurrency = %d, want 4", cfg.Versions.Concurrency)
	}
}
