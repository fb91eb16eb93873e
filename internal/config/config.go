// Package config loads depaudit settings from a TOML file.
//
// Settings are resolved in three layers: built-in defaults, then the file
// (depaudit.toml in the workspace root, or an explicit path), then command
// line flags applied by the CLI. Keys missing from the file keep their
// defaults.
//
//	[registry]
//	url = "https://registry.npmjs.org"
//	timeout = "10s"
//	retries = 1
//	breaker_threshold = 5
//
//	[versions]
//	concurrency = 10
//
//	[peers]
//	skip_optional = true
//	ignore = ["typescript"]
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/depaudit/pkg/errors"
	"github.com/matzehuels/depaudit/pkg/integrations"
	"github.com/matzehuels/depaudit/pkg/integrations/npm"
	"github.com/matzehuels/depaudit/pkg/versions"
)

// FileName is the config file looked up in the workspace root.
const FileName = "depaudit.toml"

// Config holds all settings.
type Config struct {
	Registry Registry `toml:"registry"`
	Versions Versions `toml:"versions"`
	Peers    Peers    `toml:"peers"`
}

type Registry struct {
	URL              string   `toml:"url"`
	Timeout          Duration `toml:"timeout"`
	Retries          int      `toml:"retries"`
	BreakerThreshold int      `toml:"breaker_threshold"`
}

type Versions struct {
	Concurrency int `toml:"concurrency"`
}

type Peers struct {
	SkipOptional bool     `toml:"skip_optional"`
	Ignore       []string `toml:"ignore"`
}

// Duration is a time.Duration read from strings like "10s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Registry: Registry{
			URL:              npm.DefaultRegistry,
			Timeout:          Duration{integrations.DefaultTimeout},
			Retries:          1,
			BreakerThreshold: 5,
		},
		Versions: Versions{Concurrency: versions.DefaultConcurrency},
	}
}

// Load reads the config at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s not found", path)
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return cfg, cfg.Validate()
}

// LoadDir reads dir/depaudit.toml if it exists and returns the defaults
// otherwise.
func LoadDir(dir string) (Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := errors.ValidateURL(c.Registry.URL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "registry.url")
	}
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Registry.Timeout.Duration > 0, "registry.timeout must be positive"},
		{c.Registry.Retries >= 1, "registry.retries must be at least 1"},
		{c.Registry.BreakerThreshold >= 0, "registry.breaker_threshold must not be negative"},
		{c.Versions.Concurrency >= 1, "versions.concurrency must be at least 1"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return errors.New(errors.ErrCodeInvalidConfig, "%s", chk.msg)
		}
	}
	return nil
}

// ClientOptions returns the registry client settings.
func (c Config) ClientOptions() integrations.Options {
	return integrations.Options{
		Timeout:          c.Registry.Timeout.Duration,
		Attempts:         c.Registry.Retries,
		BreakerThreshold: c.Registry.BreakerThreshold,
	}
}

func (c Config) String() string {
	return fmt.Sprintf("registry=%s timeout=%s retries=%d breaker=%d concurrency=%d",
		c.Registry.URL, c.Registry.Timeout, c.Registry.Retries, c.Registry.BreakerThreshold, c.Versions.Concurrency)
}
