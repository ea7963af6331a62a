package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/wasabi0522/repostatus/internal/render"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "REPOSTATUS_"

// Config represents the repostatus configuration.
type Config struct {
	// UnbornBranch is displayed for a repository without commits.
	UnbornBranch string `koanf:"unborn_branch"`
	// FakeValue replaces every field except the branch in --fake mode.
	FakeValue int `koanf:"fake_value"`
	// Shell overrides parent process detection when set.
	Shell   string         `koanf:"shell"`
	Symbols render.Symbols `koanf:"symbols"`
}

func defaults() map[string]any {
	sym := render.DefaultSymbols()
	return map[string]any{
		"unborn_branch":      "master",
		"fake_value":         2,
		"shell":              "",
		"symbols.parent":     sym.Parent,
		"symbols.ahead":      sym.Ahead,
		"symbols.behind":     sym.Behind,
		"symbols.staged":     sym.Staged,
		"symbols.modified":   sym.Modified,
		"symbols.deleted":    sym.Deleted,
		"symbols.stashed":    sym.Stashed,
		"symbols.untracked":  sym.Untracked,
		"symbols.conflicted": sym.Conflicted,
	}
}

// DefaultPath returns the user configuration file location,
// $XDG_CONFIG_HOME/repostatus/config.yaml or its platform equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "repostatus", "config.yaml")
}

// Load reads configuration from the given YAML file path and environment variables.
// Missing file is not an error; defaults are used. An empty path skips the file.
// Priority: environment variables > file > defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// confmap.Provider wraps an in-memory map and never fails.
	_ = k.Load(confmap.Provider(defaults(), "."), nil)

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("loading config %s: %w", path, err)
			}
		}
	}

	// REPOSTATUS_SYMBOLS_AHEAD -> symbols.ahead
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if rest, ok := strings.CutPrefix(key, "symbols_"); ok {
			return "symbols." + rest
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env config: %w", err)
	}

	return unmarshal(k)
}

// LoadFromReader reads configuration from an io.Reader containing YAML.
// Environment variables are not applied. Useful for testing.
func LoadFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	k := koanf.New(".")
	_ = k.Load(confmap.Provider(defaults(), "."), nil)

	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.UnbornBranch) == "" {
		return fmt.Errorf("unborn_branch must not be empty")
	}
	if c.FakeValue <= 0 {
		return fmt.Errorf("fake_value must be positive: %d", c.FakeValue)
	}
	s := c.Symbols
	for _, sym := range []struct{ name, value string }{
		{"parent", s.Parent},
		{"ahead", s.Ahead},
		{"behind", s.Behind},
		{"staged", s.Staged},
		{"modified", s.Modified},
		{"deleted", s.Deleted},
		{"stashed", s.Stashed},
		{"untracked", s.Untracked},
		{"conflicted", s.Conflicted},
	} {
		if sym.value == "" {
			return fmt.Errorf("symbols.%s must not be empty", sym.name)
		}
	}
	return nil
}
