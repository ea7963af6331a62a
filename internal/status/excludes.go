package status

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Excludes returns the ignore patterns git applies on top of the in-tree
// .gitignore files and info/exclude. The excludes file is taken from
// core.excludesFile (repository config over global over system) and
// defaults to $XDG_CONFIG_HOME/git/ignore. A missing file yields no patterns.
func Excludes(repo *gogit.Repository) ([]gitignore.Pattern, error) {
	path, err := excludesFile(repo)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}
	return readExcludes(path)
}

func excludesFile(repo *gogit.Repository) (string, error) {
	local, err := repo.Config()
	if err != nil {
		return "", fmt.Errorf("reading repository config: %w", err)
	}
	scopes := []*config.Config{local}

	// Unreadable global or system config contributes no excludes file.
	if global, err := config.LoadConfig(config.GlobalScope); err == nil {
		scopes = append(scopes, global)
	}
	if !systemConfigDisabled() {
		if system, err := config.LoadConfig(config.SystemScope); err == nil {
			scopes = append(scopes, system)
		}
	}

	for _, cfg := range scopes {
		if path := coreExcludesFile(cfg); path != "" {
			return expandHome(path), nil
		}
	}
	return defaultExcludesFile(), nil
}

func coreExcludesFile(cfg *config.Config) string {
	if cfg == nil || cfg.Raw == nil || !cfg.Raw.HasSection("core") {
		return ""
	}
	return strings.TrimSpace(cfg.Raw.Section("core").Option("excludesfile"))
}

func systemConfigDisabled() bool {
	switch strings.ToLower(os.Getenv("GIT_CONFIG_NOSYSTEM")) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}

func defaultExcludesFile() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git", "ignore")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "git", "ignore")
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

func readExcludes(path string) ([]gitignore.Pattern, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading excludes file %s: %w", path, err)
	}

	var ps []gitignore.Pattern
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, nil))
	}
	return ps, nil
}
