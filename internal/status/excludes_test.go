package status

import (
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasabi0522/repostatus/testutil"
)

func untracked(t *testing.T, dir string) int {
	t.Helper()
	repo, err := gogit.PlainOpen(dir)
	require.NoError(t, err)
	c, err := Collect(repo)
	require.NoError(t, err)
	return c[WorktreeNew]
}

func TestExcludes(t *testing.T) {
	t.Run("repository core.excludesFile", func(t *testing.T) {
		home := testutil.IsolateGitConfig(t)
		testutil.WriteFile(t, home, "ignore-local", "# logs\n*.log\n\n")
		dir := testutil.GitRepo(t)
		testutil.Git(t, dir, "config", "core.excludesFile", filepath.Join(home, "ignore-local"))
		testutil.WriteFile(t, dir, "debug.log", "x\n")

		assert.Empty(t, testutil.Git(t, dir, "status", "--porcelain"))
		assert.Zero(t, untracked(t, dir))
	})

	t.Run("global core.excludesFile with home prefix", func(t *testing.T) {
		home := testutil.IsolateGitConfig(t)
		testutil.WriteFile(t, home, ".gitconfig", "[core]\n\texcludesFile = ~/global-ignore\n")
		testutil.WriteFile(t, home, "global-ignore", "*.tmp\r\n")
		dir := testutil.GitRepo(t)
		testutil.WriteFile(t, dir, "scratch.tmp", "x\n")
		testutil.WriteFile(t, dir, "kept.txt", "x\n")

		assert.Equal(t, 1, untracked(t, dir))
	})

	t.Run("repository setting wins over global", func(t *testing.T) {
		home := testutil.IsolateGitConfig(t)
		testutil.WriteFile(t, home, ".gitconfig", "[core]\n\texcludesFile = ~/global-ignore\n")
		testutil.WriteFile(t, home, "global-ignore", "*.tmp\n")
		testutil.WriteFile(t, home, "local-ignore", "*.bak\n")
		dir := testutil.GitRepo(t)
		testutil.Git(t, dir, "config", "core.excludesFile", filepath.Join(home, "local-ignore"))
		testutil.WriteFile(t, dir, "scratch.tmp", "x\n")
		testutil.WriteFile(t, dir, "old.bak", "x\n")

		assert.Equal(t, 1, untracked(t, dir))
	})

	t.Run("default ignore file under home", func(t *testing.T) {
		home := testutil.IsolateGitConfig(t)
		testutil.WriteFile(t, home, ".config/git/ignore", ".DS_Store\n")
		dir := testutil.GitRepo(t)
		testutil.WriteFile(t, dir, ".DS_Store", "x\n")
		testutil.WriteFile(t, dir, "sub/.DS_Store", "x\n")

		assert.Empty(t, testutil.Git(t, dir, "status", "--porcelain"))
		assert.Zero(t, untracked(t, dir))
	})

	t.Run("default ignore file under XDG_CONFIG_HOME", func(t *testing.T) {
		testutil.IsolateGitConfig(t)
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)
		testutil.WriteFile(t, xdg, "git/ignore", "*.swp\n")
		dir := testutil.GitRepo(t)
		testutil.WriteFile(t, dir, "a.swp", "x\n")

		assert.Zero(t, untracked(t, dir))
	})

	t.Run("missing excludes file", func(t *testing.T) {
		home := testutil.IsolateGitConfig(t)
		dir := testutil.GitRepo(t)
		testutil.Git(t, dir, "config", "core.excludesFile", filepath.Join(home, "absent"))

		repo, err := gogit.PlainOpen(dir)
		require.NoError(t, err)
		ps, err := Excludes(repo)
		require.NoError(t, err)
		assert.Empty(t, ps)
	})
}
