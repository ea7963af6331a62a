package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// RepoBuilder constructs temporary git repositories for testing.
type RepoBuilder struct {
	t        *testing.T
	files    []file
	branches []string
	unborn   bool
	bare     bool
}

type file struct {
	name    string
	content string
}

// NewRepo creates a RepoBuilder for the given test.
func NewRepo(t *testing.T) *RepoBuilder {
	t.Helper()
	return &RepoBuilder{t: t}
}

// WithFile adds a file to the initial commit.
func (b *RepoBuilder) WithFile(name, content string) *RepoBuilder {
	b.files = append(b.files, file{name: name, content: content})
	return b
}

// WithBranch adds a branch to be created at the initial commit.
func (b *RepoBuilder) WithBranch(name string) *RepoBuilder {
	b.branches = append(b.branches, name)
	return b
}

// Unborn skips the initial commit, leaving HEAD on an unborn branch.
func (b *RepoBuilder) Unborn() *RepoBuilder {
	b.unborn = true
	return b
}

// Bare makes Build return a bare repository.
func (b *RepoBuilder) Bare() *RepoBuilder {
	b.bare = true
	return b
}

// Build creates the repository and returns its root directory path.
// For a bare repository the returned path is the repository directory itself.
func (b *RepoBuilder) Build() string {
	b.t.Helper()

	if b.bare {
		dir := b.t.TempDir()
		if b.unborn {
			Git(b.t, dir, "init", "--bare", "-b", "main")
			return dir
		}
		src := b.buildWorking()
		Git(b.t, dir, "clone", "--bare", "--quiet", src, ".")
		return dir
	}
	return b.buildWorking()
}

func (b *RepoBuilder) buildWorking() string {
	b.t.Helper()

	dir := b.t.TempDir()

	Git(b.t, dir, "init", "-b", "main")
	configure(b.t, dir)

	if b.unborn {
		return dir
	}

	WriteFile(b.t, dir, "README.md", "# test\n")
	for _, f := range b.files {
		WriteFile(b.t, dir, f.name, f.content)
	}
	Commit(b.t, dir, "initial commit")

	created := make(map[string]bool)
	for _, branch := range b.branches {
		if !created[branch] {
			Git(b.t, dir, "branch", branch)
			created[branch] = true
		}
	}

	return dir
}

// IsolateGitConfig points HOME at a fresh temporary directory and disables
// the system and XDG git configuration for the rest of the test. It returns
// the new home directory.
func IsolateGitConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	return home
}

// GitRepo creates a temporary git repository with an initial commit.
// The directory is cleaned up when the test finishes.
func GitRepo(t *testing.T) string {
	t.Helper()
	return NewRepo(t).Build()
}

// Clone clones src into a new temporary directory. The clone's main branch
// tracks origin/main.
func Clone(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	Git(t, dir, "clone", "--quiet", src, ".")
	configure(t, dir)
	return dir
}

// Commit stages every change in dir and commits it.
func Commit(t *testing.T, dir, message string) {
	t.Helper()
	Git(t, dir, "add", "-A")
	Git(t, dir, "commit", "--quiet", "--allow-empty", "-m", message)
}

// WriteFile writes content to name relative to dir, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// Git runs git in dir and returns its trimmed output.
func Git(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := gitCommand(dir, args...).CombinedOutput()
	if err != nil {
		t.Fatalf("git %v: %s: %v", args, out, err)
	}
	return strings.TrimSpace(string(out))
}

// TryGit runs git in dir and returns its error instead of failing the test.
// Use it for commands expected to exit non-zero, such as a conflicting merge.
func TryGit(dir string, args ...string) error {
	return gitCommand(dir, args...).Run()
}

func gitCommand(dir string, args ...string) *exec.Cmd {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_NOSYSTEM=1", "GIT_TERMINAL_PROMPT=0")
	return cmd
}

func configure(t *testing.T, dir string) {
	t.Helper()
	Git(t, dir, "config", "user.email", "test@example.com")
	Git(t, dir, "config", "user.name", "Test")
	Git(t, dir, "config", "commit.gpgsign", "false")
}
