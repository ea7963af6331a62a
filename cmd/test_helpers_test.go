package cmd

import (
	"bytes"
	"testing"

	"github.com/wasabi0522/repostatus/internal/config"
	repocontext "github.com/wasabi0522/repostatus/internal/context"
	"github.com/wasabi0522/repostatus/internal/exec"
	"github.com/wasabi0522/repostatus/internal/git"
	"github.com/wasabi0522/repostatus/internal/render"
	"github.com/wasabi0522/repostatus/internal/ui"
)

// appWithDeps creates an App that resolves to the given deps and never sees
// a terminal on stdout.
func appWithDeps(d *deps) *App {
	return &App{
		resolveDeps:      func(path, configPath string) (*deps, error) { return d, nil },
		stdoutIsTerminal: func() bool { return false },
		parentPID:        func() int { return 4242 },
	}
}

// appWithDepsError creates an App whose resolveDeps returns an error.
func appWithDepsError(err error) *App {
	return &App{
		resolveDeps:      func(path, configPath string) (*deps, error) { return nil, err },
		stdoutIsTerminal: func() bool { return false },
		parentPID:        func() int { return 4242 },
	}
}

// newTestDeps builds deps for the repository at dir with quiet collaborators
// and a parent process reported as shell.
func newTestDeps(t *testing.T, dir, shell string) *deps {
	t.Helper()
	ctx, err := repocontext.NewResolver().Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	return &deps{
		exec: &exec.ExecutorMock{
			OutputFunc: func(dir, name string, args ...string) (string, error) {
				return shell, nil
			},
		},
		git: &git.ClientMock{
			StashListFunc:               func(string) (string, error) { return "", nil },
			SuperprojectWorkingTreeFunc: func(string) (string, error) { return "", nil },
			DescribeHeadFunc:            func(string) (string, error) { return "", nil },
		},
		ctx: ctx,
		cfg: &config.Config{UnbornBranch: "master", FakeValue: 2, Symbols: render.DefaultSymbols()},
	}
}

// withColor makes sure NO_COLOR in the test environment does not leak in.
func withColor(t *testing.T) {
	t.Helper()
	ui.SetNoColor(false)
}

// executeCommand runs the CLI command tree with the given args and returns the output.
func executeCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := app.BuildRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}
