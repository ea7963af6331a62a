package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repocontext "github.com/wasabi0522/repostatus/internal/context"
	"github.com/wasabi0522/repostatus/internal/exec"
	"github.com/wasabi0522/repostatus/internal/info"
	"github.com/wasabi0522/repostatus/testutil"
)

func lookPathOK() *exec.ExecutorMock {
	return &exec.ExecutorMock{
		LookPathFunc: func(name string) error { return nil },
	}
}

func TestResolveDepsWithExec(t *testing.T) {
	t.Run("not a repository", func(t *testing.T) {
		_, err := resolveDepsWithExec(lookPathOK(), t.TempDir(), "")
		require.Error(t, err)
		assert.ErrorIs(t, err, repocontext.ErrNotRepository)
	})

	t.Run("git not found", func(t *testing.T) {
		e := &exec.ExecutorMock{
			LookPathFunc: func(name string) error {
				return fmt.Errorf("not found: %s", name)
			},
		}
		_, err := resolveDepsWithExec(e, testutil.GitRepo(t), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "git")
	})

	t.Run("invalid config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("fake_value: -1\n"), 0644))

		_, err := resolveDepsWithExec(lookPathOK(), testutil.GitRepo(t), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fake_value")
	})

	t.Run("bare repository", func(t *testing.T) {
		d, err := resolveDepsWithExec(lookPathOK(), testutil.NewRepo(t).Bare().Build(), "")
		require.NoError(t, err)
		assert.True(t, d.ctx.Bare)
	})

	t.Run("success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("unborn_branch: trunk\n"), 0644))
		dir := testutil.GitRepo(t)

		d, err := resolveDepsWithExec(lookPathOK(), dir, path)
		require.NoError(t, err)
		assert.NotNil(t, d.git)
		assert.NotNil(t, d.ctx.Repo)
		assert.Equal(t, "trunk", d.cfg.UnbornBranch)
	})
}

func TestAggregatorOpts(t *testing.T) {
	d := newTestDeps(t, testutil.NewRepo(t).Unborn().Build(), "zsh")
	d.cfg.UnbornBranch = "trunk"

	t.Run("quiet", func(t *testing.T) {
		app := appWithDeps(d)
		assert.Len(t, app.aggregatorOpts(d.cfg), 1)
	})

	t.Run("verbose adds logger", func(t *testing.T) {
		app := appWithDeps(d)
		app.verbose = true
		assert.Len(t, app.aggregatorOpts(d.cfg), 2)
	})

	t.Run("unborn branch applied", func(t *testing.T) {
		got, err := d.aggregator(appWithDeps(d).aggregatorOpts(d.cfg)...).Collect(d.ctx)
		require.NoError(t, err)
		assert.Equal(t, info.RepoInfo{Branch: "trunk"}, got)
	})
}
