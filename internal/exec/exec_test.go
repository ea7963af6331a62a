package exec

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultExecutor(t *testing.T) {
	e := NewDefaultExecutor()
	assert.NotNil(t, e)
}

func TestLookPath(t *testing.T) {
	e := NewDefaultExecutor()

	t.Run("existing command", func(t *testing.T) {
		err := e.LookPath("sh")
		require.NoError(t, err)
	})

	t.Run("missing command", func(t *testing.T) {
		err := e.LookPath("nonexistent-command-xyz-12345")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "command not found")
	})
}

func TestOutput(t *testing.T) {
	e := NewDefaultExecutor()

	t.Run("success", func(t *testing.T) {
		out, err := e.Output("", "echo", "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("trims only trailing newlines", func(t *testing.T) {
		out, err := e.Output("", "printf", "  padded  \n\n")
		require.NoError(t, err)
		assert.Equal(t, "  padded  ", out)
	})

	t.Run("runs in specified directory", func(t *testing.T) {
		dir := t.TempDir()
		out, err := e.Output(dir, "pwd")
		require.NoError(t, err)
		assert.Equal(t, filepath.Base(dir), filepath.Base(out))
	})

	t.Run("error with stderr", func(t *testing.T) {
		_, err := e.Output("", "sh", "-c", "echo fail >&2; exit 1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "fail")
	})

	t.Run("error without stderr", func(t *testing.T) {
		_, err := e.Output("", "sh", "-c", "exit 1")
		assert.Error(t, err)
	})
}

func TestIsExitCode(t *testing.T) {
	t.Run("matching exit code", func(t *testing.T) {
		e := NewDefaultExecutor()
		_, err := e.Output("", "sh", "-c", "exit 2")
		require.Error(t, err)
		assert.True(t, IsExitCode(err, 2))
	})

	t.Run("non-matching exit code", func(t *testing.T) {
		e := NewDefaultExecutor()
		_, err := e.Output("", "sh", "-c", "exit 3")
		require.Error(t, err)
		assert.False(t, IsExitCode(err, 1))
	})

	t.Run("non-exit error", func(t *testing.T) {
		assert.False(t, IsExitCode(fmt.Errorf("plain error"), 1))
	})

	t.Run("wrapped exit error", func(t *testing.T) {
		e := NewDefaultExecutor()
		_, err := e.Output("", "sh", "-c", "exit 1")
		require.Error(t, err)
		assert.True(t, IsExitCode(fmt.Errorf("running: %w", err), 1))
	})

	t.Run("nil error", func(t *testing.T) {
		assert.False(t, IsExitCode(nil, 0))
	})
}
