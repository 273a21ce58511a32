package execution

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pit/internal/domain"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel) // Suppress logs during tests
	return logger
}

func TestNewExecRunnerNilLogger(t *testing.T) {
	runner := NewExecRunner(nil, 0)

	assert.NotNil(t, runner)
	assert.NotNil(t, runner.logger)
}

func TestExecRunner_Run(t *testing.T) {
	runner := NewExecRunner(quietLogger(), 0)
	ctx := context.Background()

	t.Run("successful command", func(t *testing.T) {
		result := runner.Run(ctx, domain.CommandStep{Program: "sh", Args: []string{"-c", "echo hello"}})
		assert.True(t, result.Success)
		assert.Equal(t, 0, result.ExitCode)
		assert.Equal(t, "hello\n", result.Diagnostics)
		assert.Empty(t, result.Reason())
	})

	t.Run("failing command", func(t *testing.T) {
		result := runner.Run(ctx, domain.CommandStep{Program: "sh", Args: []string{"-c", "echo oops >&2; exit 3"}})
		assert.False(t, result.Success)
		assert.Equal(t, 3, result.ExitCode)
		assert.Equal(t, "oops\n", result.Diagnostics)
		assert.Equal(t, "exit status 3", result.Reason())
	})

	t.Run("non-existent command", func(t *testing.T) {
		result := runner.Run(ctx, domain.CommandStep{Program: "non-existent-command-12345"})
		assert.False(t, result.Success)
		assert.Equal(t, -1, result.ExitCode)
		require.Error(t, result.Err)
		assert.Contains(t, result.Reason(), "command execution failed")
	})

	t.Run("step environment is added", func(t *testing.T) {
		result := runner.Run(ctx, domain.CommandStep{
			Program: "sh",
			Args:    []string{"-c", `printf %s "$PERYAN_RUNTIME_PATH"`},
			Env:     map[string]string{"PERYAN_RUNTIME_PATH": "/opt/runtime"},
		})
		require.True(t, result.Success)
		assert.Equal(t, "/opt/runtime", result.Diagnostics)
	})

	t.Run("harness environment is inherited", func(t *testing.T) {
		t.Setenv("PIT_TEST_INHERITED", "yes")
		result := runner.Run(ctx, domain.CommandStep{Program: "sh", Args: []string{"-c", `printf %s "$PIT_TEST_INHERITED"`}})
		require.True(t, result.Success)
		assert.Equal(t, "yes", result.Diagnostics)
	})
}

func TestExecRunner_RunRedirect(t *testing.T) {
	runner := NewExecRunner(quietLogger(), 0)
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")

	t.Run("stdout goes to the file and stderr to diagnostics", func(t *testing.T) {
		result := runner.Run(context.Background(), domain.CommandStep{
			Program: "sh",
			Args:    []string{"-c", "echo out; echo err >&2"},
			Stdout:  target,
		})
		require.True(t, result.Success)
		assert.Equal(t, "err\n", result.Diagnostics)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "out\n", string(data))
	})

	t.Run("previous content is overwritten", func(t *testing.T) {
		require.NoError(t, os.WriteFile(target, []byte("stale stale stale\n"), 0644))

		result := runner.Run(context.Background(), domain.CommandStep{
			Program: "sh",
			Args:    []string{"-c", "echo new"},
			Stdout:  target,
		})
		require.True(t, result.Success)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "new\n", string(data))
	})

	t.Run("unwritable target fails the step", func(t *testing.T) {
		result := runner.Run(context.Background(), domain.CommandStep{
			Program: "sh",
			Args:    []string{"-c", "echo new"},
			Stdout:  filepath.Join(dir, "missing", "out.txt"),
		})
		assert.False(t, result.Success)
		assert.Contains(t, result.Reason(), "cannot redirect stdout")
	})
}

func TestExecRunner_RunTimeout(t *testing.T) {
	t.Run("command completes within timeout", func(t *testing.T) {
		runner := NewExecRunner(quietLogger(), 5*time.Second)
		result := runner.Run(context.Background(), domain.CommandStep{Program: "sh", Args: []string{"-c", "echo test"}})
		assert.True(t, result.Success)
	})

	t.Run("command times out", func(t *testing.T) {
		runner := NewExecRunner(quietLogger(), 100*time.Millisecond)
		result := runner.Run(context.Background(), domain.CommandStep{Program: "sleep", Args: []string{"5"}})
		assert.False(t, result.Success)
		assert.Equal(t, -1, result.ExitCode)
		assert.Contains(t, result.Reason(), "timed out")
		assert.Less(t, result.Duration, 5*time.Second)
	})
}
