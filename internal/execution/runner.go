package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"

	"pit/internal/domain"
)

// waitDelay bounds how long Wait blocks on output pipes after the process is killed
const waitDelay = time.Second

// ExecRunner runs steps as child processes of the harness
type ExecRunner struct {
	logger  *logrus.Logger
	timeout time.Duration
}

// NewExecRunner creates a runner; a zero timeout leaves steps unbounded
func NewExecRunner(logger *logrus.Logger, timeout time.Duration) *ExecRunner {
	if logger == nil {
		logger = logrus.New()
	}
	return &ExecRunner{logger: logger, timeout: timeout}
}

// Run executes the step in the harness environment plus the step variables
func (r *ExecRunner) Run(ctx context.Context, step domain.CommandStep) ExitResult {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	fields := logrus.Fields{
		"command": step.Program,
		"args":    step.Args,
	}
	r.logger.WithFields(fields).Debug("Executing command")

	cmd := exec.CommandContext(ctx, step.Program, step.Args...)
	cmd.Env = append(os.Environ(), step.Environ()...)
	cmd.WaitDelay = waitDelay

	var diagnostics bytes.Buffer
	cmd.Stderr = &diagnostics
	if step.Stdout != "" {
		out, err := os.Create(step.Stdout)
		if err != nil {
			r.logger.WithFields(fields).WithError(err).Warn("Cannot open stdout redirect")
			return ExitResult{ExitCode: -1, Err: fmt.Errorf("cannot redirect stdout: %w", err)}
		}
		defer out.Close()
		cmd.Stdout = out
	} else {
		cmd.Stdout = &diagnostics
	}

	startTime := time.Now()
	err := cmd.Run()
	duration := time.Since(startTime)

	result := ExitResult{
		Success:     err == nil,
		Diagnostics: diagnostics.String(),
		Duration:    duration,
	}
	fields["duration"] = duration

	if err == nil {
		r.logger.WithFields(fields).Debug("Command executed successfully")
		return result
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.ExitCode = -1
		result.Err = fmt.Errorf("timed out after %v", r.timeout)
		r.logger.WithFields(fields).Warn("Command execution timed out")
		return result
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		if result.ExitCode < 0 {
			result.Err = fmt.Errorf("terminated: %s", exitErr.ProcessState.String())
		}
		r.logger.WithFields(fields).WithField("exit_code", result.ExitCode).Info("Command failed")
		return result
	}

	result.ExitCode = -1
	result.Err = fmt.Errorf("command execution failed: %w", err)
	r.logger.WithFields(fields).WithError(err).Warn("Command execution failed")
	return result
}
