package vcs

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/rohmanhakim/gitrev/internal/config"
	"golang.org/x/sys/execabs"
)

// waitDelay bounds how long Run waits for output pipes after the
// process has been killed on timeout.
const waitDelay = time.Second

// CommandRunner runs the version-control binary with args and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// ExecRunner runs a binary as a child process.
// Stdin and stderr are attached to the null device; stdout is captured.
type ExecRunner struct {
	binary  string
	dir     string
	timeout time.Duration
}

func NewExecRunner(cfg config.Config) *ExecRunner {
	return &ExecRunner{
		binary:  cfg.Binary(),
		dir:     cfg.WorkDir(),
		timeout: cfg.QueryTimeout(),
	}
}

// Run blocks until the command exits, the timeout elapses, or ctx is done.
// Any outcome other than a zero exit status is returned as a *RunError.
func (r *ExecRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := execabs.CommandContext(ctx, r.binary, args...)
	cmd.Dir = r.dir
	cmd.WaitDelay = waitDelay

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}
	return nil, r.classify(ctx, err)
}

func (r *ExecRunner) classify(ctx context.Context, err error) *RunError {
	runErr := &RunError{
		Binary:   r.binary,
		ExitCode: -1,
		Err:      err,
	}

	// a killed process also reports an ExitError, so the context goes first
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		runErr.Cause = ErrCauseTimeout
		return runErr
	case errors.Is(ctx.Err(), context.Canceled):
		runErr.Cause = ErrCauseCanceled
		return runErr
	}

	var exitErr *execabs.ExitError
	if errors.As(err, &exitErr) {
		runErr.Cause = ErrCauseToolFailed
		runErr.ExitCode = exitErr.ExitCode()
		return runErr
	}

	// lookup failures, permission errors, missing working directory
	runErr.Cause = ErrCauseToolMissing
	return runErr
}
