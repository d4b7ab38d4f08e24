// Package shell runs external programs on behalf of the oracles.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/freshness/internal/core/domain"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long Run waits for output pipes after the process is killed.
const waitDelay = 2 * time.Second

// maxStderr is the amount of stderr kept in error metadata.
const maxStderr = 512

// Runner implements ports.CommandRunner using os/exec.
// Every invocation is bounded by the configured timeout.
type Runner struct {
	timeout time.Duration
}

// NewRunner creates a Runner. A non-positive timeout disables the per-call deadline.
func NewRunner(timeout time.Duration) *Runner {
	return &Runner{timeout: timeout}
}

// Run executes name with args and returns its trimmed standard output.
func (r *Runner) Run(ctx context.Context, name string, args ...string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	//nolint:gosec // Commands are fixed nix invocations built by the oracles
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", classify(ctx, err, name, r.timeout, stderr.String())
	}

	return strings.TrimSpace(stdout.String()), nil
}

// classify maps a failed run to the domain error kinds. Timeouts and start
// failures are infrastructure problems; a non-zero exit is an ordinary failure.
func classify(ctx context.Context, err error, name string, timeout time.Duration, stderr string) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		detail := zerr.With(zerr.With(zerr.Wrap(err, "deadline exceeded"), "command", name), "timeout", timeout.String())
		return errors.Join(domain.ErrCommandTimeout, detail)
	}

	if errors.Is(ctx.Err(), context.Canceled) {
		return errors.Join(context.Canceled, zerr.With(zerr.Wrap(err, "cancelled"), "command", name))
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		detail := zerr.With(zerr.Wrap(err, "could not start"), "command", name)
		return errors.Join(domain.ErrCommandUnavailable, detail)
	}

	failed := zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()), "exit_code", exitErr.ExitCode())
	failed = zerr.With(failed, "command", name)
	if msg := truncate(strings.TrimSpace(stderr), maxStderr); msg != "" {
		failed = zerr.With(failed, "stderr", msg)
	}
	return failed
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
