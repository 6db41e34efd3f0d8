package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ErrTimeout is returned by ExecRunner when an attempt exceeds its timeout.
var ErrTimeout = errors.New("timed out")

// waitDelay bounds how long Run keeps reading stdout after the child has
// exited or been killed, in case a grandchild still holds the pipe open.
const waitDelay = 250 * time.Millisecond

// Output is what a finished child process left behind.
type Output struct {
	Stdout   string
	ExitCode int
}

// Runner abstracts path lookup and bounded command execution so the probe
// strategies can be exercised without spawning real processes.
type Runner interface {
	LookPath(name string) (string, error)
	// Run executes name with args. A non-zero exit is reported through
	// Output.ExitCode, not as an error; errors mean the child could not be
	// started, timed out, or its output could not be collected.
	Run(ctx context.Context, timeout time.Duration, name string, args ...string) (Output, error)
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct{}

// LookPath also accepts names resolved through a relative PATH entry such
// as "." or an empty element; the lookup itself never runs the target.
func (ExecRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if errors.Is(err, exec.ErrDot) {
		return path, nil
	}
	return path, err
}

// Run starts the child with stdin and stderr attached to the null device and
// stdout captured in memory. The child is killed once timeout elapses.
func (ExecRunner) Run(ctx context.Context, timeout time.Duration, name string, args ...string) (Output, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.WaitDelay = waitDelay
	if errors.Is(cmd.Err, exec.ErrDot) {
		cmd.Err = nil
	}

	runErr := cmd.Run()
	out := Output{Stdout: stdout.String()}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return out, fmt.Errorf("%w after %s", ErrTimeout, timeout)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return out, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		return out, nil
	}
	if runErr != nil {
		return out, runErr
	}
	return out, nil
}
