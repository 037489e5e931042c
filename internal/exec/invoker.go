package exec

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/dataops/profilerun/internal/orchestration"
)

// Compile-time check that LocalInvoker satisfies the pipeline contract.
var _ orchestration.Invoker = (*LocalInvoker)(nil)

// LocalInvoker runs step commands as local child processes. In passthrough
// mode (the default) the child writes directly to the invoker's stdout and
// stderr, so operators see analysis output live; in capture mode the combined
// output is buffered onto the result instead.
type LocalInvoker struct {
	// Stdout and Stderr receive the child's output in passthrough mode.
	// They default to the process's own streams.
	Stdout io.Writer
	Stderr io.Writer
	// Capture buffers combined child output instead of streaming it.
	Capture bool
	// Dir is the child's working directory. Empty means the current one.
	Dir string
}

// Run launches the command with env as the child's complete environment and
// waits for it to finish. The result carries the child's exit code, or -1
// with Err set when the process never started or was interrupted.
func (in *LocalInvoker) Run(ctx context.Context, command []string, env []string) orchestration.InvocationResult {
	if len(command) == 0 {
		return orchestration.InvocationResult{ExitCode: -1, Err: errors.New("empty step command")}
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Env = env
	cmd.Dir = in.Dir

	var buf bytes.Buffer
	if in.Capture {
		cmd.Stdout = &buf
		cmd.Stderr = &buf
	} else {
		cmd.Stdout = in.stdout()
		cmd.Stderr = in.stderr()
	}

	start := time.Now()
	err := cmd.Run()
	result := orchestration.InvocationResult{
		Duration: time.Since(start),
		Output:   strings.TrimSpace(buf.String()),
	}

	switch {
	case err == nil:
		result.ExitCode = 0
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			// A context kill also surfaces as an ExitError; report the
			// interruption rather than the synthetic exit status alone.
			if ctxErr := ctx.Err(); ctxErr != nil {
				result.Err = ctxErr
			}
		} else {
			result.ExitCode = -1
			result.Err = err
		}
	}
	return result
}

func (in *LocalInvoker) stdout() io.Writer {
	if in.Stdout != nil {
		return in.Stdout
	}
	return os.Stdout
}

func (in *LocalInvoker) stderr() io.Writer {
	if in.Stderr != nil {
		return in.Stderr
	}
	return os.Stderr
}
