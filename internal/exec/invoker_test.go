package exec

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// TestLocalInvokerSuccess verifies the zero-exit happy path.
func TestLocalInvokerSuccess(t *testing.T) {
	t.Parallel()

	in := &LocalInvoker{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	result := in.Run(context.Background(), []string{"true"}, nil)

	if !result.Succeeded() {
		t.Fatalf("expected success, got exit %d err %v", result.ExitCode, result.Err)
	}
	if result.Duration <= 0 {
		t.Errorf("expected positive duration, got %v", result.Duration)
	}
}

// TestLocalInvokerReportsExitCode verifies that a non-zero child exit is
// reported as a code, not as a start error.
func TestLocalInvokerReportsExitCode(t *testing.T) {
	t.Parallel()

	in := &LocalInvoker{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	result := in.Run(context.Background(), []string{"sh", "-c", "exit 3"}, nil)

	if result.ExitCode != 3 {
		t.Errorf("expected exit code 3, got %d", result.ExitCode)
	}
	if result.Err != nil {
		t.Errorf("expected nil error for a clean non-zero exit, got %v", result.Err)
	}
	if result.Succeeded() {
		t.Error("expected Succeeded() to be false")
	}
}

// TestLocalInvokerStartFailure verifies the result shape when the binary
// cannot be launched at all.
func TestLocalInvokerStartFailure(t *testing.T) {
	t.Parallel()

	in := &LocalInvoker{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	result := in.Run(context.Background(), []string{"/nonexistent/profilerun-test-binary"}, nil)

	if result.ExitCode != -1 {
		t.Errorf("expected exit code -1, got %d", result.ExitCode)
	}
	if result.Err == nil {
		t.Error("expected start error, got nil")
	}
}

// TestLocalInvokerEmptyCommand verifies that an empty argv is rejected
// without attempting to spawn anything.
func TestLocalInvokerEmptyCommand(t *testing.T) {
	t.Parallel()

	in := &LocalInvoker{}
	result := in.Run(context.Background(), nil, nil)

	if result.ExitCode != -1 || result.Err == nil {
		t.Errorf("expected exit -1 with error, got exit %d err %v", result.ExitCode, result.Err)
	}
}

// TestLocalInvokerPassthrough verifies that child stdout and stderr stream to
// the invoker's writers and that nothing is buffered on the result.
func TestLocalInvokerPassthrough(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	in := &LocalInvoker{Stdout: &out, Stderr: &errOut}
	result := in.Run(context.Background(), []string{"sh", "-c", "echo visible; echo problem 1>&2"}, nil)

	if !result.Succeeded() {
		t.Fatalf("expected success, got exit %d err %v", result.ExitCode, result.Err)
	}
	if !strings.Contains(out.String(), "visible") {
		t.Errorf("expected stdout to reach the stdout writer, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "problem") {
		t.Errorf("expected stderr to reach the stderr writer, got %q", errOut.String())
	}
	if result.Output != "" {
		t.Errorf("expected empty buffered output in passthrough mode, got %q", result.Output)
	}
}

// TestLocalInvokerCapture verifies that capture mode buffers combined output
// onto the result and writes nothing to the passthrough writers.
func TestLocalInvokerCapture(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	in := &LocalInvoker{Stdout: &out, Stderr: &out, Capture: true}
	result := in.Run(context.Background(), []string{"sh", "-c", "echo alpha; echo beta 1>&2"}, nil)

	if !result.Succeeded() {
		t.Fatalf("expected success, got exit %d err %v", result.ExitCode, result.Err)
	}
	if !strings.Contains(result.Output, "alpha") || !strings.Contains(result.Output, "beta") {
		t.Errorf("expected combined output on the result, got %q", result.Output)
	}
	if out.Len() != 0 {
		t.Errorf("expected nothing on the passthrough writers, got %q", out.String())
	}
}

// TestLocalInvokerChildEnv verifies that env is the child's complete
// environment.
func TestLocalInvokerChildEnv(t *testing.T) {
	t.Parallel()

	in := &LocalInvoker{Capture: true}
	result := in.Run(context.Background(), []string{"sh", "-c", `echo "$PIPELINE_MARKER"`}, []string{"PIPELINE_MARKER=on"})

	if !result.Succeeded() {
		t.Fatalf("expected success, got exit %d err %v", result.ExitCode, result.Err)
	}
	if result.Output != "on" {
		t.Errorf("expected child to see PIPELINE_MARKER=on, got %q", result.Output)
	}
}

// TestLocalInvokerInterrupted verifies that an expiring context kills the
// child and surfaces the interruption on the result.
func TestLocalInvokerInterrupted(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	in := &LocalInvoker{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	result := in.Run(ctx, []string{"sh", "-c", "sleep 10"}, nil)

	if result.Succeeded() {
		t.Fatal("expected interrupted run to fail")
	}
	if !errors.Is(result.Err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", result.Err)
	}
	if result.Duration >= 10*time.Second {
		t.Errorf("expected early termination, ran for %v", result.Duration)
	}
}
