//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"context"
	"time"
)

// InvocationResult encapsulates the outcome of a single child-process run.
// It is the shared domain type between the orchestration layer and the
// process invoker.
type InvocationResult struct {
	// ExitCode is the child's exit status, or -1 when it never started.
	ExitCode int
	// Duration is the wall-clock time the child ran for.
	Duration time.Duration
	// Output holds the combined child output when the invoker captures it.
	// Empty in passthrough mode, where output went straight to the terminal.
	Output string
	// Err is set when the process could not be started or was interrupted.
	Err error
}

// Succeeded reports whether the invocation completed with a zero exit status.
func (r InvocationResult) Succeeded() bool { return r.Err == nil && r.ExitCode == 0 }

// Invoker launches a step command with the given environment and waits for it
// to finish. Implementations decide how the child's output is surfaced.
// This interface decouples the pipeline from process spawning, so tests can
// script arbitrary step outcomes.
type Invoker interface {
	Run(ctx context.Context, command []string, env []string) InvocationResult
}

// Relocator performs the artifact file operations that follow a successful
// step. The storage layer implements it.
type Relocator interface {
	// Exists reports whether the artifact is present.
	Exists(ctx context.Context, location string) (bool, error)
	// Relocate moves the artifact into destDir and returns its new location.
	Relocate(ctx context.Context, artifact, destDir string) (string, error)
}

// StepObserver receives pipeline lifecycle events. Presentation, metrics and
// tracing attach here without the pipeline depending on any of them.
type StepObserver interface {
	// StepStarted fires before a step's child process is launched.
	// index is 1-based; total is the number of steps in the run.
	StepStarted(step ExternalStep, index, total int)
	// StepSucceeded fires after a step exits with status zero.
	StepSucceeded(step ExternalStep, result InvocationResult)
	// StepFailed fires after a step exits non-zero or fails to start.
	StepFailed(step ExternalStep, result InvocationResult)
	// ArtifactMoved fires when a step's artifact lands in the output directory.
	ArtifactMoved(step ExternalStep, dest string)
	// ArtifactMissing fires when a successful step produced no artifact.
	ArtifactMissing(step ExternalStep)
	// ArtifactMoveFailed fires when an artifact exists but could not be moved.
	ArtifactMoveFailed(step ExternalStep, err error)
}

// NullStepObserver is a no-op implementation of StepObserver.
// Useful as a default and in tests.
type NullStepObserver struct{}

// StepStarted implements StepObserver.
func (NullStepObserver) StepStarted(ExternalStep, int, int) {}

// StepSucceeded implements StepObserver.
func (NullStepObserver) StepSucceeded(ExternalStep, InvocationResult) {}

// StepFailed implements StepObserver.
func (NullStepObserver) StepFailed(ExternalStep, InvocationResult) {}

// ArtifactMoved implements StepObserver.
func (NullStepObserver) ArtifactMoved(ExternalStep, string) {}

// ArtifactMissing implements StepObserver.
func (NullStepObserver) ArtifactMissing(ExternalStep) {}

// ArtifactMoveFailed implements StepObserver.
func (NullStepObserver) ArtifactMoveFailed(ExternalStep, error) {}

// MultiStepObserver fans each event out to its members in order.
type MultiStepObserver []StepObserver

// StepStarted implements StepObserver.
func (m MultiStepObserver) StepStarted(step ExternalStep, index, total int) {
	for _, o := range m {
		o.StepStarted(step, index, total)
	}
}

// StepSucceeded implements StepObserver.
func (m MultiStepObserver) StepSucceeded(step ExternalStep, result InvocationResult) {
	for _, o := range m {
		o.StepSucceeded(step, result)
	}
}

// StepFailed implements StepObserver.
func (m MultiStepObserver) StepFailed(step ExternalStep, result InvocationResult) {
	for _, o := range m {
		o.StepFailed(step, result)
	}
}

// ArtifactMoved implements StepObserver.
func (m MultiStepObserver) ArtifactMoved(step ExternalStep, dest string) {
	for _, o := range m {
		o.ArtifactMoved(step, dest)
	}
}

// ArtifactMissing implements StepObserver.
func (m MultiStepObserver) ArtifactMissing(step ExternalStep) {
	for _, o := range m {
		o.ArtifactMissing(step)
	}
}

// ArtifactMoveFailed implements StepObserver.
func (m MultiStepObserver) ArtifactMoveFailed(step ExternalStep, err error) {
	for _, o := range m {
		o.ArtifactMoveFailed(step, err)
	}
}
