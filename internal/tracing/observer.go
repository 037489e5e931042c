package tracing

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dataops/profilerun/internal/orchestration"
)

// Compile-time check: step spans attach to the pipeline as an observer.
var _ orchestration.StepObserver = (*StepSpans)(nil)

// StepSpans opens one span per analysis step, parented on the run context.
// The pipeline is strictly sequential, so a single current span is enough.
type StepSpans struct {
	parent  context.Context
	current *Span
}

// NewStepSpans creates a step-span observer rooted at ctx. The run span, if
// any, should already be on the context.
func NewStepSpans(ctx context.Context) *StepSpans {
	return &StepSpans{parent: ctx}
}

// StepStarted implements orchestration.StepObserver.
func (o *StepSpans) StepStarted(step orchestration.ExternalStep, index, total int) {
	_, span := StartSpan(o.parent, "step."+step.Name)
	span.WithAttributes(map[string]string{
		"step.index": strconv.Itoa(index),
		"step.total": strconv.Itoa(total),
	})
	o.current = span
}

// StepSucceeded implements orchestration.StepObserver.
func (o *StepSpans) StepSucceeded(step orchestration.ExternalStep, result orchestration.InvocationResult) {
	o.finish(result, nil)
}

// StepFailed implements orchestration.StepObserver. A clean non-zero exit
// carries no error value, so one is synthesized to mark the span failed.
func (o *StepSpans) StepFailed(step orchestration.ExternalStep, result orchestration.InvocationResult) {
	err := result.Err
	if err == nil {
		err = fmt.Errorf("exit code %d", result.ExitCode)
	}
	o.finish(result, err)
}

// ArtifactMoved implements orchestration.StepObserver.
func (o *StepSpans) ArtifactMoved(step orchestration.ExternalStep, dest string) {
	_, span := StartSpan(o.parent, "artifact."+step.Name)
	span.WithAttributes(map[string]string{"artifact.dest": dest})
	EndSpan(span, nil)
}

// ArtifactMissing implements orchestration.StepObserver.
func (o *StepSpans) ArtifactMissing(step orchestration.ExternalStep) {
	_, span := StartSpan(o.parent, "artifact."+step.Name)
	span.WithAttributes(map[string]string{"artifact.missing": "true"})
	EndSpan(span, nil)
}

// ArtifactMoveFailed implements orchestration.StepObserver.
func (o *StepSpans) ArtifactMoveFailed(step orchestration.ExternalStep, err error) {
	_, span := StartSpan(o.parent, "artifact."+step.Name)
	EndSpan(span, err)
}

func (o *StepSpans) finish(result orchestration.InvocationResult, err error) {
	if o.current == nil {
		return
	}
	o.current.WithAttributes(map[string]string{
		"step.exit_code": strconv.Itoa(result.ExitCode),
		"step.duration":  result.Duration.String(),
	})
	EndSpan(o.current, err)
	o.current = nil
}
