package cli

import (
	"fmt"
	"io"

	"github.com/dataops/profilerun/internal/format"
	"github.com/dataops/profilerun/internal/orchestration"
	"github.com/dataops/profilerun/internal/ui"
)

// Verify that StepReporter implements orchestration.StepObserver.
var _ orchestration.StepObserver = (*StepReporter)(nil)

// ArtifactState records where a step's artifact ended up, for the summary.
type ArtifactState int

const (
	// ArtifactNone means the step declares no artifact.
	ArtifactNone ArtifactState = iota
	// ArtifactNotProduced means the step succeeded without writing its artifact.
	ArtifactNotProduced
	// ArtifactCollected means the artifact was moved into the output directory.
	ArtifactCollected
	// ArtifactLeftBehind means the artifact exists but could not be moved and
	// remains in the working directory.
	ArtifactLeftBehind
)

// StepSummary is one step's outcome as accumulated by the reporter, consumed
// by the completion banner.
type StepSummary struct {
	Step     orchestration.ExternalStep
	Result   orchestration.InvocationResult
	Artifact ArtifactState
	// Dest is the artifact's new location when Artifact is ArtifactCollected.
	Dest string
}

// StepReporter presents pipeline progress on the terminal. In passthrough
// mode it prints a header per step and lets the child's own output stream
// between header and status line; in capture mode it animates a spinner while
// the step runs and dumps the captured output only on failure.
type StepReporter struct {
	out       io.Writer
	capture   bool
	spin      Spinner
	summaries []StepSummary
}

// NewStepReporter creates a reporter writing to out. capture selects the
// spinner presentation for runs whose child output is buffered.
func NewStepReporter(out io.Writer, capture bool) *StepReporter {
	return &StepReporter{out: out, capture: capture}
}

// StepStarted implements orchestration.StepObserver.
func (r *StepReporter) StepStarted(step orchestration.ExternalStep, index, total int) {
	if r.capture {
		r.spin = newSpinner(r.out)
		r.spin.UpdateSuffix(fmt.Sprintf(" %s (%d/%d)", step.Label, index, total))
		r.spin.Start()
		return
	}
	fmt.Fprintf(r.out, "\n%s▶ [%d/%d] %s%s\n", ui.ColorCyan(), index, total, step.Label, ui.ColorReset())
}

// StepSucceeded implements orchestration.StepObserver.
func (r *StepReporter) StepSucceeded(step orchestration.ExternalStep, result orchestration.InvocationResult) {
	r.stopSpinner()
	fmt.Fprintf(r.out, "%s✓ %s completed%s in %s\n",
		ui.ColorGreen(), step.Label, ui.ColorReset(), format.FormatExecutionDuration(result.Duration))
	r.summaries = append(r.summaries, StepSummary{
		Step:     step,
		Result:   result,
		Artifact: initialArtifactState(step),
	})
}

// StepFailed implements orchestration.StepObserver.
func (r *StepReporter) StepFailed(step orchestration.ExternalStep, result orchestration.InvocationResult) {
	r.stopSpinner()
	if result.Err != nil {
		fmt.Fprintf(r.out, "%s✗ %s failed: %v%s\n", ui.ColorRed(), step.Label, result.Err, ui.ColorReset())
	} else {
		fmt.Fprintf(r.out, "%s✗ %s failed (exit %d)%s\n", ui.ColorRed(), step.Label, result.ExitCode, ui.ColorReset())
	}
	if result.Output != "" {
		fmt.Fprintf(r.out, "%s--- captured step output ---%s\n", ui.ColorGrey(), ui.ColorReset())
		fmt.Fprintln(r.out, result.Output)
		fmt.Fprintf(r.out, "%s----------------------------%s\n", ui.ColorGrey(), ui.ColorReset())
	}
	r.summaries = append(r.summaries, StepSummary{
		Step:     step,
		Result:   result,
		Artifact: initialArtifactState(step),
	})
}

// ArtifactMoved implements orchestration.StepObserver.
func (r *StepReporter) ArtifactMoved(step orchestration.ExternalStep, dest string) {
	fmt.Fprintf(r.out, "  %s→ %s moved to %s%s%s\n",
		ui.ColorGrey(), step.ArtifactName, ui.ColorCyan(), dest, ui.ColorReset())
	r.setArtifact(step, ArtifactCollected, dest)
}

// ArtifactMissing implements orchestration.StepObserver. The absence of an
// artifact is tolerated, so nothing is printed here; the summary records it.
func (r *StepReporter) ArtifactMissing(step orchestration.ExternalStep) {
	r.setArtifact(step, ArtifactNotProduced, "")
}

// ArtifactMoveFailed implements orchestration.StepObserver.
func (r *StepReporter) ArtifactMoveFailed(step orchestration.ExternalStep, err error) {
	fmt.Fprintf(r.out, "  %s! could not move %s: %v (left in working directory)%s\n",
		ui.ColorYellow(), step.ArtifactName, err, ui.ColorReset())
	r.setArtifact(step, ArtifactLeftBehind, "")
}

// Summaries returns the accumulated per-step outcomes in execution order.
func (r *StepReporter) Summaries() []StepSummary {
	return r.summaries
}

func (r *StepReporter) stopSpinner() {
	if r.spin != nil {
		r.spin.Stop()
		r.spin = nil
	}
}

func (r *StepReporter) setArtifact(step orchestration.ExternalStep, state ArtifactState, dest string) {
	for i := len(r.summaries) - 1; i >= 0; i-- {
		if r.summaries[i].Step.Name == step.Name {
			r.summaries[i].Artifact = state
			r.summaries[i].Dest = dest
			return
		}
	}
}

func initialArtifactState(step orchestration.ExternalStep) ArtifactState {
	if step.ArtifactName == "" {
		return ArtifactNone
	}
	return ArtifactNotProduced
}
