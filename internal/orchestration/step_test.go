package orchestration

import (
	"testing"

	"github.com/dataops/profilerun/internal/config"
)

// TestStepsForDefault verifies the standard run plan: the production data
// profile first, the relationship analysis second, nothing else.
func TestStepsForDefault(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{PythonBin: "python3"}
	steps := StepsFor(cfg)

	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if steps[0].Name != "production-data-profile" {
		t.Errorf("expected first step production-data-profile, got %q", steps[0].Name)
	}
	if steps[1].Name != "data-relationships" {
		t.Errorf("expected second step data-relationships, got %q", steps[1].Name)
	}
	if steps[0].ArtifactName != ProfilerArtifact {
		t.Errorf("expected artifact %q, got %q", ProfilerArtifact, steps[0].ArtifactName)
	}
	if steps[1].ArtifactName != RelationsArtifact {
		t.Errorf("expected artifact %q, got %q", RelationsArtifact, steps[1].ArtifactName)
	}
}

// TestStepsForSampleAnalysis verifies that enabling the sample-account
// analysis appends a third step after the standard pair.
func TestStepsForSampleAnalysis(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{PythonBin: "python3", RunSampleAnalysis: true}
	steps := StepsFor(cfg)

	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	last := steps[2]
	if last.Name != "sample-accounts" {
		t.Errorf("expected third step sample-accounts, got %q", last.Name)
	}
	if last.ArtifactName != SampleArtifact {
		t.Errorf("expected artifact %q, got %q", SampleArtifact, last.ArtifactName)
	}
}

// TestStepsForUsesConfiguredInterpreter verifies that every step command
// launches the interpreter the run was configured with.
func TestStepsForUsesConfiguredInterpreter(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{PythonBin: "/opt/python/bin/python3.12", RunSampleAnalysis: true}
	for _, step := range StepsFor(cfg) {
		if len(step.Command) != 2 {
			t.Fatalf("step %q: expected 2-element command, got %v", step.Name, step.Command)
		}
		if step.Command[0] != cfg.PythonBin {
			t.Errorf("step %q: expected interpreter %q, got %q", step.Name, cfg.PythonBin, step.Command[0])
		}
	}
}

// TestStepScriptNames pins the script filenames the steps are contracted to
// launch from the working directory.
func TestStepScriptNames(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{PythonBin: "python3", RunSampleAnalysis: true}
	steps := StepsFor(cfg)

	want := []string{ProfilerScript, RelationsScript, SampleScript}
	for i, step := range steps {
		if step.Command[1] != want[i] {
			t.Errorf("step %q: expected script %q, got %q", step.Name, want[i], step.Command[1])
		}
	}
}
