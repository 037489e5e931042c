package orchestration

import "github.com/dataops/profilerun/internal/config"

// Analysis step scripts and the artifacts they are expected to produce.
// Both sets of names are fixed contracts with the analysis scripts, which
// always write their reports into the working directory.
const (
	ProfilerScript   = "production_data_profiler.py"
	ProfilerArtifact = "production_data_profile.json"

	RelationsScript   = "data_relationship_analyzer.py"
	RelationsArtifact = "data_relationship_analysis.json"

	SampleScript   = "sample_account_analyzer.py"
	SampleArtifact = "sample_account_analysis.json"
)

// ExternalStep describes one analysis step: the command that runs it and the
// artifact it is expected to leave behind on success.
type ExternalStep struct {
	// Name is the stable identifier used in logs, metrics and traces.
	Name string
	// Label is the human-readable description shown to the operator.
	Label string
	// Command is the argv used to launch the step.
	Command []string
	// ArtifactName is the fixed filename the step writes on success.
	// Empty when the step produces no artifact.
	ArtifactName string
}

// StepsFor assembles the ordered step list for a run. The production data
// profile always runs first, followed by the relationship analysis; the
// sample-account analysis is appended only when the run enables it.
func StepsFor(cfg *config.Config) []ExternalStep {
	steps := []ExternalStep{
		{
			Name:         "production-data-profile",
			Label:        "Production data profile",
			Command:      []string{cfg.PythonBin, ProfilerScript},
			ArtifactName: ProfilerArtifact,
		},
		{
			Name:         "data-relationships",
			Label:        "Data relationship analysis",
			Command:      []string{cfg.PythonBin, RelationsScript},
			ArtifactName: RelationsArtifact,
		},
	}
	if cfg.RunSampleAnalysis {
		steps = append(steps, ExternalStep{
			Name:         "sample-accounts",
			Label:        "Sample account analysis",
			Command:      []string{cfg.PythonBin, SampleScript},
			ArtifactName: SampleArtifact,
		})
	}
	return steps
}
