package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dataops/profilerun/internal/format"
	"github.com/dataops/profilerun/internal/ui"
)

// PrintCompletionBanner renders the end-of-run summary: the output directory,
// one row per expected artifact, the total elapsed time, and a short
// next-steps hint. It is printed exactly once, only when every step
// succeeded.
func PrintCompletionBanner(summaries []StepSummary, outputDir string, elapsed time.Duration, out io.Writer) {
	var b strings.Builder

	b.WriteString(ui.SummaryTitleStyle().Render("Analysis pipeline complete"))
	b.WriteString("\n\n")
	b.WriteString("Output directory: ")
	b.WriteString(ui.SummaryPathStyle().Render(outputDir))
	b.WriteString("\n")

	for _, s := range summaries {
		if s.Artifact == ArtifactNone {
			continue
		}
		b.WriteString(artifactRow(s))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.SummaryDimStyle().Render("Completed in " + format.FormatElapsed(elapsed)))
	b.WriteString("\n\n")
	b.WriteString("Next steps:\n")
	b.WriteString("  review the JSON reports in " + outputDir + "\n")
	b.WriteString("  feed them to the simulated-data generator")

	fmt.Fprintln(out, ui.SummaryBoxStyle().Render(b.String()))
}

func artifactRow(s StepSummary) string {
	switch s.Artifact {
	case ArtifactCollected:
		return fmt.Sprintf("  ✓ %s → %s", s.Step.ArtifactName, ui.SummaryPathStyle().Render(s.Dest))
	case ArtifactLeftBehind:
		return fmt.Sprintf("  ! %s %s", s.Step.ArtifactName,
			ui.SummaryDimStyle().Render("(left in working directory)"))
	default:
		return fmt.Sprintf("  - %s %s", s.Step.ArtifactName,
			ui.SummaryDimStyle().Render("(not produced)"))
	}
}
