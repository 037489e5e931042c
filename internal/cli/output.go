// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayRunHeader], [DisplayMissingConfig].
//
//   - Print* functions render composite views built from accumulated state.
//     Example: [PrintCompletionBanner].
//
//   - HandleRunError maps a run's terminal error to operator guidance and an
//     exit code.

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/dataops/profilerun/internal/config"
	apperrors "github.com/dataops/profilerun/internal/errors"
	"github.com/dataops/profilerun/internal/ui"
)

// DisplayRunHeader echoes the run configuration before any step launches:
// run identity, the database the analysis scripts will profile, the
// interpreter, and where artifacts will land.
func DisplayRunHeader(cfg *config.Config, out io.Writer) {
	fmt.Fprintf(out, "--- Run Configuration ---\n")
	fmt.Fprintf(out, "Run ID:           %s%s%s\n", ui.ColorMagenta(), cfg.RunID, ui.ColorReset())
	fmt.Fprintf(out, "Database:         %s%s%s at %s%s:%s%s\n",
		ui.ColorCyan(), cfg.DatabaseName(), ui.ColorReset(),
		ui.ColorCyan(), cfg.DatabaseHost(), cfg.DatabasePort(), ui.ColorReset())
	fmt.Fprintf(out, "Interpreter:      %s%s%s\n", ui.ColorCyan(), cfg.PythonBin, ui.ColorReset())
	fmt.Fprintf(out, "Output directory: %s%s%s\n", ui.ColorCyan(), cfg.OutputDir, ui.ColorReset())
	if cfg.RunSampleAnalysis {
		fmt.Fprintf(out, "Extras:           %ssample account analysis enabled%s\n", ui.ColorYellow(), ui.ColorReset())
	}
}

// DisplayMissingConfig tells the operator how to bootstrap a configuration
// when none exists.
func DisplayMissingConfig(err *apperrors.MissingConfigError, out io.Writer) {
	fmt.Fprintf(out, "%s✗ %s not found.%s\n", ui.ColorRed(), err.Path, ui.ColorReset())
	fmt.Fprintf(out, "Copy the template and fill in your database settings first:\n")
	fmt.Fprintf(out, "  %scp %s %s%s\n", ui.ColorYellow(), err.Template, err.Path, ui.ColorReset())
}

// DisplayDependencyFailure reports a failed library probe together with the
// interpreter's complaint and the remediation command.
func DisplayDependencyFailure(err *apperrors.DependencyError, out io.Writer) {
	fmt.Fprintf(out, "%s✗ required module %q is not importable.%s\n", ui.ColorRed(), err.Module, ui.ColorReset())
	if err.Output != "" {
		fmt.Fprintf(out, "%s%s%s\n", ui.ColorGrey(), err.Output, ui.ColorReset())
	}
	fmt.Fprintf(out, "Install it first:\n")
	fmt.Fprintf(out, "  %s%s%s\n", ui.ColorYellow(), err.InstallHint, ui.ColorReset())
}

// DisplayDirectoryFailure reports a fatal output-directory problem.
func DisplayDirectoryFailure(err *apperrors.DirectoryError, out io.Writer) {
	fmt.Fprintf(out, "%s✗ cannot prepare output directory %s: %v%s\n",
		ui.ColorRed(), err.Path, err.Cause, ui.ColorReset())
}

// DisplayStepFailure reports that the run aborted on a failed step. The step
// reporter already showed the step's own diagnostics; this line states the
// consequence.
func DisplayStepFailure(err *apperrors.StepError, out io.Writer) {
	fmt.Fprintf(out, "\n%sRun aborted: %v.%s Later steps were not executed.\n",
		ui.ColorRed(), err, ui.ColorReset())
}

// HandleRunError maps a run's terminal error to remediation text on out and
// returns the process exit code. A nil error yields ExitSuccess.
func HandleRunError(err error, out io.Writer) int {
	if err == nil {
		return apperrors.ExitSuccess
	}

	var missingCfg *apperrors.MissingConfigError
	var depErr *apperrors.DependencyError
	var dirErr *apperrors.DirectoryError
	var stepErr *apperrors.StepError
	// ConfigError is constructed by value (see NewConfigError).
	var cfgErr apperrors.ConfigError

	switch {
	case errors.As(err, &missingCfg):
		DisplayMissingConfig(missingCfg, out)
	case errors.As(err, &depErr):
		DisplayDependencyFailure(depErr, out)
	case errors.As(err, &dirErr):
		DisplayDirectoryFailure(dirErr, out)
	case errors.As(err, &stepErr):
		DisplayStepFailure(stepErr, out)
	case errors.As(err, &cfgErr):
		fmt.Fprintf(out, "%s✗ configuration error: %v%s\n", ui.ColorRed(), cfgErr, ui.ColorReset())
	case apperrors.IsContextError(err):
		fmt.Fprintf(out, "%s✗ run interrupted.%s\n", ui.ColorRed(), ui.ColorReset())
	default:
		fmt.Fprintf(out, "%s✗ %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	return apperrors.ExitFailure
}
