package exec

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	apperrors "github.com/dataops/profilerun/internal/errors"
)

// Probe verifies that a required library is importable by the configured
// interpreter before any analysis step runs. The check happens in a throwaway
// child process that exits zero only when the import succeeds, so a broken
// environment is caught up front instead of minutes into a run.
type Probe struct {
	// PythonBin is the interpreter used for the import check.
	PythonBin string
	// Module is the library whose importability is verified.
	Module string
	// InstallHint is the remediation command suggested on failure.
	InstallHint string
	// Env is the environment for the probe child.
	Env []string
}

// Check runs the import probe. It returns nil when the module imports
// cleanly, and a *apperrors.DependencyError carrying the interpreter's output
// and the remediation hint otherwise.
func (p Probe) Check(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, p.PythonBin, "-c", fmt.Sprintf("import %s", p.Module))
	cmd.Env = p.Env
	output, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}
	return &apperrors.DependencyError{
		Module:      p.Module,
		InstallHint: p.InstallHint,
		Output:      strings.TrimSpace(string(output)),
		Cause:       err,
	}
}
