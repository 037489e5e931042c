package exec

import (
	"context"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/dataops/profilerun/internal/errors"
)

// TestProbeSucceeds verifies that a zero-exit probe reports the dependency as
// available. `true` ignores the import expression and exits zero, standing in
// for an interpreter with the module installed.
func TestProbeSucceeds(t *testing.T) {
	t.Parallel()

	p := Probe{PythonBin: "true", Module: "pymysql", InstallHint: "pip install pymysql"}
	if err := p.Check(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestProbeFailureCarriesRemediation verifies that a failing probe produces a
// DependencyError with the module name and install hint intact.
func TestProbeFailureCarriesRemediation(t *testing.T) {
	t.Parallel()

	p := Probe{PythonBin: "false", Module: "pymysql", InstallHint: "pip install pymysql"}
	err := p.Check(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var depErr *apperrors.DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("expected *apperrors.DependencyError, got %T", err)
	}
	if depErr.Module != "pymysql" {
		t.Errorf("expected module pymysql, got %q", depErr.Module)
	}
	if depErr.InstallHint != "pip install pymysql" {
		t.Errorf("expected install hint, got %q", depErr.InstallHint)
	}
	if depErr.Cause == nil {
		t.Error("expected underlying cause to be recorded")
	}
}

// TestProbeFailureCapturesInterpreterOutput verifies that whatever the
// interpreter printed while rejecting the import is preserved for diagnosis.
// Running the import expression through sh guarantees a complaint.
func TestProbeFailureCapturesInterpreterOutput(t *testing.T) {
	t.Parallel()

	p := Probe{PythonBin: "sh", Module: "pymysql", InstallHint: "pip install pymysql"}
	err := p.Check(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var depErr *apperrors.DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("expected *apperrors.DependencyError, got %T", err)
	}
	if !strings.Contains(depErr.Output, "import") {
		t.Errorf("expected interpreter output mentioning the import, got %q", depErr.Output)
	}
}

// TestProbeMissingInterpreter verifies that an absent interpreter binary is
// reported as a dependency failure rather than a panic or silent pass.
func TestProbeMissingInterpreter(t *testing.T) {
	t.Parallel()

	p := Probe{PythonBin: "/nonexistent/profilerun-test-python", Module: "pymysql", InstallHint: "pip install pymysql"}
	err := p.Check(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var depErr *apperrors.DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("expected *apperrors.DependencyError, got %T", err)
	}
}
