package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dataops/profilerun/internal/app"
	"github.com/dataops/profilerun/internal/config"
	apperrors "github.com/dataops/profilerun/internal/errors"
)

// collectingInterpreter stands in for python3: the probe import succeeds and
// each analysis script writes its artifact into the working directory. It
// also verifies that config.env values reach the child environment.
const collectingInterpreter = `#!/bin/sh
[ "$DB_NAME" = "tenant" ] || exit 9
if [ "$1" = "-c" ]; then exit 0; fi
case "$1" in
production_data_profiler.py) printf '{"tables": 12}' > production_data_profile.json ;;
data_relationship_analyzer.py) printf '{"relations": 3}' > data_relationship_analysis.json ;;
esac
exit 0
`

// failingInterpreter fails the first analysis step and leaves a marker if the
// second one is ever launched.
const failingInterpreter = `#!/bin/sh
if [ "$1" = "-c" ]; then exit 0; fi
case "$1" in
production_data_profiler.py) exit 3 ;;
data_relationship_analyzer.py) echo ran > relationship_ran.marker ;;
esac
exit 0
`

// silentInterpreter succeeds everywhere but produces no artifacts.
const silentInterpreter = `#!/bin/sh
exit 0
`

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func writeConfigFile(t *testing.T, dir string, lines ...string) {
	t.Helper()
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", config.ConfigFileName, err)
	}
}

func newTestApp(t *testing.T, dir string) (*app.Application, *bytes.Buffer) {
	t.Helper()
	var logBuf bytes.Buffer
	application, err := app.New([]string{"profilerun"}, &logBuf, app.WithWorkDir(dir))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return application, &logBuf
}

func TestRunMissingConfig(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	application, _ := newTestApp(t, dir)

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitFailure {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitFailure)
	}
	for _, want := range []string{"config.env not found", "cp config.env.example config.env"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestRunCompletesAndCollectsArtifacts(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	interpreter := writeScript(t, dir, "fake-python", collectingInterpreter)
	writeConfigFile(t, dir,
		"# analysis pipeline settings",
		"DB_NAME=tenant",
		"PYTHON_BIN="+interpreter,
		"OUTPUT_DIR=out",
		"LOG_LEVEL=error",
	)
	application, _ := newTestApp(t, dir)

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d, output:\n%s", code, apperrors.ExitSuccess, out.String())
	}
	if got := strings.Count(out.String(), "Analysis pipeline complete"); got != 1 {
		t.Errorf("completion banner printed %d times, want exactly once, output:\n%s", got, out.String())
	}

	for _, artifact := range []string{"production_data_profile.json", "data_relationship_analysis.json"} {
		if _, err := os.Stat(filepath.Join(dir, "out", artifact)); err != nil {
			t.Errorf("artifact %s not collected: %v", artifact, err)
		}
		if _, err := os.Stat(filepath.Join(dir, artifact)); !os.IsNotExist(err) {
			t.Errorf("artifact %s should have been moved out of the working directory", artifact)
		}
	}

	report, err := os.ReadFile(filepath.Join(dir, "out", config.DefaultMetricsFile))
	if err != nil {
		t.Fatalf("metrics report not written: %v", err)
	}
	if !strings.Contains(string(report), "profilerun_run_success 1") {
		t.Errorf("metrics report should record success, got:\n%s", report)
	}
}

func TestRunProbeFailure(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	writeConfigFile(t, dir,
		"DB_NAME=tenant",
		"PYTHON_BIN=false",
		"OUTPUT_DIR=out",
		"LOG_LEVEL=error",
	)
	application, _ := newTestApp(t, dir)

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitFailure {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitFailure)
	}
	for _, want := range []string{`"pymysql" is not importable`, "pip install pymysql"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out.String())
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "out")); !os.IsNotExist(err) {
		t.Error("output directory should not be created when the probe fails")
	}
}

func TestRunStepFailureStopsPipeline(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	interpreter := writeScript(t, dir, "fake-python", failingInterpreter)
	writeConfigFile(t, dir,
		"DB_NAME=tenant",
		"PYTHON_BIN="+interpreter,
		"OUTPUT_DIR=out",
		"LOG_LEVEL=error",
	)
	application, _ := newTestApp(t, dir)

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitFailure {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitFailure)
	}
	for _, want := range []string{"Run aborted", "exit code 3", "Later steps were not executed"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "Analysis pipeline complete") {
		t.Error("completion banner must not appear after a failed run")
	}
	if _, err := os.Stat(filepath.Join(dir, "relationship_ran.marker")); !os.IsNotExist(err) {
		t.Error("second step ran despite the first one failing")
	}

	report, err := os.ReadFile(filepath.Join(dir, "out", config.DefaultMetricsFile))
	if err != nil {
		t.Fatalf("metrics report should be written for failed runs too: %v", err)
	}
	if !strings.Contains(string(report), "profilerun_run_success 0") {
		t.Errorf("metrics report should record the failure, got:\n%s", report)
	}
}

func TestRunOutputDirOverrideCreatesNestedDirs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	interpreter := writeScript(t, dir, "fake-python", collectingInterpreter)
	writeConfigFile(t, dir,
		"DB_NAME=tenant",
		"PYTHON_BIN="+interpreter,
		"OUTPUT_DIR=reports/nightly",
		"LOG_LEVEL=error",
	)
	application, _ := newTestApp(t, dir)

	var out bytes.Buffer
	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, output:\n%s", code, out.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "reports", "nightly", "production_data_profile.json")); err != nil {
		t.Errorf("artifact not collected into nested output dir: %v", err)
	}
}

func TestRunReusesExistingOutputDir(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	interpreter := writeScript(t, dir, "fake-python", collectingInterpreter)
	writeConfigFile(t, dir,
		"DB_NAME=tenant",
		"PYTHON_BIN="+interpreter,
		"OUTPUT_DIR=out",
		"LOG_LEVEL=error",
	)

	for i := 0; i < 2; i++ {
		application, _ := newTestApp(t, dir)
		var out bytes.Buffer
		if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
			t.Fatalf("run %d: exit code = %d, output:\n%s", i+1, code, out.String())
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "production_data_profile.json")); err != nil {
		t.Errorf("artifact missing after rerun: %v", err)
	}
}

func TestRunToleratesMissingArtifacts(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	interpreter := writeScript(t, dir, "fake-python", silentInterpreter)
	writeConfigFile(t, dir,
		"DB_NAME=tenant",
		"PYTHON_BIN="+interpreter,
		"OUTPUT_DIR=out",
		"LOG_LEVEL=error",
	)
	application, _ := newTestApp(t, dir)

	var out bytes.Buffer
	code := application.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d, output:\n%s", code, apperrors.ExitSuccess, out.String())
	}
	if !strings.Contains(out.String(), "(not produced)") {
		t.Errorf("banner should mark artifacts that were never produced, got:\n%s", out.String())
	}
}

func TestNewRejectsPositionalArguments(t *testing.T) {
	t.Parallel()
	var errBuf bytes.Buffer
	_, err := app.New([]string{"profilerun", "extra"}, &errBuf)
	if err == nil || !strings.Contains(err.Error(), "unexpected argument") {
		t.Errorf("expected unexpected-argument error, got %v", err)
	}
}

func TestNewHelpFlag(t *testing.T) {
	t.Parallel()
	var errBuf bytes.Buffer
	_, err := app.New([]string{"profilerun", "--help"}, &errBuf)
	if !app.IsHelpError(err) {
		t.Errorf("expected help error, got %v", err)
	}
	if !strings.Contains(errBuf.String(), "config.env") {
		t.Errorf("usage should mention the configuration file, got:\n%s", errBuf.String())
	}
}

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"double dash", []string{"--version"}, true},
		{"single dash", []string{"-version"}, true},
		{"short alias", []string{"-v"}, true},
		{"absent", []string{}, false},
		{"other args", []string{"--help"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := app.HasVersionFlag(tt.args); got != tt.want {
				t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	app.PrintVersion(&out)
	if !strings.HasPrefix(out.String(), "profilerun ") {
		t.Errorf("unexpected version line %q", out.String())
	}
}
