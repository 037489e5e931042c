package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dataops/profilerun/internal/cli"
	"github.com/dataops/profilerun/internal/config"
	apperrors "github.com/dataops/profilerun/internal/errors"
	"github.com/dataops/profilerun/internal/orchestration"
	"github.com/dataops/profilerun/internal/storage"
	"github.com/dataops/profilerun/internal/ui"
)

// Application represents the profilerun application instance. Its
// collaborators are explicit fields so tests can substitute the working
// directory or the process invoker.
type Application struct {
	// WorkDir is the directory holding config.env, where the analysis
	// steps run and write their artifacts. Defaults to the current
	// directory.
	WorkDir string
	// Files performs every filesystem operation of the run.
	Files *storage.Store
	// Invoker launches analysis steps. Nil selects the local process
	// invoker configured from the loaded settings.
	Invoker   orchestration.Invoker
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithWorkDir runs the pipeline inside dir instead of the current directory.
func WithWorkDir(dir string) AppOption {
	return func(a *Application) { a.WorkDir = dir }
}

// WithInvoker sets a custom invoker for the analysis steps.
func WithInvoker(inv orchestration.Invoker) AppOption {
	return func(a *Application) { a.Invoker = inv }
}

// New creates a new Application instance by parsing command-line arguments.
// The pipeline takes no flags besides --help and --version; everything else
// comes from config.env in the working directory.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{WorkDir: ".", ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Files == nil {
		app.Files = storage.New()
	}

	programName := "profilerun"
	var cmdArgs []string
	if len(args) > 0 {
		programName = filepath.Base(args[0])
		cmdArgs = args[1:]
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [--version]\n\n", programName)
		fmt.Fprintf(errWriter, "Runs the data analysis pipeline configured by %s in the current directory.\n", config.ConfigFileName)
	}
	if err := fs.Parse(cmdArgs); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}
	return app, nil
}

// Run executes the full pipeline sequence and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	ui.InitTheme()

	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return cli.HandleRunError(err, out)
	}

	return a.runPipeline(ctx, cfg, out)
}

// loadConfig verifies the configuration file exists in the working directory
// and parses it. Absence is a distinct error so the handler can point the
// operator at the template.
func (a *Application) loadConfig(ctx context.Context) (*config.Config, error) {
	location := a.resolve(config.ConfigFileName)

	exists, err := a.Files.Exists(ctx, location)
	if err != nil {
		return nil, apperrors.NewConfigError("cannot check for %s: %v", config.ConfigFileName, err)
	}
	if !exists {
		return nil, &apperrors.MissingConfigError{
			Path:     config.ConfigFileName,
			Template: config.ConfigTemplateName,
		}
	}

	data, err := a.Files.Download(ctx, location)
	if err != nil {
		return nil, apperrors.NewConfigError("cannot read %s: %v", config.ConfigFileName, err)
	}
	return config.New(config.ConfigFileName, config.ParseEnvFile(data)), nil
}

// resolve anchors a relative path at the application working directory.
func (a *Application) resolve(p string) string {
	return resolvePath(a.WorkDir, p)
}

// resolvePath anchors a relative path at root. Absolute paths, URLs and the
// default working directory pass through unchanged.
func resolvePath(root, p string) string {
	if p == "" || root == "" || root == "." || filepath.IsAbs(p) || strings.Contains(p, "://") {
		return p
	}
	return filepath.Join(root, p)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
