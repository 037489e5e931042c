package app

import (
	"context"
	"io"
	"time"

	"github.com/viant/afs/url"

	"github.com/dataops/profilerun/internal/cli"
	"github.com/dataops/profilerun/internal/config"
	apperrors "github.com/dataops/profilerun/internal/errors"
	"github.com/dataops/profilerun/internal/exec"
	"github.com/dataops/profilerun/internal/logging"
	"github.com/dataops/profilerun/internal/metrics"
	"github.com/dataops/profilerun/internal/orchestration"
	"github.com/dataops/profilerun/internal/storage"
	"github.com/dataops/profilerun/internal/tracing"
)

// runPipeline orchestrates a configured run: dependency probe, output
// directory preparation, the analysis steps, then reporting. Step output and
// the metrics report are side effects of the same sequence, so everything
// here hangs off one observer chain.
func (a *Application) runPipeline(ctx context.Context, cfg *config.Config, out io.Writer) int {
	logger := logging.NewRunLogger(a.ErrWriter, "profilerun", cfg.LogFormat, cfg.LogLevel)

	if err := tracing.Init("profilerun", Version, a.resolve(cfg.TraceFile)); err != nil {
		logger.Error("tracing disabled", err, logging.String("file", cfg.TraceFile))
	}
	ctx, runSpan := tracing.StartSpan(ctx, "pipeline.run")
	runSpan.WithAttributes(map[string]string{"run_id": cfg.RunID, "version": Version})

	cli.DisplayRunHeader(cfg, out)
	logger.Info("run starting",
		logging.String("run_id", cfg.RunID),
		logging.String("output_dir", cfg.OutputDir),
	)

	capture := cfg.StepOutput == config.StepOutputCapture
	reporter := cli.NewStepReporter(out, capture)
	runMetrics := metrics.NewRunMetrics(cfg.RunID, Version)

	start := time.Now()
	runErr := a.executeRun(ctx, cfg, logger, out, reporter, runMetrics)
	elapsed := time.Since(start)

	runMetrics.RecordOutcome(runErr == nil, elapsed)
	a.writeMetricsReport(context.WithoutCancel(ctx), cfg, runMetrics, logger)
	tracing.EndSpan(runSpan, runErr)

	if runErr != nil {
		logger.Error("run failed", runErr, logging.String("duration", elapsed.String()))
		return cli.HandleRunError(runErr, out)
	}

	logger.Info("run complete", logging.String("duration", elapsed.String()))
	cli.PrintCompletionBanner(reporter.Summaries(), cfg.OutputDir, elapsed, out)
	return apperrors.ExitSuccess
}

// executeRun performs the fatal part of the sequence. The first error aborts
// the run and becomes its outcome.
func (a *Application) executeRun(ctx context.Context, cfg *config.Config, logger logging.Logger, out io.Writer, reporter *cli.StepReporter, runMetrics *metrics.RunMetrics) error {
	probe := exec.Probe{
		PythonBin:   cfg.PythonBin,
		Module:      config.DependencyModule,
		InstallHint: config.DependencyInstallHint,
		Env:         cfg.ChildEnv(),
	}
	probeCtx, probeSpan := tracing.StartSpan(ctx, "dependency.probe")
	err := probe.Check(probeCtx)
	tracing.EndSpan(probeSpan, err)
	if err != nil {
		return err
	}
	logger.Debug("dependency probe passed", logging.String("module", config.DependencyModule))

	if err := a.Files.EnsureDir(ctx, a.resolve(cfg.OutputDir)); err != nil {
		return &apperrors.DirectoryError{Path: cfg.OutputDir, Cause: err}
	}

	invoker := a.Invoker
	if invoker == nil {
		invoker = &exec.LocalInvoker{
			Stdout:  out,
			Stderr:  a.ErrWriter,
			Capture: cfg.StepOutput == config.StepOutputCapture,
			Dir:     a.WorkDir,
		}
	}

	pipe := orchestration.NewPipeline(
		orchestration.StepsFor(cfg),
		invoker,
		workspaceFiles{store: a.Files, root: a.WorkDir},
		cfg.OutputDir,
		cfg.ChildEnv(),
		orchestration.WithObserver(orchestration.MultiStepObserver{reporter, runMetrics, tracing.NewStepSpans(ctx)}),
		orchestration.WithLogger(logger),
	)
	return pipe.Run(ctx)
}

// writeMetricsReport renders the run metrics into the output directory, for
// failed runs too, but only once that directory exists. A reporting problem
// never changes the run outcome.
func (a *Application) writeMetricsReport(ctx context.Context, cfg *config.Config, runMetrics *metrics.RunMetrics, logger logging.Logger) {
	if cfg.MetricsFile == "" {
		return
	}

	outputDir := a.resolve(cfg.OutputDir)
	exists, err := a.Files.Exists(ctx, outputDir)
	if err != nil || !exists {
		logger.Debug("metrics report skipped", logging.String("dir", cfg.OutputDir))
		return
	}

	rendered, err := runMetrics.Render()
	if err != nil {
		logger.Error("metrics render failed", err)
		return
	}

	location := url.Join(outputDir, cfg.MetricsFile)
	if err := a.Files.Upload(ctx, location, rendered); err != nil {
		logger.Error("metrics report write failed", err, logging.String("file", location))
		return
	}
	logger.Info("metrics report written", logging.String("file", location))
}

// workspaceFiles adapts the store to the pipeline's view of the filesystem:
// artifact names and the output directory are anchored at the application
// working directory, where the analysis steps run.
type workspaceFiles struct {
	store *storage.Store
	root  string
}

var _ orchestration.Relocator = workspaceFiles{}

// Exists implements orchestration.Relocator.
func (w workspaceFiles) Exists(ctx context.Context, location string) (bool, error) {
	return w.store.Exists(ctx, resolvePath(w.root, location))
}

// Relocate implements orchestration.Relocator.
func (w workspaceFiles) Relocate(ctx context.Context, artifact, destDir string) (string, error) {
	return w.store.Relocate(ctx, resolvePath(w.root, artifact), resolvePath(w.root, destDir))
}
