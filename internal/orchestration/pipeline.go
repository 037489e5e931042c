package orchestration

import (
	"context"

	apperrors "github.com/dataops/profilerun/internal/errors"
	"github.com/dataops/profilerun/internal/logging"
)

// Pipeline runs analysis steps strictly in order: a step is launched only
// when every earlier step succeeded, and the first failure aborts the run.
// Artifact collection after a successful step is best-effort and never fails
// the run.
type Pipeline struct {
	steps     []ExternalStep
	invoker   Invoker
	files     Relocator
	outputDir string
	env       []string
	observer  StepObserver
	logger    logging.Logger
}

// PipelineOption customizes pipeline construction.
type PipelineOption func(*Pipeline)

// WithObserver attaches a lifecycle observer to the pipeline.
func WithObserver(observer StepObserver) PipelineOption {
	return func(p *Pipeline) {
		if observer != nil {
			p.observer = observer
		}
	}
}

// WithLogger overrides the pipeline logger.
func WithLogger(logger logging.Logger) PipelineOption {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPipeline creates a pipeline over the given steps. The invoker launches
// each step's command with env as its environment; files moves artifacts into
// outputDir after successful steps.
func NewPipeline(steps []ExternalStep, invoker Invoker, files Relocator, outputDir string, env []string, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		steps:     steps,
		invoker:   invoker,
		files:     files,
		outputDir: outputDir,
		env:       env,
		observer:  NullStepObserver{},
		logger:    logging.NewDefaultLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the configured steps sequentially. It returns nil when every
// step exits zero, and a *apperrors.StepError naming the failed step
// otherwise. Steps after the failed one are never launched.
func (p *Pipeline) Run(ctx context.Context) error {
	total := len(p.steps)
	for i, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return apperrors.WrapError(err, "run interrupted before step %q", step.Name)
		}

		p.observer.StepStarted(step, i+1, total)
		p.logger.Info("step started",
			logging.String("step", step.Name),
			logging.Int("index", i+1),
			logging.Int("total", total),
		)

		result := p.invoker.Run(ctx, step.Command, p.env)
		if !result.Succeeded() {
			p.observer.StepFailed(step, result)
			p.logger.Error("step failed", result.Err,
				logging.String("step", step.Name),
				logging.Int("exit_code", result.ExitCode),
				logging.String("duration", result.Duration.String()),
			)
			return &apperrors.StepError{
				Step:     step.Name,
				ExitCode: result.ExitCode,
				Cause:    result.Err,
			}
		}

		p.observer.StepSucceeded(step, result)
		p.logger.Info("step succeeded",
			logging.String("step", step.Name),
			logging.String("duration", result.Duration.String()),
		)
		p.collectArtifact(ctx, step)
	}
	return nil
}

// collectArtifact moves a successful step's artifact into the output
// directory. A step that produced no artifact is tolerated; a failed move is
// logged and reported but does not fail the run, leaving the artifact where
// the step wrote it.
func (p *Pipeline) collectArtifact(ctx context.Context, step ExternalStep) {
	if step.ArtifactName == "" {
		return
	}

	exists, err := p.files.Exists(ctx, step.ArtifactName)
	if err != nil {
		p.observer.ArtifactMoveFailed(step, err)
		p.logger.Error("artifact check failed", err,
			logging.String("step", step.Name),
			logging.String("artifact", step.ArtifactName),
		)
		return
	}
	if !exists {
		p.observer.ArtifactMissing(step)
		p.logger.Debug("artifact not produced",
			logging.String("step", step.Name),
			logging.String("artifact", step.ArtifactName),
		)
		return
	}

	dest, err := p.files.Relocate(ctx, step.ArtifactName, p.outputDir)
	if err != nil {
		p.observer.ArtifactMoveFailed(step, err)
		p.logger.Error("artifact move failed", err,
			logging.String("step", step.Name),
			logging.String("artifact", step.ArtifactName),
		)
		return
	}

	p.observer.ArtifactMoved(step, dest)
	p.logger.Info("artifact moved",
		logging.String("step", step.Name),
		logging.String("dest", dest),
	)
}
