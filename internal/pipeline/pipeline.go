package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/facescan/internal/log"
	"github.com/nao1215/facescan/internal/model"
)

// Step is one stage of an analysis run.
// Steps are executed in sequence, each reading what earlier steps stored in
// the analysis and adding its own output.
type Step interface {
	// Do executes the step. Any error aborts the run.
	Do(ctx context.Context, analysis *model.Analysis) error

	// Name returns the step's name for logging and error messages.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddSteps after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = log.NewDiscardLogger()
	}
	return p
}

// AddSteps appends steps to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in order and stops at the first failure.
//
// The context is checked before each step; a step that is already running
// is not interrupted by the pipeline. A failing step's error is returned as
// a *StepError, so errors.Is still matches the underlying cause.
func (p *Pipeline) Execute(ctx context.Context, analysis *model.Analysis) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return &StepError{Step: step.Name(), Err: ctx.Err()}
		default:
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"image", analysis.ImagePath,
		)

		if err := step.Do(ctx, analysis); err != nil {
			p.logger.Debug("step failed",
				"step", step.Name(),
				"image", analysis.ImagePath,
				"error", err,
			)
			return &StepError{Step: step.Name(), Err: err}
		}

		p.logger.Debug("step completed",
			"step", step.Name(),
			"image", analysis.ImagePath,
		)
		analysis.PerformedSteps = append(analysis.PerformedSteps, step.Name())
	}

	return nil
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
