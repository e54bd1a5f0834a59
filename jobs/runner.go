// Package jobs runs declarative batch jobs against the host application.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog"

	"github.com/timzifer/wellcad/config"
	"github.com/timzifer/wellcad/telemetry"
	"github.com/timzifer/wellcad/wellcad"
)

// OutcomeSkipped is recorded for steps whose guard evaluated to false.
const OutcomeSkipped = "skipped"

// StepResult reports what a step did.
type StepResult struct {
	Name    string
	Kind    string
	Skipped bool
	// Log is the title of the log produced by the step, if any.
	Log     string
	Elapsed time.Duration
}

// Result reports a finished job.
type Result struct {
	Job   string
	Steps []StepResult
}

// Runner executes jobs sequentially against one host application.
type Runner struct {
	app       *wellcad.Application
	logger    zerolog.Logger
	collector telemetry.Collector
}

// NewRunner creates a runner driving app.
func NewRunner(app *wellcad.Application, opts ...Option) (*Runner, error) {
	if app == nil {
		return nil, errors.New("jobs: application is nil")
	}
	cfg := settings{logger: zerolog.Nop(), collector: telemetry.Noop()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Runner{app: app, logger: cfg.logger, collector: cfg.collector}, nil
}

type compiledStep struct {
	cfg    config.StepConfig
	guard  *vm.Program
	action stepAction
}

func compileJob(job config.JobConfig) ([]compiledStep, error) {
	steps := make([]compiledStep, 0, len(job.Steps))
	for i, step := range job.Steps {
		action, err := compileStep(step)
		if err != nil {
			return nil, fmt.Errorf("job %s: step %d (%s): %w", job.Name, i, step.Label(), err)
		}
		guard, err := compileGuard(step.When)
		if err != nil {
			return nil, fmt.Errorf("job %s: step %d (%s): %w", job.Name, i, step.Label(), err)
		}
		steps = append(steps, compiledStep{cfg: step, guard: guard, action: action})
	}
	return steps, nil
}

// Validate compiles every step of jobs without contacting the host.
func Validate(jobs []config.JobConfig) error {
	for _, job := range jobs {
		if _, err := compileJob(job); err != nil {
			return err
		}
	}
	return nil
}

// RunAll runs jobs in order and stops at the first failing job.
func (r *Runner) RunAll(ctx context.Context, jobs []config.JobConfig) ([]Result, error) {
	if err := Validate(jobs); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		res, err := r.Run(ctx, job)
		results = append(results, res)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// Run executes a single job: it loads the document, runs the steps in order
// and closes the document unless the job keeps it open. The first failing
// step aborts the job and the document is closed without saving.
//
// A job timeout is checked between steps; a host call in progress is never
// interrupted.
func (r *Runner) Run(ctx context.Context, job config.JobConfig) (Result, error) {
	result := Result{Job: job.Name}
	steps, err := compileJob(job)
	if err != nil {
		return result, err
	}
	if timeout := job.JobTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger := r.logger.With().Str("job", job.Name).Logger()
	bh, err := r.load(job)
	if err == nil && bh == nil {
		err = ErrNoDocument
	}
	if err != nil {
		return result, fmt.Errorf("job %s: load document: %w", job.Name, err)
	}
	logger.Info().Int("steps", len(steps)).Msg("job started")

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			r.abandon(logger, job)
			return result, fmt.Errorf("job %s: step %d (%s): %w", job.Name, i, step.cfg.Label(), err)
		}
		res, err := r.runStep(bh, job.Name, step)
		result.Steps = append(result.Steps, res)
		if err != nil {
			logger.Error().Err(err).Str("step", res.Name).Msg("step failed")
			r.abandon(logger, job)
			return result, fmt.Errorf("job %s: step %d (%s): %w", job.Name, i, step.cfg.Label(), err)
		}
		event := logger.Debug().Str("step", res.Name).Str("kind", res.Kind).Dur("elapsed", res.Elapsed)
		if res.Skipped {
			event = event.Bool("skipped", true)
		}
		if res.Log != "" {
			event = event.Str("log", res.Log)
		}
		event.Msg("step finished")
	}

	if err := r.finish(bh, job); err != nil {
		return result, fmt.Errorf("job %s: %w", job.Name, err)
	}
	logger.Info().Msg("job finished")
	return result, nil
}

func (r *Runner) load(job config.JobConfig) (*wellcad.Borehole, error) {
	switch {
	case job.Open != "":
		return r.app.OpenBorehole(job.Open)
	case len(job.Import) == 1:
		return r.app.FileImport(job.Import[0], wellcad.WithConfig(job.ImportConfig), "")
	case len(job.Import) > 1:
		return r.app.MultiFileImport(job.Import, wellcad.WithConfig(job.ImportConfig), "")
	default:
		return r.app.NewBorehole(job.Template)
	}
}

func (r *Runner) runStep(bh *wellcad.Borehole, job string, step compiledStep) (StepResult, error) {
	res := StepResult{Name: step.cfg.Label(), Kind: step.cfg.Kind}
	start := time.Now()

	if step.guard != nil {
		env, err := snapshot(bh)
		if err != nil {
			r.collector.IncJobStep(job, step.cfg.Kind, telemetry.OutcomeError)
			return res, fmt.Errorf("read document state: %w", err)
		}
		ok, err := evalGuard(step.guard, env)
		if err != nil {
			r.collector.IncJobStep(job, step.cfg.Kind, telemetry.OutcomeError)
			return res, fmt.Errorf("evaluate guard: %w", err)
		}
		if !ok {
			res.Skipped = true
			r.collector.IncJobStep(job, step.cfg.Kind, OutcomeSkipped)
			res.Elapsed = time.Since(start)
			return res, nil
		}
	}

	log, err := step.action(bh)
	res.Elapsed = time.Since(start)
	if err != nil {
		r.collector.IncJobStep(job, step.cfg.Kind, telemetry.OutcomeError)
		return res, err
	}
	r.collector.IncJobStep(job, step.cfg.Kind, telemetry.OutcomeOK)
	if log != nil {
		if title, err := log.Name(); err == nil {
			res.Log = title
		}
	}
	return res, nil
}

func (r *Runner) finish(bh *wellcad.Borehole, job config.JobConfig) error {
	if !job.KeepOpen {
		if err := r.app.CloseBorehole(job.Save); err != nil {
			return fmt.Errorf("close document: %w", err)
		}
		return nil
	}
	if job.Save && job.Open != "" {
		ok, err := bh.SaveAs(job.Open)
		if err != nil {
			return fmt.Errorf("save document: %w", err)
		}
		if !ok {
			return fmt.Errorf("%s: %w", job.Open, ErrSaveRefused)
		}
	}
	return nil
}

func (r *Runner) abandon(logger zerolog.Logger, job config.JobConfig) {
	if job.KeepOpen {
		return
	}
	if err := r.app.CloseBorehole(false); err != nil {
		logger.Warn().Err(err).Msg("close document after failure")
	}
}
