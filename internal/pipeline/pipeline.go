package pipeline

import (
	"context"
	"fmt"

	"hostpms-connector/pkg/logger"
)

// Pipeline executes a fixed sequence of steps against one run context.
// Steps run strictly in declaration order; a failed required step stops
// execution, a failed optional step is recorded and skipped over.
type Pipeline struct {
	name   string
	steps  []Step
	logger logger.Logger
}

// New creates a pipeline from an ordered list of steps.
func New(name string, steps []Step, log logger.Logger) *Pipeline {
	return &Pipeline{
		name:   name,
		steps:  steps,
		logger: log.With("pipeline", name),
	}
}

// StepNames lists the configured step names in order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, 0, len(p.steps))
	for _, step := range p.steps {
		names = append(names, step.Name())
	}
	return names
}

// Execute runs every step against the context. Overall success means no
// errors were recorded; step counts are attached to the context stats.
func (p *Pipeline) Execute(ctx context.Context, run *Context) *Context {
	p.logger.Info("Pipeline starting",
		"hotelCode", run.HotelCode,
		"steps", p.StepNames())

	successfulSteps := 0
	failedSteps := 0

	for _, step := range p.steps {
		stepName := step.Name()
		p.logger.Info("Executing step", "hotelCode", run.HotelCode, "step", stepName)

		err := p.runStep(ctx, step, run)
		if err == nil {
			successfulSteps++
			p.logger.Info("Step completed", "hotelCode", run.HotelCode, "step", stepName)
			continue
		}

		failedSteps++
		run.AddError(stepName, err.Error())

		if step.Required() {
			p.logger.Error("Required step failed, stopping pipeline",
				"hotelCode", run.HotelCode,
				"step", stepName,
				"error", err)
			break
		}

		p.logger.Warn("Optional step failed, continuing pipeline",
			"hotelCode", run.HotelCode,
			"step", stepName,
			"error", err)
	}

	run.Success = !run.HasErrors()
	run.Stats["pipeline"] = map[string]interface{}{
		"name":            p.name,
		"totalSteps":      len(p.steps),
		"successfulSteps": successfulSteps,
		"failedSteps":     failedSteps,
	}

	p.logger.Info("Pipeline completed",
		"hotelCode", run.HotelCode,
		"success", run.Success,
		"successfulSteps", successfulSteps,
		"failedSteps", failedSteps)

	return run
}

// runStep executes one step, converting panics into ordinary step errors
// so a misbehaving step never takes down the whole batch.
func (p *Pipeline) runStep(ctx context.Context, step Step, run *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected panic: %v", r)
		}
	}()
	return step.execute(ctx, run)
}
