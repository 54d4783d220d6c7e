package pipeline

import "context"

// StepFunc does the actual work of a step: read from the run context,
// perform the work, write results back. A nil return means success.
type StepFunc func(ctx context.Context, run *Context) error

// Step is a named unit of pipeline work. Required steps stop the pipeline
// on failure; optional steps record the failure and let execution continue.
type Step struct {
	name     string
	required bool
	execute  StepFunc
}

// NewStep wraps a function with a name and a required flag.
func NewStep(name string, required bool, execute StepFunc) Step {
	return Step{
		name:     name,
		required: required,
		execute:  execute,
	}
}

// Name returns the step name.
func (s Step) Name() string {
	return s.name
}

// Required reports whether a failure of this step stops the pipeline.
func (s Step) Required() bool {
	return s.required
}
