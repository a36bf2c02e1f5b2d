// Package steps holds the built-in step executors. An executor is the
// unit a worker runs: it reads the job input, performs its stage's
// transformation and returns a typed output as JSON. Executors must be
// idempotent: re-running with the same input must produce an equivalent
// output, because a retried or reclaimed attempt replays the input
// unchanged.
package steps

import (
	"context"
	"encoding/json"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/entity"
)

type Executor interface {
	Step() constants.Step
	Execute(ctx context.Context, in entity.StepInput) (json.RawMessage, error)
}

// Registry maps steps to executors for a worker's capability set.
type Registry map[constants.Step]Executor

func NewRegistry(execs ...Executor) Registry {
	r := make(Registry, len(execs))
	for _, e := range execs {
		r[e.Step()] = e
	}
	return r
}

// Steps returns the capability set of the registry.
func (r Registry) Steps() []constants.Step {
	out := make([]constants.Step, 0, len(r))
	for _, s := range constants.PipelineOrder {
		if _, ok := r[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

func marshalOutput(v any) (json.RawMessage, error) {
	return json.Marshal(v)
}
