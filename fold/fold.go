// Package fold defines the boundary between a step circuit and the
// folding/IVC engine that drives it. The engine itself is an external
// collaborator: it owns genesis state, threads the state vector through
// successive steps and folds the emitted constraints. This package only
// fixes the contract a step circuit must satisfy and provides a wrapper so
// a single step can be compiled and proven with a non-folding backend.
package fold

import (
	"fmt"

	"github.com/consensys/gnark/frontend"
)

// StepFunction is the per-step circuit contract. A step receives the prior
// state vector and that step's external input, emits its constraints
// against api and returns the next state vector. Constraint emission for a
// step runs to completion or fails outright; a returned error invalidates
// the step and must abort it, never partially synthesize.
type StepFunction interface {
	StateLen() int
	ExternalInputLen() int
	GenerateStepConstraints(api frontend.API, step int, state []frontend.Variable, externalInput []frontend.Variable) ([]frontend.Variable, error)
}

// StepWrapper binds one step of a StepFunction into a standalone
// frontend.Circuit: secret prior state and external input, public next
// state asserted equal to the state the step produces. Each wrapper owns
// exactly one constraint context, which keeps step synthesis single
// threaded by construction.
type StepWrapper struct {
	Step      StepFunction `gnark:"-"`
	StepIndex int          `gnark:"-"`

	PriorState    []frontend.Variable
	ExternalInput []frontend.Variable
	NextState     []frontend.Variable `gnark:",public"`
}

// NewStepWrapper allocates a wrapper with the vector lengths the step
// function declares.
func NewStepWrapper(f StepFunction) *StepWrapper {
	return &StepWrapper{
		Step:          f,
		PriorState:    make([]frontend.Variable, f.StateLen()),
		ExternalInput: make([]frontend.Variable, f.ExternalInputLen()),
		NextState:     make([]frontend.Variable, f.StateLen()),
	}
}

func (c *StepWrapper) Define(api frontend.API) error {
	if c.Step == nil {
		return fmt.Errorf("step function not set")
	}
	if len(c.PriorState) != c.Step.StateLen() || len(c.NextState) != c.Step.StateLen() {
		return fmt.Errorf("state length must be %d", c.Step.StateLen())
	}
	if len(c.ExternalInput) != c.Step.ExternalInputLen() {
		return fmt.Errorf("external input length must be %d", c.Step.ExternalInputLen())
	}

	next, err := c.Step.GenerateStepConstraints(api, c.StepIndex, c.PriorState, c.ExternalInput)
	if err != nil {
		return err
	}
	for i := range next {
		api.AssertIsEqual(c.NextState[i], next[i])
	}
	return nil
}
