package fold

import (
	"errors"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"
)

// identityStep passes the state through untouched.
type identityStep struct {
	stateLen, inputLen int
}

func (s *identityStep) StateLen() int {
	return s.stateLen
}

func (s *identityStep) ExternalInputLen() int {
	return s.inputLen
}

func (s *identityStep) GenerateStepConstraints(_ frontend.API, _ int, state, _ []frontend.Variable) ([]frontend.Variable, error) {
	next := make([]frontend.Variable, len(state))
	copy(next, state)
	return next, nil
}

type failingStep struct {
	identityStep
	err error
}

func (s *failingStep) GenerateStepConstraints(frontend.API, int, []frontend.Variable, []frontend.Variable) ([]frontend.Variable, error) {
	return nil, s.err
}

func TestNewStepWrapper(t *testing.T) {
	w := NewStepWrapper(&identityStep{stateLen: 3, inputLen: 2})
	require.Len(t, w.PriorState, 3)
	require.Len(t, w.NextState, 3)
	require.Len(t, w.ExternalInput, 2)
}

func TestStepWrapperSolves(t *testing.T) {
	assert := test.NewAssert(t)

	step := &identityStep{stateLen: 3, inputLen: 1}

	witness := NewStepWrapper(step)
	for i := range witness.PriorState {
		witness.PriorState[i] = i + 10
		witness.NextState[i] = i + 10
	}
	witness.ExternalInput[0] = 0
	err := test.IsSolved(NewStepWrapper(step), witness, ecc.BN254.ScalarField())
	assert.NoError(err)

	// a claimed next state the step does not produce must not solve
	witness.NextState[1] = 99
	err = test.IsSolved(NewStepWrapper(step), witness, ecc.BN254.ScalarField())
	assert.Error(err)
}

func TestStepWrapperPropagatesStepError(t *testing.T) {
	stepErr := errors.New("broken step")
	step := &failingStep{identityStep: identityStep{stateLen: 1, inputLen: 1}, err: stepErr}

	witness := NewStepWrapper(step)
	witness.PriorState[0] = 1
	witness.NextState[0] = 1
	witness.ExternalInput[0] = 0

	err := test.IsSolved(NewStepWrapper(step), witness, ecc.BN254.ScalarField())
	require.Error(t, err)
}
