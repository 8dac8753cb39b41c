// Package chacha implements one ChaCha20 block transformation as an
// arithmetic circuit suitable for a folding/IVC step function, together
// with a native uint32 reference used as its conformance oracle.
//
// The cipher state carried between steps is 28 field elements:
// key (8 words) | nonce (3 words) | counter (1 word) | block output
// (16 words). Key and nonce pass through unchanged, the counter increments
// by one per step and the block output holds the most recent ciphertext
// block. All 32-bit arithmetic is done on little-endian boolean
// decompositions; the field elements themselves are never added or
// multiplied outside the linear recomposition step.
package chacha

import "github.com/consensys/gnark/frontend"

const (
	// StateLen is the number of field elements threaded between steps:
	// key(8) | nonce(3) | counter(1) | block output(16).
	StateLen = 28

	// ExternalInputLen is the number of plaintext words supplied fresh
	// each step.
	ExternalInputLen = 16

	keyWords   = 8
	nonceWords = 3
	counterIdx = 11
	outputIdx  = 12
)

// StepCircuit encrypts one 64-byte plaintext block per step. It is
// stateless; everything it needs arrives through the state vector and the
// external input of the step being synthesized.
type StepCircuit struct{}

func (c *StepCircuit) StateLen() int {
	return StateLen
}

func (c *StepCircuit) ExternalInputLen() int {
	return ExternalInputLen
}

// GenerateStepConstraints emits the constraints of one cipher step against
// api and returns the next state. The step index is unused: every step of
// the chain runs the identical transformation.
//
// Shape checks happen before any constraint is emitted. A malformed witness
// (an element whose claimed bits do not sum back to it) surfaces later, as
// an unsatisfied constraint in the solver.
func (c *StepCircuit) GenerateStepConstraints(api frontend.API, _ int, state []frontend.Variable, externalInput []frontend.Variable) ([]frontend.Variable, error) {
	if len(state) != StateLen {
		return nil, &GadgetError{Gadget: "step: state", Word: -1, Err: ErrShapeMismatch}
	}
	if len(externalInput) != ExternalInputLen {
		return nil, &GadgetError{Gadget: "step: external input", Word: -1, Err: ErrShapeMismatch}
	}

	var key [keyWords][BITS_PER_WORD]frontend.Variable
	for i := 0; i < keyWords; i++ {
		key[i] = ToWord(api, state[i])
	}
	var nonce [nonceWords][BITS_PER_WORD]frontend.Variable
	for i := 0; i < nonceWords; i++ {
		nonce[i] = ToWord(api, state[keyWords+i])
	}
	counter := ToWord(api, state[counterIdx])

	keystream := Block(api, &key, &nonce, &counter)

	next := make([]frontend.Variable, StateLen)
	copy(next, state[:outputIdx])
	next[counterIdx] = api.Add(state[counterIdx], 1)

	for i := 0; i < ExternalInputLen; i++ {
		plaintext := ToWord(api, externalInput[i])
		var ciphertext [BITS_PER_WORD]frontend.Variable
		Xor32(api, &plaintext, &keystream[i], &ciphertext)
		next[outputIdx+i] = FromWord(api, &ciphertext)
	}
	return next, nil
}
