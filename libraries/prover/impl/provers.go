package impl

import (
	"bytes"
	"fmt"

	"gnark-chacha20-fold/circuits/chacha"
	"gnark-chacha20-fold/fold"
	"gnark-chacha20-fold/utils"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
)

type InputParams struct {
	Cipher  string  `json:"cipher"`
	Key     []uint8 `json:"key"`     // 32 bytes, 8 LE words
	Nonce   []uint8 `json:"nonce"`   // 12 bytes, 3 LE words
	Counter uint32  `json:"counter"` // counter of the block being proven
	Step    int     `json:"step"`    // step index within the chain
	Input   []uint8 `json:"input"`   // 64-byte plaintext block
}

type Prover interface {
	SetParams(r1cs constraint.ConstraintSystem, pk groth16.ProvingKey)
	Prove(params *InputParams) (proof []byte, signals []uint8, err error)
}

type baseProver struct {
	r1cs constraint.ConstraintSystem
	pk   groth16.ProvingKey
}

func (bp *baseProver) SetParams(r1cs constraint.ConstraintSystem, pk groth16.ProvingKey) {
	bp.r1cs = r1cs
	bp.pk = pk
}

// StepProver proves one cipher step. The prior block output is all zeros
// in the proven state: a single-step proof carries no earlier block, the
// folding engine is what chains them.
type StepProver struct {
	baseProver
}

func (sp *StepProver) Prove(params *InputParams) ([]byte, []uint8, error) {
	if len(params.Key) != 32 {
		return nil, nil, fmt.Errorf("key length must be 32: %d", len(params.Key))
	}
	if len(params.Nonce) != 12 {
		return nil, nil, fmt.Errorf("nonce length must be 12: %d", len(params.Nonce))
	}
	if len(params.Input) != 64 {
		return nil, nil, fmt.Errorf("input length must be 64: %d", len(params.Input))
	}

	var prior [chacha.StateLen]uint32
	copy(prior[:], utils.BytesToUint32LE(params.Key))
	copy(prior[8:], utils.BytesToUint32LE(params.Nonce))
	prior[11] = params.Counter

	var plaintext [chacha.ExternalInputLen]uint32
	copy(plaintext[:], utils.BytesToUint32LE(params.Input))

	next := chacha.NativeStep(&prior, &plaintext)

	witness := fold.NewStepWrapper(&chacha.StepCircuit{})
	witness.StepIndex = params.Step
	for i := 0; i < chacha.StateLen; i++ {
		witness.PriorState[i] = prior[i]
		witness.NextState[i] = next[i]
	}
	for i := 0; i < chacha.ExternalInputLen; i++ {
		witness.ExternalInput[i] = plaintext[i]
	}

	wtns, err := frontend.NewWitness(witness, ecc.BN254.ScalarField())
	if err != nil {
		return nil, nil, err
	}
	gProof, err := groth16.Prove(sp.r1cs, sp.pk, wtns)
	if err != nil {
		return nil, nil, err
	}
	buf := &bytes.Buffer{}
	if _, err = gProof.WriteTo(buf); err != nil {
		return nil, nil, err
	}

	// public signals are the next state, serialized as LE words
	return buf.Bytes(), utils.Uint32ToBytesLE(next[:]), nil
}
