package impl

import (
	"bytes"
	"fmt"

	"gnark-chacha20-fold/circuits/chacha"
	"gnark-chacha20-fold/fold"
	"gnark-chacha20-fold/utils"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
)

type Verifier interface {
	Verify(proof []byte, publicSignals []uint8) bool
}

type StepVerifier struct {
	vk groth16.VerifyingKey
}

func (sv *StepVerifier) Verify(proof []byte, publicSignals []uint8) bool {
	// public signals are the 28 words of the next state
	if len(publicSignals) != chacha.StateLen*4 {
		fmt.Printf("public signals must be %d bytes, not %d\n", chacha.StateLen*4, len(publicSignals))
		return false
	}
	nextState := utils.BytesToUint32LE(publicSignals)

	witness := fold.NewStepWrapper(&chacha.StepCircuit{})
	for i := 0; i < chacha.StateLen; i++ {
		witness.NextState[i] = nextState[i]
	}

	wtns, err := frontend.NewWitness(witness, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		fmt.Println(err)
		return false
	}

	gProof := groth16.NewProof(ecc.BN254)
	if _, err = gProof.ReadFrom(bytes.NewBuffer(proof)); err != nil {
		fmt.Println(err)
		return false
	}
	err = groth16.Verify(gProof, sv.vk, wtns)
	if err != nil {
		fmt.Println(err)
	}
	return err == nil
}
