// Package impl verifies step proofs produced by the prover library. The
// verifying key is injected through InitAlgorithm; keygen prints its sha256
// fingerprint next to the artifact.
package impl

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/logger"
)

const (
	CHACHA20_STEP = 0
)

var algorithmNames = map[uint8]string{
	CHACHA20_STEP: "chacha20-step",
}

type InputVerifyParams struct {
	Cipher        string  `json:"cipher"`
	Proof         []uint8 `json:"proof"`
	PublicSignals []uint8 `json:"publicSignals"`
}

var verifiers = make(map[string]Verifier)

func init() {
	logger.Disable()
}

func InitAlgorithm(algorithmID uint8, verifyingKey []byte) (res bool) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println(err)
			res = false
		}
	}()
	alg, ok := algorithmNames[algorithmID]
	if !ok {
		return false
	}

	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(bytes.NewBuffer(verifyingKey)); err != nil {
		fmt.Println(fmt.Errorf("error reading verifying key: %v", err))
		return false
	}
	verifiers[alg] = &StepVerifier{vk: vk}
	return true
}

func Verify(params []byte) bool {
	var inputParams InputVerifyParams
	if err := json.Unmarshal(params, &inputParams); err != nil {
		fmt.Println(err)
		return false
	}
	verifier, ok := verifiers[inputParams.Cipher]
	if !ok {
		fmt.Printf("no verifier for %s\n", inputParams.Cipher)
		return false
	}
	return verifier.Verify(inputParams.Proof, inputParams.PublicSignals)
}
