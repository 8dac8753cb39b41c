// Package impl is the high-level proving entry point: json parameters in,
// groth16 proof plus serialized public signals out. Proving material is
// injected through InitAlgorithm and checked against pinned sha256
// fingerprints before use.
package impl

import (
	"bytes"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

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

// KeyHash and CircuitHash pin the artifacts produced by keygen. Empty
// hashes accept any artifact; they are filled in when keys are released.
var provers = map[string]*ProverParams{
	"chacha20-step": {
		KeyHash:     "",
		CircuitHash: "",
		Prover:      &StepProver{},
	},
}

type OutputParams struct {
	Proof         []uint8 `json:"proof"`
	PublicSignals []uint8 `json:"publicSignals"`
}

type ProverParams struct {
	Prover
	KeyHash     string
	CircuitHash string
	initDone    bool
	initLock    sync.Mutex
}

func init() {
	logger.Disable()
}

func InitAlgorithm(algorithmID uint8, provingKey []byte, r1csData []byte) (res bool) {
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
	proverParams := provers[alg]
	proverParams.initLock.Lock()
	defer proverParams.initLock.Unlock()
	if proverParams.initDone {
		return true
	}

	if !checkHash(proverParams.KeyHash, provingKey) {
		fmt.Printf("incorrect proving key hash for %s\n", alg)
		return false
	}
	pkey := groth16.NewProvingKey(ecc.BN254)
	if _, err := pkey.ReadFrom(bytes.NewBuffer(provingKey)); err != nil {
		fmt.Println(fmt.Errorf("error reading proving key: %v", err))
		return false
	}

	if !checkHash(proverParams.CircuitHash, r1csData) {
		fmt.Printf("incorrect circuit hash for %s\n", alg)
		return false
	}
	r1cs := groth16.NewCS(ecc.BN254)
	if _, err := r1cs.ReadFrom(bytes.NewBuffer(r1csData)); err != nil {
		fmt.Println(fmt.Errorf("error reading r1cs: %v", err))
		return false
	}

	proverParams.SetParams(r1cs, pkey)
	proverParams.initDone = true
	return true
}

func Prove(params []byte) []byte {
	var inputParams InputParams
	err := json.Unmarshal(params, &inputParams)
	if err != nil {
		panic(err)
	}
	prover, ok := provers[inputParams.Cipher]
	if !ok {
		panic("unknown cipher: " + inputParams.Cipher)
	}
	if !prover.initDone {
		panic(fmt.Sprintf("proving params are not initialized for %s", inputParams.Cipher))
	}

	proof, signals, err := prover.Prove(&inputParams)
	if err != nil {
		panic(err)
	}
	res, err := json.Marshal(&OutputParams{
		Proof:         proof,
		PublicSignals: signals,
	})
	if err != nil {
		panic(err)
	}
	return res
}

func checkHash(expected string, data []byte) bool {
	if expected == "" {
		return true
	}
	want := mustHex(expected)
	got := sha256.Sum256(data)
	return subtle.ConstantTimeCompare(got[:], want) == 1
}

func mustHex(s string) []byte {
	res, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return res
}
