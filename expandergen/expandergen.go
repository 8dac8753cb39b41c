package main

import (
	"fmt"
	"os"

	"gnark-chacha20-fold/circuits/chacha"
	"gnark-chacha20-fold/fold"

	"github.com/PolyhedraZK/ExpanderCompilerCollection/ecgo"
	"github.com/consensys/gnark-crypto/ecc"
)

const GEN_FILES_DIR = "resources/expander/"

func main() {
	if err := generateStepCircuit(); err != nil {
		panic(err)
	}
}

func generateStepCircuit() error {
	circuit, err := ecgo.Compile(ecc.BN254.ScalarField(), fold.NewStepWrapper(&chacha.StepCircuit{}))
	if err != nil {
		return err
	}

	c := circuit.GetLayeredCircuit()

	if err = os.MkdirAll(GEN_FILES_DIR, 0o755); err != nil {
		return err
	}
	circuitfilename := GEN_FILES_DIR + "chacha20_step.txt"
	if err = os.WriteFile(circuitfilename, c.Serialize(), 0o644); err != nil {
		return err
	}

	fmt.Printf("generated circuit file: %s\n", circuitfilename)

	return nil
}
