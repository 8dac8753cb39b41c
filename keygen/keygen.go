package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"time"

	"gnark-chacha20-fold/circuits/chacha"
	"gnark-chacha20-fold/fold"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
)

const OUT_DIR = "resources"

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	logger.Set(log)
	generateCircuitFiles(fold.NewStepWrapper(&chacha.StepCircuit{}), "chacha20-step")
}

func generateCircuitFiles(circuit frontend.Circuit, name string) {
	curve := ecc.BN254.ScalarField()

	t := time.Now()
	r1css, err := frontend.Compile(curve, r1cs.NewBuilder, circuit)
	if err != nil {
		log.Fatal().Err(err).Msg("compile failed")
	}
	log.Info().Dur("took", time.Since(t)).
		Int("constraints", r1css.GetNbConstraints()).
		Int("public", r1css.GetNbPublicVariables()).
		Int("secret", r1css.GetNbSecretVariables()).
		Msg("compiled " + name)

	t = time.Now()
	pk, vk, err := groth16.Setup(r1css)
	if err != nil {
		log.Fatal().Err(err).Msg("setup failed")
	}
	log.Info().Dur("took", time.Since(t)).Msg("setup done")

	writeArtifact("r1cs."+name, serialize(r1css.WriteTo))
	writeArtifact("pk."+name, serialize(pk.WriteTo))
	writeArtifact("vk."+name, serialize(vk.WriteTo))
}

func serialize(writeTo func(w io.Writer) (int64, error)) []byte {
	buf := &bytes.Buffer{}
	if _, err := writeTo(buf); err != nil {
		log.Fatal().Err(err).Msg("serialization failed")
	}
	return buf.Bytes()
}

func writeArtifact(name string, data []byte) {
	if err := os.MkdirAll(OUT_DIR, 0o755); err != nil {
		log.Fatal().Err(err).Msg("mkdir failed")
	}
	path := filepath.Join(OUT_DIR, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("write failed")
	}
	hash := sha256.Sum256(data)
	log.Info().Str("file", path).Str("sha256", hex.EncodeToString(hash[:])).Msg("wrote artifact")
}
