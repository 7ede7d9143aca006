package circuits

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// ResultCircuit proves knowledge of the preimage behind a submitted result hash.
//
// Circuit Statement: "I know P such that MiMC(P) == ResultHash."
type ResultCircuit struct {
	// Public inputs
	ResultHash frontend.Variable `gnark:",public"`

	// Private inputs
	Preimage frontend.Variable `gnark:",secret"`
}

// Define implements the gnark Circuit interface.
func (circuit *ResultCircuit) Define(api frontend.API) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return fmt.Errorf("failed to initialize MiMC: %w", err)
	}

	h.Write(circuit.Preimage)
	api.AssertIsEqual(h.Sum(), circuit.ResultHash)
	return nil
}

// NewResultAssignment builds a full witness assignment.
func NewResultAssignment(preimage fr.Element, resultHash [32]byte) *ResultCircuit {
	var p big.Int
	preimage.BigInt(&p)
	return &ResultCircuit{
		ResultHash: toBigInt(resultHash),
		Preimage:   &p,
	}
}

// NewResultPublicAssignment builds the public part of an assignment.
func NewResultPublicAssignment(resultHash [32]byte) *ResultCircuit {
	return &ResultCircuit{
		ResultHash: toBigInt(resultHash),
		Preimage:   0,
	}
}

// GetPublicInputCount returns the number of public inputs.
func (circuit *ResultCircuit) GetPublicInputCount() int {
	return 1 // ResultHash
}

// GetCircuitName returns the circuit identifier.
func (circuit *ResultCircuit) GetCircuitName() string {
	return ResultCircuitName
}
