package circuits

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// ScoreBits bounds score and threshold so the comparison cannot wrap the field.
const ScoreBits = 64

// ReputationCircuit proves a committed reputation score meets a threshold.
//
// Circuit Statement: "I know (S, salt) such that MiMC(S, salt) == ProviderCommitment
// and Threshold <= S."
type ReputationCircuit struct {
	// Public inputs, in verifier order
	Threshold          frontend.Variable `gnark:",public"`
	ProviderCommitment frontend.Variable `gnark:",public"`

	// Private inputs
	Score frontend.Variable `gnark:",secret"`
	Salt  frontend.Variable `gnark:",secret"`
}

// Define implements the gnark Circuit interface.
func (circuit *ReputationCircuit) Define(api frontend.API) error {
	api.ToBinary(circuit.Score, ScoreBits)
	api.ToBinary(circuit.Threshold, ScoreBits)
	api.AssertIsLessOrEqual(circuit.Threshold, circuit.Score)

	h, err := mimc.NewMiMC(api)
	if err != nil {
		return fmt.Errorf("failed to initialize MiMC: %w", err)
	}
	h.Write(circuit.Score, circuit.Salt)
	api.AssertIsEqual(h.Sum(), circuit.ProviderCommitment)
	return nil
}

// NewReputationAssignment builds a full witness assignment.
func NewReputationAssignment(threshold, score uint64, salt fr.Element, commitment [32]byte) *ReputationCircuit {
	var s big.Int
	salt.BigInt(&s)
	return &ReputationCircuit{
		Threshold:          uint64ToBigInt(threshold),
		ProviderCommitment: toBigInt(commitment),
		Score:              uint64ToBigInt(score),
		Salt:               &s,
	}
}

// NewReputationPublicAssignment builds the public part of an assignment.
func NewReputationPublicAssignment(threshold uint64, commitment [32]byte) *ReputationCircuit {
	return &ReputationCircuit{
		Threshold:          uint64ToBigInt(threshold),
		ProviderCommitment: toBigInt(commitment),
		Score:              0,
		Salt:               0,
	}
}

// GetPublicInputCount returns the number of public inputs.
func (circuit *ReputationCircuit) GetPublicInputCount() int {
	return 2 // Threshold, ProviderCommitment
}

// GetCircuitName returns the circuit identifier.
func (circuit *ReputationCircuit) GetCircuitName() string {
	return ReputationCircuitName
}
