package setup

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"

	"github.com/agentpay-chain/agentpay/x/agentpay/circuits"
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
	"github.com/agentpay-chain/agentpay/x/agentpay/verifier"
)

// Prover produces proofs for one compiled circuit.
type Prover struct {
	circuitID string
	ccs       constraint.ConstraintSystem
	pk        groth16.ProvingKey
}

// NewProver pairs a compiled circuit with its proving key.
func NewProver(circuitID string, ccs constraint.ConstraintSystem, pk groth16.ProvingKey) *Prover {
	return &Prover{circuitID: circuitID, ccs: ccs, pk: pk}
}

// CircuitID returns the circuit the prover was built for.
func (p *Prover) CircuitID() string { return p.circuitID }

// Prove produces the raw A/B/C proof points for a full assignment.
func (p *Prover) Prove(assignment frontend.Circuit) (types.Groth16Proof, error) {
	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return types.Groth16Proof{}, fmt.Errorf("failed to create witness: %w", err)
	}
	proof, err := groth16.Prove(p.ccs, p.pk, w)
	if err != nil {
		return types.Groth16Proof{}, fmt.Errorf("failed to generate proof: %w", err)
	}
	bnProof, ok := proof.(*groth16_bn254.Proof)
	if !ok {
		return types.Groth16Proof{}, fmt.Errorf("proof is %T, want BN254", proof)
	}
	return verifier.EncodeProof(bnProof), nil
}

// ProveResult proves knowledge of the preimage of result's on-chain hash and
// returns the proof together with that hash.
func ProveResult(p *Prover, result []byte) (types.Groth16Proof, [32]byte, error) {
	if p.circuitID != circuits.ResultCircuitName {
		return types.Groth16Proof{}, [32]byte{}, fmt.Errorf("prover is for %s", p.circuitID)
	}
	preimage, hash := circuits.HashResult(result)
	proof, err := p.Prove(circuits.NewResultAssignment(preimage, hash))
	return proof, hash, err
}

// ProveReputation proves score >= threshold for the commitment MiMC(score, salt)
// and returns the proof together with that commitment.
func ProveReputation(p *Prover, threshold, score uint64, salt fr.Element) (types.Groth16Proof, [32]byte, error) {
	if p.circuitID != circuits.ReputationCircuitName {
		return types.Groth16Proof{}, [32]byte{}, fmt.Errorf("prover is for %s", p.circuitID)
	}
	commitment := circuits.ProviderCommitment(score, salt)
	proof, err := p.Prove(circuits.NewReputationAssignment(threshold, score, salt, commitment))
	return proof, commitment, err
}
