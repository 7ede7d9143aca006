// Package verifier implements the proof checking contract over BN254 Groth16
// proofs given as raw uncompressed curve points.
package verifier

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	groth16_bn254 "github.com/consensys/gnark/backend/groth16/bn254"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

var _ types.ProofVerifier = (*Groth16Verifier)(nil)

var (
	errNoVerifyingKey = errors.New("no verifying key loaded")
	errCompressed     = errors.New("point is not uncompressed")
)

// Groth16Verifier checks proofs for a single circuit.
type Groth16Verifier struct {
	vk *groth16_bn254.VerifyingKey
}

// NewGroth16Verifier wraps a BN254 verifying key.
func NewGroth16Verifier(vk groth16.VerifyingKey) (*Groth16Verifier, error) {
	bnVK, ok := vk.(*groth16_bn254.VerifyingKey)
	if !ok {
		return nil, fmt.Errorf("verifying key is %T, want BN254", vk)
	}
	if len(bnVK.CommitmentKeys) > 0 {
		return nil, errors.New("circuits with commitments are not supported")
	}
	return &Groth16Verifier{vk: bnVK}, nil
}

// ReadVerifyingKey decodes a verifying key written by gnark's WriteTo.
func ReadVerifyingKey(r io.Reader) (*Groth16Verifier, error) {
	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to deserialize verifying key: %w", err)
	}
	return NewGroth16Verifier(vk)
}

// LoadVerifyingKeyFile reads a verifying key from disk.
func LoadVerifyingKeyFile(path string) (*Groth16Verifier, error) {
	bz, err := os.ReadFile(path) // #nosec G304 - operator supplied key path
	if err != nil {
		return nil, err
	}
	return ReadVerifyingKey(bytes.NewReader(bz))
}

// NbPublicInputs returns how many public inputs the circuit expects.
func (v *Groth16Verifier) NbPublicInputs() int {
	if v == nil || v.vk == nil {
		return 0
	}
	return len(v.vk.G1.K) - 1
}

// Verify implements types.ProofVerifier. Any decoding problem is a rejection.
func (v *Groth16Verifier) Verify(proofA, proofB, proofC []byte, publicInputs []types.PublicInput) bool {
	return v.Check(proofA, proofB, proofC, publicInputs) == nil
}

// Check verifies a proof and reports why it was rejected.
func (v *Groth16Verifier) Check(proofA, proofB, proofC []byte, publicInputs []types.PublicInput) error {
	if v == nil || v.vk == nil {
		return errNoVerifyingKey
	}

	proof, err := DecodeProof(proofA, proofB, proofC)
	if err != nil {
		return err
	}

	if len(publicInputs) != v.NbPublicInputs() {
		return fmt.Errorf("got %d public inputs, circuit expects %d", len(publicInputs), v.NbPublicInputs())
	}
	witness := make(fr.Vector, len(publicInputs))
	for i := range publicInputs {
		if err := witness[i].SetBytesCanonical(publicInputs[i][:]); err != nil {
			return fmt.Errorf("public input %d: %w", i, err)
		}
	}

	return groth16_bn254.Verify(proof, v.vk, witness)
}

// DecodeProof parses uncompressed A (G1), B (G2) and C (G1) points.
func DecodeProof(proofA, proofB, proofC []byte) (*groth16_bn254.Proof, error) {
	if len(proofA) != types.G1PointLength || len(proofB) != types.G2PointLength || len(proofC) != types.G1PointLength {
		return nil, fmt.Errorf("proof point widths %d/%d/%d", len(proofA), len(proofB), len(proofC))
	}

	var proof groth16_bn254.Proof
	if err := decodeG1(&proof.Ar, proofA); err != nil {
		return nil, fmt.Errorf("proof A: %w", err)
	}
	if err := decodeG2(&proof.Bs, proofB); err != nil {
		return nil, fmt.Errorf("proof B: %w", err)
	}
	if err := decodeG1(&proof.Krs, proofC); err != nil {
		return nil, fmt.Errorf("proof C: %w", err)
	}
	return &proof, nil
}

// EncodeProof is the inverse of DecodeProof.
func EncodeProof(proof *groth16_bn254.Proof) types.Groth16Proof {
	var out types.Groth16Proof
	a := proof.Ar.RawBytes()
	b := proof.Bs.RawBytes()
	c := proof.Krs.RawBytes()
	copy(out.A[:], a[:])
	copy(out.B[:], b[:])
	copy(out.C[:], c[:])
	return out
}

// The top two bits of the first byte carry gnark-crypto's encoding flags;
// only plain uncompressed points are accepted.
func decodeG1(p *bn254.G1Affine, bz []byte) error {
	if bz[0]>>6 != 0 {
		return errCompressed
	}
	_, err := p.SetBytes(bz)
	return err
}

func decodeG2(p *bn254.G2Affine, bz []byte) error {
	if bz[0]>>6 != 0 {
		return errCompressed
	}
	_, err := p.SetBytes(bz)
	return err
}
