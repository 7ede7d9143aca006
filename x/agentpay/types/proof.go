package types

import (
	"encoding/binary"
	"encoding/hex"
)

const (
	// G1PointLength is an uncompressed BN254 G1 point (X, Y).
	G1PointLength = 64
	// G2PointLength is an uncompressed BN254 G2 point (X.A1, X.A0, Y.A1, Y.A0).
	G2PointLength = 128
	// PublicInputLength is a big-endian scalar field element.
	PublicInputLength = 32
)

// Groth16Proof carries the three proof points exactly as the verifier consumes them.
type Groth16Proof struct {
	A [G1PointLength]byte
	B [G2PointLength]byte
	C [G1PointLength]byte
}

// NewGroth16Proof copies raw point encodings into a proof, checking widths only.
func NewGroth16Proof(a, b, c []byte) (Groth16Proof, error) {
	var p Groth16Proof
	if len(a) != G1PointLength || len(b) != G2PointLength || len(c) != G1PointLength {
		return p, ErrZkProofVerificationFailed.Wrapf(
			"proof point widths %d/%d/%d, want %d/%d/%d",
			len(a), len(b), len(c), G1PointLength, G2PointLength, G1PointLength,
		)
	}
	copy(p.A[:], a)
	copy(p.B[:], b)
	copy(p.C[:], c)
	return p, nil
}

// Bytes concatenates A, B and C.
func (p Groth16Proof) Bytes() []byte {
	out := make([]byte, 0, G1PointLength*2+G2PointLength)
	out = append(out, p.A[:]...)
	out = append(out, p.B[:]...)
	return append(out, p.C[:]...)
}

// ParseGroth16Proof splits a concatenated A||B||C proof.
func ParseGroth16Proof(bz []byte) (Groth16Proof, error) {
	if len(bz) != G1PointLength*2+G2PointLength {
		return Groth16Proof{}, ErrZkProofVerificationFailed.Wrapf("proof is %d bytes", len(bz))
	}
	return NewGroth16Proof(bz[:G1PointLength], bz[G1PointLength:G1PointLength+G2PointLength], bz[G1PointLength+G2PointLength:])
}

// PublicInput is a big-endian field element passed to a verifier.
type PublicInput [PublicInputLength]byte

// PublicInputFromUint64 encodes v as a field element.
func PublicInputFromUint64(v uint64) PublicInput {
	var in PublicInput
	binary.BigEndian.PutUint64(in[PublicInputLength-8:], v)
	return in
}

func (in PublicInput) String() string {
	return hex.EncodeToString(in[:])
}
