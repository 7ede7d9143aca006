package cli

import (
	"encoding/json"
	"fmt"
	"os"

	cmtbytes "github.com/cometbft/cometbft/libs/bytes"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

// ProofFile is the on-disk form of a proof produced by the zk commands and
// consumed by submit-result-zk and verify-reputation.
type ProofFile struct {
	Circuit      string              `json:"circuit"`
	A            cmtbytes.HexBytes   `json:"a"`
	B            cmtbytes.HexBytes   `json:"b"`
	C            cmtbytes.HexBytes   `json:"c"`
	PublicInputs []cmtbytes.HexBytes `json:"public_inputs"`
	Threshold    uint64              `json:"threshold,omitempty,string"`
}

// NewProofFile wraps a proof and its public inputs.
func NewProofFile(circuit string, proof types.Groth16Proof, inputs ...[32]byte) ProofFile {
	f := ProofFile{
		Circuit: circuit,
		A:       append(cmtbytes.HexBytes{}, proof.A[:]...),
		B:       append(cmtbytes.HexBytes{}, proof.B[:]...),
		C:       append(cmtbytes.HexBytes{}, proof.C[:]...),
	}
	for _, in := range inputs {
		f.PublicInputs = append(f.PublicInputs, append(cmtbytes.HexBytes{}, in[:]...))
	}
	return f
}

// Proof decodes the proof points.
func (f ProofFile) Proof() (types.Groth16Proof, error) {
	return types.NewGroth16Proof(f.A, f.B, f.C)
}

// Inputs decodes the public inputs.
func (f ProofFile) Inputs() ([]types.PublicInput, error) {
	out := make([]types.PublicInput, len(f.PublicInputs))
	for i, in := range f.PublicInputs {
		if len(in) != types.PublicInputLength {
			return nil, fmt.Errorf("public input %d is %d bytes", i, len(in))
		}
		copy(out[i][:], in)
	}
	return out, nil
}

// ReadProofFile loads a ProofFile written by WriteProofFile.
func ReadProofFile(path string) (ProofFile, error) {
	var f ProofFile
	bz, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := json.Unmarshal(bz, &f); err != nil {
		return f, fmt.Errorf("failed to decode proof file %s: %w", path, err)
	}
	return f, nil
}

// WriteProofFile stores f as indented JSON.
func WriteProofFile(path string, f ProofFile) error {
	bz, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bz, 0o600)
}
