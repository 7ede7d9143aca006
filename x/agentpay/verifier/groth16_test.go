package verifier_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentpay-chain/agentpay/x/agentpay/circuits"
	"github.com/agentpay-chain/agentpay/x/agentpay/setup"
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
	"github.com/agentpay-chain/agentpay/x/agentpay/verifier"
)

func resultFixture(t *testing.T) (*verifier.Groth16Verifier, types.Groth16Proof, types.PublicInput) {
	t.Helper()
	ctx := context.Background()
	storage, err := setup.NewFileKeyStorage(t.TempDir())
	require.NoError(t, err)
	kg := setup.NewKeyGenerator(storage, nil)
	_, err = kg.GenerateKeys(ctx, circuits.ResultCircuitName)
	require.NoError(t, err)

	prover, err := kg.LoadProver(ctx, circuits.ResultCircuitName)
	require.NoError(t, err)
	proof, hash, err := setup.ProveResult(prover, []byte("ok"))
	require.NoError(t, err)

	raw, err := storage.Load(ctx, setup.VerifyingKeyID(circuits.ResultCircuitName))
	require.NoError(t, err)
	v, err := verifier.ReadVerifyingKey(bytes.NewReader(raw))
	require.NoError(t, err)
	return v, proof, types.PublicInput(hash)
}

func TestGroth16VerifierRejectsMalformedInput(t *testing.T) {
	v, proof, input := resultFixture(t)
	inputs := []types.PublicInput{input}
	require.NoError(t, v.Check(proof.A[:], proof.B[:], proof.C[:], inputs))

	flip := func(bz []byte, i int) []byte {
		out := append([]byte{}, bz...)
		out[i] ^= 0x01
		return out
	}
	compressed := append([]byte{}, proof.A[:]...)
	compressed[0] |= 0x80

	var nonCanonical types.PublicInput
	for i := range nonCanonical {
		nonCanonical[i] = 0xff
	}

	tests := []struct {
		name    string
		a, b, c []byte
		inputs  []types.PublicInput
	}{
		{"short A", proof.A[:63], proof.B[:], proof.C[:], inputs},
		{"short B", proof.A[:], proof.B[:127], proof.C[:], inputs},
		{"compressed A", compressed, proof.B[:], proof.C[:], inputs},
		{"A off curve", flip(proof.A[:], 63), proof.B[:], proof.C[:], inputs},
		{"B off curve", proof.A[:], flip(proof.B[:], 127), proof.C[:], inputs},
		{"swapped A and C", proof.C[:], proof.B[:], proof.A[:], inputs},
		{"no inputs", proof.A[:], proof.B[:], proof.C[:], nil},
		{"extra input", proof.A[:], proof.B[:], proof.C[:], []types.PublicInput{input, input}},
		{"non canonical input", proof.A[:], proof.B[:], proof.C[:], []types.PublicInput{nonCanonical}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, v.Check(tc.a, tc.b, tc.c, tc.inputs))
			require.False(t, v.Verify(tc.a, tc.b, tc.c, tc.inputs))
		})
	}
}

func TestGroth16VerifierWithoutKey(t *testing.T) {
	var v *verifier.Groth16Verifier
	require.False(t, v.Verify(make([]byte, 64), make([]byte, 128), make([]byte, 64), nil))
	require.Zero(t, v.NbPublicInputs())

	_, err := verifier.ReadVerifyingKey(bytes.NewReader([]byte("garbage")))
	require.Error(t, err)
}

func TestEncodeDecodeProof(t *testing.T) {
	_, proof, _ := resultFixture(t)
	decoded, err := verifier.DecodeProof(proof.A[:], proof.B[:], proof.C[:])
	require.NoError(t, err)
	require.Equal(t, proof, verifier.EncodeProof(decoded))
}
