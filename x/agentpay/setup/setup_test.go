package setup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentpay-chain/agentpay/x/agentpay/circuits"
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

var testKDF = KDFParams{Time: 1, Memory: 8 * 1024, Threads: 1}

func newTestGenerator(t *testing.T, password string) (*KeyGenerator, *FileKeyStorage) {
	t.Helper()
	storage, err := NewFileKeyStorage(t.TempDir())
	require.NoError(t, err)
	return NewKeyGenerator(storage, []byte(password)).WithKDFParams(testKDF), storage
}

func TestResultProofRoundTrip(t *testing.T) {
	ctx := context.Background()
	kg, storage := newTestGenerator(t, "")

	meta, err := kg.GenerateKeys(ctx, circuits.ResultCircuitName)
	require.NoError(t, err)
	require.Equal(t, 1, meta.PublicInputs)
	require.False(t, meta.Sealed)

	ids, err := storage.List(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		MetadataID(circuits.ResultCircuitName),
		ProvingKeyID(circuits.ResultCircuitName),
		VerifyingKeyID(circuits.ResultCircuitName),
	}, ids)

	prover, err := kg.LoadProver(ctx, circuits.ResultCircuitName)
	require.NoError(t, err)
	v, err := kg.LoadVerifier(ctx, circuits.ResultCircuitName)
	require.NoError(t, err)

	proof, hash, err := ProveResult(prover, []byte("result payload"))
	require.NoError(t, err)

	var in types.PublicInput
	copy(in[:], hash[:])
	require.True(t, v.Verify(proof.A[:], proof.B[:], proof.C[:], []types.PublicInput{in}))

	_, otherHash := circuits.HashResult([]byte("other payload"))
	copy(in[:], otherHash[:])
	require.False(t, v.Verify(proof.A[:], proof.B[:], proof.C[:], []types.PublicInput{in}))

	_, _, err = ProveReputation(prover, 1, 2, circuits.SaltFromBytes([]byte{1}))
	require.Error(t, err)
}

func TestReputationProofRoundTrip(t *testing.T) {
	ctx := context.Background()
	kg, _ := newTestGenerator(t, "")

	_, err := kg.GenerateKeys(ctx, circuits.ReputationCircuitName)
	require.NoError(t, err)
	prover, err := kg.LoadProver(ctx, circuits.ReputationCircuitName)
	require.NoError(t, err)
	v, err := kg.LoadVerifier(ctx, circuits.ReputationCircuitName)
	require.NoError(t, err)
	require.Equal(t, 2, v.NbPublicInputs())

	salt := circuits.SaltFromBytes([]byte("salt"))
	proof, commitment, err := ProveReputation(prover, 60, 75, salt)
	require.NoError(t, err)

	inputs := []types.PublicInput{types.PublicInputFromUint64(60), commitment}
	require.True(t, v.Verify(proof.A[:], proof.B[:], proof.C[:], inputs))

	// a different threshold is a different statement
	inputs[0] = types.PublicInputFromUint64(70)
	require.False(t, v.Verify(proof.A[:], proof.B[:], proof.C[:], inputs))

	_, _, err = ProveReputation(prover, 80, 75, salt)
	require.Error(t, err)
}

func TestSealedProvingKey(t *testing.T) {
	ctx := context.Background()
	kg, storage := newTestGenerator(t, "hunter2")

	meta, err := kg.GenerateKeys(ctx, circuits.ResultCircuitName)
	require.NoError(t, err)
	require.True(t, meta.Sealed)

	raw, err := storage.Load(ctx, ProvingKeyID(circuits.ResultCircuitName))
	require.NoError(t, err)
	require.True(t, IsSealed(raw))

	loaded, err := kg.LoadMetadata(ctx, circuits.ResultCircuitName)
	require.NoError(t, err)
	require.Equal(t, meta.VerifyingKeyHash, loaded.VerifyingKeyHash)

	_, err = kg.LoadProvingKey(ctx, circuits.ResultCircuitName)
	require.NoError(t, err)

	wrong := NewKeyGenerator(storage, []byte("wrong")).WithKDFParams(testKDF)
	_, err = wrong.LoadProvingKey(ctx, circuits.ResultCircuitName)
	require.ErrorContains(t, err, "authentication failed")

	none := NewKeyGenerator(storage, nil)
	_, err = none.LoadProvingKey(ctx, circuits.ResultCircuitName)
	require.ErrorContains(t, err, "password is required")
}

func TestSealTamper(t *testing.T) {
	sealed, err := seal([]byte("proving key bytes"), []byte("pw"), "c", testKDF)
	require.NoError(t, err)

	plain, err := unseal(sealed, []byte("pw"), "c", testKDF)
	require.NoError(t, err)
	require.Equal(t, []byte("proving key bytes"), plain)

	// label binds the key to its circuit
	_, err = unseal(sealed, []byte("pw"), "other", testKDF)
	require.Error(t, err)

	sealed[len(sealed)-1] ^= 0x01
	_, err = unseal(sealed, []byte("pw"), "c", testKDF)
	require.Error(t, err)

	_, err = unseal([]byte("APK1"), []byte("pw"), "c", testKDF)
	require.Error(t, err)
}

func TestFileKeyStorage(t *testing.T) {
	ctx := context.Background()
	storage, err := NewFileKeyStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, storage.Store(ctx, "a.vk", []byte{1}))
	bz, err := storage.Load(ctx, "a.vk")
	require.NoError(t, err)
	require.Equal(t, []byte{1}, bz)

	_, err = storage.Load(ctx, "missing")
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.Error(t, storage.Store(ctx, "../escape", []byte{1}))

	require.NoError(t, storage.Delete(ctx, "a.vk"))
	require.NoError(t, storage.Delete(ctx, "a.vk"))
	ids, err := storage.List(ctx)
	require.NoError(t, err)
	require.Empty(t, ids)

	_, err = NewCircuit("nope")
	require.Error(t, err)
}
