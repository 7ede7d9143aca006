package circuits

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"
)

func TestResultCircuit(t *testing.T) {
	assert := test.NewAssert(t)

	preimage, hash := HashResult([]byte(`{"summary":"ok"}`))
	assert.SolvingSucceeded(new(ResultCircuit), NewResultAssignment(preimage, hash), test.WithCurves(ecc.BN254))

	_, other := HashResult([]byte("something else"))
	assert.SolvingFailed(new(ResultCircuit), NewResultAssignment(preimage, other), test.WithCurves(ecc.BN254))
}

func TestReputationCircuit(t *testing.T) {
	salt := SaltFromBytes([]byte("provider salt"))
	commitment := ProviderCommitment(80, salt)

	t.Run("score above threshold", func(t *testing.T) {
		assert := test.NewAssert(t)
		assert.SolvingSucceeded(new(ReputationCircuit), NewReputationAssignment(50, 80, salt, commitment), test.WithCurves(ecc.BN254))
	})
	t.Run("score equals threshold", func(t *testing.T) {
		assert := test.NewAssert(t)
		assert.SolvingSucceeded(new(ReputationCircuit), NewReputationAssignment(80, 80, salt, commitment), test.WithCurves(ecc.BN254))
	})
	t.Run("score below threshold", func(t *testing.T) {
		assert := test.NewAssert(t)
		assert.SolvingFailed(new(ReputationCircuit), NewReputationAssignment(81, 80, salt, commitment), test.WithCurves(ecc.BN254))
	})
	t.Run("wrong commitment", func(t *testing.T) {
		assert := test.NewAssert(t)
		wrong := ProviderCommitment(90, salt)
		assert.SolvingFailed(new(ReputationCircuit), NewReputationAssignment(50, 80, salt, wrong), test.WithCurves(ecc.BN254))
	})
}

func TestNativeHashes(t *testing.T) {
	p1, h1 := HashResult([]byte("a"))
	p2, h2 := HashResult([]byte("a"))
	require.Equal(t, p1, p2)
	require.Equal(t, h1, h2)

	_, h3 := HashResult([]byte("b"))
	require.NotEqual(t, h1, h3)

	// preimage fits in 31 bytes
	bz := p1.Bytes()
	require.Zero(t, bz[0])

	salt := SaltFromBytes([]byte{1})
	require.NotEqual(t, ProviderCommitment(1, salt), ProviderCommitment(2, salt))
}

func TestCircuitGetters(t *testing.T) {
	require.Equal(t, 1, new(ResultCircuit).GetPublicInputCount())
	require.Equal(t, 2, new(ReputationCircuit).GetPublicInputCount())
	require.NotEqual(t, new(ResultCircuit).GetCircuitName(), new(ReputationCircuit).GetCircuitName())
}
