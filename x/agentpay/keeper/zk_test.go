package keeper_test

import (
	"context"
	"testing"

	storetypes "cosmossdk.io/store/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/agentpay-chain/agentpay/testutil/keeper"
	"github.com/agentpay-chain/agentpay/x/agentpay/circuits"
	"github.com/agentpay-chain/agentpay/x/agentpay/setup"
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

func TestSubmitResultZK(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	task := e.openTask(listing, 1, 100)

	e.result.Accept = false
	err := e.Keeper.SubmitResultZK(e.Ctx, provider, task, types.Groth16Proof{}, hash(9))
	require.ErrorIs(t, err, types.ErrZkProofVerificationFailed)
	require.Equal(t, 1, e.result.Calls)
	got := e.task(task)
	require.Equal(t, types.TaskStatusOpen, got.Status)
	require.Equal(t, [types.ResultHashLength]byte{}, got.ResultHash)
	require.False(t, got.ZkVerified)

	e.result.Accept = true
	require.NoError(t, e.Keeper.SubmitResultZK(e.Ctx, provider, task, types.Groth16Proof{}, hash(9)))
	require.Equal(t, []types.PublicInput{types.PublicInput(hash(9))}, e.result.LastInputs)
	got = e.task(task)
	require.Equal(t, types.TaskStatusSubmitted, got.Status)
	require.Equal(t, hash(9), got.ResultHash)
	require.True(t, got.ZkVerified)
	require.Zero(t, e.reputation.Calls)
}

func TestSubmitResultZKChecksStateBeforeProof(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	task := e.openTask(listing, 1, 100)

	err := e.Keeper.SubmitResultZK(e.Ctx, stranger, task, types.Groth16Proof{}, hash(1))
	require.ErrorIs(t, err, types.ErrUnauthorizedProvider)

	e.SetTime(101)
	err = e.Keeper.SubmitResultZK(e.Ctx, provider, task, types.Groth16Proof{}, hash(1))
	require.ErrorIs(t, err, types.ErrDeadlinePassed)
	require.Zero(t, e.result.Calls)
}

func TestSubmitResultZKChargesGas(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	task := e.openTask(listing, 1, 100)

	meter := storetypes.NewGasMeter(10_000_000)
	e.Ctx = e.Ctx.WithGasMeter(meter)
	e.result.Accept = false
	_ = e.Keeper.SubmitResultZK(e.Ctx, provider, task, types.Groth16Proof{}, hash(1))
	require.GreaterOrEqual(t, meter.GasConsumed(), types.DefaultProofVerifyGas)
}

func TestMissingVerifierRejects(t *testing.T) {
	f := testkeeper.AgentPayKeeper(t, types.Verifiers{})
	listing, err := f.Keeper.RegisterService(f.Ctx, provider, id(1), nil, 10, 0)
	require.NoError(t, err)
	f.Fund(requester, 10)
	task, err := f.Keeper.CreateTask(f.Ctx, requester, listing, id(1), nil, 100, 0)
	require.NoError(t, err)

	err = f.Keeper.SubmitResultZK(f.Ctx, provider, task, types.Groth16Proof{}, hash(1))
	require.ErrorIs(t, err, types.ErrZkProofVerificationFailed)

	err = f.Keeper.VerifyReputation(f.Ctx, types.Groth16Proof{}, 1, [32]byte{}, listing)
	require.ErrorIs(t, err, types.ErrReputationTooLow)

	// the plain path needs no verifier
	require.NoError(t, f.Keeper.SubmitResult(f.Ctx, provider, task, hash(1)))
}

func TestVerifyReputation(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	commitment := [32]byte{31: 0x42}

	require.NoError(t, e.Keeper.VerifyReputation(e.Ctx, types.Groth16Proof{}, 50, commitment, listing))
	require.Equal(t, []types.PublicInput{types.PublicInputFromUint64(50), commitment}, e.reputation.LastInputs)
	require.Contains(t, e.eventTypes(), types.EventTypeReputationVerified)

	e.reputation.Accept = false
	err := e.Keeper.VerifyReputation(e.Ctx, types.Groth16Proof{}, 50, commitment, listing)
	require.ErrorIs(t, err, types.ErrReputationTooLow)

	require.NoError(t, e.Keeper.DeactivateService(e.Ctx, provider, listing))
	calls := e.reputation.Calls
	err = e.Keeper.VerifyReputation(e.Ctx, types.Groth16Proof{}, 50, commitment, listing)
	require.ErrorIs(t, err, types.ErrServiceNotActive)
	require.Equal(t, calls, e.reputation.Calls)

	err = e.Keeper.VerifyReputation(e.Ctx, types.Groth16Proof{}, 50, commitment, stranger)
	require.ErrorIs(t, err, types.ErrServiceNotFound)
}

func TestGroth16EndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("circuit setup is slow")
	}
	ctx := context.Background()
	storage, err := setup.NewFileKeyStorage(t.TempDir())
	require.NoError(t, err)
	kg := setup.NewKeyGenerator(storage, nil)

	var verifiers types.Verifiers
	for _, name := range []string{circuits.ResultCircuitName, circuits.ReputationCircuitName} {
		_, err := kg.GenerateKeys(ctx, name)
		require.NoError(t, err)
	}
	resultVerifier, err := kg.LoadVerifier(ctx, circuits.ResultCircuitName)
	require.NoError(t, err)
	reputationVerifier, err := kg.LoadVerifier(ctx, circuits.ReputationCircuitName)
	require.NoError(t, err)
	verifiers.Result = resultVerifier
	verifiers.Reputation = reputationVerifier

	resultProver, err := kg.LoadProver(ctx, circuits.ResultCircuitName)
	require.NoError(t, err)
	reputationProver, err := kg.LoadProver(ctx, circuits.ReputationCircuitName)
	require.NoError(t, err)

	f := testkeeper.AgentPayKeeper(t, verifiers)
	listing, err := f.Keeper.RegisterService(f.Ctx, provider, id(1), []byte("translation"), 500, 80)
	require.NoError(t, err)

	salt := circuits.SaltFromBytes([]byte("provider salt"))
	repProof, commitment, err := setup.ProveReputation(reputationProver, 80, 93, salt)
	require.NoError(t, err)
	require.NoError(t, f.Keeper.VerifyReputation(f.Ctx, repProof, 80, commitment, listing))
	err = f.Keeper.VerifyReputation(f.Ctx, repProof, 95, commitment, listing)
	require.ErrorIs(t, err, types.ErrReputationTooLow)

	f.Fund(requester, 500)
	task, err := f.Keeper.CreateTask(f.Ctx, requester, listing, id(1), []byte("translate to french"), 100, 0)
	require.NoError(t, err)

	proof, resultHash, err := setup.ProveResult(resultProver, []byte("bonjour"))
	require.NoError(t, err)

	_, wrongHash := circuits.HashResult([]byte("hello"))
	err = f.Keeper.SubmitResultZK(f.Ctx, provider, task, proof, wrongHash)
	require.ErrorIs(t, err, types.ErrZkProofVerificationFailed)

	require.NoError(t, f.Keeper.SubmitResultZK(f.Ctx, provider, task, proof, resultHash))
	got, err := f.Keeper.GetTaskRequest(f.Ctx, task)
	require.NoError(t, err)
	require.True(t, got.ZkVerified)
	require.Equal(t, resultHash, got.ResultHash)

	require.NoError(t, f.Keeper.AcceptResult(f.Ctx, requester, task, listing))
	require.Equal(t, uint64(500), f.Balance(provider))
}
