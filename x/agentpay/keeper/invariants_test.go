package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/agentpay-chain/agentpay/x/agentpay/keeper"
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

func TestEscrowBalanceInvariant(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	task := e.openTask(listing, 1, 100)

	_, broken := keeper.EscrowBalanceInvariant(e.Keeper)(e.Ctx)
	require.False(t, broken)

	drain := sdk.NewCoins(sdk.NewCoin(e.Denom(), math.NewInt(1)))
	require.NoError(t, e.BankKeeper.SendCoins(e.Ctx, task, stranger, drain))
	msg, broken := keeper.EscrowBalanceInvariant(e.Keeper)(e.Ctx)
	require.True(t, broken)
	require.Contains(t, msg, task.String())
}

func TestEscrowBalanceInvariantIgnoresSettledTasks(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	task := e.openTask(listing, 1, 100)
	require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, task, hash(1)))
	require.NoError(t, e.Keeper.DisputeTask(e.Ctx, requester, task))

	e.Fund(task, 5)
	_, broken := keeper.EscrowBalanceInvariant(e.Keeper)(e.Ctx)
	require.False(t, broken)
}

func TestStatusIndexInvariant(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	task := e.openTask(listing, 1, 100)

	e.Store().Delete(types.OpenTaskDeadlineKey(100, task))
	_, broken := keeper.StatusIndexInvariant(e.Keeper)(e.Ctx)
	require.True(t, broken)
	e.Store().Set(types.OpenTaskDeadlineKey(100, task), []byte{1})

	e.Store().Set(types.TaskByStatusKey(types.TaskStatusExpired, task), []byte{1})
	_, broken = keeper.StatusIndexInvariant(e.Keeper)(e.Ctx)
	require.True(t, broken)
	e.Store().Delete(types.TaskByStatusKey(types.TaskStatusExpired, task))

	_, broken = keeper.StatusIndexInvariant(e.Keeper)(e.Ctx)
	require.False(t, broken)
}

func TestCompletedCountInvariant(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	task := e.openTask(listing, 1, 100)
	require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, task, hash(1)))
	require.NoError(t, e.Keeper.AcceptResult(e.Ctx, requester, task, listing))
	e.requireInvariants()

	l := e.listing(listing)
	l.TasksCompleted = 7
	bz, err := l.MarshalBinary()
	require.NoError(t, err)
	e.Store().Set(types.ServiceListingKey(listing), bz)

	msg, broken := keeper.AllInvariants(e.Keeper)(e.Ctx)
	require.True(t, broken)
	require.Contains(t, msg, "completed-count")
}

func TestCorruptRecordBreaksInvariants(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	task := e.openTask(listing, 1, 100)

	e.Store().Set(types.TaskRequestKey(task), []byte{0xde, 0xad})
	_, err := e.Keeper.GetTaskRequest(e.Ctx, task)
	require.ErrorIs(t, err, types.ErrCorruptRecord)

	_, broken := keeper.EscrowBalanceInvariant(e.Keeper)(e.Ctx)
	require.True(t, broken)
}
