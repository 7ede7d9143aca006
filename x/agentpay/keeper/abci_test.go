package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

func TestEndBlockerDisabledByDefault(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 100)
	task := e.openTask(listing, 1, 10)

	e.SetTime(1_000)
	require.NoError(t, e.Keeper.EndBlocker(e.Ctx))
	require.Equal(t, types.TaskStatusOpen, e.task(task).Status)
}

func TestEndBlockerExpiresInDeadlineOrder(t *testing.T) {
	e := newTestEnv(t)
	params := types.DefaultParams()
	params.ExpiryBatchSize = 2
	require.NoError(t, e.Keeper.UpdateParams(e.Ctx, e.Authority, params))

	listing := e.register(1, 100)
	late := e.openTask(listing, 1, 30)
	early := e.openTask(listing, 2, 10)
	middle := e.openTask(listing, 3, 20)
	notDue := e.openTask(listing, 4, 50)
	submitted := e.openTask(listing, 5, 15)
	require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, submitted, hash(5)))

	// a task is only overdue once block time passes its deadline
	e.SetTime(10)
	require.NoError(t, e.Keeper.EndBlocker(e.Ctx))
	require.Equal(t, types.TaskStatusOpen, e.task(early).Status)

	e.SetTime(40)
	require.NoError(t, e.Keeper.EndBlocker(e.Ctx))
	require.Equal(t, types.TaskStatusExpired, e.task(early).Status)
	require.Equal(t, types.TaskStatusExpired, e.task(middle).Status)
	require.Equal(t, types.TaskStatusOpen, e.task(late).Status)
	require.Equal(t, uint64(200), e.Balance(requester))

	require.NoError(t, e.Keeper.EndBlocker(e.Ctx))
	require.Equal(t, types.TaskStatusExpired, e.task(late).Status)
	require.Equal(t, types.TaskStatusOpen, e.task(notDue).Status)
	require.Equal(t, types.TaskStatusSubmitted, e.task(submitted).Status)
	require.Equal(t, uint64(300), e.Balance(requester))

	e.requireInvariants()
}

func TestEndBlockerSkipsTasksThatFailToExpire(t *testing.T) {
	e := newTestEnv(t)
	params := types.DefaultParams()
	params.ExpiryBatchSize = 1
	require.NoError(t, e.Keeper.UpdateParams(e.Ctx, e.Authority, params))

	listing := e.register(1, 100)
	stuck := e.openTask(listing, 1, 10)
	due := e.openTask(listing, 2, 20)

	// an escrow account that no longer holds the task amount cannot refund
	drained := sdk.NewCoins(sdk.NewCoin(e.Denom(), math.NewIntFromUint64(100)))
	require.NoError(t, e.BankKeeper.SendCoins(e.Ctx, stuck, stranger, drained))

	e.SetTime(1_000)
	require.NoError(t, e.Keeper.EndBlocker(e.Ctx))
	require.Equal(t, types.TaskStatusOpen, e.task(stuck).Status)
	require.Equal(t, types.TaskStatusExpired, e.task(due).Status)
	require.Equal(t, uint64(100), e.Balance(requester))

	// the stuck task keeps being retried without blocking the crank
	later := e.openTask(listing, 3, 30)
	e.SetTime(2_000)
	require.NoError(t, e.Keeper.EndBlocker(e.Ctx))
	require.Equal(t, types.TaskStatusOpen, e.task(stuck).Status)
	require.Equal(t, types.TaskStatusExpired, e.task(later).Status)
}
