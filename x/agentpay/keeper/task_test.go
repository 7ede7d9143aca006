package keeper_test

import (
	"bytes"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

func TestAcceptScenario(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)

	e.SetTime(0)
	task := e.openTask(listing, 1, 100)
	require.Equal(t, types.TaskRequestAddress(requester, id(1)), task)
	require.Equal(t, uint64(1000), e.Balance(task))
	require.Zero(t, e.Balance(requester))

	got := e.task(task)
	require.Equal(t, types.TaskStatusOpen, got.Status)
	require.Equal(t, uint64(1000), got.AmountLamports)
	require.True(t, got.Provider.Equals(provider))
	require.True(t, got.ServiceListing.Equals(listing))
	require.Equal(t, [types.ResultHashLength]byte{}, got.ResultHash)
	require.False(t, got.ZkVerified)

	e.SetTime(50)
	require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, task, hash(7)))
	got = e.task(task)
	require.Equal(t, types.TaskStatusSubmitted, got.Status)
	require.Equal(t, hash(7), got.ResultHash)
	require.False(t, got.ZkVerified)
	require.Equal(t, uint64(1000), e.Balance(task))

	e.SetTime(60)
	require.NoError(t, e.Keeper.AcceptResult(e.Ctx, requester, task, listing))
	require.Equal(t, uint64(1000), e.Balance(provider))
	require.Zero(t, e.Balance(task))
	require.Equal(t, types.TaskStatusCompleted, e.task(task).Status)
	require.Equal(t, uint64(1), e.listing(listing).TasksCompleted)

	// second accept fails and moves nothing
	err := e.Keeper.AcceptResult(e.Ctx, requester, task, listing)
	require.ErrorIs(t, err, types.ErrInvalidTaskStatus)
	require.Equal(t, uint64(1000), e.Balance(provider))
	require.Equal(t, uint64(1), e.listing(listing).TasksCompleted)

	e.requireInvariants()
}

func TestExpireScenario(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	task := e.openTask(listing, 1, 100)

	e.SetTime(100)
	err := e.Keeper.ExpireTask(e.Ctx, stranger, task)
	require.ErrorIs(t, err, types.ErrDeadlineNotReached)

	e.SetTime(150)
	require.NoError(t, e.Keeper.ExpireTask(e.Ctx, stranger, task))
	require.Equal(t, uint64(1000), e.Balance(requester))
	require.Zero(t, e.Balance(task))
	require.Zero(t, e.Balance(stranger))
	require.Equal(t, types.TaskStatusExpired, e.task(task).Status)

	err = e.Keeper.ExpireTask(e.Ctx, stranger, task)
	require.ErrorIs(t, err, types.ErrInvalidTaskStatus)
	require.Equal(t, uint64(1000), e.Balance(requester))

	e.requireInvariants()
}

func TestDisputeRefundsRequester(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	task := e.openTask(listing, 1, 100)

	// dispute needs a submission first
	require.ErrorIs(t, e.Keeper.DisputeTask(e.Ctx, requester, task), types.ErrInvalidTaskStatus)

	require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, task, hash(1)))
	require.ErrorIs(t, e.Keeper.DisputeTask(e.Ctx, stranger, task), types.ErrUnauthorizedRequester)

	require.NoError(t, e.Keeper.DisputeTask(e.Ctx, requester, task))
	require.Equal(t, types.TaskStatusDisputed, e.task(task).Status)
	require.Equal(t, uint64(1000), e.Balance(requester))
	require.Zero(t, e.Balance(provider))
	require.Zero(t, e.Balance(task))
	require.Zero(t, e.listing(listing).TasksCompleted)

	// a submitted task can no longer expire
	e.SetTime(1_000)
	require.ErrorIs(t, e.Keeper.ExpireTask(e.Ctx, stranger, task), types.ErrInvalidTaskStatus)

	e.requireInvariants()
}

func TestAcceptAndDisputeRace(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	task := e.openTask(listing, 1, 100)
	require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, task, hash(1)))

	require.NoError(t, e.Keeper.DisputeTask(e.Ctx, requester, task))
	require.ErrorIs(t, e.Keeper.AcceptResult(e.Ctx, requester, task, listing), types.ErrInvalidTaskStatus)
	require.Zero(t, e.Balance(provider))
	require.Equal(t, uint64(1000), e.Balance(requester))
}

func TestSubmitResultPreconditions(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	task := e.openTask(listing, 1, 100)

	require.ErrorIs(t, e.Keeper.SubmitResult(e.Ctx, stranger, task, hash(1)), types.ErrUnauthorizedProvider)
	require.ErrorIs(t, e.Keeper.SubmitResult(e.Ctx, requester, task, hash(1)), types.ErrUnauthorizedProvider)

	// deadline itself is still in time
	e.SetTime(100)
	require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, task, hash(1)))
	require.ErrorIs(t, e.Keeper.SubmitResult(e.Ctx, provider, task, hash(2)), types.ErrInvalidTaskStatus)
	require.Equal(t, hash(1), e.task(task).ResultHash)

	late := e.openTaskAt(listing, 2, 0, 100)
	e.SetTime(101)
	require.ErrorIs(t, e.Keeper.SubmitResult(e.Ctx, provider, late, hash(1)), types.ErrDeadlinePassed)
	require.Equal(t, types.TaskStatusOpen, e.task(late).Status)

	require.ErrorIs(t, e.Keeper.SubmitResult(e.Ctx, provider, stranger, hash(1)), types.ErrTaskNotFound)
}

func (e *testEnv) openTaskAt(listing sdk.AccAddress, taskID byte, at, deadline int64) sdk.AccAddress {
	saved := e.Ctx
	e.SetTime(at)
	addr := e.openTask(listing, taskID, deadline)
	e.Ctx = e.Ctx.WithBlockTime(saved.BlockTime())
	return addr
}

func TestCreateTaskPreconditions(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	e.SetTime(50)
	e.Fund(requester, 5000)

	_, err := e.Keeper.CreateTask(e.Ctx, requester, listing, id(1), nil, 50, 0)
	require.ErrorIs(t, err, types.ErrDeadlineInPast)
	_, err = e.Keeper.CreateTask(e.Ctx, requester, listing, id(1), nil, 10, 0)
	require.ErrorIs(t, err, types.ErrDeadlineInPast)

	_, err = e.Keeper.CreateTask(e.Ctx, requester, listing, id(1), nil, 100, 999)
	require.ErrorIs(t, err, types.ErrInsufficientPayment)

	_, err = e.Keeper.CreateTask(e.Ctx, requester, listing, id(1), bytes.Repeat([]byte("x"), 257), 100, 0)
	require.ErrorIs(t, err, types.ErrDescriptionTooLong)

	_, err = e.Keeper.CreateTask(e.Ctx, requester, stranger, id(1), nil, 100, 0)
	require.ErrorIs(t, err, types.ErrServiceNotFound)
	require.Equal(t, uint64(5000), e.Balance(requester))

	// max payment above the price still escrows exactly the price
	task, err := e.Keeper.CreateTask(e.Ctx, requester, listing, id(1), nil, 100, 2000)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), e.Balance(task))
	require.Equal(t, uint64(4000), e.Balance(requester))

	_, err = e.Keeper.CreateTask(e.Ctx, requester, listing, id(1), nil, 100, 0)
	require.ErrorIs(t, err, types.ErrTaskAlreadyExists)
	require.Equal(t, uint64(4000), e.Balance(requester))
}

func TestCreateTaskWithoutFundsLeavesNoRecord(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	e.Fund(requester, 999)

	_, err := e.Keeper.CreateTask(e.Ctx, requester, listing, id(1), nil, 100, 0)
	require.Error(t, err)
	_, err = e.Keeper.GetTaskRequest(e.Ctx, types.TaskRequestAddress(requester, id(1)))
	require.ErrorIs(t, err, types.ErrTaskNotFound)
	require.Equal(t, uint64(999), e.Balance(requester))
	e.requireInvariants()
}

func TestAcceptRequiresOriginatingListing(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	other := e.register(2, 1000)
	task := e.openTask(listing, 1, 100)
	require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, task, hash(1)))

	require.ErrorIs(t, e.Keeper.AcceptResult(e.Ctx, stranger, task, listing), types.ErrUnauthorizedRequester)
	require.ErrorIs(t, e.Keeper.AcceptResult(e.Ctx, requester, task, other), types.ErrServiceListingMismatch)
	require.Equal(t, types.TaskStatusSubmitted, e.task(task).Status)
	require.Zero(t, e.listing(other).TasksCompleted)

	require.NoError(t, e.Keeper.AcceptResult(e.Ctx, requester, task, listing))
}

func TestZeroPriceTask(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 0)
	task, err := e.Keeper.CreateTask(e.Ctx, requester, listing, id(1), nil, 100, 0)
	require.NoError(t, err)
	require.Zero(t, e.Balance(task))

	require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, task, hash(1)))
	require.NoError(t, e.Keeper.AcceptResult(e.Ctx, requester, task, listing))
	require.Equal(t, uint64(1), e.listing(listing).TasksCompleted)
	e.requireInvariants()
}

func TestStrayDepositIsSwept(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	task := e.openTask(listing, 1, 100)
	e.Fund(task, 25)

	require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, task, hash(1)))
	require.NoError(t, e.Keeper.AcceptResult(e.Ctx, requester, task, listing))
	require.Equal(t, uint64(1025), e.Balance(provider))
	require.Zero(t, e.Balance(task))
}

func TestCompletionCounterOverflow(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	task := e.openTask(listing, 1, 100)
	require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, task, hash(1)))

	l := e.listing(listing)
	l.TasksCompleted = ^uint64(0)
	bz, err := l.MarshalBinary()
	require.NoError(t, err)
	e.Store().Set(types.ServiceListingKey(listing), bz)

	require.ErrorIs(t, e.Keeper.AcceptResult(e.Ctx, requester, task, listing), types.ErrCounterOverflow)
	require.Equal(t, types.TaskStatusSubmitted, e.task(task).Status)
	require.Equal(t, uint64(1000), e.Balance(task))
	require.Zero(t, e.Balance(provider))
}

func TestCreateTaskIgnoresMinReputation(t *testing.T) {
	e := newTestEnv(t)
	listing, err := e.Keeper.RegisterService(e.Ctx, provider, id(9), []byte("audited code review"), 300, 90)
	require.NoError(t, err)

	e.Fund(requester, 300)
	task, err := e.Keeper.CreateTask(e.Ctx, requester, listing, id(1), nil, 100, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(300), e.Balance(task))
	require.Zero(t, e.reputation.Calls)
}
