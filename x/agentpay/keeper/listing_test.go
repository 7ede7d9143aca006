package keeper_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

func TestRegisterService(t *testing.T) {
	e := newTestEnv(t)
	e.SetTime(42)

	addr, err := e.Keeper.RegisterService(e.Ctx, provider, id(1), []byte("image captioning"), 500, 70)
	require.NoError(t, err)
	require.Equal(t, types.ServiceListingAddress(provider, id(1)), addr)

	l := e.listing(addr)
	require.True(t, l.Provider.Equals(provider))
	require.Equal(t, "image captioning", l.DescriptionText())
	require.Equal(t, uint64(500), l.PriceLamports)
	require.True(t, l.IsActive)
	require.Zero(t, l.TasksCompleted)
	require.Equal(t, int64(42), l.CreatedAt)
	require.Equal(t, uint64(70), l.MinReputation)
	require.Contains(t, e.eventTypes(), types.EventTypeServiceRegistered)

	// same (provider, service_id) cannot be registered twice
	_, err = e.Keeper.RegisterService(e.Ctx, provider, id(1), nil, 1, 0)
	require.ErrorIs(t, err, types.ErrServiceAlreadyExists)

	// another provider may reuse the id
	other, err := e.Keeper.RegisterService(e.Ctx, stranger, id(1), nil, 1, 0)
	require.NoError(t, err)
	require.NotEqual(t, addr, other)
}

func TestRegisterServiceRejectsLongDescription(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.Keeper.RegisterService(e.Ctx, provider, id(1), bytes.Repeat([]byte("a"), 129), 1, 0)
	require.ErrorIs(t, err, types.ErrDescriptionTooLong)

	_, err = e.Keeper.GetServiceListing(e.Ctx, types.ServiceListingAddress(provider, id(1)))
	require.ErrorIs(t, err, types.ErrServiceNotFound)
}

func TestDeactivateService(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	inflight := e.openTask(listing, 1, 100)

	err := e.Keeper.DeactivateService(e.Ctx, stranger, listing)
	require.ErrorIs(t, err, types.ErrUnauthorizedServiceOwner)
	require.True(t, e.listing(listing).IsActive)

	require.NoError(t, e.Keeper.DeactivateService(e.Ctx, provider, listing))
	require.False(t, e.listing(listing).IsActive)

	// no new tasks, and nothing is debited
	e.Fund(requester, 1000)
	before := e.Balance(requester)
	_, err = e.Keeper.CreateTask(e.Ctx, requester, listing, id(2), nil, 100, 0)
	require.ErrorIs(t, err, types.ErrServiceNotActive)
	require.Equal(t, before, e.Balance(requester))
	_, err = e.Keeper.GetTaskRequest(e.Ctx, types.TaskRequestAddress(requester, id(2)))
	require.ErrorIs(t, err, types.ErrTaskNotFound)

	// tasks created before deactivation still settle
	e.SetTime(10)
	require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, inflight, hash(1)))
	require.NoError(t, e.Keeper.AcceptResult(e.Ctx, requester, inflight, listing))
	require.Equal(t, uint64(1), e.listing(listing).TasksCompleted)

	_, err = e.Keeper.GetServiceListing(e.Ctx, stranger)
	require.ErrorIs(t, err, types.ErrServiceNotFound)
	require.ErrorIs(t, e.Keeper.DeactivateService(e.Ctx, provider, stranger), types.ErrServiceNotFound)
}
