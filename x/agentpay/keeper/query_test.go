package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/stretchr/testify/require"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

func TestQueryTasks(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 100)
	first := e.openTask(listing, 1, 100)
	second := e.openTask(listing, 2, 100)
	e.openTask(listing, 3, 100)
	require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, first, hash(1)))
	require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, second, hash(2)))
	require.NoError(t, e.Keeper.AcceptResult(e.Ctx, requester, second, listing))

	tasks, _, err := e.Keeper.Tasks(e.Ctx, types.TaskFilter{Requester: requester}, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	tasks, _, err = e.Keeper.Tasks(e.Ctx, types.TaskFilter{Provider: provider}, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 3)

	tasks, _, err = e.Keeper.Tasks(e.Ctx, types.TaskFilter{Provider: stranger}, nil)
	require.NoError(t, err)
	require.Empty(t, tasks)

	status := types.TaskStatusSubmitted
	tasks, _, err = e.Keeper.Tasks(e.Ctx, types.TaskFilter{Status: &status}, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.True(t, tasks[0].Address().Equals(first))

	status = types.TaskStatusCompleted
	tasks, _, err = e.Keeper.Tasks(e.Ctx, types.TaskFilter{Status: &status}, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.True(t, tasks[0].Address().Equals(second))

	tasks, page, err := e.Keeper.Tasks(e.Ctx, types.TaskFilter{Requester: requester}, &query.PageRequest{Limit: 2})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.NotEmpty(t, page.NextKey)

	tasks, _, err = e.Keeper.Tasks(e.Ctx, types.TaskFilter{Requester: requester}, &query.PageRequest{Key: page.NextKey, Limit: 2})
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	_, _, err = e.Keeper.Tasks(e.Ctx, types.TaskFilter{}, nil)
	require.Error(t, err)
	bad := types.TaskStatus(9)
	_, _, err = e.Keeper.Tasks(e.Ctx, types.TaskFilter{Status: &bad}, nil)
	require.ErrorIs(t, err, types.ErrInvalidTaskStatus)
}

func TestQueryListingsByProvider(t *testing.T) {
	e := newTestEnv(t)
	e.register(1, 100)
	e.register(2, 200)

	listings, _, err := e.Keeper.ListingsByProvider(e.Ctx, provider, nil)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	for _, l := range listings {
		require.True(t, l.Provider.Equals(provider))
	}

	listings, _, err = e.Keeper.ListingsByProvider(e.Ctx, requester, nil)
	require.NoError(t, err)
	require.Empty(t, listings)
}

func TestSearchServices(t *testing.T) {
	e := newTestEnv(t)
	register := func(serviceID byte, desc string, price uint64) {
		_, err := e.Keeper.RegisterService(e.Ctx, provider, id(serviceID), []byte(desc), price, 0)
		require.NoError(t, err)
	}
	register(1, "Text Summarization", 100)
	register(2, "image captioning", 300)
	register(3, "summarize audio", 50)

	popular := types.ServiceListingAddress(provider, id(3))
	for i := byte(1); i <= 2; i++ {
		task := e.openTask(popular, i, 100)
		require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, task, hash(i)))
		require.NoError(t, e.Keeper.AcceptResult(e.Ctx, requester, task, popular))
	}

	all, err := e.Keeper.SearchServices(e.Ctx, types.ServiceFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "summarize audio", all[0].DescriptionText())

	out, err := e.Keeper.SearchServices(e.Ctx, types.ServiceFilter{Keyword: "SUMMAR"})
	require.NoError(t, err)
	require.Len(t, out, 2)

	out, err = e.Keeper.SearchServices(e.Ctx, types.ServiceFilter{MaxPrice: 100})
	require.NoError(t, err)
	require.Len(t, out, 2)

	out, err = e.Keeper.SearchServices(e.Ctx, types.ServiceFilter{MinTasksCompleted: 1})
	require.NoError(t, err)
	require.Len(t, out, 1)

	out, err = e.Keeper.SearchServices(e.Ctx, types.ServiceFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, out, 1)

	require.NoError(t, e.Keeper.DeactivateService(e.Ctx, provider, popular))
	out, err = e.Keeper.SearchServices(e.Ctx, types.ServiceFilter{Keyword: "summar"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "Text Summarization", out[0].DescriptionText())
}

func TestProtocolStats(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 100)
	e.register(2, 200)

	e.openTask(listing, 1, 100)
	done := e.openTask(listing, 2, 100)
	require.NoError(t, e.Keeper.SubmitResultZK(e.Ctx, provider, done, types.Groth16Proof{}, hash(2)))
	require.NoError(t, e.Keeper.AcceptResult(e.Ctx, requester, done, listing))
	submitted := e.openTask(listing, 3, 100)
	require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, submitted, hash(3)))

	stats, err := e.Keeper.ProtocolStats(e.Ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(2), stats.TotalListings)
	require.Equal(t, uint64(2), stats.ActiveListings)
	require.Equal(t, uint64(3), stats.TotalTasks)
	require.Equal(t, uint64(1), stats.TasksByStatus[types.TaskStatusOpen])
	require.Equal(t, uint64(1), stats.TasksByStatus[types.TaskStatusSubmitted])
	require.Equal(t, uint64(1), stats.TasksByStatus[types.TaskStatusCompleted])
	require.Zero(t, stats.TasksByStatus[types.TaskStatusExpired])
	require.Equal(t, uint64(1), stats.ZkVerified)
	require.Equal(t, math.NewInt(200), stats.EscrowLocked)
	require.Equal(t, []types.ProviderStats{{Provider: provider.String(), Listings: 2, TasksCompleted: 1}}, stats.TopProviders)
}
