package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/agentpay-chain/agentpay/x/agentpay/keeper"
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

func TestQueryServerParams(t *testing.T) {
	e := newTestEnv(t)
	res, err := e.QueryClient().Params(e.Ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.Equal(t, types.DefaultParams(), res.Params)

	_, err = keeper.NewQueryServerImpl(e.Keeper).Params(e.Ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQueryServerLookups(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 100)
	task := e.openTask(listing, 1, 500)
	client := e.QueryClient()

	lres, err := client.ServiceListing(e.Ctx, &types.QueryServiceListingRequest{Address: listing.String()})
	require.NoError(t, err)
	require.Equal(t, listing.String(), lres.Listing.Address)
	require.Equal(t, provider.String(), lres.Listing.Provider)
	require.Equal(t, "text summarization", lres.Listing.Description)
	require.True(t, lres.Listing.IsActive)

	tres, err := client.TaskRequest(e.Ctx, &types.QueryTaskRequestRequest{Address: task.String()})
	require.NoError(t, err)
	require.Equal(t, "open", tres.Task.Status)
	require.Equal(t, uint64(100), tres.Task.AmountLamports)
	require.Equal(t, int64(500), tres.Task.Deadline)
	require.Len(t, tres.Task.TaskID, types.IDLength)

	_, err = client.ServiceListing(e.Ctx, &types.QueryServiceListingRequest{Address: stranger.String()})
	require.Equal(t, codes.NotFound, status.Code(err))
	_, err = client.TaskRequest(e.Ctx, &types.QueryTaskRequestRequest{Address: stranger.String()})
	require.Equal(t, codes.NotFound, status.Code(err))
	_, err = client.TaskRequest(e.Ctx, &types.QueryTaskRequestRequest{Address: "not-an-address"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQueryServerTasks(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 100)
	first := e.openTask(listing, 1, 100)
	e.openTask(listing, 2, 100)
	e.openTask(listing, 3, 100)
	require.NoError(t, e.Keeper.SubmitResult(e.Ctx, provider, first, hash(1)))
	client := e.QueryClient()

	res, err := client.Tasks(e.Ctx, &types.QueryTasksRequest{Requester: requester.String()})
	require.NoError(t, err)
	require.Len(t, res.Tasks, 3)

	res, err = client.Tasks(e.Ctx, &types.QueryTasksRequest{Status: "submitted"})
	require.NoError(t, err)
	require.Len(t, res.Tasks, 1)
	require.Equal(t, first.String(), res.Tasks[0].Address)

	res, err = client.Tasks(e.Ctx, &types.QueryTasksRequest{
		Provider:   provider.String(),
		Pagination: &query.PageRequest{Limit: 2},
	})
	require.NoError(t, err)
	require.Len(t, res.Tasks, 2)
	require.NotEmpty(t, res.Pagination.NextKey)

	_, err = client.Tasks(e.Ctx, &types.QueryTasksRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = client.Tasks(e.Ctx, &types.QueryTasksRequest{Status: "pending"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = client.Tasks(e.Ctx, &types.QueryTasksRequest{Requester: "not-an-address"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQueryServerListingsAndSearch(t *testing.T) {
	e := newTestEnv(t)
	e.register(1, 100)
	_, err := e.Keeper.RegisterService(e.Ctx, provider, id(2), []byte("image captioning"), 300, 0)
	require.NoError(t, err)
	client := e.QueryClient()

	lres, err := client.ListingsByProvider(e.Ctx, &types.QueryListingsByProviderRequest{Provider: provider.String()})
	require.NoError(t, err)
	require.Len(t, lres.Listings, 2)

	sres, err := client.SearchServices(e.Ctx, &types.QuerySearchServicesRequest{Keyword: "IMAGE"})
	require.NoError(t, err)
	require.Len(t, sres.Listings, 1)
	require.Equal(t, uint64(300), sres.Listings[0].PriceLamports)

	sres, err = client.SearchServices(e.Ctx, &types.QuerySearchServicesRequest{Limit: 1})
	require.NoError(t, err)
	require.Len(t, sres.Listings, 1)

	_, err = client.ListingsByProvider(e.Ctx, &types.QueryListingsByProviderRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQueryServerProtocolStats(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 100)
	e.openTask(listing, 1, 100)
	e.openTask(listing, 2, 100)

	res, err := e.QueryClient().ProtocolStats(e.Ctx, &types.QueryProtocolStatsRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(1), res.TotalListings)
	require.Equal(t, uint64(2), res.TotalTasks)
	require.Equal(t, sdk.NewCoin(e.Denom(), math.NewInt(200)), res.EscrowLocked)
	require.Len(t, res.TasksByStatus, len(types.AllTaskStatuses))
	require.Equal(t, types.StatusCount{Status: "open", Count: 2}, res.TasksByStatus[0])
	require.Equal(t, []types.ProviderStats{{Provider: provider.String(), Listings: 1}}, res.TopProviders)
}
