package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	testkeeper "github.com/agentpay-chain/agentpay/testutil/keeper"
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	e := newTestEnv(t)
	listing := e.register(1, 1000)
	other := e.register(2, 10)
	require.NoError(t, e.Keeper.DeactivateService(e.Ctx, provider, other))

	open := e.openTask(listing, 1, 100)
	done := e.openTask(listing, 2, 100)
	require.NoError(t, e.Keeper.SubmitResultZK(e.Ctx, provider, done, types.Groth16Proof{}, hash(2)))
	require.NoError(t, e.Keeper.AcceptResult(e.Ctx, requester, done, listing))

	params := types.DefaultParams()
	params.ExpiryBatchSize = 50
	require.NoError(t, e.Keeper.UpdateParams(e.Ctx, e.Authority, params))

	exported, err := e.Keeper.ExportGenesis(e.Ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.ServiceListings, 2)
	require.Len(t, exported.TaskRequests, 2)

	// round trip through JSON as a node would
	decoded, err := types.UnmarshalGenesis(types.MustMarshalGenesis(exported))
	require.NoError(t, err)
	require.Equal(t, exported, decoded)

	fresh := testkeeper.AgentPayKeeper(t, e.Verifiers)
	require.NoError(t, fresh.Keeper.InitGenesis(fresh.Ctx, *decoded))

	reexported, err := fresh.Keeper.ExportGenesis(fresh.Ctx)
	require.NoError(t, err)
	require.Equal(t, exported, reexported)
	require.Equal(t, uint32(50), fresh.Keeper.GetParams(fresh.Ctx).ExpiryBatchSize)

	task, err := fresh.Keeper.GetTaskRequest(fresh.Ctx, open)
	require.NoError(t, err)
	require.Equal(t, types.TaskStatusOpen, task.Status)

	// imported indexes serve queries
	status := types.TaskStatusCompleted
	tasks, _, err := fresh.Keeper.Tasks(fresh.Ctx, types.TaskFilter{Status: &status}, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.True(t, tasks[0].Address().Equals(done))

	l, err := fresh.Keeper.GetServiceListing(fresh.Ctx, listing)
	require.NoError(t, err)
	require.Equal(t, uint64(1), l.TasksCompleted)
}

func TestInitGenesisRejectsBadRecords(t *testing.T) {
	f := testkeeper.AgentPayKeeper(t, types.Verifiers{})
	gs := types.DefaultGenesis()
	gs.TaskRequests = []types.GenesisTaskRequest{{TaskID: []byte{1}}}
	require.Error(t, f.Keeper.InitGenesis(f.Ctx, *gs))
}
