package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/agentpay-chain/agentpay/testutil/keeper"
	"github.com/agentpay-chain/agentpay/x/agentpay/keeper"
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

func TestQueryCommands(t *testing.T) {
	verifiers, _, _ := testkeeper.NewMockVerifiers()
	f := testkeeper.AgentPayKeeper(t, verifiers)
	srv := keeper.NewMsgServerImpl(f.Keeper)

	provider := sdk.AccAddress(bytes.Repeat([]byte{1}, 20))
	reg, err := srv.RegisterService(f.Ctx, &types.MsgRegisterService{
		Provider:      provider.String(),
		ServiceID:     bytes.Repeat([]byte{7}, types.IDLength),
		Description:   "summarize pdfs",
		PriceLamports: 500,
	})
	require.NoError(t, err)

	requester := sdk.AccAddress(bytes.Repeat([]byte{2}, 20))
	f.Fund(requester, 500)
	created, err := srv.CreateTask(f.Ctx, &types.MsgCreateTask{
		Requester:      requester.String(),
		ServiceListing: reg.ServiceListing,
		TaskID:         bytes.Repeat([]byte{8}, types.IDLength),
		Description:    "quarterly report",
		Deadline:       2_000_000_000,
	})
	require.NoError(t, err)

	clientCtx, out := testClientCtx(t)
	clientCtx = clientCtx.WithClient(f.Node())

	query := func(t *testing.T, args ...string) map[string]any {
		t.Helper()
		out.Reset()
		cmd := GetQueryCmd()
		require.NoError(t, execute(clientCtx, cmd, append(args, "--output", "json")...))
		var got map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &got), out.String())
		return got
	}

	params := query(t, "params")["params"].(map[string]any)
	require.Equal(t, types.DefaultEscrowDenom, params["escrow_denom"])

	listing := query(t, "listing", reg.ServiceListing)["listing"].(map[string]any)
	require.Equal(t, "summarize pdfs", listing["description"])
	require.Equal(t, "500", listing["price_lamports"])

	task := query(t, "task", created.Task)["task"].(map[string]any)
	require.Equal(t, "open", task["status"])
	require.Equal(t, requester.String(), task["requester"])

	require.Len(t, query(t, "tasks", "--"+FlagRequester, requester.String())["tasks"], 1)
	require.Len(t, query(t, "tasks", "--"+FlagStatus, "open", "--limit", "1")["tasks"], 1)
	require.Empty(t, query(t, "tasks", "--"+FlagStatus, "completed")["tasks"])
	require.Len(t, query(t, "listings", provider.String())["listings"], 1)
	require.Len(t, query(t, "search", "--"+FlagKeyword, "PDF", "--"+FlagMaxPrice, "500")["listings"], 1)
	require.Empty(t, query(t, "search", "--"+FlagMinCompleted, "1")["listings"])

	stats := query(t, "stats")
	require.Equal(t, "1", stats["total_listings"])
	require.Equal(t, "1", stats["active_listings"])
	require.Equal(t, "1", stats["total_tasks"])
	require.Equal(t, "500", stats["escrow_locked"].(map[string]any)["amount"])

	// errors from the node surface on the command
	for _, args := range [][]string{
		{"tasks"},
		{"tasks", "--" + FlagStatus, "pending"},
		{"listing", provider.String()},
		{"task", "not-an-address"},
	} {
		require.Error(t, execute(clientCtx, GetQueryCmd(), append(args, "--output", "json")...), args)
	}
}
