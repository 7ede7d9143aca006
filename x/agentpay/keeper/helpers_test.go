package keeper_test

import (
	"bytes"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/agentpay-chain/agentpay/testutil/keeper"
	"github.com/agentpay-chain/agentpay/x/agentpay/keeper"
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

var (
	provider  = sdk.AccAddress(bytes.Repeat([]byte{0x01}, 20))
	requester = sdk.AccAddress(bytes.Repeat([]byte{0x02}, 20))
	stranger  = sdk.AccAddress(bytes.Repeat([]byte{0x03}, 20))
)

type testEnv struct {
	*testkeeper.AgentPayFixture
	result     *testkeeper.MockVerifier
	reputation *testkeeper.MockVerifier
}

func newTestEnv(t testing.TB) *testEnv {
	verifiers, result, reputation := testkeeper.NewMockVerifiers()
	return &testEnv{
		AgentPayFixture: testkeeper.AgentPayKeeper(t, verifiers),
		result:          result,
		reputation:      reputation,
	}
}

func id(b byte) [types.IDLength]byte {
	var out [types.IDLength]byte
	out[0] = b
	return out
}

func hash(b byte) [types.ResultHashLength]byte {
	var out [types.ResultHashLength]byte
	out[types.ResultHashLength-1] = b
	return out
}

func (e *testEnv) register(serviceID byte, price uint64) sdk.AccAddress {
	addr, err := e.Keeper.RegisterService(e.Ctx, provider, id(serviceID), []byte("text summarization"), price, 0)
	require.NoError(e.T, err)
	return addr
}

// openTask funds the requester with the listing price and creates a task.
func (e *testEnv) openTask(listing sdk.AccAddress, taskID byte, deadline int64) sdk.AccAddress {
	l, err := e.Keeper.GetServiceListing(e.Ctx, listing)
	require.NoError(e.T, err)
	e.Fund(requester, l.PriceLamports)
	addr, err := e.Keeper.CreateTask(e.Ctx, requester, listing, id(taskID), []byte("summarize"), deadline, 0)
	require.NoError(e.T, err)
	return addr
}

func (e *testEnv) task(addr sdk.AccAddress) types.TaskRequest {
	task, err := e.Keeper.GetTaskRequest(e.Ctx, addr)
	require.NoError(e.T, err)
	return task
}

func (e *testEnv) listing(addr sdk.AccAddress) types.ServiceListing {
	l, err := e.Keeper.GetServiceListing(e.Ctx, addr)
	require.NoError(e.T, err)
	return l
}

func (e *testEnv) requireInvariants() {
	msg, broken := keeper.AllInvariants(e.Keeper)(e.Ctx)
	require.False(e.T, broken, msg)
}

func (e *testEnv) eventTypes() []string {
	var out []string
	for _, ev := range e.Ctx.EventManager().Events() {
		out = append(out, ev.Type)
	}
	return out
}
