package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	testkeeper "github.com/agentpay-chain/agentpay/testutil/keeper"
	"github.com/agentpay-chain/agentpay/x/agentpay/keeper"
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

// Random operation sequences never create or destroy coins, never leave
// coins behind in a settled task and never break the module invariants.
func TestEscrowConservationProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		verifiers, _, _ := testkeeper.NewMockVerifiers()
		f := testkeeper.AgentPayKeeper(t, verifiers)

		price := rapid.Uint64Range(0, 1_000).Draw(rt, "price")
		listing, err := f.Keeper.RegisterService(f.Ctx, provider, id(1), nil, price, 0)
		require.NoError(rt, err)

		const budget = 100_000
		f.Fund(requester, budget)

		var (
			tasks []sdk.AccAddress
			clock int64
		)
		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 5).Draw(rt, "op") {
			case 0:
				deadline := clock + rapid.Int64Range(1, 50).Draw(rt, "ttl")
				addr, err := f.Keeper.CreateTask(f.Ctx, requester, listing, id(byte(len(tasks)+1)), nil, deadline, 0)
				if err == nil {
					tasks = append(tasks, addr)
				}
			case 1:
				if len(tasks) > 0 {
					task := rapid.SampledFrom(tasks).Draw(rt, "task")
					_ = f.Keeper.SubmitResult(f.Ctx, provider, task, hash(1))
				}
			case 2:
				if len(tasks) > 0 {
					task := rapid.SampledFrom(tasks).Draw(rt, "task")
					_ = f.Keeper.AcceptResult(f.Ctx, requester, task, listing)
				}
			case 3:
				if len(tasks) > 0 {
					task := rapid.SampledFrom(tasks).Draw(rt, "task")
					_ = f.Keeper.DisputeTask(f.Ctx, requester, task)
				}
			case 4:
				if len(tasks) > 0 {
					task := rapid.SampledFrom(tasks).Draw(rt, "task")
					_ = f.Keeper.ExpireTask(f.Ctx, stranger, task)
				}
			case 5:
				clock += rapid.Int64Range(1, 30).Draw(rt, "advance")
				f.SetTime(clock)
			}

			total := f.Balance(requester) + f.Balance(provider)
			completed := uint64(0)
			for _, addr := range tasks {
				task, err := f.Keeper.GetTaskRequest(f.Ctx, addr)
				require.NoError(rt, err)
				bal := f.Balance(addr)
				if task.Status.HoldsEscrow() {
					require.Equal(rt, task.AmountLamports, bal)
				} else {
					require.Zero(rt, bal)
				}
				if task.Status == types.TaskStatusCompleted {
					completed++
				}
				total += bal
			}
			require.Equal(rt, uint64(budget), total)
			require.Zero(rt, f.Balance(stranger))

			l, err := f.Keeper.GetServiceListing(f.Ctx, listing)
			require.NoError(rt, err)
			require.Equal(rt, completed, l.TasksCompleted)

			msg, broken := keeper.AllInvariants(f.Keeper)(f.Ctx)
			require.False(rt, broken, msg)
		}
	})
}
