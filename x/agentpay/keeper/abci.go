package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

// EndBlocker expires overdue open tasks, at most ExpiryBatchSize per block.
// A failed expiry is logged and skipped; the task stays open and can still be
// expired through MsgExpireTask. Skipped tasks do not count against the batch,
// so later overdue tasks are still reached.
func (k Keeper) EndBlocker(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	limit := int(k.GetParams(ctx).ExpiryBatchSize)
	if limit == 0 {
		return nil
	}

	start := types.OpenTaskDeadlinePrefix
	end := types.OpenTaskDeadlineUpperBound(now(sdkCtx))
	expired, skipped := 0, 0
	for expired < limit {
		due, next := k.overdueOpenTasks(ctx, start, end, limit-expired)
		for _, addr := range due {
			if err := k.ExpireTask(ctx, nil, addr); err != nil {
				k.Logger(ctx).Error("failed to expire task", "task", addr.String(), "error", err)
				skipped++
				continue
			}
			expired++
		}
		if next == nil {
			break
		}
		start = next
	}

	if expired > 0 {
		k.metrics.TasksExpiredAuto.Add(float64(expired))
		k.Logger(ctx).Info("expired overdue tasks", "count", expired, "skipped", skipped, "height", sdkCtx.BlockHeight())
	}
	return nil
}

// overdueOpenTasks returns up to limit open tasks indexed in [start, end),
// earliest deadline first, and the key to resume from. next is nil once the
// range is exhausted.
func (k Keeper) overdueOpenTasks(ctx context.Context, start, end []byte, limit int) (due []sdk.AccAddress, next []byte) {
	store := k.getStore(ctx)
	it := store.Iterator(start, end)
	defer it.Close()

	for ; it.Valid(); it.Next() {
		if len(due) == limit {
			return due, append([]byte{}, it.Key()...)
		}
		_, addr, ok := types.ParseOpenTaskDeadlineKey(it.Key()[len(types.OpenTaskDeadlinePrefix):])
		if !ok {
			k.Logger(ctx).Error("corrupt deadline index key", "key", it.Key())
			continue
		}
		due = append(due, addr)
	}
	return due, nil
}
