package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

// lockEscrow moves the task amount from the requester into the task account.
func (k Keeper) lockEscrow(ctx context.Context, requester sdk.AccAddress, task types.TaskRequest) error {
	if task.AmountLamports == 0 {
		return nil
	}
	denom := k.GetParams(ctx).EscrowDenom
	coins := sdk.NewCoins(sdk.NewCoin(denom, math.NewIntFromUint64(task.AmountLamports)))
	if err := k.bankKeeper.SendCoins(ctx, requester, task.Address(), coins); err != nil {
		return errorsmod.Wrapf(err, "failed to lock %s in escrow", coins)
	}
	return nil
}

// disburseEscrow empties the task account into recipient. The account must
// hold at least the recorded amount; anything above it is swept along so
// nothing is stranded on a derived address.
func (k Keeper) disburseEscrow(ctx context.Context, task types.TaskRequest, recipient sdk.AccAddress) (sdk.Coin, error) {
	escrowAddr := task.Address()
	balance := k.EscrowBalance(ctx, escrowAddr)
	if balance.Amount.LT(math.NewIntFromUint64(task.AmountLamports)) {
		return balance, types.ErrEscrowTransferFailed.Wrapf(
			"escrow %s holds %s, task records %d", escrowAddr, balance, task.AmountLamports)
	}
	if balance.IsZero() {
		return balance, nil
	}
	if err := k.bankKeeper.SendCoins(ctx, escrowAddr, recipient, sdk.NewCoins(balance)); err != nil {
		return balance, errorsmod.Wrapf(types.ErrEscrowTransferFailed, "send %s to %s: %s", balance, recipient, err)
	}
	return balance, nil
}

// EscrowBalance returns the escrow denom balance of a task account.
func (k Keeper) EscrowBalance(ctx context.Context, task sdk.AccAddress) sdk.Coin {
	return k.bankKeeper.GetBalance(ctx, task, k.GetParams(ctx).EscrowDenom)
}
