package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

// GetParams returns the current parameters, or the defaults if none are stored.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	bz := k.getStore(ctx).Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	params, err := types.UnmarshalParams(bz)
	if err != nil {
		panic(err)
	}
	return params
}

// SetParams validates and stores the parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	bz, err := types.MarshalParams(params)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.ParamsKey, bz)
	return nil
}

// UpdateParams replaces the parameters on behalf of the authority. The escrow
// denomination cannot change while any task still holds escrow.
func (k Keeper) UpdateParams(ctx context.Context, authority string, params types.Params) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}

	current := k.GetParams(ctx)
	if params.EscrowDenom != current.EscrowDenom && k.hasLockedEscrow(ctx) {
		return types.ErrInvalidParams.Wrap("escrow denom cannot change while tasks hold escrow")
	}
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute("escrow_denom", params.EscrowDenom),
		),
	)
	return nil
}

func (k Keeper) hasLockedEscrow(ctx context.Context) bool {
	for _, status := range []types.TaskStatus{types.TaskStatusOpen, types.TaskStatusSubmitted} {
		it := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.TasksByStatusPrefixKey(status))
		found := it.Valid()
		it.Close()
		if found {
			return true
		}
	}
	return false
}
