package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

// InitGenesis initializes the agentpay module's state from a genesis state.
// Escrow balances are not minted here; they must be present in the bank genesis.
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	if err := k.SetParams(ctx, data.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	store := k.getStore(ctx)
	for i, g := range data.ServiceListings {
		listing, err := g.ToRecord()
		if err != nil {
			return fmt.Errorf("service listing %d: %w", i, err)
		}
		if err := k.setServiceListing(ctx, listing); err != nil {
			return fmt.Errorf("failed to initialize listing %s: %w", listing.Address(), err)
		}
		store.Set(types.ListingByProviderKey(listing.Provider, listing.Address()), []byte{1})
	}

	for i, g := range data.TaskRequests {
		task, err := g.ToRecord()
		if err != nil {
			return fmt.Errorf("task request %d: %w", i, err)
		}
		if err := k.setTaskRequest(ctx, task); err != nil {
			return fmt.Errorf("failed to initialize task %s: %w", task.Address(), err)
		}
		k.indexNewTask(ctx, task)
	}
	return nil
}

// ExportGenesis returns the agentpay module's exported genesis.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()
	gs.Params = k.GetParams(ctx)

	err := k.IterateServiceListings(ctx, func(_ sdk.AccAddress, l types.ServiceListing) bool {
		gs.ServiceListings = append(gs.ServiceListings, types.NewGenesisServiceListing(l))
		return false
	})
	if err != nil {
		return nil, err
	}
	err = k.IterateTaskRequests(ctx, func(_ sdk.AccAddress, t types.TaskRequest) bool {
		gs.TaskRequests = append(gs.TaskRequests, types.NewGenesisTaskRequest(t))
		return false
	})
	if err != nil {
		return nil, err
	}
	return gs, nil
}
