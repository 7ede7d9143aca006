package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

// Keeper of the agentpay store
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper
	verifiers  types.Verifiers
	authority  string

	metrics *AgentPayMetrics
}

type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

// NewKeeper creates a new agentpay Keeper instance. authority is the only
// address allowed to update params.
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	verifiers types.Verifiers,
	authority string,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(err)
	}
	return Keeper{
		storeKey:   key,
		bankKeeper: bankKeeper,
		verifiers:  verifiers,
		authority:  authority,
		metrics:    NewAgentPayMetrics(),
	}
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the agentpay module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}

	unwrapped := sdk.UnwrapSDKContext(ctx)
	return unwrapped.KVStore(k.storeKey)
}

// atomically runs fn on a cached branch of the state and writes it back only
// if fn succeeds, so a failed operation leaves no records or transfers behind.
func (k Keeper) atomically(ctx context.Context, fn func(sdk.Context) error) error {
	cacheCtx, write := sdk.UnwrapSDKContext(ctx).CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

func now(ctx sdk.Context) int64 {
	return ctx.BlockTime().Unix()
}
