package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/agentpay-chain/agentpay/x/agentpay/keeper"
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

// FaucetModule is a minting module account used to fund test accounts.
const FaucetModule = "faucet"

// AgentPayFixture bundles a keeper backed by real auth and bank keepers over
// an in-memory store.
type AgentPayFixture struct {
	T          testing.TB
	Keeper     keeper.Keeper
	Ctx        sdk.Context
	BankKeeper bankkeeper.BaseKeeper
	StoreKey   *storetypes.KVStoreKey
	Registry   codectypes.InterfaceRegistry
	Authority  string
	Verifiers  types.Verifiers
}

// AgentPayKeeper creates a test keeper for the agentpay module. A nil
// verifier in verifiers rejects every proof.
func AgentPayKeeper(t testing.TB, verifiers types.Verifiers) *AgentPayFixture {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	types.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		FaucetModule: {authtypes.Minter},
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority.String(),
		log.NewNopLogger(),
	)

	k := keeper.NewKeeper(storeKey, bankKeeper, verifiers, authority.String())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger()).
		WithBlockTime(time.Unix(0, 0).UTC())
	require.NoError(t, bankKeeper.SetParams(ctx, banktypes.DefaultParams()))
	require.NoError(t, k.SetParams(ctx, types.DefaultParams()))

	return &AgentPayFixture{
		T:          t,
		Keeper:     k,
		Ctx:        ctx,
		BankKeeper: bankKeeper,
		StoreKey:   storeKey,
		Registry:   registry,
		Authority:  authority.String(),
		Verifiers:  verifiers,
	}
}

// SetTime moves block time to the given unix second.
func (f *AgentPayFixture) SetTime(unix int64) {
	f.Ctx = f.Ctx.WithBlockTime(time.Unix(unix, 0).UTC())
}

// Fund mints amount of the escrow denom to addr.
func (f *AgentPayFixture) Fund(addr sdk.AccAddress, amount uint64) {
	coins := sdk.NewCoins(sdk.NewCoin(f.Denom(), math.NewIntFromUint64(amount)))
	require.NoError(f.T, f.BankKeeper.MintCoins(f.Ctx, FaucetModule, coins))
	require.NoError(f.T, f.BankKeeper.SendCoinsFromModuleToAccount(f.Ctx, FaucetModule, addr, coins))
}

// Balance returns addr's escrow denom balance.
func (f *AgentPayFixture) Balance(addr sdk.AccAddress) uint64 {
	return f.BankKeeper.GetBalance(f.Ctx, addr, f.Denom()).Amount.Uint64()
}

// Store returns the raw agentpay store.
func (f *AgentPayFixture) Store() storetypes.KVStore {
	return f.Ctx.KVStore(f.StoreKey)
}

// Denom returns the configured escrow denom.
func (f *AgentPayFixture) Denom() string {
	return f.Keeper.GetParams(f.Ctx).EscrowDenom
}

// QueryConn returns a client connection serving the agentpay query service
// against the current context.
func (f *AgentPayFixture) QueryConn() *baseapp.QueryServiceTestHelper {
	helper := baseapp.NewQueryServerTestHelper(f.Ctx, f.Registry)
	types.RegisterQueryServer(helper, keeper.NewQueryServerImpl(f.Keeper))
	return helper
}

// QueryClient returns a typed query client over QueryConn.
func (f *AgentPayFixture) QueryClient() types.QueryClient {
	return types.NewQueryClient(f.QueryConn())
}
