package agentpay_test

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	gogogateway "github.com/cosmos/gogogateway"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/agentpay-chain/agentpay/testutil/keeper"
	"github.com/agentpay-chain/agentpay/x/agentpay"
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

var (
	provider  = sdk.AccAddress(bytes.Repeat([]byte{0x0a}, 20))
	requester = sdk.AccAddress(bytes.Repeat([]byte{0x0b}, 20))
)

func newModule(t *testing.T) (*testkeeper.AgentPayFixture, agentpay.AppModule) {
	verifiers, _, _ := testkeeper.NewMockVerifiers()
	f := testkeeper.AgentPayKeeper(t, verifiers)
	return f, agentpay.NewAppModule(nil, f.Keeper)
}

func seed(t *testing.T, f *testkeeper.AgentPayFixture, am agentpay.AppModule) (listing, task string) {
	t.Helper()
	srv := am.MsgServer()

	reg, err := srv.RegisterService(f.Ctx, &types.MsgRegisterService{
		Provider:      provider.String(),
		ServiceID:     bytes.Repeat([]byte{1}, types.IDLength),
		Description:   "translate documents",
		PriceLamports: 300,
	})
	require.NoError(t, err)

	f.Fund(requester, 300)
	created, err := srv.CreateTask(f.Ctx, &types.MsgCreateTask{
		Requester:      requester.String(),
		ServiceListing: reg.ServiceListing,
		TaskID:         bytes.Repeat([]byte{2}, types.IDLength),
		Description:    "en to de",
		Deadline:       1_000,
	})
	require.NoError(t, err)
	return reg.ServiceListing, created.Task
}

func TestBasics(t *testing.T) {
	basic := agentpay.AppModuleBasic{}
	require.Equal(t, types.ModuleName, basic.Name())
	require.NotPanics(t, func() { basic.RegisterLegacyAminoCodec(codec.NewLegacyAmino()) })
	require.NotNil(t, basic.GetTxCmd())
	require.NotNil(t, basic.GetQueryCmd())

	bz := basic.DefaultGenesis(nil)
	require.True(t, json.Valid(bz))
	require.NoError(t, basic.ValidateGenesis(nil, nil, bz))
	require.Error(t, basic.ValidateGenesis(nil, nil, json.RawMessage(`{"params":{"escrow_denom":""}}`)))
	require.Error(t, basic.ValidateGenesis(nil, nil, json.RawMessage(`not json`)))
}

func TestGenesisThroughModule(t *testing.T) {
	f, am := newModule(t)
	listing, task := seed(t, f, am)
	exported := am.ExportGenesis(f.Ctx, nil)

	g, am2 := newModule(t)
	require.NotPanics(t, func() { am2.InitGenesis(g.Ctx, nil, exported) })
	require.JSONEq(t, string(exported), string(am2.ExportGenesis(g.Ctx, nil)))

	listingAddr, err := sdk.AccAddressFromBech32(listing)
	require.NoError(t, err)
	_, err = g.Keeper.GetServiceListing(g.Ctx, listingAddr)
	require.NoError(t, err)
	taskAddr, err := sdk.AccAddressFromBech32(task)
	require.NoError(t, err)
	_, err = g.Keeper.GetTaskRequest(g.Ctx, taskAddr)
	require.NoError(t, err)

	require.Panics(t, func() { am2.InitGenesis(g.Ctx, nil, json.RawMessage(`{"params":{"escrow_denom":""}}`)) })
}

func TestEndBlockExpires(t *testing.T) {
	f, am := newModule(t)
	_, task := seed(t, f, am)
	taskAddr, err := sdk.AccAddressFromBech32(task)
	require.NoError(t, err)

	params := f.Keeper.GetParams(f.Ctx)
	params.ExpiryBatchSize = 10
	_, err = am.MsgServer().UpdateParams(f.Ctx, &types.MsgUpdateParams{Authority: f.Authority, Params: params})
	require.NoError(t, err)

	f.SetTime(1_001)
	require.NoError(t, am.EndBlock(f.Ctx))

	got, err := f.Keeper.GetTaskRequest(f.Ctx, taskAddr)
	require.NoError(t, err)
	require.Equal(t, types.TaskStatusExpired, got.Status)
	require.Equal(t, uint64(300), f.Balance(requester))
}

func TestRegisterServices(t *testing.T) {
	f, am := newModule(t)
	msgRouter := baseapp.NewMsgServiceRouter()
	msgRouter.SetInterfaceRegistry(f.Registry)
	queryRouter := baseapp.NewGRPCQueryRouter()
	queryRouter.SetInterfaceRegistry(f.Registry)

	cfg := module.NewConfigurator(nil, msgRouter, queryRouter)
	require.NotPanics(t, func() { am.RegisterServices(cfg) })
	require.NoError(t, cfg.Error())

	msg := &types.MsgRegisterService{
		Provider:      provider.String(),
		ServiceID:     bytes.Repeat([]byte{3}, types.IDLength),
		Description:   "routed",
		PriceLamports: 10,
	}
	handler := msgRouter.Handler(msg)
	require.NotNil(t, handler)
	_, err := handler(f.Ctx, msg)
	require.NoError(t, err)
	require.NotNil(t, queryRouter.Route("/agentpay.v1.Query/ProtocolStats"))

	listings, _, err := f.Keeper.ListingsByProvider(f.Ctx, provider, nil)
	require.NoError(t, err)
	require.Len(t, listings, 1)
}

func TestRegisterInterfaces(t *testing.T) {
	registry := codectypes.NewInterfaceRegistry()
	agentpay.AppModuleBasic{}.RegisterInterfaces(registry)

	msg, err := registry.Resolve(sdk.MsgTypeURL(&types.MsgCreateTask{}))
	require.NoError(t, err)
	require.IsType(t, &types.MsgCreateTask{}, msg)
}

func TestRESTRoutes(t *testing.T) {
	f, am := newModule(t)
	listing, task := seed(t, f, am)

	marshaler := &gogogateway.JSONPb{EmitDefaults: true, OrigName: true}
	mux := runtime.NewServeMux(runtime.WithMarshalerOption(runtime.MIMEWildcard, marshaler))
	require.NoError(t, types.RegisterQueryHandlerClient(context.Background(), mux, f.QueryClient()))

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	rec := get("/agentpay/v1/params")
	require.Equal(t, http.StatusOK, rec.Code)
	var params types.QueryParamsResponse
	require.NoError(t, marshaler.Unmarshal(rec.Body.Bytes(), &params))
	require.Equal(t, f.Keeper.GetParams(f.Ctx), params.Params)

	rec = get("/agentpay/v1/listings/" + listing)
	require.Equal(t, http.StatusOK, rec.Code)
	var gl types.QueryServiceListingResponse
	require.NoError(t, marshaler.Unmarshal(rec.Body.Bytes(), &gl))
	require.Equal(t, provider.String(), gl.Listing.Provider)
	require.Equal(t, uint64(300), gl.Listing.PriceLamports)

	rec = get("/agentpay/v1/tasks/" + task)
	require.Equal(t, http.StatusOK, rec.Code)
	var gt types.QueryTaskRequestResponse
	require.NoError(t, marshaler.Unmarshal(rec.Body.Bytes(), &gt))
	require.Equal(t, types.TaskStatusOpen.String(), gt.Task.Status)
	require.Equal(t, hex.EncodeToString(bytes.Repeat([]byte{2}, types.IDLength)), hex.EncodeToString(gt.Task.TaskID))

	rec = get("/agentpay/v1/tasks?status=open&pagination.limit=5")
	require.Equal(t, http.StatusOK, rec.Code)
	var tasks types.QueryTasksResponse
	require.NoError(t, marshaler.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks.Tasks, 1)
	require.Equal(t, task, tasks.Tasks[0].Address)

	rec = get("/agentpay/v1/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats types.QueryProtocolStatsResponse
	require.NoError(t, marshaler.Unmarshal(rec.Body.Bytes(), &stats))
	require.Equal(t, uint64(1), stats.TotalTasks)
	require.Equal(t, int64(300), stats.EscrowLocked.Amount.Int64())

	require.Equal(t, http.StatusNotFound, get("/agentpay/v1/tasks/"+listing).Code)
	require.Equal(t, http.StatusBadRequest, get("/agentpay/v1/listings/zzz").Code)
	require.Equal(t, http.StatusNotFound, get("/agentpay/v1/unknown").Code)
}
