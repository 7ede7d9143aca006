package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	gogogrpc "github.com/cosmos/gogoproto/grpc"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	testkeeper "github.com/agentpay-chain/agentpay/testutil/keeper"
	"github.com/agentpay-chain/agentpay/x/agentpay/keeper"
	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

type fakeChecker struct {
	rpcErr  error
	syncing bool
	height  int64
}

func (f fakeChecker) CheckRPC(context.Context) error { return f.rpcErr }

func (f fakeChecker) CheckSync(context.Context) (bool, int64, error) {
	return f.syncing, f.height, nil
}

type failingConn struct {
	err    error
	panics bool
}

func (c failingConn) Invoke(context.Context, string, any, any, ...grpc.CallOption) error {
	if c.panics {
		panic("boom")
	}
	return c.err
}

func (failingConn) NewStream(context.Context, *grpc.StreamDesc, string, ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, errors.New("streams are not served")
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.RateLimit = 0
	cfg.RateBurst = 0
	return cfg
}

func newTestServer(t *testing.T, cfg Config, conn gogogrpc.ClientConn, checker NodeChecker) *Server {
	t.Helper()
	s, err := NewServer(context.Background(), cfg, log.NewNopLogger(), conn, checker)
	require.NoError(t, err)
	return s
}

// chainConn serves the query service from a fresh keeper with one listing
// and one open task.
func chainConn(t *testing.T) (conn gogogrpc.ClientConn, listing, task string) {
	t.Helper()
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
	return f.QueryConn(), reg.ServiceListing, created.Task
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func getJSON(t *testing.T, h http.Handler, path string) map[string]any {
	t.Helper()
	rec := serve(h, httptest.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func TestQueryRoutes(t *testing.T) {
	conn, listing, task := chainConn(t)
	h := newTestServer(t, testConfig(), conn, fakeChecker{}).Handler()

	got := getJSON(t, h, "/agentpay/v1/listings/"+listing)["listing"].(map[string]any)
	require.Equal(t, "500", got["price_lamports"])
	require.Equal(t, "summarize pdfs", got["description"])
	require.Equal(t, true, got["is_active"])

	got = getJSON(t, h, "/agentpay/v1/tasks/"+task)["task"].(map[string]any)
	require.Equal(t, "open", got["status"])
	require.Equal(t, listing, got["service_listing"])

	requester := sdk.AccAddress(bytes.Repeat([]byte{2}, 20)).String()
	tasks := getJSON(t, h, "/agentpay/v1/tasks?requester="+requester)["tasks"].([]any)
	require.Len(t, tasks, 1)

	provider := sdk.AccAddress(bytes.Repeat([]byte{1}, 20)).String()
	listings := getJSON(t, h, "/agentpay/v1/providers/"+provider+"/listings")["listings"].([]any)
	require.Len(t, listings, 1)

	require.Len(t, getJSON(t, h, "/agentpay/v1/search?keyword=PDF")["listings"].([]any), 1)
	require.Empty(t, getJSON(t, h, "/agentpay/v1/search?keyword=pdf&max_price=100")["listings"].([]any))

	stats := getJSON(t, h, "/agentpay/v1/stats")
	require.Equal(t, "1", stats["total_listings"])
	require.Equal(t, "1", stats["total_tasks"])
	require.Equal(t, "500", stats["escrow_locked"].(map[string]any)["amount"])

	params := getJSON(t, h, "/agentpay/v1/params")["params"].(map[string]any)
	require.Equal(t, types.DefaultEscrowDenom, params["escrow_denom"])

	require.Equal(t, http.StatusNotFound, serve(h, httptest.NewRequest(http.MethodGet, "/agentpay/v1/tasks/"+listing, nil)).Code)
	require.Equal(t, http.StatusBadRequest, serve(h, httptest.NewRequest(http.MethodGet, "/agentpay/v1/tasks/nope", nil)).Code)
	require.Equal(t, http.StatusBadRequest, serve(h, httptest.NewRequest(http.MethodGet, "/agentpay/v1/tasks", nil)).Code)
	require.Equal(t, http.StatusNotFound, serve(h, httptest.NewRequest(http.MethodGet, "/agentpay/v1/unknown", nil)).Code)
}

func TestNodeFailureIsUnavailable(t *testing.T) {
	h := newTestServer(t, testConfig(), failingConn{err: errors.New("node down")}, fakeChecker{}).Handler()

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/agentpay/v1/params", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), "node down")
}

func TestPanicIsRecovered(t *testing.T) {
	h := newTestServer(t, testConfig(), failingConn{panics: true}, fakeChecker{}).Handler()

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/agentpay/v1/params", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	tests := []struct {
		name    string
		checker fakeChecker
		code    int
		status  string
	}{
		{"ready", fakeChecker{height: 42}, http.StatusOK, "ready"},
		{"rpc down", fakeChecker{rpcErr: errors.New("refused")}, http.StatusServiceUnavailable, "not_ready"},
		{"syncing", fakeChecker{syncing: true, height: 10}, http.StatusServiceUnavailable, "not_ready"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestServer(t, testConfig(), failingConn{}, tc.checker).Handler()

			rec := serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))
			require.Equal(t, http.StatusOK, rec.Code)

			rec = serve(h, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
			require.Equal(t, tc.code, rec.Code)

			var resp ReadinessResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, tc.status, resp.Status)
			require.Equal(t, tc.checker.height, resp.Height)
		})
	}
}

func TestRequestIDAndCORS(t *testing.T) {
	h := newTestServer(t, testConfig(), failingConn{}, fakeChecker{}).Handler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://dashboard.example")
	rec := serve(h, req)
	require.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = serve(h, req)
	require.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRateLimitPerClient(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = 0.001
	cfg.RateBurst = 2
	s := newTestServer(t, cfg, failingConn{}, fakeChecker{})
	h := s.Handler()

	get := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = remote
		return serve(h, req).Code
	}
	require.Equal(t, http.StatusOK, get("10.0.0.1:5000"))
	require.Equal(t, http.StatusOK, get("10.0.0.1:5001"))
	require.Equal(t, http.StatusTooManyRequests, get("10.0.0.1:5002"))
	require.Equal(t, http.StatusOK, get("10.0.0.2:5000"))
	require.Equal(t, 2, s.limiter.Len())
}

func TestRateLimiterStaysWithinCapacity(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.maxKeys = 3
	start := time.Unix(1_700_000_000, 0)

	for i := 0; i < 10; i++ {
		rl.limiterFor(fmt.Sprintf("10.0.1.%d", i), start.Add(time.Duration(i)*time.Second))
		require.LessOrEqual(t, rl.Len(), 3)
	}

	// the most recent keys survive, the least recently seen are evicted
	rl.mu.Lock()
	_, newest := rl.limiters["10.0.1.9"]
	_, oldest := rl.limiters["10.0.1.0"]
	rl.mu.Unlock()
	require.True(t, newest)
	require.False(t, oldest)

	// keys idle for over a minute are all dropped at capacity
	rl.limiterFor("10.0.2.1", start.Add(5*time.Minute))
	require.Equal(t, 1, rl.Len())
}

func TestMetricsRecorded(t *testing.T) {
	s := newTestServer(t, testConfig(), failingConn{}, fakeChecker{})
	h := s.Handler()
	serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))
	serve(h, httptest.NewRequest(http.MethodGet, "/missing", nil))

	rec := serve(s.MetricsHandler(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), `agentpay_gateway_requests_total{code="200",route="/health"} 1`), string(body))
}

func TestNodeQueriesRecorded(t *testing.T) {
	conn, listing, _ := chainConn(t)
	s := newTestServer(t, testConfig(), conn, fakeChecker{height: 9})
	h := s.Handler()
	serve(h, httptest.NewRequest(http.MethodGet, "/agentpay/v1/params", nil))
	serve(h, httptest.NewRequest(http.MethodGet, "/agentpay/v1/tasks/"+listing, nil))
	serve(h, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	rec := serve(s.MetricsHandler(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	require.Contains(t, body, "agentpay_gateway_node_queries_total")
	require.Contains(t, body, `method="/agentpay.v1.Query/Params"`)
	require.Contains(t, body, `outcome="ok"`)
	require.Contains(t, body, `outcome="not_found"`)
	require.Contains(t, body, "agentpay_gateway_node_height")
}

func TestRPCNodeChecker(t *testing.T) {
	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health":
			_, _ = w.Write([]byte(`{"result":{}}`))
		case "/status":
			_, _ = w.Write([]byte(`{"result":{"sync_info":{"catching_up":false,"latest_block_height":"1234"}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer node.Close()

	c := NewRPCNodeChecker(strings.Replace(node.URL, "http://", "tcp://", 1))
	require.NoError(t, c.CheckRPC(context.Background()))

	syncing, height, err := c.CheckSync(context.Background())
	require.NoError(t, err)
	require.False(t, syncing)
	require.Equal(t, int64(1234), height)

	node.Close()
	require.Error(t, c.CheckRPC(context.Background()))
}
