package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// NodeChecker reports on the node behind the gateway.
type NodeChecker interface {
	CheckRPC(ctx context.Context) error
	CheckSync(ctx context.Context) (syncing bool, height int64, err error)
}

// RPCNodeChecker implements NodeChecker against the CometBFT HTTP RPC.
type RPCNodeChecker struct {
	rpcAddr string
	client  *http.Client
}

// NewRPCNodeChecker accepts tcp:// and http(s):// addresses.
func NewRPCNodeChecker(rpcAddr string) *RPCNodeChecker {
	if rest, ok := strings.CutPrefix(rpcAddr, "tcp://"); ok {
		rpcAddr = "http://" + rest
	}
	return &RPCNodeChecker{
		rpcAddr: strings.TrimSuffix(rpcAddr, "/"),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *RPCNodeChecker) get(ctx context.Context, path string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.rpcAddr+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("rpc unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rpc returned status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// CheckRPC checks the RPC endpoint answers /health.
func (c *RPCNodeChecker) CheckRPC(ctx context.Context) error {
	return c.get(ctx, "/health", nil)
}

// CheckSync reports whether the node is catching up and its latest height.
func (c *RPCNodeChecker) CheckSync(ctx context.Context) (bool, int64, error) {
	var status struct {
		Result struct {
			SyncInfo struct {
				CatchingUp        bool   `json:"catching_up"`
				LatestBlockHeight string `json:"latest_block_height"`
			} `json:"sync_info"`
		} `json:"result"`
	}
	if err := c.get(ctx, "/status", &status); err != nil {
		return false, 0, err
	}
	height, err := strconv.ParseInt(status.Result.SyncInfo.LatestBlockHeight, 10, 64)
	if err != nil {
		return false, 0, fmt.Errorf("bad latest_block_height: %w", err)
	}
	return status.Result.SyncInfo.CatchingUp, height, nil
}

// CheckResult is one entry of the readiness response.
type CheckResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadinessResponse is the body of /health/ready.
type ReadinessResponse struct {
	Status string                 `json:"status"`
	Height int64                  `json:"height,omitempty"`
	Checks map[string]CheckResult `json:"checks"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	resp := ReadinessResponse{Status: "ready", Checks: map[string]CheckResult{}}
	code := http.StatusOK

	if err := s.checker.CheckRPC(r.Context()); err != nil {
		resp.Checks["rpc"] = CheckResult{Status: "unhealthy", Message: err.Error()}
		code = http.StatusServiceUnavailable
	} else {
		resp.Checks["rpc"] = CheckResult{Status: "ok"}
	}

	syncing, height, err := s.checker.CheckSync(r.Context())
	switch {
	case err != nil:
		resp.Checks["sync"] = CheckResult{Status: "unhealthy", Message: err.Error()}
		code = http.StatusServiceUnavailable
	case syncing:
		resp.Checks["sync"] = CheckResult{Status: "syncing", Message: fmt.Sprintf("catching up at height %d", height)}
		code = http.StatusServiceUnavailable
	default:
		resp.Checks["sync"] = CheckResult{Status: "ok"}
	}
	resp.Height = height
	if err == nil {
		s.upstream.height.Record(r.Context(), height)
	}

	if code != http.StatusOK {
		resp.Status = "not_ready"
	}
	writeJSON(w, code, resp)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
