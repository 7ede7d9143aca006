package keeper

import (
	"context"
	"fmt"

	abci "github.com/cometbft/cometbft/abci/types"
	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	rpcclient "github.com/cometbft/cometbft/rpc/client"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	"github.com/cosmos/cosmos-sdk/baseapp"
	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// abciNode answers ABCI queries from a query router the way a node would.
// Every other CometBFT RPC method is left nil and panics if called.
type abciNode struct {
	client.CometRPC
	router *baseapp.GRPCQueryRouter
	ctx    sdk.Context
}

// Node returns an RPC client for client.Context whose gRPC queries are
// served by the agentpay query service against the current context.
func (f *AgentPayFixture) Node() client.CometRPC {
	return abciNode{router: f.QueryConn().GRPCQueryRouter, ctx: f.Ctx}
}

func (n abciNode) ABCIQueryWithOptions(_ context.Context, path string, data cmtbytes.HexBytes, _ rpcclient.ABCIQueryOptions) (*coretypes.ResultABCIQuery, error) {
	handler := n.router.Route(path)
	if handler == nil {
		return nil, fmt.Errorf("no query route for %s", path)
	}
	res, err := handler(n.ctx, &abci.RequestQuery{Path: path, Data: data})
	if err != nil {
		return &coretypes.ResultABCIQuery{Response: abci.ResponseQuery{Code: 1, Codespace: "agentpay", Log: err.Error()}}, nil
	}
	return &coretypes.ResultABCIQuery{Response: *res}, nil
}
