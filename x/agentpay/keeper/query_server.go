package keeper

import (
	"context"
	"errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

var _ types.QueryServer = queryServer{}

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// sanitizePagination enforces default and max limits to prevent unbounded queries.
func sanitizePagination(p *query.PageRequest) *query.PageRequest {
	if p == nil {
		return &query.PageRequest{Limit: defaultPaginationLimit}
	}
	if p.Limit == 0 {
		p.Limit = defaultPaginationLimit
	}
	if p.Limit > maxPaginationLimit {
		p.Limit = maxPaginationLimit
	}
	return p
}

// lookupError maps a keeper lookup failure to a gRPC status.
func lookupError(err error) error {
	switch {
	case errors.Is(err, types.ErrServiceNotFound), errors.Is(err, types.ErrTaskNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, types.ErrInvalidAddress), errors.Is(err, types.ErrInvalidTaskStatus):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryParamsResponse{Params: qs.Keeper.GetParams(goCtx)}, nil
}

// ServiceListing returns one listing by its derived address
func (qs queryServer) ServiceListing(goCtx context.Context, req *types.QueryServiceListingRequest) (*types.QueryServiceListingResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	addr, err := types.ParseAddress("listing", req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	listing, err := qs.Keeper.GetServiceListing(goCtx, addr)
	if err != nil {
		return nil, lookupError(err)
	}
	return &types.QueryServiceListingResponse{Listing: types.NewServiceListingInfo(listing)}, nil
}

// TaskRequest returns one task by its derived address
func (qs queryServer) TaskRequest(goCtx context.Context, req *types.QueryTaskRequestRequest) (*types.QueryTaskRequestResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	addr, err := types.ParseAddress("task", req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	task, err := qs.Keeper.GetTaskRequest(goCtx, addr)
	if err != nil {
		return nil, lookupError(err)
	}
	return &types.QueryTaskRequestResponse{Task: types.NewTaskRequestInfo(task)}, nil
}

// Tasks lists tasks through the requester, provider or status index
func (qs queryServer) Tasks(goCtx context.Context, req *types.QueryTasksRequest) (*types.QueryTasksResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	var (
		filter types.TaskFilter
		err    error
	)
	switch {
	case req.Requester != "":
		filter.Requester, err = types.ParseAddress("requester", req.Requester)
	case req.Provider != "":
		filter.Provider, err = types.ParseAddress("provider", req.Provider)
	case req.Status != "":
		var s types.TaskStatus
		s, err = types.ParseTaskStatus(req.Status)
		filter.Status = &s
	default:
		err = errors.New("one of requester, provider or status is required")
	}
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	tasks, pageRes, err := qs.Keeper.Tasks(goCtx, filter, sanitizePagination(req.Pagination))
	if err != nil {
		return nil, lookupError(err)
	}
	out := make([]types.TaskRequestInfo, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, types.NewTaskRequestInfo(t))
	}
	return &types.QueryTasksResponse{Tasks: out, Pagination: pageRes}, nil
}

// ListingsByProvider lists the listings a provider registered
func (qs queryServer) ListingsByProvider(goCtx context.Context, req *types.QueryListingsByProviderRequest) (*types.QueryListingsByProviderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	provider, err := types.ParseAddress("provider", req.Provider)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	listings, pageRes, err := qs.Keeper.ListingsByProvider(goCtx, provider, sanitizePagination(req.Pagination))
	if err != nil {
		return nil, lookupError(err)
	}
	out := make([]types.ServiceListingInfo, 0, len(listings))
	for _, l := range listings {
		out = append(out, types.NewServiceListingInfo(l))
	}
	return &types.QueryListingsByProviderResponse{Listings: out, Pagination: pageRes}, nil
}

// SearchServices returns active listings matching the filter. Results are
// capped at maxPaginationLimit whatever limit the caller asks for.
func (qs queryServer) SearchServices(goCtx context.Context, req *types.QuerySearchServicesRequest) (*types.QuerySearchServicesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	limit := int(req.Limit)
	if limit == 0 || limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	listings, err := qs.Keeper.SearchServices(goCtx, types.ServiceFilter{
		Keyword:           req.Keyword,
		MaxPrice:          req.MaxPrice,
		MinTasksCompleted: req.MinTasksCompleted,
		Limit:             limit,
	})
	if err != nil {
		return nil, lookupError(err)
	}
	out := make([]types.ServiceListingInfo, 0, len(listings))
	for _, l := range listings {
		out = append(out, types.NewServiceListingInfo(l))
	}
	return &types.QuerySearchServicesResponse{Listings: out}, nil
}

// ProtocolStats aggregates listing and task counters
func (qs queryServer) ProtocolStats(goCtx context.Context, req *types.QueryProtocolStatsRequest) (*types.QueryProtocolStatsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	stats, err := qs.Keeper.ProtocolStats(goCtx)
	if err != nil {
		return nil, lookupError(err)
	}
	return &types.QueryProtocolStatsResponse{
		TotalListings:  stats.TotalListings,
		ActiveListings: stats.ActiveListings,
		TotalTasks:     stats.TotalTasks,
		TasksByStatus:  stats.StatusCounts(),
		ZkVerified:     stats.ZkVerified,
		EscrowLocked:   sdk.NewCoin(qs.Keeper.GetParams(goCtx).EscrowDenom, stats.EscrowLocked),
		TopProviders:   stats.TopProviders,
	}, nil
}
