package keeper

import (
	"context"
	"sort"
	"strings"

	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/agentpay-chain/agentpay/x/agentpay/types"
)

// Tasks lists tasks through the requester, provider or status index.
func (k Keeper) Tasks(ctx context.Context, filter types.TaskFilter, page *query.PageRequest) ([]types.TaskRequest, *query.PageResponse, error) {
	var indexPrefix []byte
	switch {
	case len(filter.Requester) > 0:
		indexPrefix = types.TasksByRequesterPrefixKey(filter.Requester)
	case len(filter.Provider) > 0:
		indexPrefix = types.TasksByProviderPrefixKey(filter.Provider)
	case filter.Status != nil:
		if !filter.Status.IsValid() {
			return nil, nil, types.ErrInvalidTaskStatus.Wrapf("status %d", uint8(*filter.Status))
		}
		indexPrefix = types.TasksByStatusPrefixKey(*filter.Status)
	default:
		return nil, nil, types.ErrInvalidAddress.Wrap("one of requester, provider or status is required")
	}

	var tasks []types.TaskRequest
	store := prefix.NewStore(k.getStore(ctx), indexPrefix)
	pageRes, err := query.Paginate(store, page, func(key, _ []byte) error {
		addr, ok := types.ParseLengthPrefixedAddress(key)
		if !ok {
			return types.ErrCorruptRecord.Wrapf("index key %x", key)
		}
		task, err := k.GetTaskRequest(ctx, addr)
		if err != nil {
			return err
		}
		tasks = append(tasks, task)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return tasks, pageRes, nil
}

// ListingsByProvider lists the listings a provider registered.
func (k Keeper) ListingsByProvider(ctx context.Context, provider sdk.AccAddress, page *query.PageRequest) ([]types.ServiceListing, *query.PageResponse, error) {
	var listings []types.ServiceListing
	store := prefix.NewStore(k.getStore(ctx), types.ListingsByProviderPrefixKey(provider))
	pageRes, err := query.Paginate(store, page, func(key, _ []byte) error {
		addr, ok := types.ParseLengthPrefixedAddress(key)
		if !ok {
			return types.ErrCorruptRecord.Wrapf("index key %x", key)
		}
		listing, err := k.GetServiceListing(ctx, addr)
		if err != nil {
			return err
		}
		listings = append(listings, listing)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return listings, pageRes, nil
}

// SearchServices returns active listings matching filter, most completed first.
func (k Keeper) SearchServices(ctx context.Context, filter types.ServiceFilter) ([]types.ServiceListing, error) {
	keyword := strings.ToLower(filter.Keyword)

	var out []types.ServiceListing
	err := k.IterateServiceListings(ctx, func(_ sdk.AccAddress, l types.ServiceListing) bool {
		switch {
		case !l.IsActive:
		case filter.MaxPrice != 0 && l.PriceLamports > filter.MaxPrice:
		case l.TasksCompleted < filter.MinTasksCompleted:
		case keyword != "" && !strings.Contains(strings.ToLower(l.DescriptionText()), keyword):
		default:
			out = append(out, l)
		}
		return false
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TasksCompleted > out[j].TasksCompleted
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// ProtocolStats aggregates listing and task counters across the store.
func (k Keeper) ProtocolStats(ctx context.Context) (types.ProtocolStats, error) {
	stats := types.ProtocolStats{
		TasksByStatus: make(map[types.TaskStatus]uint64, len(types.AllTaskStatuses)),
		EscrowLocked:  math.ZeroInt(),
	}
	for _, s := range types.AllTaskStatuses {
		stats.TasksByStatus[s] = 0
	}

	providers := make(map[string]*types.ProviderStats)
	err := k.IterateServiceListings(ctx, func(_ sdk.AccAddress, l types.ServiceListing) bool {
		stats.TotalListings++
		if l.IsActive {
			stats.ActiveListings++
		}
		key := l.Provider.String()
		p, ok := providers[key]
		if !ok {
			p = &types.ProviderStats{Provider: key}
			providers[key] = p
		}
		p.Listings++
		p.TasksCompleted += l.TasksCompleted
		return false
	})
	if err != nil {
		return stats, err
	}

	err = k.IterateTaskRequests(ctx, func(_ sdk.AccAddress, t types.TaskRequest) bool {
		stats.TotalTasks++
		stats.TasksByStatus[t.Status]++
		if t.ZkVerified {
			stats.ZkVerified++
		}
		if t.Status.HoldsEscrow() {
			stats.EscrowLocked = stats.EscrowLocked.Add(math.NewIntFromUint64(t.AmountLamports))
		}
		return false
	})
	if err != nil {
		return stats, err
	}

	for _, p := range providers {
		stats.TopProviders = append(stats.TopProviders, *p)
	}
	sort.Slice(stats.TopProviders, func(i, j int) bool {
		a, b := stats.TopProviders[i], stats.TopProviders[j]
		if a.TasksCompleted != b.TasksCompleted {
			return a.TasksCompleted > b.TasksCompleted
		}
		return a.Provider < b.Provider
	})
	if len(stats.TopProviders) > types.TopProvidersLimit {
		stats.TopProviders = stats.TopProviders[:types.TopProvidersLimit]
	}
	return stats, nil
}
