package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// TaskFilter selects tasks through one of the secondary indexes. The first
// set field is used, in the order Requester, Provider, Status.
type TaskFilter struct {
	Requester sdk.AccAddress
	Provider  sdk.AccAddress
	Status    *TaskStatus
}

// ServiceFilter narrows SearchServices. Zero values disable a criterion.
type ServiceFilter struct {
	// Keyword is a case-insensitive substring of the description.
	Keyword           string
	MaxPrice          uint64
	MinTasksCompleted uint64
	Limit             int
}

// ProtocolStats summarizes marketplace state.
type ProtocolStats struct {
	TotalListings  uint64
	ActiveListings uint64
	TotalTasks     uint64
	TasksByStatus  map[TaskStatus]uint64
	ZkVerified     uint64
	EscrowLocked   math.Int
	TopProviders   []ProviderStats
}

// TopProvidersLimit bounds the leaderboard in ProtocolStats.
const TopProvidersLimit = 10

// NewServiceListingInfo converts a stored listing to its query view.
func NewServiceListingInfo(l ServiceListing) ServiceListingInfo {
	return ServiceListingInfo{
		Address:        l.Address().String(),
		Provider:       l.Provider.String(),
		ServiceID:      append([]byte{}, l.ServiceID[:]...),
		Description:    l.DescriptionText(),
		PriceLamports:  l.PriceLamports,
		IsActive:       l.IsActive,
		TasksCompleted: l.TasksCompleted,
		CreatedAt:      l.CreatedAt,
		MinReputation:  l.MinReputation,
	}
}

// NewTaskRequestInfo converts a stored task to its query view.
func NewTaskRequestInfo(t TaskRequest) TaskRequestInfo {
	return TaskRequestInfo{
		Address:        t.Address().String(),
		Requester:      t.Requester.String(),
		Provider:       t.Provider.String(),
		ServiceListing: t.ServiceListing.String(),
		TaskID:         append([]byte{}, t.TaskID[:]...),
		Description:    t.DescriptionText(),
		AmountLamports: t.AmountLamports,
		Status:         t.Status.String(),
		ResultHash:     append([]byte{}, t.ResultHash[:]...),
		Deadline:       t.Deadline,
		CreatedAt:      t.CreatedAt,
		ZkVerified:     t.ZkVerified,
	}
}

// StatusCounts flattens TasksByStatus in status order.
func (s ProtocolStats) StatusCounts() []StatusCount {
	out := make([]StatusCount, 0, len(AllTaskStatuses))
	for _, st := range AllTaskStatuses {
		out = append(out, StatusCount{Status: st.String(), Count: s.TasksByStatus[st]})
	}
	return out
}
