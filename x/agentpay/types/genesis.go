package types

import (
	"bytes"
	"encoding/json"

	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the agentpay module's genesis state.
type GenesisState struct {
	Params          Params                  `json:"params"`
	ServiceListings []GenesisServiceListing `json:"service_listings"`
	TaskRequests    []GenesisTaskRequest    `json:"task_requests"`
}

// GenesisServiceListing is the JSON form of a ServiceListing.
type GenesisServiceListing struct {
	Provider       sdk.AccAddress    `json:"provider"`
	ServiceID      cmtbytes.HexBytes `json:"service_id"`
	Description    string            `json:"description"`
	PriceLamports  uint64            `json:"price_lamports,string"`
	IsActive       bool              `json:"is_active"`
	TasksCompleted uint64            `json:"tasks_completed,string"`
	CreatedAt      int64             `json:"created_at,string"`
	MinReputation  uint64            `json:"min_reputation,string"`
}

// GenesisTaskRequest is the JSON form of a TaskRequest.
type GenesisTaskRequest struct {
	Requester      sdk.AccAddress    `json:"requester"`
	Provider       sdk.AccAddress    `json:"provider"`
	ServiceListing sdk.AccAddress    `json:"service_listing"`
	TaskID         cmtbytes.HexBytes `json:"task_id"`
	Description    string            `json:"description"`
	AmountLamports uint64            `json:"amount_lamports,string"`
	Status         TaskStatus        `json:"status"`
	ResultHash     cmtbytes.HexBytes `json:"result_hash,omitempty"`
	Deadline       int64             `json:"deadline,string"`
	CreatedAt      int64             `json:"created_at,string"`
	ZkVerified     bool              `json:"zk_verified"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:          DefaultParams(),
		ServiceListings: []GenesisServiceListing{},
		TaskRequests:    []GenesisTaskRequest{},
	}
}

// NewGenesisServiceListing converts a stored listing.
func NewGenesisServiceListing(l ServiceListing) GenesisServiceListing {
	return GenesisServiceListing{
		Provider:       l.Provider,
		ServiceID:      append(cmtbytes.HexBytes{}, l.ServiceID[:]...),
		Description:    l.DescriptionText(),
		PriceLamports:  l.PriceLamports,
		IsActive:       l.IsActive,
		TasksCompleted: l.TasksCompleted,
		CreatedAt:      l.CreatedAt,
		MinReputation:  l.MinReputation,
	}
}

// ToRecord converts back to the stored form.
func (g GenesisServiceListing) ToRecord() (ServiceListing, error) {
	id, err := ParseID(g.ServiceID)
	if err != nil {
		return ServiceListing{}, err
	}
	desc, err := NewListingDescription([]byte(g.Description))
	if err != nil {
		return ServiceListing{}, err
	}
	if len(g.Provider) == 0 || len(g.Provider) > MaxIdentityLength {
		return ServiceListing{}, ErrInvalidAddress.Wrap("listing provider")
	}
	return ServiceListing{
		Provider:       g.Provider,
		ServiceID:      id,
		Description:    desc,
		PriceLamports:  g.PriceLamports,
		IsActive:       g.IsActive,
		TasksCompleted: g.TasksCompleted,
		CreatedAt:      g.CreatedAt,
		MinReputation:  g.MinReputation,
	}, nil
}

// NewGenesisTaskRequest converts a stored task.
func NewGenesisTaskRequest(t TaskRequest) GenesisTaskRequest {
	g := GenesisTaskRequest{
		Requester:      t.Requester,
		Provider:       t.Provider,
		ServiceListing: t.ServiceListing,
		TaskID:         append(cmtbytes.HexBytes{}, t.TaskID[:]...),
		Description:    t.DescriptionText(),
		AmountLamports: t.AmountLamports,
		Status:         t.Status,
		Deadline:       t.Deadline,
		CreatedAt:      t.CreatedAt,
		ZkVerified:     t.ZkVerified,
	}
	if !isZero(t.ResultHash[:]) {
		g.ResultHash = append(cmtbytes.HexBytes{}, t.ResultHash[:]...)
	}
	return g
}

// ToRecord converts back to the stored form.
func (g GenesisTaskRequest) ToRecord() (TaskRequest, error) {
	id, err := ParseID(g.TaskID)
	if err != nil {
		return TaskRequest{}, err
	}
	desc, err := NewTaskDescription([]byte(g.Description))
	if err != nil {
		return TaskRequest{}, err
	}
	for _, addr := range []sdk.AccAddress{g.Requester, g.Provider, g.ServiceListing} {
		if len(addr) == 0 || len(addr) > MaxIdentityLength {
			return TaskRequest{}, ErrInvalidAddress.Wrap("task identity")
		}
	}
	if !g.Status.IsValid() {
		return TaskRequest{}, ErrInvalidTaskStatus.Wrapf("status %d", uint8(g.Status))
	}
	t := TaskRequest{
		Requester:      g.Requester,
		Provider:       g.Provider,
		ServiceListing: g.ServiceListing,
		TaskID:         id,
		Description:    desc,
		AmountLamports: g.AmountLamports,
		Status:         g.Status,
		Deadline:       g.Deadline,
		CreatedAt:      g.CreatedAt,
		ZkVerified:     g.ZkVerified,
	}
	if len(g.ResultHash) > 0 {
		if t.ResultHash, err = ParseResultHash(g.ResultHash); err != nil {
			return TaskRequest{}, err
		}
	}
	return t, nil
}

// Validate performs basic genesis state validation returning an error upon any failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	listings := make(map[string]ServiceListing, len(gs.ServiceListings))
	for i, g := range gs.ServiceListings {
		l, err := g.ToRecord()
		if err != nil {
			return ErrInvalidGenesis.Wrapf("service listing %d: %s", i, err)
		}
		key := l.Address().String()
		if _, dup := listings[key]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate service listing %s", key)
		}
		listings[key] = l
	}

	seen := make(map[string]struct{}, len(gs.TaskRequests))
	completed := make(map[string]uint64)
	for i, g := range gs.TaskRequests {
		t, err := g.ToRecord()
		if err != nil {
			return ErrInvalidGenesis.Wrapf("task request %d: %s", i, err)
		}
		key := t.Address().String()
		if _, dup := seen[key]; dup {
			return ErrInvalidGenesis.Wrapf("duplicate task request %s", key)
		}
		seen[key] = struct{}{}

		listingKey := t.ServiceListing.String()
		l, ok := listings[listingKey]
		if !ok {
			return ErrInvalidGenesis.Wrapf("task %s references unknown listing %s", key, listingKey)
		}
		if !bytes.Equal(l.Provider, t.Provider) {
			return ErrInvalidGenesis.Wrapf("task %s provider does not match listing %s", key, listingKey)
		}
		if t.Status == TaskStatusOpen && (t.ZkVerified || !isZero(t.ResultHash[:])) {
			return ErrInvalidGenesis.Wrapf("open task %s carries a result", key)
		}
		if t.Status == TaskStatusCompleted {
			completed[listingKey]++
		}
	}

	for key, l := range listings {
		if l.TasksCompleted != completed[key] {
			return ErrInvalidGenesis.Wrapf("listing %s counts %d completed tasks, genesis holds %d",
				key, l.TasksCompleted, completed[key])
		}
	}
	return nil
}

// MustMarshalGenesis encodes the genesis state as JSON.
func MustMarshalGenesis(gs *GenesisState) json.RawMessage {
	bz, err := json.Marshal(gs)
	if err != nil {
		panic(err)
	}
	return bz
}

// UnmarshalGenesis decodes a JSON genesis state.
func UnmarshalGenesis(bz json.RawMessage) (*GenesisState, error) {
	var gs GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		return nil, ErrInvalidGenesis.Wrap(err.Error())
	}
	return &gs, nil
}
