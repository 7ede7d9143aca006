package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenesisValidate(t *testing.T) {
	listing := sampleListing(t)
	listing.TasksCompleted = 1
	completed := sampleTask(t)
	completed.Status = TaskStatusCompleted
	open := sampleTask(t)
	open.TaskID = [IDLength]byte{10}
	open.Status = TaskStatusOpen
	open.ResultHash = [ResultHashLength]byte{}
	open.ZkVerified = false

	valid := func() *GenesisState {
		gs := DefaultGenesis()
		gs.ServiceListings = []GenesisServiceListing{NewGenesisServiceListing(listing)}
		gs.TaskRequests = []GenesisTaskRequest{NewGenesisTaskRequest(completed), NewGenesisTaskRequest(open)}
		return gs
	}

	require.NoError(t, DefaultGenesis().Validate())
	require.NoError(t, valid().Validate())

	tests := map[string]func(gs *GenesisState){
		"duplicate listing": func(gs *GenesisState) {
			gs.ServiceListings = append(gs.ServiceListings, gs.ServiceListings[0])
		},
		"duplicate task": func(gs *GenesisState) {
			gs.TaskRequests = append(gs.TaskRequests, gs.TaskRequests[1])
		},
		"unknown listing": func(gs *GenesisState) {
			gs.TaskRequests[1].ServiceListing = testAddr(0x55, 32)
		},
		"provider mismatch": func(gs *GenesisState) {
			gs.TaskRequests[1].Provider = testAddr(0x56, 20)
		},
		"completed count": func(gs *GenesisState) {
			gs.ServiceListings[0].TasksCompleted = 3
		},
		"open with result": func(gs *GenesisState) {
			gs.TaskRequests[1].ZkVerified = true
		},
		"short id": func(gs *GenesisState) {
			gs.ServiceListings[0].ServiceID = gs.ServiceListings[0].ServiceID[:3]
		},
		"bad params": func(gs *GenesisState) {
			gs.Params.EscrowDenom = ""
		},
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			gs := valid()
			mutate(gs)
			require.Error(t, gs.Validate())
		})
	}
}

func TestGenesisJSON(t *testing.T) {
	gs := DefaultGenesis()
	gs.ServiceListings = []GenesisServiceListing{NewGenesisServiceListing(sampleListing(t))}
	task := sampleTask(t)
	task.Status = TaskStatusDisputed
	gs.TaskRequests = []GenesisTaskRequest{NewGenesisTaskRequest(task)}

	bz := MustMarshalGenesis(gs)
	require.Contains(t, string(bz), `"status":"disputed"`)
	require.Contains(t, string(bz), `"price_lamports":"1000"`)

	decoded, err := UnmarshalGenesis(bz)
	require.NoError(t, err)

	gotTask, err := decoded.TaskRequests[0].ToRecord()
	require.NoError(t, err)
	require.Equal(t, task, gotTask)

	gotListing, err := decoded.ServiceListings[0].ToRecord()
	require.NoError(t, err)
	require.Equal(t, sampleListing(t), gotListing)

	_, err = UnmarshalGenesis([]byte("{"))
	require.ErrorIs(t, err, ErrInvalidGenesis)
}
