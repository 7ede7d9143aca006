package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskStatusTransitions(t *testing.T) {
	allowed := map[TaskStatus][]TaskStatus{
		TaskStatusOpen:      {TaskStatusSubmitted, TaskStatusExpired},
		TaskStatusSubmitted: {TaskStatusCompleted, TaskStatusDisputed},
	}
	for _, from := range AllTaskStatuses {
		for _, to := range AllTaskStatuses {
			want := false
			for _, ok := range allowed[from] {
				if ok == to {
					want = true
				}
			}
			require.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
		// nothing re-enters open
		require.False(t, from.CanTransitionTo(TaskStatusOpen))
		require.Equal(t, !from.IsTerminal(), from.HoldsEscrow())
	}
}

func TestTaskStatusText(t *testing.T) {
	bz, err := json.Marshal(TaskStatusDisputed)
	require.NoError(t, err)
	require.JSONEq(t, `"disputed"`, string(bz))

	var s TaskStatus
	require.NoError(t, json.Unmarshal([]byte(`"expired"`), &s))
	require.Equal(t, TaskStatusExpired, s)

	require.Error(t, json.Unmarshal([]byte(`"cancelled"`), &s))
	require.False(t, TaskStatus(5).IsValid())
	require.Equal(t, "unknown(5)", TaskStatus(5).String())
}
