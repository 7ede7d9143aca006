package types

import "fmt"

// TaskStatus is the lifecycle state of a task request.
type TaskStatus uint8

const (
	TaskStatusOpen TaskStatus = iota
	TaskStatusSubmitted
	TaskStatusCompleted
	TaskStatusDisputed
	TaskStatusExpired
)

var taskStatusNames = [...]string{
	TaskStatusOpen:      "open",
	TaskStatusSubmitted: "submitted",
	TaskStatusCompleted: "completed",
	TaskStatusDisputed:  "disputed",
	TaskStatusExpired:   "expired",
}

// AllTaskStatuses lists every status in wire order.
var AllTaskStatuses = []TaskStatus{
	TaskStatusOpen,
	TaskStatusSubmitted,
	TaskStatusCompleted,
	TaskStatusDisputed,
	TaskStatusExpired,
}

func (s TaskStatus) String() string {
	if s.IsValid() {
		return taskStatusNames[s]
	}
	return fmt.Sprintf("unknown(%d)", uint8(s))
}

// IsValid reports whether s is a known status.
func (s TaskStatus) IsValid() bool {
	return s <= TaskStatusExpired
}

// IsTerminal reports whether no transition leaves s.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusDisputed || s == TaskStatusExpired
}

// HoldsEscrow reports whether a task in status s still has funds locked.
func (s TaskStatus) HoldsEscrow() bool {
	return s == TaskStatusOpen || s == TaskStatusSubmitted
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	switch s {
	case TaskStatusOpen:
		return next == TaskStatusSubmitted || next == TaskStatusExpired
	case TaskStatusSubmitted:
		return next == TaskStatusCompleted || next == TaskStatusDisputed
	default:
		return false
	}
}

// ParseTaskStatus parses a status name as produced by String.
func ParseTaskStatus(name string) (TaskStatus, error) {
	for i, n := range taskStatusNames {
		if n == name {
			return TaskStatus(i), nil
		}
	}
	return 0, fmt.Errorf("unknown task status %q", name)
}

func (s TaskStatus) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("unknown task status %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *TaskStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseTaskStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
