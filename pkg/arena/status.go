package arena

import "fmt"

// TaskStatus represents the resolution state of a task. It maps to an
// ordinal wire value: Pending=0, Success=1, Failed=2.
type TaskStatus int

const (
	StatusPending TaskStatus = iota
	StatusSuccess
	StatusFailed
)

// IsValid checks if the status is one of the known ordinals.
func (s TaskStatus) IsValid() bool {
	return s >= StatusPending && s <= StatusFailed
}

// String returns the lowercase name of the status.
func (s TaskStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("TaskStatus(%d)", int(s))
	}
}

// ParseTaskStatus parses a status name as produced by String.
func ParseTaskStatus(name string) (TaskStatus, error) {
	switch name {
	case "pending":
		return StatusPending, nil
	case "success":
		return StatusSuccess, nil
	case "failed":
		return StatusFailed, nil
	default:
		return 0, fmt.Errorf("%w: unknown task status %q", ErrInvalidArgument, name)
	}
}
