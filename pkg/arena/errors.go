package arena

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInvalidArgument marks precondition failures raised before any
	// network I/O (missing round/challenge id, disallowed type choice,
	// out-of-range page size). Check with errors.Is.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoRoundCurrentlyRunning indicates automatic round resolution found
	// no round whose interval contains the current instant.
	ErrNoRoundCurrentlyRunning = errors.New("no round is currently running")
)

// TasksOverError indicates the server reported no remaining tasks of the
// requested type on the bound round. TaskType is empty when no specific
// type was requested.
type TasksOverError struct {
	TaskType string
}

func (e *TasksOverError) Error() string {
	if e.TaskType == "" {
		return "no more tasks left on this round"
	}
	return fmt.Sprintf("no more tasks of the %q type left on this round", e.TaskType)
}

// DeserializationError indicates a wire payload could not be converted into
// the requested domain type. It keeps the raw payload and the underlying
// cause for diagnostics.
type DeserializationError struct {
	Payload []byte
	Target  string
	Err     error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("can't deserialize payload into %s: %v", e.Target, e.Err)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// newDeserializationError wraps err as a DeserializationError for the given
// target type.
func newDeserializationError(payload []byte, target string, err error) *DeserializationError {
	return &DeserializationError{Payload: payload, Target: target, Err: err}
}

// HTTPError is a transport-level failure: a non-2xx response the client does
// not translate into a domain error. The response body is preserved as-is.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *HTTPError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("server returned %s", e.Status)
	}
	return fmt.Sprintf("server returned %s: %s", e.Status, e.Body)
}
