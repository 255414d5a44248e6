// Package solver holds automatic task solvers keyed by task type id.
package solver

import "sort"

// Solver produces an answer for a task question.
type Solver interface {
	Solve(question string) (string, error)
}

var registry = map[string]Solver{}

// Register adds a solver for the given task type id. Later registrations
// replace earlier ones.
func Register(typeID string, s Solver) {
	registry[typeID] = s
}

// For returns the solver registered for the task type.
func For(typeID string) (Solver, bool) {
	s, ok := registry[typeID]
	return s, ok
}

// Types lists the registered task type ids in sorted order.
func Types() []string {
	types := make([]string, 0, len(registry))
	for typeID := range registry {
		types = append(types, typeID)
	}
	sort.Strings(types)
	return types
}
