// Package devserver implements an in-memory challenge API server speaking
// the same wire contract as the real competition site. It backs the
// "ta serve" command and the end-to-end tests.
package devserver

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskarena/taskarena/pkg/arena"
)

// TaskTemplate seeds one creatable task.
type TaskTemplate struct {
	TypeID   string
	Question string
	Answer   string
	Hint     string
	Points   int
	Cost     int
}

// Config describes the state the server starts with.
type Config struct {
	Secret    string
	Challenge arena.Challenge
	Templates []TaskTemplate
	Logger    zerolog.Logger
}

// Server holds the in-memory challenge state. All handlers lock the single
// mutex; the server is safe for concurrent requests.
type Server struct {
	secret    string
	logger    zerolog.Logger
	mu        sync.Mutex
	challenge arena.Challenge
	remaining []TaskTemplate
	tasks     map[string]*taskState
	order     []string // task ids in creation order
}

// taskState pairs a task snapshot with its expected answer.
type taskState struct {
	task   arena.Task
	answer string
}

// New creates a Server from the given config.
func New(cfg Config) *Server {
	return &Server{
		secret:    cfg.Secret,
		logger:    cfg.Logger,
		challenge: cfg.Challenge,
		remaining: append([]TaskTemplate(nil), cfg.Templates...),
		tasks:     make(map[string]*taskState),
	}
}

// Demo builds a config with one always-running round and a pool of json
// tasks, for local experimentation.
func Demo(secret string) Config {
	now := time.Now().UTC()
	title := "Local Demo Challenge"
	description := "An in-memory challenge for trying out the client."

	return Config{
		Secret: secret,
		Challenge: arena.Challenge{
			ID:          "demo",
			Title:       &title,
			Description: &description,
			Rounds: []arena.Round{
				{
					ID:             "demo-round-1",
					StartTimestamp: now.Add(-time.Hour),
					EndTimestamp:   now.Add(24 * time.Hour),
					CanChooseType:  true,
				},
			},
		},
		Templates: []TaskTemplate{
			{TypeID: "json", Question: `{"a": 1, "b": 2}`, Answer: "3", Points: 5, Cost: 1},
			{TypeID: "json", Question: `{"a": 10, "b": {"c": -4}}`, Answer: "6", Points: 5, Cost: 1},
			{TypeID: "json", Question: `{"x": "7", "y": {"z": "35"}}`, Answer: "42", Points: 10, Cost: 2},
		},
	}
}

// createTask pops a template of the requested type (any type when empty)
// and materializes a pending task from it. Returns false when the pool has
// no matching template left.
func (s *Server) createTask(taskType string) (*arena.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, tpl := range s.remaining {
		if taskType == "" || tpl.TypeID == taskType {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}

	tpl := s.remaining[idx]
	s.remaining = append(s.remaining[:idx], s.remaining[idx+1:]...)

	task := arena.Task{
		ID:       uuid.NewString(),
		TypeID:   tpl.TypeID,
		Question: tpl.Question,
		Status:   arena.StatusPending,
		Points:   tpl.Points,
		Cost:     tpl.Cost,
	}
	if tpl.Hint != "" {
		hint := tpl.Hint
		task.UserHint = &hint
	}

	s.tasks[task.ID] = &taskState{task: task, answer: tpl.Answer}
	s.order = append(s.order, task.ID)

	snapshot := task
	return &snapshot, true
}

// submitAnswer scores an answer and returns the updated snapshot.
func (s *Server) submitAnswer(taskID, answer string) (*arena.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.tasks[taskID]
	if !ok {
		return nil, false
	}

	submitted := answer
	state.task.TeamAnswer = &submitted
	if answer == state.answer {
		state.task.Status = arena.StatusSuccess
	} else {
		state.task.Status = arena.StatusFailed
	}

	snapshot := state.task
	return &snapshot, true
}

// getTask returns a single task snapshot.
func (s *Server) getTask(taskID string) (*arena.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.tasks[taskID]
	if !ok {
		return nil, false
	}
	snapshot := state.task
	return &snapshot, true
}

// listTasks filters created tasks by type and status, in creation order,
// windowed by offset and count.
func (s *Server) listTasks(taskType string, status arena.TaskStatus, offset, count int) []*arena.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]*arena.Task, 0, len(s.order))
	for _, id := range s.order {
		task := s.tasks[id].task
		if taskType != "" && task.TypeID != taskType {
			continue
		}
		if task.Status != status {
			continue
		}
		snapshot := task
		matched = append(matched, &snapshot)
	}

	if offset >= len(matched) {
		return []*arena.Task{}
	}
	matched = matched[offset:]
	if count < len(matched) {
		matched = matched[:count]
	}
	return matched
}

// getChallenge returns the configured challenge if the id matches.
func (s *Server) getChallenge(id string) (*arena.Challenge, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != s.challenge.ID {
		return nil, false
	}
	snapshot := s.challenge
	return &snapshot, true
}
