package devserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskarena/taskarena/pkg/arena"
)

// Router builds the HTTP router for the challenge API.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Use(s.logging)
		r.Use(s.requireSecret)

		r.Post("/tasks", s.handleCreateTask)
		r.Get("/tasks", s.handleListTasks)
		r.Get("/tasks/{id}", s.handleGetTask)
		r.Post("/tasks/{id}", s.handleSubmitAnswer)
		// The real site serves challenges with a trailing slash; accept both.
		r.Get("/challenges/{id}", s.handleGetChallenge)
		r.Get("/challenges/{id}/", s.handleGetChallenge)
	})

	return r
}

// logging logs each request at debug level.
func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request")
		next.ServeHTTP(w, r)
	})
}

// requireSecret rejects requests without the team secret query parameter.
func (s *Server) requireSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("secret") != s.secret {
			writeError(w, http.StatusUnauthorized, "unknown team secret")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleCreateTask handles POST /api/tasks. Responds 400 when the pool has
// no tasks of the requested type left; the client translates exactly that
// status into its tasks-over condition.
func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	round := query.Get("round")
	taskType := query.Get("type")

	if round == "" {
		writeError(w, http.StatusUnprocessableEntity, "round parameter is required")
		return
	}
	if !s.roundExists(round) {
		writeError(w, http.StatusUnprocessableEntity, "unknown round")
		return
	}

	task, ok := s.createTask(taskType)
	if !ok {
		writeError(w, http.StatusBadRequest, "no tasks left")
		return
	}

	s.logger.Info().Str("task", task.ID).Str("type", task.TypeID).Msg("task created")
	writeJSON(w, http.StatusCreated, task)
}

// handleSubmitAnswer handles POST /api/tasks/{id}.
func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Answer *string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Answer == nil {
		writeError(w, http.StatusUnprocessableEntity, "answer body is required")
		return
	}

	task, ok := s.submitAnswer(chi.URLParam(r, "id"), *body.Answer)
	if !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}

	s.logger.Info().Str("task", task.ID).Stringer("status", task.Status).Msg("answer scored")
	writeJSON(w, http.StatusOK, task)
}

// handleGetTask handles GET /api/tasks/{id}.
func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	task, ok := s.getTask(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// handleListTasks handles GET /api/tasks.
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rawStatus, err := strconv.Atoi(query.Get("status"))
	if err != nil || !arena.TaskStatus(rawStatus).IsValid() {
		writeError(w, http.StatusUnprocessableEntity, "invalid status parameter")
		return
	}
	offset, err := strconv.Atoi(query.Get("offset"))
	if err != nil || offset < 0 {
		writeError(w, http.StatusUnprocessableEntity, "invalid offset parameter")
		return
	}
	count, err := strconv.Atoi(query.Get("count"))
	if err != nil || count < 0 || count > 50 {
		writeError(w, http.StatusUnprocessableEntity, "invalid count parameter")
		return
	}

	tasks := s.listTasks(query.Get("type"), arena.TaskStatus(rawStatus), offset, count)
	writeJSON(w, http.StatusOK, tasks)
}

// handleGetChallenge handles GET /api/challenges/{id}.
func (s *Server) handleGetChallenge(w http.ResponseWriter, r *http.Request) {
	challenge, ok := s.getChallenge(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "challenge not found")
		return
	}
	writeJSON(w, http.StatusOK, challenge)
}

func (s *Server) roundExists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, round := range s.challenge.Rounds {
		if round.ID == id {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
