package devserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/taskarena/taskarena/pkg/arena"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	srv := New(Demo("test-secret"))
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return srv, ts
}

func TestRequireSecret(t *testing.T) {
	_, ts := newTestServer(t)

	tests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{name: "missing secret", query: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", query: "?secret=nope", wantStatus: http.StatusUnauthorized},
		{name: "valid secret", query: "?secret=test-secret", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/api/challenges/demo/" + tt.query)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, resp.StatusCode)
			}
		})
	}
}

func TestCreateTask_ExhaustionIs400(t *testing.T) {
	_, ts := newTestServer(t)

	createURL := ts.URL + "/api/tasks?secret=test-secret&round=demo-round-1&type=json"

	// Demo seeds three json tasks.
	for i := 0; i < 3; i++ {
		resp, err := http.Post(createURL, "", nil)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201 on creation %d, got %d", i, resp.StatusCode)
		}
	}

	resp, err := http.Post(createURL, "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 once the pool is exhausted, got %d", resp.StatusCode)
	}
}

func TestCreateTask_UnknownRound(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/tasks?secret=test-secret&round=other", "", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	// Unknown round must not collide with the 400 exhaustion signal.
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for unknown round, got %d", resp.StatusCode)
	}
}

func TestSubmitAnswer_Scoring(t *testing.T) {
	srv, ts := newTestServer(t)

	task, ok := srv.createTask("json")
	if !ok {
		t.Fatal("expected a task from the demo pool")
	}

	tests := []struct {
		name   string
		answer string
		want   arena.TaskStatus
	}{
		{name: "correct answer", answer: "3", want: arena.StatusSuccess},
		{name: "wrong answer", answer: "999", want: arena.StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(map[string]string{"answer": tt.answer})
			resp, err := http.Post(
				fmt.Sprintf("%s/api/tasks/%s?secret=test-secret", ts.URL, task.ID),
				"application/json",
				bytes.NewReader(body),
			)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.StatusCode)
			}

			updated, err := arena.DecodeTask(mustReadAll(t, resp))
			if err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if updated.Status != tt.want {
				t.Errorf("expected status %v, got %v", tt.want, updated.Status)
			}
			if updated.TeamAnswer == nil || *updated.TeamAnswer != tt.answer {
				t.Errorf("expected team answer %q, got %v", tt.answer, updated.TeamAnswer)
			}
		})
	}
}

func TestListTasks_FilterAndWindow(t *testing.T) {
	srv, ts := newTestServer(t)

	for i := 0; i < 3; i++ {
		if _, ok := srv.createTask("json"); !ok {
			t.Fatal("expected a task from the demo pool")
		}
	}

	resp, err := http.Get(ts.URL + "/api/tasks?secret=test-secret&round=demo-round-1&type=json&status=0&offset=1&count=50")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	tasks, err := arena.DecodeTasks(mustReadAll(t, resp))
	if err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("expected 2 tasks after offset 1, got %d", len(tasks))
	}
}

func mustReadAll(t *testing.T, resp *http.Response) []byte {
	t.Helper()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return buf.Bytes()
}
