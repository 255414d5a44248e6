package arena

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

// =============================================================================
// Round-Trip Tests
// =============================================================================

func TestCodec_TaskRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		task Task
	}{
		{
			name: "optional fields absent",
			task: Task{
				ID:       "t1",
				TypeID:   "json",
				Question: `{"a": 1}`,
				Status:   StatusPending,
				Points:   5,
				Cost:     1,
			},
		},
		{
			name: "optional fields present",
			task: Task{
				ID:         "t2",
				TypeID:     "math",
				Question:   "2+2",
				UserHint:   strPtr("try addition"),
				TeamAnswer: strPtr("4"),
				Status:     StatusSuccess,
				Points:     10,
				Cost:       2,
			},
		},
		{
			name: "failed status",
			task: Task{
				ID:         "t3",
				TypeID:     "cypher",
				Question:   "xyz",
				TeamAnswer: strPtr("wrong"),
				Status:     StatusFailed,
				Points:     0,
				Cost:       3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.task)
			if err != nil {
				t.Fatalf("Encode() returned error: %v", err)
			}

			decoded, err := DecodeTask(data)
			if err != nil {
				t.Fatalf("DecodeTask() returned error: %v", err)
			}

			if decoded.ID != tt.task.ID || decoded.TypeID != tt.task.TypeID || decoded.Question != tt.task.Question {
				t.Errorf("scalar fields differ: got %+v, want %+v", decoded, tt.task)
			}
			if decoded.Status != tt.task.Status || decoded.Points != tt.task.Points || decoded.Cost != tt.task.Cost {
				t.Errorf("numeric fields differ: got %+v, want %+v", decoded, tt.task)
			}
			if !equalStrPtr(decoded.UserHint, tt.task.UserHint) {
				t.Errorf("user hint differs: got %v, want %v", decoded.UserHint, tt.task.UserHint)
			}
			if !equalStrPtr(decoded.TeamAnswer, tt.task.TeamAnswer) {
				t.Errorf("team answer differs: got %v, want %v", decoded.TeamAnswer, tt.task.TeamAnswer)
			}
		})
	}
}

func equalStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func TestCodec_EncodeUsesCamelCaseKeysAndOrdinalStatus(t *testing.T) {
	task := Task{ID: "t1", TypeID: "json", Question: "{}", Status: StatusFailed, Points: 5, Cost: 1}

	data, err := Encode(task)
	if err != nil {
		t.Fatalf("Encode() returned error: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("encoded payload is not valid JSON: %v", err)
	}

	for _, key := range []string{"id", "typeId", "question", "userHint", "teamAnswer", "status", "points", "cost"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("expected wire key %q to be present", key)
		}
	}
	if string(raw["status"]) != "2" {
		t.Errorf("expected status ordinal 2, got %s", raw["status"])
	}
	if string(raw["userHint"]) != "null" {
		t.Errorf("expected absent user hint to encode as null, got %s", raw["userHint"])
	}
}

func TestCodec_RoundRoundTrip(t *testing.T) {
	round := Round{
		ID:             "round-1",
		StartTimestamp: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndTimestamp:   time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		CanChooseType:  true,
	}

	data, err := Encode(round)
	if err != nil {
		t.Fatalf("Encode() returned error: %v", err)
	}

	decoded, err := DecodeRound(data)
	if err != nil {
		t.Fatalf("DecodeRound() returned error: %v", err)
	}

	if decoded.ID != round.ID || decoded.CanChooseType != round.CanChooseType {
		t.Errorf("got %+v, want %+v", decoded, round)
	}
	if !decoded.StartTimestamp.Equal(round.StartTimestamp) || !decoded.EndTimestamp.Equal(round.EndTimestamp) {
		t.Errorf("timestamps differ: got %+v, want %+v", decoded, round)
	}
}

func TestCodec_ChallengeRoundTrip(t *testing.T) {
	challenge := Challenge{
		ID:    "course",
		Title: strPtr("Projects Course"),
		Rounds: []Round{
			{
				ID:             "r1",
				StartTimestamp: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
				EndTimestamp:   time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
				CanChooseType:  true,
			},
			{
				ID:             "r2",
				StartTimestamp: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
				EndTimestamp:   time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
				CanChooseType:  false,
			},
		},
	}

	data, err := Encode(challenge)
	if err != nil {
		t.Fatalf("Encode() returned error: %v", err)
	}

	decoded, err := DecodeChallenge(data)
	if err != nil {
		t.Fatalf("DecodeChallenge() returned error: %v", err)
	}

	if decoded.ID != challenge.ID {
		t.Errorf("expected id %q, got %q", challenge.ID, decoded.ID)
	}
	if decoded.Title == nil || *decoded.Title != *challenge.Title {
		t.Errorf("title differs: got %v", decoded.Title)
	}
	if decoded.Description != nil {
		t.Errorf("expected nil description, got %v", *decoded.Description)
	}
	if len(decoded.Rounds) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(decoded.Rounds))
	}
	if decoded.Rounds[0].ID != "r1" || decoded.Rounds[1].ID != "r2" {
		t.Errorf("round order not preserved: %+v", decoded.Rounds)
	}
}

// =============================================================================
// Failure Tests
// =============================================================================

func TestDecodeTask_Failures(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{
			name:    "not json",
			payload: `not json at all`,
		},
		{
			name:    "missing question",
			payload: `{"id":"t1","typeId":"json","userHint":null,"teamAnswer":null,"status":0,"points":5,"cost":1}`,
			wantMsg: `"question"`,
		},
		{
			name:    "missing status",
			payload: `{"id":"t1","typeId":"json","question":"{}","userHint":null,"teamAnswer":null,"points":5,"cost":1}`,
			wantMsg: `"status"`,
		},
		{
			name:    "status wrong shape",
			payload: `{"id":"t1","typeId":"json","question":"{}","userHint":null,"teamAnswer":null,"status":"pending","points":5,"cost":1}`,
		},
		{
			name:    "status out of range",
			payload: `{"id":"t1","typeId":"json","question":"{}","userHint":null,"teamAnswer":null,"status":3,"points":5,"cost":1}`,
			wantMsg: "out of range",
		},
		{
			name:    "object expected",
			payload: `[1, 2, 3]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTask([]byte(tt.payload))

			var desErr *DeserializationError
			if !errors.As(err, &desErr) {
				t.Fatalf("expected DeserializationError, got %v", err)
			}
			if desErr.Target != "Task" {
				t.Errorf("expected target Task, got %q", desErr.Target)
			}
			if string(desErr.Payload) != tt.payload {
				t.Errorf("expected raw payload to be preserved, got %q", desErr.Payload)
			}
			if desErr.Unwrap() == nil {
				t.Error("expected the underlying cause to be wrapped")
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected message to contain %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestDecodeTasks_ElementFailureNamesIndex(t *testing.T) {
	payload := `[` + sampleTaskJSON + `,{"id":"t2"}]`

	_, err := DecodeTasks([]byte(payload))

	var desErr *DeserializationError
	if !errors.As(err, &desErr) {
		t.Fatalf("expected DeserializationError, got %v", err)
	}
	if desErr.Target != "[]Task" {
		t.Errorf("expected target []Task, got %q", desErr.Target)
	}
	if !strings.Contains(err.Error(), "element 1") {
		t.Errorf("expected element index in message, got %q", err.Error())
	}
}

func TestDecodeRound_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{
			name:    "missing canChooseType",
			payload: `{"id":"r1","startTimestamp":"2026-01-01T00:00:00Z","endTimestamp":"2026-02-01T00:00:00Z"}`,
			wantMsg: `"canChooseType"`,
		},
		{
			name:    "missing startTimestamp",
			payload: `{"id":"r1","endTimestamp":"2026-02-01T00:00:00Z","canChooseType":true}`,
			wantMsg: `"startTimestamp"`,
		},
		{
			name:    "timestamp wrong shape",
			payload: `{"id":"r1","startTimestamp":12345,"endTimestamp":"2026-02-01T00:00:00Z","canChooseType":true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRound([]byte(tt.payload))

			var desErr *DeserializationError
			if !errors.As(err, &desErr) {
				t.Fatalf("expected DeserializationError, got %v", err)
			}
			if desErr.Target != "Round" {
				t.Errorf("expected target Round, got %q", desErr.Target)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected message to contain %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestDecodeChallenge_Failures(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{
			name:    "missing rounds",
			payload: `{"id":"course","title":null,"description":null}`,
			wantMsg: `"rounds"`,
		},
		{
			name:    "invalid nested round",
			payload: `{"id":"course","title":null,"description":null,"rounds":[{"id":"r1"}]}`,
			wantMsg: "rounds[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeChallenge([]byte(tt.payload))

			var desErr *DeserializationError
			if !errors.As(err, &desErr) {
				t.Fatalf("expected DeserializationError, got %v", err)
			}
			if desErr.Target != "Challenge" {
				t.Errorf("expected target Challenge, got %q", desErr.Target)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected message to contain %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}
