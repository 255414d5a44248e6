package arena

import (
	"encoding/json"
	"fmt"
	"time"
)

// Encode serializes a domain value to its JSON wire form: camelCase keys,
// status as ordinal, null for absent optional fields.
func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", v, err)
	}
	return data, nil
}

// DecodeTask decodes a single task wire object.
func DecodeTask(data []byte) (*Task, error) {
	var w taskWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, newDeserializationError(data, "Task", err)
	}
	task, err := w.toDomain()
	if err != nil {
		return nil, newDeserializationError(data, "Task", err)
	}
	return task, nil
}

// DecodeTasks decodes an ordered list of task wire objects.
func DecodeTasks(data []byte) ([]*Task, error) {
	var ws []taskWire
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, newDeserializationError(data, "[]Task", err)
	}
	tasks := make([]*Task, 0, len(ws))
	for i, w := range ws {
		task, err := w.toDomain()
		if err != nil {
			return nil, newDeserializationError(data, "[]Task", fmt.Errorf("element %d: %w", i, err))
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// DecodeRound decodes a single round wire object.
func DecodeRound(data []byte) (*Round, error) {
	var w roundWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, newDeserializationError(data, "Round", err)
	}
	round, err := w.toDomain()
	if err != nil {
		return nil, newDeserializationError(data, "Round", err)
	}
	return round, nil
}

// DecodeChallenge decodes a challenge wire object including its rounds.
func DecodeChallenge(data []byte) (*Challenge, error) {
	var w challengeWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, newDeserializationError(data, "Challenge", err)
	}
	challenge, err := w.toDomain()
	if err != nil {
		return nil, newDeserializationError(data, "Challenge", err)
	}
	return challenge, nil
}

// Wire mirrors of the domain types. Every field is a pointer so that missing
// required keys are detected explicitly instead of silently zeroing.

type taskWire struct {
	ID         *string `json:"id"`
	TypeID     *string `json:"typeId"`
	Question   *string `json:"question"`
	UserHint   *string `json:"userHint"`
	TeamAnswer *string `json:"teamAnswer"`
	Status     *int    `json:"status"`
	Points     *int    `json:"points"`
	Cost       *int    `json:"cost"`
}

func (w taskWire) toDomain() (*Task, error) {
	id, err := reqString("id", w.ID)
	if err != nil {
		return nil, err
	}
	typeID, err := reqString("typeId", w.TypeID)
	if err != nil {
		return nil, err
	}
	question, err := reqString("question", w.Question)
	if err != nil {
		return nil, err
	}
	rawStatus, err := reqInt("status", w.Status)
	if err != nil {
		return nil, err
	}
	status := TaskStatus(rawStatus)
	if !status.IsValid() {
		return nil, fmt.Errorf("field %q: value %d out of range", "status", rawStatus)
	}
	points, err := reqInt("points", w.Points)
	if err != nil {
		return nil, err
	}
	cost, err := reqInt("cost", w.Cost)
	if err != nil {
		return nil, err
	}

	return &Task{
		ID:         id,
		TypeID:     typeID,
		Question:   question,
		UserHint:   w.UserHint,
		TeamAnswer: w.TeamAnswer,
		Status:     status,
		Points:     points,
		Cost:       cost,
	}, nil
}

type roundWire struct {
	ID             *string    `json:"id"`
	StartTimestamp *time.Time `json:"startTimestamp"`
	EndTimestamp   *time.Time `json:"endTimestamp"`
	CanChooseType  *bool      `json:"canChooseType"`
}

func (w roundWire) toDomain() (*Round, error) {
	id, err := reqString("id", w.ID)
	if err != nil {
		return nil, err
	}
	if w.StartTimestamp == nil {
		return nil, missingField("startTimestamp")
	}
	if w.EndTimestamp == nil {
		return nil, missingField("endTimestamp")
	}
	if w.CanChooseType == nil {
		return nil, missingField("canChooseType")
	}

	return &Round{
		ID:             id,
		StartTimestamp: *w.StartTimestamp,
		EndTimestamp:   *w.EndTimestamp,
		CanChooseType:  *w.CanChooseType,
	}, nil
}

type challengeWire struct {
	ID          *string      `json:"id"`
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Rounds      *[]roundWire `json:"rounds"`
}

func (w challengeWire) toDomain() (*Challenge, error) {
	id, err := reqString("id", w.ID)
	if err != nil {
		return nil, err
	}
	if w.Rounds == nil {
		return nil, missingField("rounds")
	}

	rounds := make([]Round, 0, len(*w.Rounds))
	for i, rw := range *w.Rounds {
		round, err := rw.toDomain()
		if err != nil {
			return nil, fmt.Errorf("rounds[%d]: %w", i, err)
		}
		rounds = append(rounds, *round)
	}

	return &Challenge{
		ID:          id,
		Title:       w.Title,
		Description: w.Description,
		Rounds:      rounds,
	}, nil
}

func reqString(field string, v *string) (string, error) {
	if v == nil {
		return "", missingField(field)
	}
	return *v, nil
}

func reqInt(field string, v *int) (int, error) {
	if v == nil {
		return 0, missingField(field)
	}
	return *v, nil
}

func missingField(field string) error {
	return fmt.Errorf("missing required field %q", field)
}
