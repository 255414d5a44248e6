package arena

import "time"

// Interval bounds used for explicitly supplied rounds, which are treated as
// always active.
var (
	MinInstant = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	MaxInstant = time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC)
)

// Task is a unit of work handed out by the server. Instances are snapshots:
// every call returns a fresh value and the client never mutates one.
//
// UserHint and TeamAnswer are nullable on the wire and stay nil until the
// server populates them.
type Task struct {
	ID         string     `json:"id"`
	TypeID     string     `json:"typeId"`
	Question   string     `json:"question"`
	UserHint   *string    `json:"userHint"`
	TeamAnswer *string    `json:"teamAnswer"`
	Status     TaskStatus `json:"status"`
	Points     int        `json:"points"`
	Cost       int        `json:"cost"`
}

// Round is a time-bounded competition window scoping which tasks are visible
// and creatable. CanChooseType reports whether the team may pick the task
// type when fetching new tasks.
type Round struct {
	ID             string    `json:"id"`
	StartTimestamp time.Time `json:"startTimestamp"`
	EndTimestamp   time.Time `json:"endTimestamp"`
	CanChooseType  bool      `json:"canChooseType"`
}

// Contains reports whether t falls inside the round's [start, end] interval.
func (r Round) Contains(t time.Time) bool {
	return !t.Before(r.StartTimestamp) && !t.After(r.EndTimestamp)
}

// AlwaysActiveRound builds a round covering all instants with type choice
// allowed. Used when the caller supplies a round id directly.
func AlwaysActiveRound(id string) Round {
	return Round{
		ID:             id,
		StartTimestamp: MinInstant,
		EndTimestamp:   MaxInstant,
		CanChooseType:  true,
	}
}

// Challenge is a named competition containing an ordered list of rounds.
// Title and Description are nullable on the wire.
type Challenge struct {
	ID          string  `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Rounds      []Round `json:"rounds"`
}
