package model

import "time"

// RosterEvent is published to the event bus after a successful roster
// mutation. EventID is a ULID so consumers can order and deduplicate.
type RosterEvent struct {
	EventID   string    `json:"event_id"`
	Action    string    `json:"action"`
	Activity  string    `json:"activity"`
	Email     string    `json:"email"`
	EmittedAt time.Time `json:"emitted_at"`
}
