package model

import "time"

// LookupEvent is published after every lookup, successful or not.
type LookupEvent struct {
	RequestID  string    `json:"request_id"`
	Identifier string    `json:"identifier"`
	Outcome    string    `json:"outcome"` // ok | failed
	Kind       string    `json:"kind,omitempty"`
	At         time.Time `json:"at"`
}
