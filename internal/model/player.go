package model

import "time"

// Decision is a member's choice after seeing their handles
type Decision string

const (
	DecisionUndecided  Decision = "undecided"
	DecisionContinuing Decision = "continuing"
	DecisionFolded     Decision = "folded"
)

// HandleCount is the number of private rolls issued per member
const HandleCount = 3

// PlayerRecord tracks one member's state within a game
type PlayerRecord struct {
	Decision Decision

	// Handles are issued exactly once, at the start transition.
	// All-zero handles mean the game has not started.
	Handles [HandleCount]Handle

	JoinedAt  time.Time
	DecidedAt time.Time
}

// NewPlayerRecord creates an undecided record for a freshly seated player
func NewPlayerRecord(now time.Time) *PlayerRecord {
	return &PlayerRecord{
		Decision: DecisionUndecided,
		JoinedAt: now,
	}
}

// Decided returns true once the member has made their choice
func (r *PlayerRecord) Decided() bool {
	return r.Decision != DecisionUndecided
}
