package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventGameCreated     EventType = "game_created"
	EventPlayerJoined    EventType = "player_joined"
	EventGameStarted     EventType = "game_started"
	EventPlayerContinued EventType = "player_continued"
	EventPlayerFolded    EventType = "player_folded"
	EventReadyToResolve  EventType = "ready_to_resolve"
	EventGameFinished    EventType = "game_finished"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	GameID    GameID    `json:"game_id"`
	Account   AccountID `json:"account,omitempty"` // The player who triggered or is affected
	Payload   any       `json:"payload,omitempty"` // Type-specific data
}

// GameCreatedPayload contains data for game created events
type GameCreatedPayload struct {
	Creator  AccountID `json:"creator"`
	Capacity int       `json:"capacity"`
}

// PlayerJoinedPayload contains data for player joined events
type PlayerJoinedPayload struct {
	Player  AccountID `json:"player"`
	Seated  int       `json:"seated"`
	OfSeats int       `json:"of_seats"`
}

// GameStartedPayload contains data for game started events
type GameStartedPayload struct {
	Players []AccountID `json:"players"`
}

// DecisionPayload contains data for continued/folded events
type DecisionPayload struct {
	Player    AccountID `json:"player"`
	Undecided int       `json:"undecided"`
}

// GameFinishedPayload contains data for game finished events
type GameFinishedPayload struct {
	Winner AccountID `json:"winner,omitempty"`
	Pot    uint64    `json:"pot"`

	// Refunded is true when the pot went back to the creator because
	// nobody continued
	Refunded bool `json:"refunded,omitempty"`
}
