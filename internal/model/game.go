package model

import "time"

// GameID uniquely identifies a game. IDs are sequential, starting at 1.
type GameID uint64

// GameState represents the current phase of a game
type GameState string

const (
	GameStateWaiting  GameState = "waiting"  // Collecting players
	GameStateStarted  GameState = "started"  // Seed drawn, players deciding
	GameStateReady    GameState = "ready"    // Everyone decided, awaiting resolution
	GameStateFinished GameState = "finished" // Pot paid out, terminal
)

// Capacity bounds for a game's seat count
const (
	MinCapacity = 2
	MaxCapacity = 5
)

// Fee amounts in wei. Creating a game is free; joining and continuing
// each cost a flat fee that accumulates into the pot.
const (
	JoinFee     uint64 = 100_000_000_000_000 // 0.0001 ETH
	ContinueFee uint64 = 100_000_000_000_000 // 0.0001 ETH
)

// Game represents a single wagering session
type Game struct {
	ID       GameID
	Creator  AccountID
	Capacity int
	State    GameState

	// Pot is the accumulated fee total, mirrored from the ledger
	Pot uint64

	// Seed is drawn exactly once, at start, and is immutable after
	Seed Seed

	// Winner is unset until the game finishes
	Winner AccountID

	// Players in join order; no duplicates, never longer than Capacity
	Players []AccountID

	// Records holds the per-member decision and issued handles
	Records map[AccountID]*PlayerRecord

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsMember returns true if the account holds a seat in this game
func (g *Game) IsMember(account AccountID) bool {
	for _, p := range g.Players {
		if p == account {
			return true
		}
	}
	return false
}

// IsFull returns true if every seat is taken
func (g *Game) IsFull() bool {
	return len(g.Players) >= g.Capacity
}

// UndecidedCount returns the number of members yet to decide
func (g *Game) UndecidedCount() int {
	count := 0
	for _, p := range g.Players {
		if rec, ok := g.Records[p]; ok && rec.Decision == DecisionUndecided {
			count++
		}
	}
	return count
}

// Continuing returns the members who chose to continue, in join order
func (g *Game) Continuing() []AccountID {
	var continuing []AccountID
	for _, p := range g.Players {
		if rec, ok := g.Records[p]; ok && rec.Decision == DecisionContinuing {
			continuing = append(continuing, p)
		}
	}
	return continuing
}
