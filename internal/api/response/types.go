package response

import (
	"time"

	"github.com/mcoot/numbergamble-go/internal/model"
	"github.com/mcoot/numbergamble-go/internal/session"
)

// PlayerRecord represents a member's state in API responses
type PlayerRecord struct {
	Account  string    `json:"account"`
	Decision string    `json:"decision"`
	JoinedAt time.Time `json:"joined_at"`
}

// PlayerRecordFromModel converts a member's record to a response PlayerRecord
func PlayerRecordFromModel(account model.AccountID, r *model.PlayerRecord) PlayerRecord {
	return PlayerRecord{
		Account:  string(account),
		Decision: string(r.Decision),
		JoinedAt: r.JoinedAt,
	}
}

// PlayerRolls represents a continuing player's revealed rolls
type PlayerRolls struct {
	Account string `json:"account"`
	Rolls   []int  `json:"rolls"`
	Score   int    `json:"score"`
}

// Game represents a game in API responses. The seed and per-player
// rolls are disclosed only once the game has finished, so holders can
// audit the outcome without rolls leaking mid-game.
type Game struct {
	ID        uint64         `json:"id"`
	Creator   string         `json:"creator"`
	Capacity  int            `json:"capacity"`
	State     string         `json:"state"`
	Pot       uint64         `json:"pot"`
	Players   []PlayerRecord `json:"players"`
	Winner    string         `json:"winner,omitempty"`
	Seed      string         `json:"seed,omitempty"`
	Rolls     []PlayerRolls  `json:"rolls,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// GameFromModel converts a model.Game to a response Game. Revealed
// rolls for a finished game are passed separately by the handler.
func GameFromModel(g *model.Game, revealed []session.PlayerRolls) Game {
	players := make([]PlayerRecord, 0, len(g.Players))
	for _, account := range g.Players {
		if record, ok := g.Records[account]; ok {
			players = append(players, PlayerRecordFromModel(account, record))
		}
	}

	resp := Game{
		ID:        uint64(g.ID),
		Creator:   string(g.Creator),
		Capacity:  g.Capacity,
		State:     string(g.State),
		Pot:       g.Pot,
		Players:   players,
		Winner:    string(g.Winner),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}

	if g.State == model.GameStateFinished {
		resp.Seed = g.Seed.String()
		for _, rolls := range revealed {
			slots := make([]int, len(rolls.Rolls))
			copy(slots, rolls.Rolls[:])
			resp.Rolls = append(resp.Rolls, PlayerRolls{
				Account: string(rolls.Player),
				Rolls:   slots,
				Score:   rolls.Score,
			})
		}
	}

	return resp
}

// GameList is the response for listing games
type GameList struct {
	Games []Game `json:"games"`
}

// GameCount is the response for the game count endpoint
type GameCount struct {
	Count uint64 `json:"count"`
}

// Handles is the response carrying a member's sealed handles
type Handles struct {
	Account string   `json:"account"`
	Handles []string `json:"handles"`
}

// HandlesFromModel builds a Handles response
func HandlesFromModel(account model.AccountID, handles [model.HandleCount]model.Handle) Handles {
	out := make([]string, 0, len(handles))
	for _, h := range handles {
		out = append(out, h.String())
	}
	return Handles{
		Account: string(account),
		Handles: out,
	}
}
