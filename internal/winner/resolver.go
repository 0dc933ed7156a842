package winner

import (
	"github.com/mcoot/numbergamble-go/internal/fairness"
	"github.com/mcoot/numbergamble-go/internal/model"
)

// Resolver determines a game's winner from its seed and the set of
// continuing players.
type Resolver struct {
	engine *fairness.Engine
}

// New creates a new Resolver
func New(engine *fairness.Engine) *Resolver {
	return &Resolver{engine: engine}
}

// Result is the outcome of resolving a game
type Result struct {
	Winner model.AccountID
	Score  int
	Scores map[model.AccountID]int
}

// Resolve scores every continuing player and picks the winner:
// highest score wins, and ties go to the lexicographically lowest
// account id. Returns ErrNoContinuers when no player continued.
func (r *Resolver) Resolve(game *model.Game) (*Result, error) {
	continuing := game.Continuing()
	if len(continuing) == 0 {
		return nil, model.ErrNoContinuers
	}

	result := &Result{
		Scores: make(map[model.AccountID]int, len(continuing)),
	}
	for _, player := range continuing {
		score := r.engine.Score(game.Seed, player)
		result.Scores[player] = score

		switch {
		case result.Winner == "":
			result.Winner = player
			result.Score = score
		case score > result.Score:
			result.Winner = player
			result.Score = score
		case score == result.Score && player < result.Winner:
			result.Winner = player
		}
	}

	return result, nil
}
