package storage

import (
	"context"

	"github.com/mcoot/numbergamble-go/internal/model"
)

// Storage defines the interface for data persistence. Games and pots
// are append-only history: there are no delete operations, and a
// finished game stays readable forever.
type Storage interface {
	// Game operations
	NextGameID(ctx context.Context) (model.GameID, error)
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	GameCount(ctx context.Context) (uint64, error)

	// Pot operations
	SavePot(ctx context.Context, pot *model.PotRecord) error
	GetPot(ctx context.Context, id model.GameID) (*model.PotRecord, error)
}
