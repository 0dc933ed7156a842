package registry

import (
	"context"

	"github.com/mcoot/numbergamble-go/internal/dependencies/clock"
	"github.com/mcoot/numbergamble-go/internal/events"
	"github.com/mcoot/numbergamble-go/internal/model"
	"github.com/mcoot/numbergamble-go/internal/storage"
)

// Controller manages game creation and lookup. Game ids are
// sequential and never reused; finished games stay listed forever.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	events  events.Publisher
}

// NewController creates a new registry Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	publisher events.Publisher,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		events:  publisher,
	}
}

// CreateGame registers a new game in the waiting state. Creation is
// free and does not seat the creator; they pay the join fee for a
// seat like anyone else.
func (c *Controller) CreateGame(ctx context.Context, creator model.AccountID, capacity int) (*model.Game, error) {
	if capacity < model.MinCapacity || capacity > model.MaxCapacity {
		return nil, model.ErrInvalidCapacity
	}

	id, err := c.storage.NextGameID(ctx)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:        id,
		Creator:   creator,
		Capacity:  capacity,
		State:     model.GameStateWaiting,
		Records:   make(map[model.AccountID]*model.PlayerRecord),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.events.Publish(model.Event{
		Type:      model.EventGameCreated,
		Timestamp: now,
		GameID:    game.ID,
		Account:   creator,
		Payload: model.GameCreatedPayload{
			Creator:  creator,
			Capacity: capacity,
		},
	})

	return game, nil
}

// GetGame retrieves a game by id
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, id)
}

// ListGames returns all games ever created, ordered by id
func (c *Controller) ListGames(ctx context.Context) ([]*model.Game, error) {
	return c.storage.ListGames(ctx)
}

// GameCount returns the number of games ever created
func (c *Controller) GameCount(ctx context.Context) (uint64, error) {
	return c.storage.GameCount(ctx)
}
