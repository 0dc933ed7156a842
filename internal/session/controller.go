package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/numbergamble-go/internal/dependencies/clock"
	"github.com/mcoot/numbergamble-go/internal/dependencies/random"
	"github.com/mcoot/numbergamble-go/internal/events"
	"github.com/mcoot/numbergamble-go/internal/fairness"
	"github.com/mcoot/numbergamble-go/internal/ledger"
	"github.com/mcoot/numbergamble-go/internal/model"
	"github.com/mcoot/numbergamble-go/internal/storage"
	"github.com/mcoot/numbergamble-go/internal/winner"
)

// Config holds session policy settings
type Config struct {
	// RefundOnNoContinuers pays the pot back to the creator when every
	// player folds, finishing the game without a winner. When false,
	// resolving an all-fold game fails and the game stays ready.
	RefundOnNoContinuers bool
}

// Controller manages the game state machine: seating, the seed draw,
// continue/fold decisions, and resolution. All mutations of a game
// are serialized through a per-game lock.
type Controller struct {
	storage  storage.Storage
	ledger   *ledger.Service
	fairness *fairness.Engine
	resolver *winner.Resolver
	clock    clock.Clock
	random   random.Random
	events   events.Publisher
	config   Config
	locks    *gameLocks
	logger   *slog.Logger
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	ledgerService *ledger.Service,
	fairnessEngine *fairness.Engine,
	resolver *winner.Resolver,
	clock clock.Clock,
	random random.Random,
	publisher events.Publisher,
	config Config,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		ledger:   ledgerService,
		fairness: fairnessEngine,
		resolver: resolver,
		clock:    clock,
		random:   random,
		events:   publisher,
		config:   config,
		locks:    newGameLocks(),
		logger:   logger,
	}
}

// Join seats a player in a waiting game. The player pays the join fee
// up front; the fee is validated and collected before the seat is
// granted, and nothing is charged on a rejected join.
func (c *Controller) Join(ctx context.Context, gameID model.GameID, player model.AccountID, amount uint64) (*model.Game, error) {
	unlock := c.locks.acquire(gameID)
	defer unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.State != model.GameStateWaiting {
		return nil, model.ErrNotWaiting
	}
	if game.IsMember(player) {
		return nil, model.ErrAlreadyMember
	}
	if game.IsFull() {
		return nil, model.ErrGameFull
	}

	if err := c.ledger.Collect(ctx, gameID, player, amount, model.JoinFee, model.ContributionJoin); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game.Players = append(game.Players, player)
	game.Records[player] = model.NewPlayerRecord(now)
	game.Pot += amount
	game.UpdatedAt = now

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("player joined",
		slog.Uint64("game_id", uint64(gameID)),
		slog.String("player", string(player)),
		slog.Int("seated", len(game.Players)),
		slog.Int("capacity", game.Capacity),
	)

	c.events.Publish(model.Event{
		Type:      model.EventPlayerJoined,
		Timestamp: now,
		GameID:    gameID,
		Account:   player,
		Payload: model.PlayerJoinedPayload{
			Player:  player,
			Seated:  len(game.Players),
			OfSeats: game.Capacity,
		},
	})

	return game, nil
}

// Start draws the seed and moves a full game into the started state.
// Only the creator may start, and only once every seat is taken. The
// seed fixes every player's rolls; each player's sealed handles are
// derived and recorded at the same moment.
func (c *Controller) Start(ctx context.Context, gameID model.GameID, caller model.AccountID) (*model.Game, error) {
	unlock := c.locks.acquire(gameID)
	defer unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.State != model.GameStateWaiting {
		return nil, model.ErrNotWaiting
	}
	if game.Creator != caller {
		return nil, model.ErrNotCreator
	}
	if !game.IsFull() {
		return nil, model.ErrNotFull
	}

	seedBytes, err := c.random.Bytes(model.SeedLength)
	if err != nil {
		return nil, err
	}
	seed, err := model.SeedFromBytes(seedBytes)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game.Seed = seed
	game.State = model.GameStateStarted
	game.UpdatedAt = now
	for _, player := range game.Players {
		game.Records[player].Handles = c.fairness.Handles(seed, player)
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game started",
		slog.Uint64("game_id", uint64(gameID)),
		slog.Int("players", len(game.Players)),
	)

	c.events.Publish(model.Event{
		Type:      model.EventGameStarted,
		Timestamp: now,
		GameID:    gameID,
		Account:   caller,
		Payload: model.GameStartedPayload{
			Players: game.Players,
		},
	})

	return game, nil
}

// Continue records a member's decision to stay in for the resolution.
// The continue fee is paid with the decision and joins the pot.
func (c *Controller) Continue(ctx context.Context, gameID model.GameID, player model.AccountID, amount uint64) (*model.Game, error) {
	return c.decide(ctx, gameID, player, model.DecisionContinuing, amount)
}

// Fold records a member's decision to forfeit their stake. Folding is
// free; any payment sent with a fold is rejected.
func (c *Controller) Fold(ctx context.Context, gameID model.GameID, player model.AccountID, amount uint64) (*model.Game, error) {
	return c.decide(ctx, gameID, player, model.DecisionFolded, amount)
}

func (c *Controller) decide(ctx context.Context, gameID model.GameID, player model.AccountID, decision model.Decision, amount uint64) (*model.Game, error) {
	unlock := c.locks.acquire(gameID)
	defer unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.State != model.GameStateStarted {
		return nil, model.ErrNotStarted
	}
	record, ok := game.Records[player]
	if !ok {
		return nil, model.ErrNotMember
	}
	if record.Decided() {
		return nil, model.ErrAlreadyDecided
	}

	if decision == model.DecisionContinuing {
		if err := c.ledger.Collect(ctx, gameID, player, amount, model.ContinueFee, model.ContributionContinue); err != nil {
			return nil, err
		}
		game.Pot += amount
	} else if amount != 0 {
		return nil, model.ErrUnexpectedPayment
	}

	now := c.clock.Now()
	record.Decision = decision
	record.DecidedAt = now
	game.UpdatedAt = now

	undecided := game.UndecidedCount()
	if undecided == 0 {
		game.State = model.GameStateReady
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("player decided",
		slog.Uint64("game_id", uint64(gameID)),
		slog.String("player", string(player)),
		slog.String("decision", string(decision)),
		slog.Int("undecided", undecided),
	)

	eventType := model.EventPlayerContinued
	if decision == model.DecisionFolded {
		eventType = model.EventPlayerFolded
	}
	c.events.Publish(model.Event{
		Type:      eventType,
		Timestamp: now,
		GameID:    gameID,
		Account:   player,
		Payload: model.DecisionPayload{
			Player:    player,
			Undecided: undecided,
		},
	})
	if undecided == 0 {
		c.events.Publish(model.Event{
			Type:      model.EventReadyToResolve,
			Timestamp: now,
			GameID:    gameID,
		})
	}

	return game, nil
}

// Resolve scores the continuing players, pays the whole pot to the
// winner, and finishes the game. Only the creator may resolve. When
// every player folded, the pot goes back to the creator if the refund
// policy is enabled; otherwise the call fails and the game stays
// ready.
func (c *Controller) Resolve(ctx context.Context, gameID model.GameID, caller model.AccountID) (*model.Game, error) {
	unlock := c.locks.acquire(gameID)
	defer unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.State != model.GameStateReady {
		return nil, model.ErrNotReady
	}
	if game.Creator != caller {
		return nil, model.ErrNotCreator
	}

	result, err := c.resolver.Resolve(game)
	if err != nil {
		if errors.Is(err, model.ErrNoContinuers) && c.config.RefundOnNoContinuers {
			return c.refund(ctx, game)
		}
		return nil, err
	}

	paid, err := c.ledger.Payout(ctx, gameID, result.Winner)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game.Winner = result.Winner
	game.State = model.GameStateFinished
	game.Pot = 0
	game.UpdatedAt = now

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game finished",
		slog.Uint64("game_id", uint64(gameID)),
		slog.String("winner", string(result.Winner)),
		slog.Int("score", result.Score),
		slog.Uint64("pot", paid),
	)

	c.events.Publish(model.Event{
		Type:      model.EventGameFinished,
		Timestamp: now,
		GameID:    gameID,
		Account:   result.Winner,
		Payload: model.GameFinishedPayload{
			Winner: result.Winner,
			Pot:    paid,
		},
	})

	return game, nil
}

func (c *Controller) refund(ctx context.Context, game *model.Game) (*model.Game, error) {
	paid, err := c.ledger.Payout(ctx, game.ID, game.Creator)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game.State = model.GameStateFinished
	game.Pot = 0
	game.UpdatedAt = now

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game refunded",
		slog.Uint64("game_id", uint64(game.ID)),
		slog.String("creator", string(game.Creator)),
		slog.Uint64("pot", paid),
	)

	c.events.Publish(model.Event{
		Type:      model.EventGameFinished,
		Timestamp: now,
		GameID:    game.ID,
		Payload: model.GameFinishedPayload{
			Pot:      paid,
			Refunded: true,
		},
	})

	return game, nil
}

// Handles returns a member's sealed handles. They exist from the
// moment the game starts; the handles commit to the player's rolls
// without revealing them.
func (c *Controller) Handles(ctx context.Context, gameID model.GameID, player model.AccountID) ([model.HandleCount]model.Handle, error) {
	var zero [model.HandleCount]model.Handle

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return zero, err
	}
	if game.State == model.GameStateWaiting {
		return zero, model.ErrNotStarted
	}
	record, ok := game.Records[player]
	if !ok {
		return zero, model.ErrNotMember
	}
	return record.Handles, nil
}

// PlayerRolls holds a player's revealed rolls and score
type PlayerRolls struct {
	Player model.AccountID
	Rolls  [model.HandleCount]int
	Score  int
}

// Rolls reveals the continuing players' rolls and scores. Rolls stay
// hidden until the game has finished.
func (c *Controller) Rolls(ctx context.Context, gameID model.GameID) ([]PlayerRolls, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.State != model.GameStateFinished {
		return nil, model.ErrNotFinished
	}

	continuing := game.Continuing()
	out := make([]PlayerRolls, 0, len(continuing))
	for _, player := range continuing {
		rolls := PlayerRolls{Player: player}
		for slot := 0; slot < model.HandleCount; slot++ {
			rolls.Rolls[slot] = c.fairness.Roll(game.Seed, player, slot)
		}
		rolls.Score = c.fairness.Score(game.Seed, player)
		out = append(out, rolls)
	}
	return out, nil
}
