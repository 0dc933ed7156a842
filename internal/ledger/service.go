package ledger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/numbergamble-go/internal/dependencies/clock"
	"github.com/mcoot/numbergamble-go/internal/model"
	"github.com/mcoot/numbergamble-go/internal/settlement"
	"github.com/mcoot/numbergamble-go/internal/storage"
)

// Service is the fee ledger: it validates and accumulates payments
// into per-game pots, and authorizes the payout exactly once per game.
// All value movement goes through the settlement primitive; the pot
// itself sits in the treasury account until payout.
type Service struct {
	storage    storage.Storage
	settlement settlement.Settlement
	treasury   model.AccountID
	clock      clock.Clock
	logger     *slog.Logger
}

// New creates a new ledger Service
func New(
	store storage.Storage,
	settle settlement.Settlement,
	treasury model.AccountID,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage:    store,
		settlement: settle,
		treasury:   treasury,
		clock:      clk,
		logger:     logger,
	}
}

// Collect validates a fee payment and accumulates it into the game's
// pot with payer attribution. The caller states the expected fee;
// anything else is rejected before any value moves.
func (s *Service) Collect(
	ctx context.Context,
	gameID model.GameID,
	payer model.AccountID,
	amount, expected uint64,
	kind model.ContributionKind,
) error {
	if amount != expected {
		return model.ErrWrongAmount
	}

	if err := s.settlement.Transfer(ctx, payer, s.treasury, amount); err != nil {
		return err
	}

	pot, err := s.storage.GetPot(ctx, gameID)
	if err != nil {
		if !errors.Is(err, model.ErrPotNotFound) {
			return err
		}
		pot = &model.PotRecord{GameID: gameID}
	}

	now := s.clock.Now()
	pot.Amount += amount
	pot.Collected += amount
	pot.Contributions = append(pot.Contributions, model.Contribution{
		Payer:  payer,
		Amount: amount,
		Kind:   kind,
		At:     now,
	})
	pot.UpdatedAt = now

	if err := s.storage.SavePot(ctx, pot); err != nil {
		return err
	}

	s.logger.Info("fee collected",
		slog.Uint64("game_id", uint64(gameID)),
		slog.String("payer", string(payer)),
		slog.Uint64("amount", amount),
		slog.String("kind", string(kind)),
		slog.Uint64("pot", pot.Amount),
	)

	return nil
}

// Payout transfers the entire pot to the recipient and zeroes it.
// It executes at most once per game: the underlying transfer is
// irreversible, so a second payout attempt always fails.
func (s *Service) Payout(ctx context.Context, gameID model.GameID, recipient model.AccountID) (uint64, error) {
	pot, err := s.storage.GetPot(ctx, gameID)
	if err != nil {
		if errors.Is(err, model.ErrPotNotFound) {
			return 0, model.ErrAlreadyPaid
		}
		return 0, err
	}

	if pot.Paid || pot.Amount == 0 {
		return 0, model.ErrAlreadyPaid
	}

	amount := pot.Amount
	if err := s.settlement.Transfer(ctx, s.treasury, recipient, amount); err != nil {
		return 0, err
	}

	now := s.clock.Now()
	pot.Amount = 0
	pot.Paid = true
	pot.PaidTo = recipient
	pot.PaidAt = now
	pot.UpdatedAt = now

	if err := s.storage.SavePot(ctx, pot); err != nil {
		return 0, err
	}

	s.logger.Info("pot paid out",
		slog.Uint64("game_id", uint64(gameID)),
		slog.String("recipient", string(recipient)),
		slog.Uint64("amount", amount),
	)

	return amount, nil
}

// Pot returns the game's current pot value
func (s *Service) Pot(ctx context.Context, gameID model.GameID) (uint64, error) {
	pot, err := s.storage.GetPot(ctx, gameID)
	if err != nil {
		if errors.Is(err, model.ErrPotNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return pot.Amount, nil
}

// Record returns the game's full pot record
func (s *Service) Record(ctx context.Context, gameID model.GameID) (*model.PotRecord, error) {
	return s.storage.GetPot(ctx, gameID)
}
