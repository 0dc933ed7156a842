package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/numbergamble-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestNextGameIDIsSequentialFromOne() {
	first, err := s.storage.NextGameID(s.ctx)
	s.Require().NoError(err)
	second, err := s.storage.NextGameID(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.GameID(1), first)
	s.Equal(model.GameID(2), second)
}

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{
		ID:       1,
		Creator:  "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Capacity: 3,
		State:    model.GameStateWaiting,
		Records:  make(map[model.AccountID]*model.PlayerRecord),
	}

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(game.Creator, retrieved.Creator)
	s.Equal(3, retrieved.Capacity)
}

func (s *StorageSuite) TestGetGameReturnsIsolatedCopies() {
	game := &model.Game{
		ID:       1,
		Creator:  "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Capacity: 3,
		State:    model.GameStateStarted,
		Players:  []model.AccountID{"0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"},
		Records: map[model.AccountID]*model.PlayerRecord{
			"0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb": {Decision: model.DecisionUndecided},
		},
	}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	// Mutating the caller's object after saving must not leak into the store
	game.State = model.GameStateFinished
	game.Players = append(game.Players, "0xcccccccccccccccccccccccccccccccccccccccc")
	game.Records["0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"].Decision = model.DecisionFolded

	retrieved, err := s.storage.GetGame(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(model.GameStateStarted, retrieved.State)
	s.Len(retrieved.Players, 1)
	s.Equal(model.DecisionUndecided, retrieved.Records["0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"].Decision)

	// Nor must mutating a retrieved copy affect later reads
	retrieved.Players = append(retrieved.Players, "0xdddddddddddddddddddddddddddddddddddddddd")
	retrieved.Records["0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"].Decision = model.DecisionContinuing

	again, err := s.storage.GetGame(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(again.Players, 1)
	s.Equal(model.DecisionUndecided, again.Records["0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"].Decision)
}

func (s *StorageSuite) TestGetPotReturnsIsolatedCopies() {
	pot := &model.PotRecord{
		GameID: 7,
		Amount: 200,
		Contributions: []model.Contribution{
			{Payer: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Amount: 200, Kind: model.ContributionJoin, At: time.Now()},
		},
	}
	s.Require().NoError(s.storage.SavePot(s.ctx, pot))

	pot.Amount = 0
	pot.Contributions[0].Amount = 0

	retrieved, err := s.storage.GetPot(s.ctx, 7)
	s.Require().NoError(err)
	s.Equal(uint64(200), retrieved.Amount)
	s.Equal(uint64(200), retrieved.Contributions[0].Amount)

	retrieved.Amount = 999

	again, err := s.storage.GetPot(s.ctx, 7)
	s.Require().NoError(err)
	s.Equal(uint64(200), again.Amount)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, 42)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestListGamesOrderedByID() {
	for _, id := range []model.GameID{3, 1, 2} {
		_ = s.storage.SaveGame(s.ctx, &model.Game{ID: id, State: model.GameStateWaiting})
	}

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 3)
	s.Equal(model.GameID(1), games[0].ID)
	s.Equal(model.GameID(2), games[1].ID)
	s.Equal(model.GameID(3), games[2].ID)
}

func (s *StorageSuite) TestGameCountTracksAllocatedIDs() {
	count, err := s.storage.GameCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(0), count)

	_, _ = s.storage.NextGameID(s.ctx)
	_, _ = s.storage.NextGameID(s.ctx)

	count, err = s.storage.GameCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(2), count)
}

func (s *StorageSuite) TestSaveAndGetPot() {
	pot := &model.PotRecord{
		GameID:    7,
		Amount:    200,
		Collected: 200,
		Contributions: []model.Contribution{
			{Payer: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Amount: 200, Kind: model.ContributionJoin, At: time.Now()},
		},
	}

	err := s.storage.SavePot(s.ctx, pot)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPot(s.ctx, 7)
	s.Require().NoError(err)
	s.Equal(uint64(200), retrieved.Amount)
	s.Len(retrieved.Contributions, 1)
}

func (s *StorageSuite) TestGetPotNotFound() {
	_, err := s.storage.GetPot(s.ctx, 9)
	s.ErrorIs(err, model.ErrPotNotFound)
}
