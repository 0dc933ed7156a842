package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/numbergamble-go/internal/model"
	"github.com/mcoot/numbergamble-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	lastGameID model.GameID
	games      map[model.GameID]*model.Game
	pots       map[model.GameID]*model.PotRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.GameID]*model.Game),
		pots:  make(map[model.GameID]*model.PotRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) NextGameID(ctx context.Context) (model.GameID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastGameID++
	return s.lastGameID, nil
}

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = cloneGame(game)
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return cloneGame(game), nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.Game, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, cloneGame(g))
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games, nil
}

func (s *Storage) GameCount(ctx context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(s.lastGameID), nil
}

// Pot operations

func (s *Storage) SavePot(ctx context.Context, pot *model.PotRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pots[pot.GameID] = clonePot(pot)
	return nil
}

func (s *Storage) GetPot(ctx context.Context, id model.GameID) (*model.PotRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pot, ok := s.pots[id]
	if !ok {
		return nil, model.ErrPotNotFound
	}
	return clonePot(pot), nil
}

// The Redis backend round-trips records through JSON, so callers never
// share memory with the store. These copies give the memory backend
// the same isolation: mutating a returned record cannot corrupt the
// stored one, and readers never alias a record a writer is mutating.

func cloneGame(g *model.Game) *model.Game {
	out := *g
	out.Players = make([]model.AccountID, len(g.Players))
	copy(out.Players, g.Players)
	out.Records = make(map[model.AccountID]*model.PlayerRecord, len(g.Records))
	for account, record := range g.Records {
		r := *record
		out.Records[account] = &r
	}
	return &out
}

func clonePot(p *model.PotRecord) *model.PotRecord {
	out := *p
	out.Contributions = make([]model.Contribution, len(p.Contributions))
	copy(out.Contributions, p.Contributions)
	return &out
}
