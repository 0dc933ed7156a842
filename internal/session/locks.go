package session

import (
	"sync"

	"github.com/mcoot/numbergamble-go/internal/model"
)

// gameLocks serializes mutations per game so concurrent requests
// against the same game see a consistent read-modify-write cycle.
// Locks are never released from the map; games are append-only and
// the per-game footprint is one mutex.
type gameLocks struct {
	mu    sync.Mutex
	locks map[model.GameID]*sync.Mutex
}

func newGameLocks() *gameLocks {
	return &gameLocks{locks: make(map[model.GameID]*sync.Mutex)}
}

// acquire locks the mutex for the given game and returns the unlock
func (l *gameLocks) acquire(id model.GameID) func() {
	l.mu.Lock()
	lock, ok := l.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[id] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
