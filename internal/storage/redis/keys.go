package redis

import (
	"fmt"

	"github.com/mcoot/numbergamble-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "ngamble"

// Key generation functions for each entity type

// gameIDCounterKey returns the Redis key for the sequential ID counter.
// INCR on this key allocates the next GameID; its value is also the
// total game count.
func gameIDCounterKey() string {
	return fmt.Sprintf("%s:game_id", keyPrefix)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%d", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the SET of all game keys
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// potKey returns the Redis key for a PotRecord
func potKey(id model.GameID) string {
	return fmt.Sprintf("%s:pot:%d", keyPrefix, id)
}
