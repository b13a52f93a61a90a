package redis

import (
	"fmt"

	"github.com/qubicgame/qubic/internal/model"
)

// Key prefix for all engine data
const keyPrefix = "qubic"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the SET of all game ids
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}
