package redis

import (
	"fmt"

	"github.com/divin-k/guessquest/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "guessquest"

// playerKey returns the Redis key for a Player. Usernames are unique, so
// they double as the player's storage identity.
func playerKey(username string) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, username)
}

// scoresKey returns the Redis key for the per-level ZSET of best scores,
// scored by attempt count
func scoresKey(level model.Level) string {
	return fmt.Sprintf("%s:scores:%s", keyPrefix, level)
}

// achievedAtKey returns the Redis key for the per-level HASH of
// achieved-at timestamps (unix nanoseconds), used as the ranking tie-break
func achievedAtKey(level model.Level) string {
	return fmt.Sprintf("%s:scores:%s:achieved_at", keyPrefix, level)
}
