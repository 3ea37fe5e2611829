package storage

import (
	"context"

	"github.com/divin-k/guessquest/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayerByUsername(ctx context.Context, username string) (*model.Player, error)

	// Score operations
	GetScore(ctx context.Context, playerName string, level model.Level) (*model.ScoreRecord, error)

	// UpsertScoreIfBetter atomically creates the record for its
	// (PlayerName, Level) key, or replaces the stored record iff the new
	// Attempts is strictly lower. This compare-and-replace is the
	// transaction boundary that keeps one record per key, always the
	// best. Returns whether the stored record changed.
	UpsertScoreIfBetter(ctx context.Context, record *model.ScoreRecord) (bool, error)

	// TopScores returns up to limit records for the level, ascending by
	// Attempts with ties broken by earlier AchievedAt
	TopScores(ctx context.Context, level model.Level, limit int) ([]*model.ScoreRecord, error)
}
