package ledger

import (
	"context"
	"errors"
	"log/slog"

	"github.com/divin-k/guessquest/internal/dependencies/clock"
	"github.com/divin-k/guessquest/internal/model"
	"github.com/divin-k/guessquest/internal/storage"
)

// ErrInvalidAttempts is returned for attempt counts below 1
var ErrInvalidAttempts = errors.New("attempts must be at least 1")

// DisplayLimit is how many entries each leaderboard shows
const DisplayLimit = 3

// Service manages per-(player, level) best-attempt records
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new ledger Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// LevelBoard is the ranking for a single level
type LevelBoard struct {
	Level   model.Level
	Records []*model.ScoreRecord
}

// RecordIfBetter submits attempts as a candidate best score for the
// (player, level) pair. The stored record only changes when the candidate
// is strictly better; the achieved-at timestamp is refreshed on change.
// Returns whether the record changed.
func (s *Service) RecordIfBetter(ctx context.Context, playerName string, level model.Level, attempts int) (bool, error) {
	if attempts < 1 {
		return false, ErrInvalidAttempts
	}

	record := &model.ScoreRecord{
		PlayerName: playerName,
		Level:      level,
		Attempts:   attempts,
		AchievedAt: s.clock.Now(),
	}

	updated, err := s.storage.UpsertScoreIfBetter(ctx, record)
	if err != nil {
		s.logger.Error("failed to record score",
			slog.String("player", playerName),
			slog.String("level", string(level)),
			slog.String("error", err.Error()),
		)
		return false, err
	}

	if updated {
		s.logger.Info("best score recorded",
			slog.String("player", playerName),
			slog.String("level", string(level)),
			slog.Int("attempts", attempts),
		)
	} else {
		s.logger.Info("existing best score kept",
			slog.String("player", playerName),
			slog.String("level", string(level)),
			slog.Int("attempts", attempts),
		)
	}
	return updated, nil
}

// TopN returns up to n records for the level, best first (fewest attempts,
// earlier achievement breaking ties)
func (s *Service) TopN(ctx context.Context, level model.Level, n int) ([]*model.ScoreRecord, error) {
	return s.storage.TopScores(ctx, level, n)
}

// AllLevels returns the top-n board for every level in fixed display
// order: Easy, Medium, Hard
func (s *Service) AllLevels(ctx context.Context, n int) ([]LevelBoard, error) {
	boards := make([]LevelBoard, 0, len(model.Levels()))
	for _, level := range model.Levels() {
		records, err := s.TopN(ctx, level, n)
		if err != nil {
			return nil, err
		}
		boards = append(boards, LevelBoard{Level: level, Records: records})
	}
	return boards, nil
}
