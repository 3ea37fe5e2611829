package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/divin-k/guessquest/internal/model"
	"github.com/divin-k/guessquest/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players map[string]*model.Player
	scores  map[scoreKey]*model.ScoreRecord
}

type scoreKey struct {
	playerName string
	level      model.Level
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[string]*model.Player),
		scores:  make(map[scoreKey]*model.ScoreRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.Username] = player
	return nil
}

func (s *Storage) GetPlayerByUsername(ctx context.Context, username string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[username]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

// Score operations

func (s *Storage) GetScore(ctx context.Context, playerName string, level model.Level) (*model.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.scores[scoreKey{playerName: playerName, level: level}]
	if !ok {
		return nil, model.ErrScoreNotFound
	}
	return record, nil
}

func (s *Storage) UpsertScoreIfBetter(ctx context.Context, record *model.ScoreRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := scoreKey{playerName: record.PlayerName, level: record.Level}
	if existing, ok := s.scores[key]; ok && !record.Better(existing) {
		return false, nil
	}
	s.scores[key] = record
	return true, nil
}

func (s *Storage) TopScores(ctx context.Context, level model.Level, limit int) ([]*model.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*model.ScoreRecord, 0)
	for key, record := range s.scores {
		if key.level == level {
			records = append(records, record)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Attempts != records[j].Attempts {
			return records[i].Attempts < records[j].Attempts
		}
		return records[i].AchievedAt.Before(records[j].AchievedAt)
	})

	if limit >= 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
