package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/divin-k/guessquest/internal/model"
	"github.com/divin-k/guessquest/internal/storage"
)

// upsertIfBetterScript performs the compare-and-replace-if-better upsert
// atomically on the server. KEYS[1] is the per-level scores ZSET, KEYS[2]
// the achieved-at HASH; ARGV is player, attempts, achieved-at (unix ns).
// Replaces only when no score exists or the new attempts is strictly lower.
var upsertIfBetterScript = redis.NewScript(`
local cur = redis.call('ZSCORE', KEYS[1], ARGV[1])
if cur and tonumber(cur) <= tonumber(ARGV[2]) then
  return 0
end
redis.call('ZADD', KEYS[1], ARGV[2], ARGV[1])
redis.call('HSET', KEYS[2], ARGV[1], ARGV[3])
return 1
`)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, playerKey(player.Username), data, 0).Err()
}

func (s *Storage) GetPlayerByUsername(ctx context.Context, username string) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// Score operations

func (s *Storage) GetScore(ctx context.Context, playerName string, level model.Level) (*model.ScoreRecord, error) {
	attempts, err := s.client.ZScore(ctx, scoresKey(level), playerName).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrScoreNotFound
		}
		return nil, err
	}

	achievedAt, err := s.achievedAt(ctx, level, playerName)
	if err != nil {
		return nil, err
	}

	return &model.ScoreRecord{
		PlayerName: playerName,
		Level:      level,
		Attempts:   int(attempts),
		AchievedAt: achievedAt,
	}, nil
}

func (s *Storage) UpsertScoreIfBetter(ctx context.Context, record *model.ScoreRecord) (bool, error) {
	keys := []string{scoresKey(record.Level), achievedAtKey(record.Level)}
	updated, err := upsertIfBetterScript.Run(ctx, s.client, keys,
		record.PlayerName,
		record.Attempts,
		record.AchievedAt.UnixNano(),
	).Int()
	if err != nil {
		return false, err
	}
	return updated == 1, nil
}

func (s *Storage) TopScores(ctx context.Context, level model.Level, limit int) ([]*model.ScoreRecord, error) {
	// The ZSET orders by attempts only; pull the whole board and break
	// ties on achieved-at in Go. Boards stay small (one entry per player).
	members, err := s.client.ZRangeWithScores(ctx, scoresKey(level), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return []*model.ScoreRecord{}, nil
	}

	achieved, err := s.client.HGetAll(ctx, achievedAtKey(level)).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*model.ScoreRecord, 0, len(members))
	for _, member := range members {
		playerName, ok := member.Member.(string)
		if !ok {
			continue
		}
		records = append(records, &model.ScoreRecord{
			PlayerName: playerName,
			Level:      level,
			Attempts:   int(member.Score),
			AchievedAt: parseAchievedAt(achieved[playerName]),
		})
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

func (s *Storage) achievedAt(ctx context.Context, level model.Level, playerName string) (time.Time, error) {
	raw, err := s.client.HGet(ctx, achievedAtKey(level), playerName).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	return parseAchievedAt(raw), nil
}

func parseAchievedAt(raw string) time.Time {
	ns, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(0, ns)
}
