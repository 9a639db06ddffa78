package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"westscore/internal/domain"
	"westscore/internal/ports"

	"github.com/redis/go-redis/v9"
)

// commands is the subset of redis.Cmdable the store uses.
type commands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Store keeps a game list under a single redis string key.
type Store struct {
	rdb commands
	key string
}

func New(rdb commands, key string) *Store {
	return &Store{rdb: rdb, key: key}
}

// Connect opens a client and checks it with PING.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return rdb, nil
}

func (s *Store) Load(ctx context.Context) ([]domain.Game, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.Game{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.key, err)
	}
	return ports.DecodeGames(data)
}

func (s *Store) Save(ctx context.Context, games []domain.Game) error {
	data, err := ports.EncodeGames(games)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.key, err)
	}
	return nil
}

var _ ports.GameStore = (*Store)(nil)
