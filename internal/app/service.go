package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"westscore/internal/config"
	"westscore/internal/domain"
	"westscore/internal/ports"
)

var (
	ErrInvalidGameInput = errors.New("invalid game input")
	ErrNotConfigured    = errors.New("game service not configured")
)

// StorageError wraps a failure of the persistence collaborator. The original error
// is kept intact for errors.Is/As.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// GameService contains the score-keeping use-cases. Each call loads the full game
// list, applies one domain mutation and saves the list back.
type GameService struct {
	store ports.GameStore
	ids   ports.IDGenerator
	clock ports.Clock
	cfg   *config.ScoreConfig
	rng   *rand.Rand
}

// NewGameService constructs a GameService. cfg may be nil to use config.GetScoreConfig;
// rng may be nil to use a time-seeded default.
func NewGameService(store ports.GameStore, ids ports.IDGenerator, clock ports.Clock, cfg *config.ScoreConfig, rng *rand.Rand) *GameService {
	if cfg == nil {
		cfg = config.GetScoreConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GameService{
		store: store,
		ids:   ids,
		clock: clock,
		cfg:   cfg,
		rng:   rng,
	}
}

func (s *GameService) ready() error {
	if s == nil || s.store == nil || s.ids == nil || s.clock == nil {
		return ErrNotConfigured
	}
	return nil
}

func (s *GameService) load(ctx context.Context) ([]domain.Game, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	games, err := s.store.Load(ctx)
	if err != nil {
		return nil, &StorageError{Op: "load", Err: err}
	}
	return games, nil
}

func (s *GameService) save(ctx context.Context, games []domain.Game) error {
	if err := s.store.Save(ctx, games); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}

// mutate applies fn to game id and persists the result. Nothing is saved when fn fails.
func (s *GameService) mutate(ctx context.Context, id string, fn func(g domain.Game, now time.Time) (domain.Game, error)) (domain.Game, error) {
	games, err := s.load(ctx)
	if err != nil {
		return domain.Game{}, err
	}
	idx := findGame(games, id)
	if idx < 0 {
		return domain.Game{}, gameNotFound(id)
	}

	next, err := fn(games[idx], s.clock.Now())
	if err != nil {
		return domain.Game{}, err
	}
	games[idx] = next
	if err := s.save(ctx, games); err != nil {
		return domain.Game{}, err
	}
	return next, nil
}

func findGame(games []domain.Game, id string) int {
	for i, g := range games {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func gameNotFound(id string) error {
	return &domain.NotFoundError{Entity: "game", ID: id}
}
