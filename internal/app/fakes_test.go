package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"westscore/internal/config"
	"westscore/internal/domain"
)

type memStore struct {
	games   []domain.Game
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Load(ctx context.Context) ([]domain.Game, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]domain.Game{}, m.games...), nil
}

func (m *memStore) Save(ctx context.Context, games []domain.Game) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.games = append([]domain.Game{}, games...)
	return nil
}

type seqIDs struct {
	n   int
	err error
}

func (s *seqIDs) NewID() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.n++
	return fmt.Sprintf("id-%d", s.n), nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

var testNow = time.Date(2026, 5, 1, 19, 30, 0, 0, time.UTC)

func newTestService() (*GameService, *memStore, *fixedClock) {
	store := &memStore{}
	clock := &fixedClock{now: testNow}
	svc := NewGameService(store, &seqIDs{}, clock, config.Default(), rand.New(rand.NewSource(1)))
	return svc, store, clock
}
