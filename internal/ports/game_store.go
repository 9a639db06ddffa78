package ports

import (
	"context"

	"westscore/internal/domain"
)

// GameStore persists a user's whole game list as one blob.
type GameStore interface {
	// Load returns every stored game, most recent first. An empty store yields an
	// empty list, not an error.
	Load(ctx context.Context) ([]domain.Game, error)

	// Save replaces the stored list with games.
	Save(ctx context.Context, games []domain.Game) error
}
