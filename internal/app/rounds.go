package app

import (
	"context"
	"time"

	"westscore/internal/domain"
)

// AddRound validates, scores and appends a round to game gameID.
func (s *GameService) AddRound(ctx context.Context, gameID string, in domain.RoundInput) (domain.Game, error) {
	if err := s.ready(); err != nil {
		return domain.Game{}, err
	}
	roundID, err := s.ids.NewID()
	if err != nil {
		return domain.Game{}, err
	}
	return s.mutate(ctx, gameID, func(g domain.Game, now time.Time) (domain.Game, error) {
		return domain.AppendRound(g, roundID, in, now)
	})
}

// UpdateRound replaces the input of one round.
func (s *GameService) UpdateRound(ctx context.Context, gameID, roundID string, in domain.RoundInput) (domain.Game, error) {
	return s.mutate(ctx, gameID, func(g domain.Game, now time.Time) (domain.Game, error) {
		return domain.UpdateRound(g, roundID, in, now)
	})
}

// DeleteRound removes one round and renumbers the rest.
func (s *GameService) DeleteRound(ctx context.Context, gameID, roundID string) (domain.Game, error) {
	return s.mutate(ctx, gameID, func(g domain.Game, now time.Time) (domain.Game, error) {
		return domain.DeleteRound(g, roundID, now)
	})
}

// UndoLastRound removes the latest round, if any.
func (s *GameService) UndoLastRound(ctx context.Context, gameID string) (domain.Game, error) {
	return s.mutate(ctx, gameID, func(g domain.Game, now time.Time) (domain.Game, error) {
		return domain.UndoLastRound(g, now), nil
	})
}

// UpdateSettings patches the game's rules and rescores its history.
func (s *GameService) UpdateSettings(ctx context.Context, gameID string, patch domain.SettingsPatch) (domain.Game, error) {
	return s.mutate(ctx, gameID, func(g domain.Game, now time.Time) (domain.Game, error) {
		return domain.UpdateSettings(g, patch, now)
	})
}

// RecalculateGame rebuilds every cached score and total of a game.
func (s *GameService) RecalculateGame(ctx context.Context, gameID string) (domain.Game, error) {
	return s.mutate(ctx, gameID, domain.RecalculateGameTotals)
}

// FinishGame ends a game on request; the current leader wins.
func (s *GameService) FinishGame(ctx context.Context, gameID string) (domain.Game, error) {
	return s.mutate(ctx, gameID, func(g domain.Game, now time.Time) (domain.Game, error) {
		return domain.FinishGame(g, now), nil
	})
}

// ReopenGame returns a finished game to progress.
func (s *GameService) ReopenGame(ctx context.Context, gameID string) (domain.Game, error) {
	return s.mutate(ctx, gameID, func(g domain.Game, now time.Time) (domain.Game, error) {
		return domain.ReopenGame(g, now), nil
	})
}

// RoundPreview is the would-be outcome of a round input. Score is nil when the
// input is invalid.
type RoundPreview struct {
	domain.ValidationResult
	Score *domain.ScorePair `json:"score,omitempty"`
}

// ValidateRound checks in against the settings of game gameID without storing anything.
func (s *GameService) ValidateRound(ctx context.Context, gameID string, in domain.RoundInput) (domain.ValidationResult, error) {
	g, err := s.GetGame(ctx, gameID)
	if err != nil {
		return domain.ValidationResult{}, err
	}
	return domain.ValidateRoundInput(in, g.Settings), nil
}

// PreviewRound validates and scores in against game gameID without storing anything.
func (s *GameService) PreviewRound(ctx context.Context, gameID string, in domain.RoundInput) (RoundPreview, error) {
	g, err := s.GetGame(ctx, gameID)
	if err != nil {
		return RoundPreview{}, err
	}
	preview := RoundPreview{ValidationResult: domain.ValidateRoundInput(in, g.Settings)}
	if !preview.Valid {
		return preview, nil
	}
	score, err := domain.CalculateRoundScore(in, g.Settings)
	if err != nil {
		return RoundPreview{}, err
	}
	preview.Score = &score
	return preview, nil
}
