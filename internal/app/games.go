package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"westscore/internal/domain"
)

// PlayerInput is one seat of the four-player roster.
type PlayerInput struct {
	Name string        `json:"name"`
	Team domain.TeamID `json:"team"`
}

// GameInput describes a new game. Either team names or a full roster may be given.
type GameInput struct {
	Title     string                `json:"title"`
	Note      string                `json:"note"`
	TeamAName string                `json:"teamAName"`
	TeamBName string                `json:"teamBName"`
	Players   []PlayerInput         `json:"players"`
	Settings  *domain.SettingsPatch `json:"settings"`
}

// GameInfo is a partial update of a game's descriptive fields. Nil fields are kept.
type GameInfo struct {
	Title     *string `json:"title"`
	Note      *string `json:"note"`
	TeamAName *string `json:"teamAName"`
	TeamBName *string `json:"teamBName"`
}

// CreateGame starts an empty game and stores it ahead of the existing ones.
func (s *GameService) CreateGame(ctx context.Context, in GameInput) (domain.Game, error) {
	if err := s.ready(); err != nil {
		return domain.Game{}, err
	}

	settings := s.cfg.Settings.Clone()
	if in.Settings != nil {
		settings = in.Settings.Apply(settings)
	}
	if err := settings.Validate(); err != nil {
		return domain.Game{}, err
	}

	players, err := s.buildRoster(in.Players)
	if err != nil {
		return domain.Game{}, err
	}

	id, err := s.ids.NewID()
	if err != nil {
		return domain.Game{}, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = s.randomTitle()
	}

	game := domain.NewGame(id, title, settings, s.clock.Now())
	game.Note = strings.TrimSpace(in.Note)
	game.TeamAName = orDefault(in.TeamAName, s.cfg.TeamAName)
	game.TeamBName = orDefault(in.TeamBName, s.cfg.TeamBName)
	game.Players = players

	games, err := s.load(ctx)
	if err != nil {
		return domain.Game{}, err
	}
	games = append([]domain.Game{game}, games...)
	if err := s.save(ctx, games); err != nil {
		return domain.Game{}, err
	}
	return game, nil
}

func (s *GameService) buildRoster(in []PlayerInput) ([]domain.Player, error) {
	if len(in) == 0 {
		return nil, nil
	}
	if len(in) != domain.TotalPlayers {
		return nil, fmt.Errorf("%w: roster needs exactly %d players, got %d",
			ErrInvalidGameInput, domain.TotalPlayers, len(in))
	}

	perTeam := map[domain.TeamID]int{}
	players := make([]domain.Player, 0, len(in))
	for i, p := range in {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: player %d has no name", ErrInvalidGameInput, i+1)
		}
		if !p.Team.Valid() {
			return nil, fmt.Errorf("%w: player %q has unknown team %q", ErrInvalidGameInput, name, p.Team)
		}
		perTeam[p.Team]++

		id, err := s.ids.NewID()
		if err != nil {
			return nil, err
		}
		players = append(players, domain.Player{ID: id, Name: name, Team: p.Team})
	}
	if perTeam[domain.TeamA] != 2 || perTeam[domain.TeamB] != 2 {
		return nil, fmt.Errorf("%w: each team needs exactly 2 players", ErrInvalidGameInput)
	}
	return players, nil
}

// ListGames returns every stored game, most recent first.
func (s *GameService) ListGames(ctx context.Context) ([]domain.Game, error) {
	return s.load(ctx)
}

// GetGame returns game id.
func (s *GameService) GetGame(ctx context.Context, id string) (domain.Game, error) {
	games, err := s.load(ctx)
	if err != nil {
		return domain.Game{}, err
	}
	idx := findGame(games, id)
	if idx < 0 {
		return domain.Game{}, gameNotFound(id)
	}
	return games[idx], nil
}

// DeleteGame removes game id.
func (s *GameService) DeleteGame(ctx context.Context, id string) error {
	games, err := s.load(ctx)
	if err != nil {
		return err
	}
	idx := findGame(games, id)
	if idx < 0 {
		return gameNotFound(id)
	}
	games = append(games[:idx], games[idx+1:]...)
	return s.save(ctx, games)
}

// UpdateGameInfo changes title, note or team names. Rounds and totals are untouched.
func (s *GameService) UpdateGameInfo(ctx context.Context, id string, info GameInfo) (domain.Game, error) {
	if info.Title != nil && strings.TrimSpace(*info.Title) == "" {
		return domain.Game{}, fmt.Errorf("%w: title must not be empty", ErrInvalidGameInput)
	}
	return s.mutate(ctx, id, func(g domain.Game, now time.Time) (domain.Game, error) {
		if info.Title != nil {
			g.Title = strings.TrimSpace(*info.Title)
		}
		if info.Note != nil {
			g.Note = strings.TrimSpace(*info.Note)
		}
		if info.TeamAName != nil {
			g.TeamAName = orDefault(*info.TeamAName, s.cfg.TeamAName)
		}
		if info.TeamBName != nil {
			g.TeamBName = orDefault(*info.TeamBName, s.cfg.TeamBName)
		}
		g.UpdatedAt = now
		return g, nil
	})
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}
