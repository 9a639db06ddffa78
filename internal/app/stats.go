package app

import (
	"context"
	"math"

	"westscore/internal/domain"
)

// Level titles, from lowest to highest.
const (
	LevelBeginner     = "beginner"
	LevelAmateur      = "amateur"
	LevelProfessional = "professional"
	LevelExpert       = "expert"
)

// Statistics is a tally over all stored games from team A's point of view.
type Statistics struct {
	TotalGames    int     `json:"totalGames"`
	FinishedGames int     `json:"finishedGames"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Draws         int     `json:"draws"`
	TotalRounds   int     `json:"totalRounds"`
	WinRate       float64 `json:"winRate"`
	Level         int     `json:"level"`
	LevelTitle    string  `json:"levelTitle"`
}

// Statistics tallies the stored games.
func (s *GameService) Statistics(ctx context.Context) (Statistics, error) {
	games, err := s.load(ctx)
	if err != nil {
		return Statistics{}, err
	}
	return ComputeStatistics(games), nil
}

// ComputeStatistics counts wins, losses and draws of finished games. A finished
// game without a winner is a draw and does not move the win rate.
func ComputeStatistics(games []domain.Game) Statistics {
	st := Statistics{TotalGames: len(games)}
	for _, g := range games {
		st.TotalRounds += len(g.Rounds)
		if !g.IsFinished {
			continue
		}
		st.FinishedGames++
		switch {
		case g.WinnerTeam == nil:
			st.Draws++
		case *g.WinnerTeam == domain.TeamA:
			st.Wins++
		default:
			st.Losses++
		}
	}

	st.WinRate = 50
	if decided := st.Wins + st.Losses; decided > 0 {
		st.WinRate = float64(st.Wins) / float64(decided) * 100
	}
	experience := math.Min(float64(st.TotalGames*5), 50)
	st.Level = int(math.Round(st.WinRate*0.7 + experience*0.3))
	st.LevelTitle = levelTitle(st.Level)
	return st
}

func levelTitle(level int) string {
	switch {
	case level >= 80:
		return LevelExpert
	case level >= 60:
		return LevelProfessional
	case level >= 40:
		return LevelAmateur
	}
	return LevelBeginner
}
