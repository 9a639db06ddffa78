package app

import (
	"context"
	"math"
	"testing"

	"westscore/internal/domain"
)

func finished(winner *domain.TeamID, rounds int) domain.Game {
	return domain.Game{IsFinished: true, WinnerTeam: winner, Rounds: make([]domain.Round, rounds)}
}

func TestComputeStatistics(t *testing.T) {
	a, b := domain.TeamA, domain.TeamB
	tests := []struct {
		name     string
		games    []domain.Game
		expected Statistics
	}{
		{
			name:     "No games",
			expected: Statistics{WinRate: 50, Level: 35, LevelTitle: LevelBeginner},
		},
		{
			name: "Mixed results",
			games: []domain.Game{
				finished(&a, 5), finished(&a, 4), finished(&b, 3), finished(nil, 2),
				{Rounds: make([]domain.Round, 1)},
			},
			// winRate 2/3 -> 66.67*0.7 + 25*0.3 = 54.17
			expected: Statistics{TotalGames: 5, FinishedGames: 4, Wins: 2, Losses: 1, Draws: 1,
				TotalRounds: 15, WinRate: 200.0 / 3, Level: 54, LevelTitle: LevelAmateur},
		},
		{
			name: "Experienced winner",
			games: []domain.Game{
				finished(&a, 1), finished(&a, 1), finished(&a, 1), finished(&a, 1), finished(&a, 1),
				finished(&a, 1), finished(&a, 1), finished(&a, 1), finished(&a, 1), finished(&a, 1),
			},
			expected: Statistics{TotalGames: 10, FinishedGames: 10, Wins: 10, TotalRounds: 10,
				WinRate: 100, Level: 85, LevelTitle: LevelExpert},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStatistics(tt.games)
			if math.Abs(got.WinRate-tt.expected.WinRate) > 1e-9 {
				t.Errorf("win rate = %v, want %v", got.WinRate, tt.expected.WinRate)
			}
			got.WinRate, tt.expected.WinRate = 0, 0
			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestStatisticsService(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	g, _ := svc.CreateGame(ctx, GameInput{Title: "night"})
	if _, err := svc.AddRound(ctx, g.ID, metInput(domain.TeamA, 7)); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.FinishGame(ctx, g.ID); err != nil {
		t.Fatal(err)
	}

	st, err := svc.Statistics(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.TotalGames != 1 || st.Wins != 1 || st.TotalRounds != 1 {
		t.Errorf("unexpected statistics %+v", st)
	}
}
