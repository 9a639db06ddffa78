package domain

import (
	"errors"
	"testing"
)

func TestValidateRoundInput(t *testing.T) {
	a := TeamA
	tests := []struct {
		name     string
		in       RoundInput
		expected []ViolationKind
	}{
		{
			name: "Valid",
			in:   RoundInput{DeclarerTeam: TeamA, Bid: 7, TricksTeamA: 8, TricksTeamB: 5},
		},
		{
			name:     "Bid below minimum",
			in:       RoundInput{DeclarerTeam: TeamA, Bid: 6, TricksTeamA: 8, TricksTeamB: 5},
			expected: []ViolationKind{ViolationBidOutOfRange},
		},
		{
			name:     "Unknown declarer",
			in:       RoundInput{DeclarerTeam: "C", Bid: 7, TricksTeamA: 8, TricksTeamB: 5},
			expected: []ViolationKind{ViolationInvalidTeam},
		},
		{
			name:     "Tricks do not sum to 13",
			in:       RoundInput{DeclarerTeam: TeamA, Bid: 7, TricksTeamA: 7, TricksTeamB: 7},
			expected: []ViolationKind{ViolationTrickConservation},
		},
		{
			name:     "Negative tricks",
			in:       RoundInput{DeclarerTeam: TeamB, Bid: 7, TricksTeamA: -1, TricksTeamB: 14},
			expected: []ViolationKind{ViolationTricksOutOfRange, ViolationTricksOutOfRange},
		},
		{
			name: "All tricks bonus without all tricks",
			in: RoundInput{DeclarerTeam: TeamA, Bid: 7, TricksTeamA: 12, TricksTeamB: 1,
				BonusApplied: &BonusApplied{AllTricks: &a}},
			expected: []ViolationKind{ViolationAllTricksBonus},
		},
		{
			name:     "Every violation reported",
			in:       RoundInput{DeclarerTeam: TeamA, Bid: 20, TricksTeamA: 7, TricksTeamB: 7},
			expected: []ViolationKind{ViolationBidOutOfRange, ViolationTrickConservation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateRoundInput(tt.in, DefaultSettings())
			if res.Valid != (len(tt.expected) == 0) {
				t.Fatalf("expected valid=%v, got %+v", len(tt.expected) == 0, res)
			}
			if len(res.Violations) != len(tt.expected) {
				t.Fatalf("expected %d violations, got %+v", len(tt.expected), res.Violations)
			}
			for i, kind := range tt.expected {
				if res.Violations[i].Kind != kind {
					t.Errorf("violation %d: expected %s, got %s", i, kind, res.Violations[i].Kind)
				}
			}
		})
	}
}

func TestValidateRoundInput_RespectsBidBounds(t *testing.T) {
	settings := DefaultSettings()
	settings.MinBid = 9
	settings.MaxBid = 11

	in := RoundInput{DeclarerTeam: TeamA, Bid: 8, TricksTeamA: 8, TricksTeamB: 5}
	res := ValidateRoundInput(in, settings)
	if res.Valid {
		t.Fatal("expected bid 8 to be rejected with min bid 9")
	}
	if err := res.Err(); !errors.Is(err, ErrInvalidRound) {
		t.Errorf("expected ErrInvalidRound, got %v", err)
	}
}
