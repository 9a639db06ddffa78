package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestGameSettingsUnmarshal_MaxRoundsAlias(t *testing.T) {
	var s GameSettings
	if err := json.Unmarshal([]byte(`{"failMode":"minusBid_opponentZero","minBid":7,"maxBid":13,"maxRounds":12}`), &s); err != nil {
		t.Fatal(err)
	}
	if s.RoundsLimit == nil || *s.RoundsLimit != 12 {
		t.Errorf("expected rounds limit 12, got %v", s.RoundsLimit)
	}
	if s.TargetScore != nil {
		t.Errorf("expected no target score, got %d", *s.TargetScore)
	}
}

func TestGameSettingsUnmarshal_KeepsAbsentKeys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, s GameSettings)
	}{
		{
			name:  "Only fail mode given",
			input: `{"failMode":"minusBid_opponentZero"}`,
			check: func(t *testing.T, s GameSettings) {
				if s.FailMode != FailModeOpponentZero {
					t.Errorf("expected fail mode to change, got %q", s.FailMode)
				}
				if s.MinBid != DefaultMinBid || s.MaxBid != DefaultMaxBid {
					t.Errorf("expected default bid bounds, got [%d, %d]", s.MinBid, s.MaxBid)
				}
				if s.TargetScore == nil || *s.TargetScore != DefaultTargetScore {
					t.Errorf("expected default target, got %v", s.TargetScore)
				}
			},
		},
		{
			name:  "Null target disables it",
			input: `{"targetScore":null}`,
			check: func(t *testing.T, s GameSettings) {
				if s.TargetScore != nil {
					t.Errorf("expected no target, got %d", *s.TargetScore)
				}
			},
		},
		{
			name:  "maxRounds fills the limit",
			input: `{"maxRounds":9}`,
			check: func(t *testing.T, s GameSettings) {
				if s.RoundsLimit == nil || *s.RoundsLimit != 9 {
					t.Errorf("expected rounds limit 9, got %v", s.RoundsLimit)
				}
			},
		},
		{
			name:  "roundsLimit wins over maxRounds",
			input: `{"maxRounds":9,"roundsLimit":4}`,
			check: func(t *testing.T, s GameSettings) {
				if s.RoundsLimit == nil || *s.RoundsLimit != 4 {
					t.Errorf("expected rounds limit 4, got %v", s.RoundsLimit)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := DefaultSettings()
			s := base
			if err := json.Unmarshal([]byte(tt.input), &s); err != nil {
				t.Fatal(err)
			}
			tt.check(t, s)
			if *base.TargetScore != DefaultTargetScore {
				t.Error("decoding wrote through to the original settings")
			}
		})
	}
}

func TestSettingsPatch(t *testing.T) {
	base := DefaultSettings()
	base.BonusSeik = IntPtr(2)

	tests := []struct {
		name  string
		patch string
		check func(t *testing.T, s GameSettings)
	}{
		{
			name:  "Absent keys keep values",
			patch: `{"minBid":8}`,
			check: func(t *testing.T, s GameSettings) {
				if s.MinBid != 8 || s.MaxBid != 13 || s.TargetScore == nil || *s.TargetScore != 25 || s.BonusSeik == nil {
					t.Errorf("unexpected settings %+v", s)
				}
			},
		},
		{
			name:  "Null disables",
			patch: `{"targetScore":null,"bonusSeik":null}`,
			check: func(t *testing.T, s GameSettings) {
				if s.TargetScore != nil || s.BonusSeik != nil {
					t.Errorf("expected target and seik disabled, got %+v", s)
				}
			},
		},
		{
			name:  "maxRounds sets the rounds limit",
			patch: `{"maxRounds":10}`,
			check: func(t *testing.T, s GameSettings) {
				if s.RoundsLimit == nil || *s.RoundsLimit != 10 {
					t.Errorf("expected rounds limit 10, got %v", s.RoundsLimit)
				}
			},
		},
		{
			name:  "roundsLimit wins over maxRounds",
			patch: `{"maxRounds":10,"roundsLimit":6}`,
			check: func(t *testing.T, s GameSettings) {
				if s.RoundsLimit == nil || *s.RoundsLimit != 6 {
					t.Errorf("expected rounds limit 6, got %v", s.RoundsLimit)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p SettingsPatch
			if err := json.Unmarshal([]byte(tt.patch), &p); err != nil {
				t.Fatal(err)
			}
			tt.check(t, p.Apply(base))
		})
	}

	if base.TargetScore == nil || base.BonusSeik == nil {
		t.Error("Apply modified the base settings")
	}
}

func TestGameSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameSettings)
		valid  bool
	}{
		{name: "Defaults", mutate: func(*GameSettings) {}, valid: true},
		{name: "Zero target", mutate: func(s *GameSettings) { s.TargetScore = IntPtr(0) }, valid: true},
		{name: "Unknown fail mode", mutate: func(s *GameSettings) { s.FailMode = "double" }},
		{name: "Max bid above 13", mutate: func(s *GameSettings) { s.MaxBid = 14 }},
		{name: "Min above max", mutate: func(s *GameSettings) { s.MinBid = 10; s.MaxBid = 9 }},
		{name: "Zero rounds limit", mutate: func(s *GameSettings) { s.RoundsLimit = IntPtr(0) }},
		{name: "Negative bonus", mutate: func(s *GameSettings) { s.BonusAllTricks = IntPtr(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			err := s.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("expected ErrInvalidSettings, got %v", err)
			}
		})
	}
}
