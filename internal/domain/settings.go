package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// FailMode selects how the opponents are paid when the declarer misses its bid.
type FailMode string

const (
	// FailModeOpponentZero: declarer loses the bid, opponents gain nothing.
	FailModeOpponentZero FailMode = "minusBid_opponentZero"
	// FailModeOpponentTricks: declarer loses the bid, opponents gain the tricks they took.
	FailModeOpponentTricks FailMode = "minusBid_opponentTricks"
	// FailModeOpponentDifference: declarer loses the bid, opponents gain the shortfall.
	FailModeOpponentDifference FailMode = "minusBid_opponentDifference"
)

// Valid reports whether m is a known fail mode.
func (m FailMode) Valid() bool {
	switch m {
	case FailModeOpponentZero, FailModeOpponentTricks, FailModeOpponentDifference:
		return true
	}
	return false
}

const (
	DefaultMinBid      = 7
	DefaultMaxBid      = 13
	DefaultTargetScore = 25
)

var ErrInvalidSettings = errors.New("invalid game settings")

// GameSettings holds the scoring rules of one game. A nil optional field means the
// rule is disabled; zero is a real value.
type GameSettings struct {
	FailMode       FailMode `json:"failMode"`
	TargetScore    *int     `json:"targetScore,omitempty"`
	RoundsLimit    *int     `json:"roundsLimit,omitempty"`
	MinBid         int      `json:"minBid"`
	MaxBid         int      `json:"maxBid"`
	BonusAllTricks *int     `json:"bonusAllTricks,omitempty"`
	BonusSeik      *int     `json:"bonusSeik,omitempty"`
}

// DefaultSettings returns the rules a new game starts with.
func DefaultSettings() GameSettings {
	return GameSettings{
		FailMode:    FailModeOpponentTricks,
		TargetScore: IntPtr(DefaultTargetScore),
		MinBid:      DefaultMinBid,
		MaxBid:      DefaultMaxBid,
	}
}

// UnmarshalJSON accepts the legacy "maxRounds" key as an alias of "roundsLimit".
// Keys absent from data keep the receiver's current values.
func (s *GameSettings) UnmarshalJSON(data []byte) error {
	type plain GameSettings
	aux := struct {
		plain
		MaxRounds *int `json:"maxRounds,omitempty"`
	}{plain: plain(s.Clone())}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var keys struct {
		RoundsLimit json.RawMessage `json:"roundsLimit"`
	}
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*s = GameSettings(aux.plain)
	if len(keys.RoundsLimit) == 0 && aux.MaxRounds != nil {
		s.RoundsLimit = aux.MaxRounds
	}
	return nil
}

// Clone returns a deep copy of s.
func (s GameSettings) Clone() GameSettings {
	out := s
	out.TargetScore = cloneInt(s.TargetScore)
	out.RoundsLimit = cloneInt(s.RoundsLimit)
	out.BonusAllTricks = cloneInt(s.BonusAllTricks)
	out.BonusSeik = cloneInt(s.BonusSeik)
	return out
}

// Validate checks the settings invariants.
func (s GameSettings) Validate() error {
	if !s.FailMode.Valid() {
		return fmt.Errorf("%w: unknown fail mode %q", ErrInvalidSettings, s.FailMode)
	}
	if s.MinBid < 0 || s.MaxBid > TotalTricks || s.MinBid > s.MaxBid {
		return fmt.Errorf("%w: bid bounds [%d, %d] must satisfy 0 <= min <= max <= %d",
			ErrInvalidSettings, s.MinBid, s.MaxBid, TotalTricks)
	}
	if s.TargetScore != nil && *s.TargetScore < 0 {
		return fmt.Errorf("%w: target score must not be negative", ErrInvalidSettings)
	}
	if s.RoundsLimit != nil && *s.RoundsLimit <= 0 {
		return fmt.Errorf("%w: rounds limit must be positive", ErrInvalidSettings)
	}
	if s.BonusAllTricks != nil && *s.BonusAllTricks <= 0 {
		return fmt.Errorf("%w: all-tricks bonus must be positive", ErrInvalidSettings)
	}
	if s.BonusSeik != nil && *s.BonusSeik <= 0 {
		return fmt.Errorf("%w: seik bonus must be positive", ErrInvalidSettings)
	}
	return nil
}

// OptionalInt is a patch field that distinguishes "absent" (keep), "null" (disable)
// and a value (set).
type OptionalInt struct {
	Set   bool
	Value *int
}

// SetInt returns a patch field that sets v.
func SetInt(v int) OptionalInt {
	return OptionalInt{Set: true, Value: IntPtr(v)}
}

// Clear returns a patch field that disables the setting.
func Clear() OptionalInt {
	return OptionalInt{Set: true}
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o OptionalInt) apply(cur *int) *int {
	if !o.Set {
		return cur
	}
	return cloneInt(o.Value)
}

// SettingsPatch is a partial settings update.
type SettingsPatch struct {
	FailMode       *FailMode   `json:"failMode,omitempty"`
	TargetScore    OptionalInt `json:"targetScore"`
	RoundsLimit    OptionalInt `json:"roundsLimit"`
	MaxRounds      OptionalInt `json:"maxRounds"`
	MinBid         *int        `json:"minBid,omitempty"`
	MaxBid         *int        `json:"maxBid,omitempty"`
	BonusAllTricks OptionalInt `json:"bonusAllTricks"`
	BonusSeik      OptionalInt `json:"bonusSeik"`
}

// Apply overlays p onto s and returns the result; s is not modified.
func (p SettingsPatch) Apply(s GameSettings) GameSettings {
	out := s.Clone()
	if p.FailMode != nil {
		out.FailMode = *p.FailMode
	}
	out.TargetScore = p.TargetScore.apply(out.TargetScore)
	if p.RoundsLimit.Set {
		out.RoundsLimit = p.RoundsLimit.apply(out.RoundsLimit)
	} else {
		out.RoundsLimit = p.MaxRounds.apply(out.RoundsLimit)
	}
	if p.MinBid != nil {
		out.MinBid = *p.MinBid
	}
	if p.MaxBid != nil {
		out.MaxBid = *p.MaxBid
	}
	out.BonusAllTricks = p.BonusAllTricks.apply(out.BonusAllTricks)
	out.BonusSeik = p.BonusSeik.apply(out.BonusSeik)
	return out
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
