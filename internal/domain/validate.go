package domain

import "fmt"

// ViolationKind classifies a failed round-input check.
type ViolationKind string

const (
	ViolationInvalidTeam       ViolationKind = "invalid_team"
	ViolationBidOutOfRange     ViolationKind = "bid_out_of_range"
	ViolationTricksOutOfRange  ViolationKind = "tricks_out_of_range"
	ViolationTrickConservation ViolationKind = "trick_conservation"
	ViolationAllTricksBonus    ViolationKind = "all_tricks_bonus_ineligible"
)

// Violation is one failed check. Team is set when the check concerns a single team.
type Violation struct {
	Kind    ViolationKind `json:"kind"`
	Team    TeamID        `json:"team,omitempty"`
	Message string        `json:"message"`
}

// ValidationResult is the outcome of ValidateRoundInput.
type ValidationResult struct {
	Valid      bool        `json:"valid"`
	Violations []Violation `json:"errors"`
}

// Err returns nil for a valid result and a *ValidationError otherwise.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Violations: r.Violations}
}

// ValidateRoundInput checks in against settings and the physical constraints of a hand.
// Every violated check is reported, not just the first.
func ValidateRoundInput(in RoundInput, settings GameSettings) ValidationResult {
	var out []Violation

	if !in.DeclarerTeam.Valid() {
		out = append(out, Violation{
			Kind:    ViolationInvalidTeam,
			Message: fmt.Sprintf("declarer team must be %s or %s, got %q", TeamA, TeamB, in.DeclarerTeam),
		})
	}

	if in.Bid < settings.MinBid || in.Bid > settings.MaxBid {
		out = append(out, Violation{
			Kind:    ViolationBidOutOfRange,
			Message: fmt.Sprintf("bid must be between %d and %d", settings.MinBid, settings.MaxBid),
		})
	}

	for _, team := range []TeamID{TeamA, TeamB} {
		if n := in.Tricks(team); n < 0 || n > TotalTricks {
			out = append(out, Violation{
				Kind:    ViolationTricksOutOfRange,
				Team:    team,
				Message: fmt.Sprintf("team %s tricks must be between 0 and %d", team, TotalTricks),
			})
		}
	}

	if v, ok := checkConservation(in); !ok {
		out = append(out, v)
	}

	if b := in.BonusApplied; b != nil {
		if b.AllTricks != nil {
			team := *b.AllTricks
			switch {
			case !team.Valid():
				out = append(out, Violation{
					Kind:    ViolationInvalidTeam,
					Message: fmt.Sprintf("all-tricks bonus tagged for unknown team %q", team),
				})
			case in.Tricks(team) != TotalTricks:
				out = append(out, Violation{
					Kind:    ViolationAllTricksBonus,
					Team:    team,
					Message: fmt.Sprintf("cannot apply all-tricks bonus: team %s did not take all %d tricks", team, TotalTricks),
				})
			}
		}
		if b.Seik != nil && !b.Seik.Valid() {
			out = append(out, Violation{
				Kind:    ViolationInvalidTeam,
				Message: fmt.Sprintf("seik bonus tagged for unknown team %q", *b.Seik),
			})
		}
	}

	return ValidationResult{Valid: len(out) == 0, Violations: out}
}

func checkConservation(in RoundInput) (Violation, bool) {
	if in.TricksTeamA+in.TricksTeamB == TotalTricks {
		return Violation{}, true
	}
	return Violation{
		Kind: ViolationTrickConservation,
		Message: fmt.Sprintf("tricks must total %d, got %d + %d",
			TotalTricks, in.TricksTeamA, in.TricksTeamB),
	}, false
}
