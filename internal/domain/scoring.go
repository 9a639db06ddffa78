package domain

// CalculateRoundScore scores one hand under settings.
//
// The declarer gains its bid when it takes at least that many tricks. Otherwise it
// loses the bid and the opponents are paid according to settings.FailMode. Tagged
// bonuses are then added to the tagged team whatever the bid outcome.
//
// The only failure is a trick-conservation violation, reported as a *ValidationError;
// range checks belong to ValidateRoundInput, which callers run first. A declarer
// outside A and B is scored as team A rather than rejected.
func CalculateRoundScore(in RoundInput, settings GameSettings) (ScorePair, error) {
	if v, ok := checkConservation(in); !ok {
		return ScorePair{}, &ValidationError{Violations: []Violation{v}}
	}

	declarer := in.DeclarerTeam
	if !declarer.Valid() {
		declarer = TeamA
	}
	opponent := declarer.Opponent()
	declarerTricks := in.Tricks(declarer)
	opponentTricks := in.Tricks(opponent)

	var declarerScore, opponentScore int
	if declarerTricks >= in.Bid {
		declarerScore = in.Bid
	} else {
		declarerScore = -in.Bid
		switch settings.FailMode {
		case FailModeOpponentTricks:
			opponentScore = opponentTricks
		case FailModeOpponentDifference:
			opponentScore = in.Bid - declarerTricks
		}
	}

	if b := in.BonusApplied; b != nil {
		award := func(tag *TeamID, bonus *int) {
			if tag == nil || bonus == nil {
				return
			}
			if *tag == declarer {
				declarerScore += *bonus
			} else if *tag == opponent {
				opponentScore += *bonus
			}
		}
		award(b.AllTricks, settings.BonusAllTricks)
		award(b.Seik, settings.BonusSeik)
	}

	if declarer == TeamA {
		return ScorePair{ScoreTeamA: declarerScore, ScoreTeamB: opponentScore}, nil
	}
	return ScorePair{ScoreTeamA: opponentScore, ScoreTeamB: declarerScore}, nil
}
