package domain

import "time"

// Termination is the lifecycle verdict for a game.
type Termination struct {
	IsFinished bool
	Winner     *TeamID
	FinishedAt *time.Time
}

// LeadingTeam returns the team with the higher cumulative score, or nil on a tie.
func LeadingTeam(g Game) *TeamID {
	switch {
	case g.TotalScoreTeamA > g.TotalScoreTeamB:
		return teamPtr(TeamA)
	case g.TotalScoreTeamB > g.TotalScoreTeamA:
		return teamPtr(TeamB)
	}
	return nil
}

// Winner returns the leading team of a finished game, or nil when the game is in
// progress or tied.
func Winner(g Game) *TeamID {
	if !g.IsFinished {
		return nil
	}
	return LeadingTeam(g)
}

// EvaluateTermination decides whether g is finished from its totals, round count and
// settings. Rules, first match wins:
//
//  1. a team whose |total| reached the target score while strictly leading wins;
//  2. once the rounds limit is reached the game ends, won by the leader (nil on a tie);
//  3. otherwise the game is in progress.
//
// A game that stays finished keeps its original FinishedAt; one that becomes finished
// now is stamped with now.
func EvaluateTermination(g Game, now time.Time) Termination {
	finished := func(winner *TeamID) Termination {
		at := now
		if g.IsFinished && g.FinishedAt != nil {
			at = *g.FinishedAt
		}
		return Termination{IsFinished: true, Winner: winner, FinishedAt: &at}
	}

	if target := g.Settings.TargetScore; target != nil {
		leader := LeadingTeam(g)
		if leader != nil && abs(g.Total(*leader)) >= *target {
			return finished(leader)
		}
	}

	if limit := g.Settings.RoundsLimit; limit != nil && len(g.Rounds) >= *limit {
		return finished(LeadingTeam(g))
	}

	return Termination{}
}

// ApplyTermination evaluates g and writes the verdict into a copy of it.
func ApplyTermination(g Game, now time.Time) Game {
	t := EvaluateTermination(g, now)
	g.IsFinished = t.IsFinished
	g.WinnerTeam = t.Winner
	g.FinishedAt = t.FinishedAt
	return g
}

// FinishGame ends g on request regardless of the termination rules; the current leader
// wins, nobody on a tie.
func FinishGame(g Game, now time.Time) Game {
	out := g.clone()
	out.IsFinished = true
	out.WinnerTeam = LeadingTeam(out)
	out.FinishedAt = &now
	out.UpdatedAt = now
	return out
}

// ReopenGame returns g to progress, keeping rounds and totals. Termination is not
// re-evaluated until the next mutation.
func ReopenGame(g Game, now time.Time) Game {
	out := g.clone()
	out.IsFinished = false
	out.WinnerTeam = nil
	out.FinishedAt = nil
	out.UpdatedAt = now
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
