package domain

import (
	"fmt"
	"time"
)

// RecalculateGameTotals rescores every round against the game's current settings,
// renumbers the rounds 1..N and rebuilds the totals from scratch, then re-evaluates
// termination. Calling it twice yields the same game.
func RecalculateGameTotals(g Game, now time.Time) (Game, error) {
	out := g.clone()
	for i := range out.Rounds {
		r := &out.Rounds[i]
		score, err := CalculateRoundScore(r.Input(), out.Settings)
		if err != nil {
			return g, fmt.Errorf("round %d (%s): %w", i+1, r.ID, err)
		}
		r.ScoreTeamA = score.ScoreTeamA
		r.ScoreTeamB = score.ScoreTeamB
	}
	reindex(out.Rounds)
	sumTotals(&out)
	out.UpdatedAt = now
	return ApplyTermination(out, now), nil
}

// AppendRound validates and scores in, appends it as round len+1 and adds its score
// to the running totals. A finished game stays finished with its winner and
// finishedAt; only ReopenGame returns it to progress.
func AppendRound(g Game, roundID string, in RoundInput, now time.Time) (Game, error) {
	score, err := scoreValid(in, g.Settings)
	if err != nil {
		return g, err
	}

	out := g.clone()
	out.Rounds = append(out.Rounds, newRound(roundID, len(out.Rounds)+1, in, score, now))
	out.TotalScoreTeamA += score.ScoreTeamA
	out.TotalScoreTeamB += score.ScoreTeamB
	out.UpdatedAt = now
	if g.IsFinished {
		return out, nil
	}
	return ApplyTermination(out, now), nil
}

// UpdateRound replaces the input of round roundID, rescoring only that round. Totals
// are rederived from all rounds before termination is evaluated.
func UpdateRound(g Game, roundID string, in RoundInput, now time.Time) (Game, error) {
	pos := findRound(g.Rounds, roundID)
	if pos < 0 {
		return g, roundNotFound(roundID)
	}
	score, err := scoreValid(in, g.Settings)
	if err != nil {
		return g, err
	}

	out := g.clone()
	prev := out.Rounds[pos]
	out.Rounds[pos] = newRound(prev.ID, prev.Index, in, score, prev.CreatedAt)
	sumTotals(&out)
	out.UpdatedAt = now
	return ApplyTermination(out, now), nil
}

// DeleteRound removes round roundID, renumbers the rounds after it and rederives the
// totals from the remaining rounds.
func DeleteRound(g Game, roundID string, now time.Time) (Game, error) {
	pos := findRound(g.Rounds, roundID)
	if pos < 0 {
		return g, roundNotFound(roundID)
	}
	return removeRound(g, pos, now), nil
}

// UndoLastRound removes the most recent round. An empty game is returned unchanged.
func UndoLastRound(g Game, now time.Time) Game {
	if len(g.Rounds) == 0 {
		return g
	}
	return removeRound(g, len(g.Rounds)-1, now)
}

// UpdateSettings applies patch, validates the result and rescores the whole history
// under the new rules.
func UpdateSettings(g Game, patch SettingsPatch, now time.Time) (Game, error) {
	settings := patch.Apply(g.Settings)
	if err := settings.Validate(); err != nil {
		return g, err
	}
	next := g.clone()
	next.Settings = settings
	return RecalculateGameTotals(next, now)
}

func removeRound(g Game, pos int, now time.Time) Game {
	out := g.clone()
	out.Rounds = append(out.Rounds[:pos], out.Rounds[pos+1:]...)
	reindex(out.Rounds)
	sumTotals(&out)
	out.UpdatedAt = now
	return ApplyTermination(out, now)
}

func scoreValid(in RoundInput, settings GameSettings) (ScorePair, error) {
	if err := ValidateRoundInput(in, settings).Err(); err != nil {
		return ScorePair{}, err
	}
	return CalculateRoundScore(in, settings)
}

func newRound(id string, index int, in RoundInput, score ScorePair, createdAt time.Time) Round {
	return Round{
		ID:           id,
		Index:        index,
		DeclarerTeam: in.DeclarerTeam,
		Bid:          in.Bid,
		TricksTeamA:  in.TricksTeamA,
		TricksTeamB:  in.TricksTeamB,
		ScoreTeamA:   score.ScoreTeamA,
		ScoreTeamB:   score.ScoreTeamB,
		BonusApplied: in.BonusApplied.clone(),
		CreatedAt:    createdAt,
	}
}

func findRound(rounds []Round, id string) int {
	for i, r := range rounds {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func reindex(rounds []Round) {
	for i := range rounds {
		rounds[i].Index = i + 1
	}
}

func sumTotals(g *Game) {
	g.TotalScoreTeamA, g.TotalScoreTeamB = 0, 0
	for _, r := range g.Rounds {
		g.TotalScoreTeamA += r.ScoreTeamA
		g.TotalScoreTeamB += r.ScoreTeamB
	}
}
