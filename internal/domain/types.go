package domain

import "time"

// TeamID identifies one of the two partnerships at the table.
type TeamID string

const (
	TeamA TeamID = "A"
	TeamB TeamID = "B"
)

const (
	// TotalTricks is the number of tricks contested in every hand.
	TotalTricks = 13
	// TotalPlayers is the number of seats at a Whist table.
	TotalPlayers = 4
)

// Valid reports whether t is one of the two known teams.
func (t TeamID) Valid() bool {
	return t == TeamA || t == TeamB
}

// Opponent returns the other team.
func (t TeamID) Opponent() TeamID {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

// Player is a seat in the four-player roster variant.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team TeamID `json:"team"`
}

// BonusApplied tags which team (if any) triggered each bonus condition in a round.
type BonusApplied struct {
	AllTricks *TeamID `json:"allTricks,omitempty"`
	Seik      *TeamID `json:"seik,omitempty"`
}

func (b *BonusApplied) empty() bool {
	return b == nil || (b.AllTricks == nil && b.Seik == nil)
}

// RoundInput is the raw result of one hand, before scoring.
type RoundInput struct {
	DeclarerTeam TeamID        `json:"declarerTeam"`
	Bid          int           `json:"bid"`
	TricksTeamA  int           `json:"tricksTeamA"`
	TricksTeamB  int           `json:"tricksTeamB"`
	BonusApplied *BonusApplied `json:"bonusApplied,omitempty"`
}

// Tricks returns the tricks taken by team.
func (in RoundInput) Tricks(team TeamID) int {
	if team == TeamA {
		return in.TricksTeamA
	}
	return in.TricksTeamB
}

// ScorePair is the per-team score delta produced by one round.
type ScorePair struct {
	ScoreTeamA int `json:"scoreTeamA"`
	ScoreTeamB int `json:"scoreTeamB"`
}

// Of returns the score for team.
func (s ScorePair) Of(team TeamID) int {
	if team == TeamA {
		return s.ScoreTeamA
	}
	return s.ScoreTeamB
}

// Round is one played hand as persisted in a game's history.
// Index and the cached scores are the only fields rewritten after creation.
type Round struct {
	ID           string        `json:"id"`
	Index        int           `json:"index"`
	DeclarerTeam TeamID        `json:"declarerTeam"`
	Bid          int           `json:"bid"`
	TricksTeamA  int           `json:"tricksTeamA"`
	TricksTeamB  int           `json:"tricksTeamB"`
	ScoreTeamA   int           `json:"scoreTeamA"`
	ScoreTeamB   int           `json:"scoreTeamB"`
	BonusApplied *BonusApplied `json:"bonusApplied,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Input returns the raw input the round was scored from.
func (r Round) Input() RoundInput {
	return RoundInput{
		DeclarerTeam: r.DeclarerTeam,
		Bid:          r.Bid,
		TricksTeamA:  r.TricksTeamA,
		TricksTeamB:  r.TricksTeamB,
		BonusApplied: r.BonusApplied.clone(),
	}
}

func (b *BonusApplied) clone() *BonusApplied {
	if b.empty() {
		return nil
	}
	out := &BonusApplied{}
	if b.AllTricks != nil {
		t := *b.AllTricks
		out.AllTricks = &t
	}
	if b.Seik != nil {
		t := *b.Seik
		out.Seik = &t
	}
	return out
}

// Game is the aggregate root: one scoring sheet with its full round history.
// TotalScoreTeamA/B always equal the sums of the rounds' cached scores.
type Game struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Note            string       `json:"note,omitempty"`
	TeamAName       string       `json:"teamAName,omitempty"`
	TeamBName       string       `json:"teamBName,omitempty"`
	Players         []Player     `json:"players,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
	Rounds          []Round      `json:"rounds"`
	TotalScoreTeamA int          `json:"totalScoreTeamA"`
	TotalScoreTeamB int          `json:"totalScoreTeamB"`
	IsFinished      bool         `json:"isFinished"`
	WinnerTeam      *TeamID      `json:"winnerTeam,omitempty"`
	FinishedAt      *time.Time   `json:"finishedAt,omitempty"`
	Settings        GameSettings `json:"settings"`
}

// Total returns the cumulative score of team.
func (g Game) Total(team TeamID) int {
	if team == TeamA {
		return g.TotalScoreTeamA
	}
	return g.TotalScoreTeamB
}

// clone returns a copy of g that shares no mutable slices with it.
func (g Game) clone() Game {
	out := g
	if g.Rounds != nil {
		out.Rounds = make([]Round, len(g.Rounds))
		for i, r := range g.Rounds {
			r.BonusApplied = r.BonusApplied.clone()
			out.Rounds[i] = r
		}
	}
	if g.Players != nil {
		out.Players = append([]Player(nil), g.Players...)
	}
	out.Settings = g.Settings.Clone()
	return out
}

func teamPtr(t TeamID) *TeamID {
	return &t
}

// NewGame returns an empty, in-progress game.
func NewGame(id, title string, settings GameSettings, now time.Time) Game {
	return Game{
		ID:        id,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
		Rounds:    []Round{},
		Settings:  settings.Clone(),
	}
}
