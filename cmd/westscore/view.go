package main

import (
	"errors"
	"fmt"
	"strings"

	"westscore/internal/app"
	"westscore/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	clrBorder = lipgloss.Color("#30363d")
	clrSubtle = lipgloss.Color("#8b949e")
	clrGold   = lipgloss.Color("#e3b341")
	clrGreen  = lipgloss.Color("#3fb950")
	clrRed    = lipgloss.Color("#f85149")
	clrTitle  = lipgloss.Color("#58a6ff")

	titleStyle = lipgloss.NewStyle().Foreground(clrTitle).Bold(true)
	subtle     = lipgloss.NewStyle().Foreground(clrSubtle)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(clrBorder).
			Padding(0, 1)
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func scoreCell(v int) string {
	switch {
	case v > 0:
		return fg(clrGreen).Render(fmt.Sprintf("+%d", v))
	case v < 0:
		return fg(clrRed).Render(fmt.Sprintf("%d", v))
	}
	return subtle.Render("0")
}

// pad right-aligns s in a column of width w, measuring with lipgloss so ANSI codes
// do not count.
func pad(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func teamName(g domain.Game, t domain.TeamID) string {
	name := g.TeamAName
	if t == domain.TeamB {
		name = g.TeamBName
	}
	if name == "" {
		name = "Team " + string(t)
	}
	return name
}

func renderGame(g domain.Game) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(g.Title))
	b.WriteString(subtle.Render("  " + g.ID))
	b.WriteString("\n")
	if g.Note != "" {
		b.WriteString(subtle.Render(g.Note) + "\n")
	}
	if len(g.Players) > 0 {
		var names []string
		for _, p := range g.Players {
			names = append(names, fmt.Sprintf("%s (%s)", p.Name, p.Team))
		}
		b.WriteString(subtle.Render(strings.Join(names, ", ")) + "\n")
	}
	b.WriteString("\n")

	a, bn := teamName(g, domain.TeamA), teamName(g, domain.TeamB)
	colA, colB := max(lipgloss.Width(a), 6), max(lipgloss.Width(bn), 6)
	fmt.Fprintf(&b, "%4s  %-3s %4s %7s  %s  %s\n", "#", "bid", "by", "tricks", pad(a, colA), pad(bn, colB))
	for _, r := range g.Rounds {
		bonus := ""
		if r.BonusApplied != nil {
			if r.BonusApplied.AllTricks != nil {
				bonus += " kaboot:" + string(*r.BonusApplied.AllTricks)
			}
			if r.BonusApplied.Seik != nil {
				bonus += " seik:" + string(*r.BonusApplied.Seik)
			}
		}
		fmt.Fprintf(&b, "%4d  %-3d %4s %3d-%-3d  %s  %s%s\n",
			r.Index, r.Bid, r.DeclarerTeam, r.TricksTeamA, r.TricksTeamB,
			pad(scoreCell(r.ScoreTeamA), colA), pad(scoreCell(r.ScoreTeamB), colB), subtle.Render(bonus))
	}

	totals := fmt.Sprintf("%s %d  :  %d %s", a, g.TotalScoreTeamA, g.TotalScoreTeamB, bn)
	b.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render(totals) + "\n")
	b.WriteString(renderStatus(g))

	return boxStyle.Render(b.String())
}

func renderStatus(g domain.Game) string {
	if !g.IsFinished {
		limits := []string{}
		if g.Settings.TargetScore != nil {
			limits = append(limits, fmt.Sprintf("target %d", *g.Settings.TargetScore))
		}
		if g.Settings.RoundsLimit != nil {
			limits = append(limits, fmt.Sprintf("round %d/%d", len(g.Rounds), *g.Settings.RoundsLimit))
		}
		return subtle.Render("in progress  " + strings.Join(limits, ", "))
	}
	if g.WinnerTeam == nil {
		return fg(clrGold).Render("finished: draw")
	}
	return fg(clrGold).Bold(true).Render("winner: " + teamName(g, *g.WinnerTeam))
}

func renderGameList(games []domain.Game) string {
	if len(games) == 0 {
		return subtle.Render("no games yet")
	}
	var rows []string
	for _, g := range games {
		state := subtle.Render("playing")
		if g.IsFinished {
			state = fg(clrGold).Render("finished")
		}
		rows = append(rows, fmt.Sprintf("%s  %s  %d:%d  %s  %s",
			subtle.Render(g.ID), titleStyle.Render(g.Title),
			g.TotalScoreTeamA, g.TotalScoreTeamB, state,
			subtle.Render(g.CreatedAt.Format("2006-01-02"))))
	}
	return strings.Join(rows, "\n")
}

func renderPreview(p app.RoundPreview) string {
	if !p.Valid {
		var lines []string
		for _, v := range p.Violations {
			lines = append(lines, fg(clrRed).Render("✗ "+v.Message))
		}
		return strings.Join(lines, "\n")
	}
	return fmt.Sprintf("A %s  B %s", scoreCell(p.Score.ScoreTeamA), scoreCell(p.Score.ScoreTeamB))
}

func renderStatistics(st app.Statistics) string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("Level %d  %s", st.Level, st.LevelTitle)),
		fmt.Sprintf("games     %d (%d finished)", st.TotalGames, st.FinishedGames),
		fmt.Sprintf("wins      %s", fg(clrGreen).Render(fmt.Sprint(st.Wins))),
		fmt.Sprintf("losses    %s", fg(clrRed).Render(fmt.Sprint(st.Losses))),
		fmt.Sprintf("draws     %d", st.Draws),
		fmt.Sprintf("rounds    %d", st.TotalRounds),
		fmt.Sprintf("win rate  %.0f%%", st.WinRate),
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func renderError(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		var lines []string
		for _, v := range verr.Violations {
			lines = append(lines, "✗ "+v.Message)
		}
		return fg(clrRed).Render(strings.Join(lines, "\n"))
	}
	return fg(clrRed).Render("error: " + err.Error())
}
