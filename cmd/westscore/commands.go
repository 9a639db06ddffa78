package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"westscore/internal/app"
	"westscore/internal/domain"
)

var errUsage = errors.New("usage")

const usage = `usage: westscore <command> [arguments]

commands:
  new [-title T] [-note N] [-team-a A] [-team-b B] [-players name:A,name:A,name:B,name:B]
      [-fail-mode M] [-target N|off] [-rounds N|off] [-min-bid N] [-max-bid N]
      [-bonus-all-tricks N|off] [-bonus-seik N|off]
  list
  show <game>
  round <game> -declarer A|B -bid N -a N -b N [-all-tricks A|B] [-seik A|B]
  preview <game> (round flags)
  edit <game> <round> (round flags)
  delete-round <game> <round>
  undo <game>
  settings <game> (settings flags as for new)
  info <game> [-title T] [-note N] [-team-a A] [-team-b B]
  recalc <game>
  finish <game>
  reopen <game>
  delete <game>
  stats
  json <game>`

// run executes one CLI command against svc and writes the result to out.
func run(ctx context.Context, svc *app.GameService, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(out, usage)
		return errUsage
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "new":
		return cmdNew(ctx, svc, rest, out)
	case "list":
		games, err := svc.ListGames(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, renderGameList(games))
		return nil
	case "stats":
		st, err := svc.Statistics(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, renderStatistics(st))
		return nil
	case "help", "-h", "--help":
		fmt.Fprintln(out, usage)
		return nil
	}

	gameID, rest, err := positional(rest, "game")
	if err != nil {
		return err
	}

	switch cmd {
	case "show":
		return printGame(out)(svc.GetGame(ctx, gameID))
	case "json":
		g, err := svc.GetGame(ctx, gameID)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	case "round":
		in, err := parseRound("round", rest)
		if err != nil {
			return err
		}
		return printGame(out)(svc.AddRound(ctx, gameID, in))
	case "preview":
		in, err := parseRound("preview", rest)
		if err != nil {
			return err
		}
		p, err := svc.PreviewRound(ctx, gameID, in)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, renderPreview(p))
		return nil
	case "edit":
		roundID, rest, err := positional(rest, "round")
		if err != nil {
			return err
		}
		in, err := parseRound("edit", rest)
		if err != nil {
			return err
		}
		return printGame(out)(svc.UpdateRound(ctx, gameID, roundID, in))
	case "delete-round":
		roundID, _, err := positional(rest, "round")
		if err != nil {
			return err
		}
		return printGame(out)(svc.DeleteRound(ctx, gameID, roundID))
	case "undo":
		return printGame(out)(svc.UndoLastRound(ctx, gameID))
	case "settings":
		fs := flag.NewFlagSet("settings", flag.ContinueOnError)
		fs.SetOutput(out)
		patch := settingsFlags(fs)
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return printGame(out)(svc.UpdateSettings(ctx, gameID, patch.build()))
	case "info":
		return cmdInfo(ctx, svc, gameID, rest, out)
	case "recalc":
		return printGame(out)(svc.RecalculateGame(ctx, gameID))
	case "finish":
		return printGame(out)(svc.FinishGame(ctx, gameID))
	case "reopen":
		return printGame(out)(svc.ReopenGame(ctx, gameID))
	case "delete":
		if err := svc.DeleteGame(ctx, gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "deleted %s\n", gameID)
		return nil
	}

	fmt.Fprintln(out, usage)
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

// printGame returns a sink for a use-case result: it renders the game or passes the
// error through.
func printGame(out io.Writer) func(domain.Game, error) error {
	return func(g domain.Game, err error) error {
		if err != nil {
			return err
		}
		fmt.Fprintln(out, renderGame(g))
		return nil
	}
}

func positional(args []string, name string) (string, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", args, fmt.Errorf("%w: missing <%s>", errUsage, name)
	}
	return args[0], args[1:], nil
}

func cmdNew(ctx context.Context, svc *app.GameService, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	fs.SetOutput(out)
	var in app.GameInput
	var roster string
	fs.StringVar(&in.Title, "title", "", "game title (random when empty)")
	fs.StringVar(&in.Note, "note", "", "free-form note")
	fs.StringVar(&in.TeamAName, "team-a", "", "team A name")
	fs.StringVar(&in.TeamBName, "team-b", "", "team B name")
	fs.StringVar(&roster, "players", "", "four name:team pairs, comma separated")
	patch := settingsFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	players, err := parseRoster(roster)
	if err != nil {
		return err
	}
	in.Players = players
	p := patch.build()
	in.Settings = &p

	return printGame(out)(svc.CreateGame(ctx, in))
}

func cmdInfo(ctx context.Context, svc *app.GameService, gameID string, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.SetOutput(out)
	title := fs.String("title", "", "new title")
	note := fs.String("note", "", "new note")
	teamA := fs.String("team-a", "", "team A name")
	teamB := fs.String("team-b", "", "team B name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var info app.GameInfo
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			info.Title = title
		case "note":
			info.Note = note
		case "team-a":
			info.TeamAName = teamA
		case "team-b":
			info.TeamBName = teamB
		}
	})
	return printGame(out)(svc.UpdateGameInfo(ctx, gameID, info))
}

func parseRoster(s string) ([]app.PlayerInput, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var players []app.PlayerInput
	for _, part := range strings.Split(s, ",") {
		name, team, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("%w: player %q must be name:team", errUsage, part)
		}
		players = append(players, app.PlayerInput{Name: name, Team: domain.TeamID(strings.ToUpper(team))})
	}
	return players, nil
}

func parseRound(name string, args []string) (domain.RoundInput, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var in domain.RoundInput
	var declarer, allTricks, seik string
	fs.StringVar(&declarer, "declarer", "", "declaring team (A or B)")
	fs.IntVar(&in.Bid, "bid", 0, "bid")
	fs.IntVar(&in.TricksTeamA, "a", 0, "tricks taken by team A")
	fs.IntVar(&in.TricksTeamB, "b", 0, "tricks taken by team B")
	fs.StringVar(&allTricks, "all-tricks", "", "team that took all tricks")
	fs.StringVar(&seik, "seik", "", "team awarded the seik bonus")
	if err := fs.Parse(args); err != nil {
		return in, err
	}

	in.DeclarerTeam = domain.TeamID(strings.ToUpper(declarer))
	var bonus domain.BonusApplied
	if allTricks != "" {
		t := domain.TeamID(strings.ToUpper(allTricks))
		bonus.AllTricks = &t
	}
	if seik != "" {
		t := domain.TeamID(strings.ToUpper(seik))
		bonus.Seik = &t
	}
	if bonus.AllTricks != nil || bonus.Seik != nil {
		in.BonusApplied = &bonus
	}
	return in, nil
}

// optionalIntFlag accepts a number or "off".
type optionalIntFlag struct {
	v domain.OptionalInt
}

func (f *optionalIntFlag) String() string {
	if !f.v.Set {
		return ""
	}
	if f.v.Value == nil {
		return "off"
	}
	return strconv.Itoa(*f.v.Value)
}

func (f *optionalIntFlag) Set(s string) error {
	if strings.EqualFold(s, "off") {
		f.v = domain.Clear()
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("expected a number or off")
	}
	f.v = domain.SetInt(n)
	return nil
}

type settingsFlagSet struct {
	fs             *flag.FlagSet
	failMode       string
	target         optionalIntFlag
	rounds         optionalIntFlag
	minBid         int
	maxBid         int
	bonusAllTricks optionalIntFlag
	bonusSeik      optionalIntFlag
}

func settingsFlags(fs *flag.FlagSet) *settingsFlagSet {
	s := &settingsFlagSet{fs: fs}
	fs.StringVar(&s.failMode, "fail-mode", "", "minusBid_opponentZero | minusBid_opponentTricks | minusBid_opponentDifference")
	fs.Var(&s.target, "target", "target score, or off")
	fs.Var(&s.rounds, "rounds", "rounds limit, or off")
	fs.IntVar(&s.minBid, "min-bid", 0, "minimum bid")
	fs.IntVar(&s.maxBid, "max-bid", 0, "maximum bid")
	fs.Var(&s.bonusAllTricks, "bonus-all-tricks", "all-tricks bonus, or off")
	fs.Var(&s.bonusSeik, "bonus-seik", "seik bonus, or off")
	return s
}

// build turns the flags that were actually given into a patch.
func (s *settingsFlagSet) build() domain.SettingsPatch {
	p := domain.SettingsPatch{
		TargetScore:    s.target.v,
		RoundsLimit:    s.rounds.v,
		BonusAllTricks: s.bonusAllTricks.v,
		BonusSeik:      s.bonusSeik.v,
	}
	s.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fail-mode":
			m := domain.FailMode(s.failMode)
			p.FailMode = &m
		case "min-bid":
			p.MinBid = domain.IntPtr(s.minBid)
		case "max-bid":
			p.MaxBid = domain.IntPtr(s.maxBid)
		}
	})
	return p
}
