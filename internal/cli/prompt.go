package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"mlb-pitch-sim/internal/config"
	"mlb-pitch-sim/internal/domain/games"
	"mlb-pitch-sim/internal/domain/pitches"
	"mlb-pitch-sim/internal/domain/teams"
	"mlb-pitch-sim/internal/timeutil"
)

// TeamLookup resolves a user-entered team name for a season. Any error is
// treated by the prompt flow as "not found"; the caller logs the real cause.
type TeamLookup func(ctx context.Context, name, season string) (teams.Team, error)

// Prompter drives the interactive flow over an injected reader and writer so
// the whole conversation is scriptable in tests.
type Prompter struct {
	in             *bufio.Reader
	out            io.Writer
	maxGamesToShow int

	minStart string
	defStart string
	maxEnd   string
}

// NewPrompter builds a Prompter. maxGamesToShow caps the game table; values
// below 1 are raised to 1.
func NewPrompter(in io.Reader, out io.Writer, maxGamesToShow int) *Prompter {
	if maxGamesToShow < 1 {
		maxGamesToShow = 1
	}
	return &Prompter{
		in:             bufio.NewReader(in),
		out:            out,
		maxGamesToShow: maxGamesToShow,
		minStart:       config.MinStartDate,
		defStart:       config.DefaultStartDate,
		maxEnd:         config.MaxEndDate,
	}
}

func (p *Prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// readLine returns the next trimmed input line. ok is false once input is
// exhausted, so prompts can stop instead of spinning on EOF.
func (p *Prompter) readLine() (string, bool) {
	line, err := p.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", false
	}
	return line, true
}

// Title prints the opening screen and waits for ENTER.
func (p *Prompter) Title() {
	p.printf("\n\n[[ Pitch Simulator ]]\n\n")
	p.printf("Simulate any MLB pitch thrown between %s and %s.\n\n", p.minStart, p.maxEnd)
	p.printf("Steps:\n")
	p.printf("   1. Select a range of dates for games you would like to search for. All the games must be from the same season.\n")
	p.printf("   2. Select 0-2 teams you would like to search for games with.\n")
	p.printf("   3. Select a game from the first %d games found by the search.\n", p.maxGamesToShow)
	p.printf("   4. Select a pitch from the game to simulate.\n")
	p.printf("If you leave any prompt blank or enter an invalid option, the default will be selected.\n\n")
	p.printf("Press ENTER to begin ")
	p.readLine()
	p.printf("\n")
}

// StartDate prompts for a start date as YYYY or YYYY-MM-DD within the
// supported window. Invalid or out-of-range input falls back to the default.
func (p *Prompter) StartDate() string {
	p.printf("Enter the start date between %s and %s in the form YYYY or YYYY-MM-DD (default %s): ",
		p.minStart, p.maxEnd, p.defStart)
	raw, _ := p.readLine()

	if raw != "" {
		if t, normalized, err := timeutil.ParseDateOrYear(raw); err == nil && p.inStartWindow(t) {
			p.printf("Set start date to %s.\n", normalized)
			return normalized
		}
	}

	p.printf("Set start date to default of %s.\n", p.defStart)
	return p.defStart
}

func (p *Prompter) inStartWindow(t time.Time) bool {
	lower, err := timeutil.ParseDate(p.minStart)
	if err != nil {
		return false
	}
	upper, err := timeutil.ParseDate(p.maxEnd)
	if err != nil {
		return false
	}
	return !t.Before(lower) && !t.After(upper)
}

// EndDate prompts for an end date between start and December 31 of start's
// year. The search never crosses a season boundary, so the cap is the season
// end rather than the global maximum.
func (p *Prompter) EndDate(start string) string {
	maxEnd, err := timeutil.EndOfSeason(start)
	if err != nil {
		maxEnd = p.maxEnd
	}

	p.printf("Enter the end date between %s and %s in the form YYYY-MM-DD (default %s): ", start, maxEnd, maxEnd)
	raw, _ := p.readLine()

	if raw != "" {
		if t, err := timeutil.ParseDate(raw); err == nil {
			startT, serr := timeutil.ParseDate(start)
			maxT, merr := timeutil.ParseDate(maxEnd)
			if serr == nil && merr == nil && !t.Before(startT) && !t.After(maxT) {
				p.printf("Set end date to %s.\n", raw)
				return raw
			}
		}
	}

	p.printf("Set end date to default of %s.\n", maxEnd)
	return maxEnd
}

// Team prompts for a team name and resolves it. Blank input or a failed
// lookup widens the search to all teams (nil).
func (p *Prompter) Team(ctx context.Context, lookup TeamLookup, season string) *teams.Team {
	p.printf("Enter a team name, e.g. 'Oakland Athletics' or 'Oakland' or 'Athletics' (default all teams): ")
	name, _ := p.readLine()

	if name == "" {
		p.printf("No team entered. Will show games with all teams.\n")
		return nil
	}

	team, err := lookup(ctx, name, season)
	if err != nil {
		p.printf("Team not found. Will show games with all teams.\n")
		return nil
	}

	p.printf("Set team to %s.\n", team)
	return &team
}

// Opponent prompts for an opposing team. Skipped entirely when no team was
// selected; a self-opponent is rejected.
func (p *Prompter) Opponent(ctx context.Context, lookup TeamLookup, team *teams.Team, season string) *teams.Team {
	if team == nil {
		return nil
	}

	p.printf("Enter an opposing team's name (default all teams): ")
	name, _ := p.readLine()

	if name == "" {
		p.printf("No opponent entered. Will show games against all opponents.\n")
		return nil
	}

	opponent, err := lookup(ctx, name, season)
	if err != nil {
		p.printf("Team not found. Will show games against all opponents.\n")
		return nil
	}

	if opponent.ID == team.ID {
		p.printf("Cannot set opponent to self. Will show games against all opponents.\n")
		return nil
	}

	p.printf("Set opponent to %s - %s.\n", opponent.Abbreviation, opponent.Name)
	return &opponent
}

// Game shows the capped game table and prompts for a selection. Invalid or
// blank input selects game 1. Callers must pass a non-empty list.
func (p *Prompter) Game(list []games.Game) games.Game {
	total := len(list)
	showing := total
	if showing > p.maxGamesToShow {
		showing = p.maxGamesToShow
	}

	p.printf("Showing %d of %d games found...\n\n", showing, total)
	PrintGames(p.out, list[:showing])
	p.printf("\n")

	p.printf("Enter a game number between 1 and %d (default 1): ", showing)
	raw, _ := p.readLine()

	if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= showing {
		p.printf("Selected game number %d.\n", n)
		return list[n-1]
	}

	p.printf("Selected default game number 1.\n")
	return list[0]
}

// Pitch shows the full pitch table and prompts for a selection. Invalid or
// blank input selects pitch 1. Callers must pass a non-empty list.
func (p *Prompter) Pitch(list []pitches.Pitch) pitches.Pitch {
	p.printf("Showing all %d pitches found...\n\n", len(list))
	PrintPitches(p.out, list)
	p.printf("\n")

	p.printf("Enter a pitch number between 1 and %d (default 1): ", len(list))
	raw, _ := p.readLine()

	selected := 1
	if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(list) {
		p.printf("Selected pitch number %d", n)
		selected = n
	} else {
		p.printf("Selected default pitch number 1")
	}

	pitch := list[selected-1]
	p.printf(" - %s | %s MPH | %s\n", pitch.PitchType, speedDisplay(pitch), pitch.Result)
	return pitch
}

// Rerun asks whether to run again, reprompting until the answer is y or n.
// Exhausted input answers no.
func (p *Prompter) Rerun() bool {
	p.printf("Would you like to run the program again (y or n)? ")
	for {
		raw, ok := p.readLine()
		if !ok {
			return false
		}
		switch strings.ToLower(raw) {
		case "y":
			return true
		case "n":
			return false
		}
		p.printf("Invalid input. Would you like to run the program again (y or n)? ")
	}
}
