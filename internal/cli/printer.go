// Package cli implements the interactive console flow: prompts, validation
// of the user's query window, and tabular output for game and pitch listings.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode"

	"mlb-pitch-sim/internal/domain/games"
	"mlb-pitch-sim/internal/domain/pitches"
)

// PrintGames writes a numbered table of games.
func PrintGames(w io.Writer, list []games.Game) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDate\tTeams\tResult")
	for i, g := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s vs %s\t%s\n",
			i+1, g.Date, g.HomeTeam.Abbreviation, g.AwayTeam.Abbreviation, g.Score)
	}
	tw.Flush()
}

// PrintPitches writes a numbered table of pitches with their at-bat context.
func PrintPitches(w io.Writer, list []pitches.Pitch) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tInn\tScore\tOuts\tCount\tType\tSpeed\tResult\tPitcher\tBatter")
	for i, p := range list {
		fmt.Fprintf(tw, "%d\t%s %d\t%d %s %s %d\t%d Outs\t%d-%d Count\t%s\t%s MPH\t%s\t%s (%s)\t%s (%s)\n",
			i+1,
			p.HalfDisplay(), p.Inning,
			p.HomeScoreBefore, p.HomeAbbreviation, p.AwayAbbreviation, p.AwayScoreBefore,
			p.OutsBefore,
			p.BallsBefore, p.StrikesBefore,
			p.PitchType,
			speedDisplay(p),
			p.Result,
			abbreviateName(p.PitcherName), p.PitcherHand,
			abbreviateName(p.BatterName), p.BatterHand)
	}
	tw.Flush()
}

func speedDisplay(p pitches.Pitch) string {
	mph, ok := p.StartSpeedMPH()
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%d", mph)
}

// abbreviateName shortens "Frankie Montas" to "F. Montas" to keep the pitch
// table narrow. Single-word names pass through unchanged.
func abbreviateName(full string) string {
	parts := strings.Fields(full)
	if len(parts) < 2 {
		return full
	}
	first := []rune(parts[0])
	return string(unicode.ToUpper(first[0])) + ". " + strings.Join(parts[1:], " ")
}
