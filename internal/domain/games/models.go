package games

import (
	"fmt"

	"mlb-pitch-sim/internal/domain/teams"
)

// ScoreUnknown is the sentinel score string for games without both scores,
// e.g. games that have not been played yet.
const ScoreUnknown = "Unknown"

// Game ties a schedule entry to its resolved home and away teams. Team
// pointers are shared with the directory result set, not owned. Link is the
// opaque path of the detailed play-by-play feed, relative to the API base.
type Game struct {
	HomeTeam *teams.Team `json:"homeTeam"`
	AwayTeam *teams.Team `json:"awayTeam"`
	Link     string      `json:"link"`
	Date     string      `json:"date"`
	Score    string      `json:"score"`
}

func (g Game) String() string {
	return fmt.Sprintf("%s %s vs %s (%s)", g.Date, g.HomeTeam.Abbreviation, g.AwayTeam.Abbreviation, g.Score)
}

// FormatScore renders "{home} - {away}" when both scores are present and the
// ScoreUnknown sentinel otherwise. Partial scores never leak through.
func FormatScore(home, away *int) string {
	if home == nil || away == nil {
		return ScoreUnknown
	}
	return fmt.Sprintf("%d - %d", *home, *away)
}
