package providers

import (
	"context"

	"mlb-pitch-sim/internal/domain/games"
	"mlb-pitch-sim/internal/domain/pitches"
	"mlb-pitch-sim/internal/domain/teams"
)

// ScheduleFilter narrows a schedule query. Every field is optional and the
// fields combine independently. Cross-field constraints (end after start,
// opponent only alongside team) are enforced by the interactive layer before
// a filter reaches a provider.
type ScheduleFilter struct {
	StartDate  string
	EndDate    string
	TeamID     string
	OpponentID string
}

// TeamProvider fetches the team directory for a season. An empty season means
// the upstream's current season.
type TeamProvider interface {
	FetchTeams(ctx context.Context, season string) ([]teams.Team, error)
	FetchTeamByName(ctx context.Context, name, season string) (teams.Team, error)
}

// ScheduleProvider fetches regular-season games matching a filter, with both
// sides resolved against the team directory.
type ScheduleProvider interface {
	FetchGames(ctx context.Context, filter ScheduleFilter) ([]games.Game, error)
}

// PlayProvider fetches the flattened pitch events of a single game.
type PlayProvider interface {
	FetchPitches(ctx context.Context, game games.Game) ([]pitches.Pitch, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	TeamProvider
	ScheduleProvider
	PlayProvider
}
