package fixture

import (
	"context"
	"fmt"

	"mlb-pitch-sim/internal/domain/games"
	"mlb-pitch-sim/internal/domain/pitches"
	"mlb-pitch-sim/internal/domain/teams"
	"mlb-pitch-sim/internal/providers"
)

// Provider returns a static league, schedule, and pitch feed, useful for
// offline runs and for exercising the session flow in tests.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

func fixtureTeams() []teams.Team {
	return []teams.Team{
		{ID: "133", Name: "Oakland Athletics", FranchiseName: "Athletics", ClubName: "Oakland", Abbreviation: "OAK"},
		{ID: "136", Name: "Seattle Mariners", FranchiseName: "Mariners", ClubName: "Seattle", Abbreviation: "SEA"},
		{ID: "117", Name: "Houston Astros", FranchiseName: "Astros", ClubName: "Houston", Abbreviation: "HOU"},
	}
}

// FetchTeams returns the deterministic directory.
func (p *Provider) FetchTeams(ctx context.Context, season string) ([]teams.Team, error) {
	_ = ctx
	_ = season
	return fixtureTeams(), nil
}

// FetchTeamByName resolves against the deterministic directory.
func (p *Provider) FetchTeamByName(ctx context.Context, name, season string) (teams.Team, error) {
	list, err := p.FetchTeams(ctx, season)
	if err != nil {
		return teams.Team{}, err
	}
	dir := teams.NewDirectory(list)
	team, ok := dir.ByName(name)
	if !ok {
		return teams.Team{}, fmt.Errorf("team %q: %w", name, providers.ErrEmpty)
	}
	return team, nil
}

// FetchGames returns two example games, honoring the team filter so session
// tests can exercise narrowed queries.
func (p *Provider) FetchGames(ctx context.Context, filter providers.ScheduleFilter) ([]games.Game, error) {
	_ = ctx

	list := fixtureTeams()
	oak, sea, hou := &list[0], &list[1], &list[2]

	all := []games.Game{
		{HomeTeam: oak, AwayTeam: sea, Link: "/api/v1.1/game/1001/feed/live", Date: "2023-06-15", Score: "4 - 2"},
		{HomeTeam: hou, AwayTeam: oak, Link: "/api/v1.1/game/1002/feed/live", Date: "2023-06-16", Score: "1 - 5"},
		{HomeTeam: sea, AwayTeam: hou, Link: "/api/v1.1/game/1003/feed/live", Date: "2023-06-17", Score: games.ScoreUnknown},
	}

	var out []games.Game
	for _, g := range all {
		if filter.TeamID != "" && g.HomeTeam.ID != filter.TeamID && g.AwayTeam.ID != filter.TeamID {
			continue
		}
		if filter.OpponentID != "" && g.HomeTeam.ID != filter.OpponentID && g.AwayTeam.ID != filter.OpponentID {
			continue
		}
		out = append(out, g)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("fixture games: %w", providers.ErrEmpty)
	}
	return out, nil
}

// FetchPitches returns a short deterministic feed for any known game link.
func (p *Provider) FetchPitches(ctx context.Context, game games.Game) ([]pitches.Pitch, error) {
	_ = ctx

	if game.HomeTeam == nil || game.AwayTeam == nil {
		return nil, fmt.Errorf("fixture pitches: %w", providers.ErrEmpty)
	}

	data := pitches.Data{
		"startSpeed":       96.2,
		"strikeZoneTop":    3.4,
		"strikeZoneBottom": 1.6,
		"extension":        6.3,
		"coordinates": pitches.Data{
			"aX": 2.4, "aY": -28.1, "aZ": -16.9,
			"vX0": 6.7, "vY0": -140.1, "vZ0": -5.2,
			"x0": -1.8, "y0": 50.0, "z0": 5.9,
			"pX": 0.4, "pZ": 2.1,
		},
		"breaks": pitches.Data{"spinDirection": 212.0},
	}

	return []pitches.Pitch{
		{
			PitcherName: "Fixture Starter", PitcherHand: "R",
			BatterName: "Fixture Leadoff", BatterHand: "L",
			Result: "Called Strike", PitchType: "Fastball",
			Data: data, HalfInning: "top", Inning: 1,
			HomeAbbreviation: game.HomeTeam.Abbreviation,
			AwayAbbreviation: game.AwayTeam.Abbreviation,
		},
		{
			PitcherName: "Fixture Starter", PitcherHand: "R",
			BatterName: "Fixture Leadoff", BatterHand: "L",
			Result: "Ball", PitchType: "Slider",
			BallsBefore: 0, StrikesBefore: 1,
			Data: pitches.Data{"startSpeed": 85.8}, HalfInning: "top", Inning: 1,
			HomeAbbreviation: game.HomeTeam.Abbreviation,
			AwayAbbreviation: game.AwayTeam.Abbreviation,
		},
	}, nil
}
