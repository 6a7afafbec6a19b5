package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"mlb-pitch-sim/internal/domain/games"
	"mlb-pitch-sim/internal/domain/pitches"
	"mlb-pitch-sim/internal/domain/teams"
	"mlb-pitch-sim/internal/logging"
	"mlb-pitch-sim/internal/providers"
	"mlb-pitch-sim/internal/timeutil"
)

// Config controls how the statsapi client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches teams, schedules, and play-by-play feeds from the MLB stats
// API and maps them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
}

// NewClient constructs a statsapi client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
	}
}

// FetchTeams retrieves the full team directory. An empty season means the
// upstream's current season.
func (c *Client) FetchTeams(ctx context.Context, season string) ([]teams.Team, error) {
	params := url.Values{}
	params.Set("sportId", sportID)
	if season != "" {
		params.Set("season", season)
	}

	var payload teamsResponse
	if err := c.getJSON(ctx, teamsEndpoint, params, &payload); err != nil {
		return nil, err
	}

	if len(payload.Teams) == 0 {
		return nil, fmt.Errorf("teams for season %q: %w", season, providers.ErrEmpty)
	}

	return mapTeams(payload.Teams), nil
}

// FetchTeamByName resolves a team by full name, franchise name, or club name.
// Matching is title-cased exact; the first team in upstream listing order wins.
func (c *Client) FetchTeamByName(ctx context.Context, name, season string) (teams.Team, error) {
	list, err := c.FetchTeams(ctx, season)
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

// FetchGames retrieves regular-season games matching the filter, resolving
// each game's team ids against the directory for the season of the start date
// (current season when no start date is given). Games with an unresolvable
// side are dropped from the result, not reported as errors.
func (c *Client) FetchGames(ctx context.Context, filter providers.ScheduleFilter) ([]games.Game, error) {
	params := url.Values{}
	params.Set("sportId", sportID)
	params.Set("leagueId", leagueID)
	params.Set("gameType", gameTypeRegular)
	if filter.StartDate != "" {
		params.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		params.Set("endDate", filter.EndDate)
	}
	if filter.TeamID != "" {
		params.Set("teamId", filter.TeamID)
	}
	if filter.OpponentID != "" {
		params.Set("opponentId", filter.OpponentID)
	}

	var payload scheduleResponse
	if err := c.getJSON(ctx, scheduleEndpoint, params, &payload); err != nil {
		return nil, err
	}

	if len(payload.Dates) == 0 {
		return nil, fmt.Errorf("games matching filter: %w", providers.ErrEmpty)
	}

	directory, err := c.FetchTeams(ctx, timeutil.SeasonOf(filter.StartDate))
	if err != nil {
		return nil, fmt.Errorf("resolving team directory: %w", err)
	}
	byID := make(map[string]*teams.Team, len(directory))
	for i := range directory {
		byID[directory[i].ID] = &directory[i]
	}

	var out []games.Game
	for _, date := range payload.Dates {
		for _, g := range date.Games {
			home, homeOK := byID[strconv.Itoa(g.Teams.Home.Team.ID)]
			away, awayOK := byID[strconv.Itoa(g.Teams.Away.Team.ID)]
			if !homeOK || !awayOK {
				logging.Warn(c.logger, "dropping game with unresolved team",
					logging.FieldProvider, providerName,
					logging.FieldDate, g.OfficialDate,
					logging.FieldGame, g.Link)
				continue
			}

			out = append(out, games.Game{
				HomeTeam: home,
				AwayTeam: away,
				Link:     g.Link,
				Date:     g.OfficialDate,
				Score:    games.FormatScore(g.Teams.Home.Score, g.Teams.Away.Score),
			})
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("games after team resolution: %w", providers.ErrEmpty)
	}
	return out, nil
}

// FetchPitches retrieves the play-by-play feed for a game and flattens it to
// pitch records: official at-bats only, pitch-flagged events only, scores
// carried with a one-at-bat lag.
func (c *Client) FetchPitches(ctx context.Context, game games.Game) ([]pitches.Pitch, error) {
	var payload feedResponse
	if err := c.getJSON(ctx, game.Link, nil, &payload); err != nil {
		return nil, err
	}

	switch {
	case payload.LiveData == nil:
		return nil, &providers.SchemaError{Provider: providerName, Path: "liveData"}
	case payload.LiveData.Plays == nil:
		return nil, &providers.SchemaError{Provider: providerName, Path: "liveData.plays"}
	case payload.LiveData.Plays.AllPlays == nil:
		return nil, &providers.SchemaError{Provider: providerName, Path: "liveData.plays.allPlays"}
	}

	out := mapPitches(*payload.LiveData.Plays.AllPlays, game)
	if len(out) == 0 {
		return nil, fmt.Errorf("pitches in game %s: %w", game.Link, providers.ErrEmpty)
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return err
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.Warn(c.logger, "request failed",
			logging.FieldProvider, providerName,
			"endpoint", endpoint,
			logging.FieldStatusCode, resp.StatusCode)
		return &providers.StatusError{
			Provider:   providerName,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
		}
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}
