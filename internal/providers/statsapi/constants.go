package statsapi

import "time"

const (
	defaultBaseURL     = "https://statsapi.mlb.com"
	defaultHTTPTimeout = 10 * time.Second

	teamsEndpoint    = "/api/v1/teams"
	scheduleEndpoint = "/api/v1/schedule"

	// Fixed query filters: baseball, MLB major league, regular season.
	sportID         = "1"
	leagueID        = "103"
	gameTypeRegular = "R"

	atBatPlayType = "atBat"
)
