package config

// StatsAPIConfig controls the MLB stats API client.
type StatsAPIConfig struct {
	BaseURL     string
	HTTPTimeout Duration
	MaxAttempts int
	Backoff     Duration
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL:     envOrDefault(envStatsAPIBaseURL, defaultStatsAPIBaseURL),
		HTTPTimeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		MaxAttempts: intEnvOrDefault(envFetchAttempts, defaultFetchAttempts),
		Backoff:     durationEnvOrDefault(envFetchBackoff, defaultFetchBackoff),
	}
}
