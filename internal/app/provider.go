package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"mlb-pitch-sim/internal/config"
	"mlb-pitch-sim/internal/metrics"
	"mlb-pitch-sim/internal/providers"
	"mlb-pitch-sim/internal/providers/fixture"
	"mlb-pitch-sim/internal/providers/statsapi"
)

const (
	providerStatsAPI = "statsapi"
	providerFixture  = "fixture"
)

// newProvider builds the configured data provider. The stats API client gets
// a bounded HTTP timeout and a retry wrapper; the fixture provider is local
// and needs neither.
func newProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (providers.DataProvider, error) {
	switch cfg.Provider {
	case providerFixture:
		return fixture.New(), nil
	case providerStatsAPI, "":
		client := statsapi.NewClient(statsapi.Config{
			BaseURL:    cfg.StatsAPI.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.StatsAPI.HTTPTimeout},
			Logger:     logger,
		})
		return providers.NewRetryingProvider(client, logger, recorder, providerStatsAPI,
			cfg.StatsAPI.MaxAttempts, cfg.StatsAPI.Backoff), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
