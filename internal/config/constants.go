package config

import "time"

// Environment variable names.
const (
	envProvider       = "PROVIDER"
	envMaxGamesToShow = "MAX_GAMES_TO_SHOW"

	envStatsAPIBaseURL = "MLB_API_URL"
	envHTTPTimeout     = "HTTP_TIMEOUT"
	envFetchAttempts   = "FETCH_MAX_ATTEMPTS"
	envFetchBackoff    = "FETCH_BACKOFF"

	envMetricsEnabled = "METRICS_ENABLED"
	envMetricsPort    = "METRICS_PORT"
	envServiceName    = "OTEL_SERVICE_NAME"
	envOtlpEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtlpInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	envSimPlatform    = "SIM_PLATFORM"
	envSimWindowsPath = "SIM_WINDOWS_PATH"
	envSimMacPath     = "SIM_MAC_PATH"
)

// Defaults.
const (
	defaultProvider       = "statsapi"
	defaultMaxGamesToShow = 100

	defaultStatsAPIBaseURL = "https://statsapi.mlb.com"
	defaultHTTPTimeout     = 10 * time.Second
	defaultFetchAttempts   = 3
	defaultFetchBackoff    = 200 * time.Millisecond

	defaultMetricsEnabled = false
	defaultMetricsPort    = "9091"
	defaultServiceName    = "mlb-pitch-sim"

	defaultSimPlatform    = "mac"
	defaultSimWindowsPath = `WindowsBuild\Pitch.exe`
	defaultSimMacPath     = "MacBuild/Pitch.app/Contents/MacOS/Pitch"
)

// Query window the interactive flow offers. The upstream feed carries full
// pitch tracking data from 2015 onward.
const (
	MinStartDate     = "2015-01-01"
	DefaultStartDate = "2023-01-01"
	MaxEndDate       = "2023-12-31"
)
