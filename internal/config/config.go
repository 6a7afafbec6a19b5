package config

import "github.com/joho/godotenv"

// Config holds runtime configuration for the pitch simulator session.
type Config struct {
	Provider       string
	MaxGamesToShow int
	StatsAPI       StatsAPIConfig
	Metrics        MetricsConfig
	Sim            SimConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() Config {
	// godotenv only fills variables that are not already set, so real
	// environment always wins over the .env file.
	_ = godotenv.Load()

	return Config{
		Provider:       envOrDefault(envProvider, defaultProvider),
		MaxGamesToShow: intEnvOrDefault(envMaxGamesToShow, defaultMaxGamesToShow),
		StatsAPI:       loadStatsAPI(),
		Metrics:        loadMetrics(),
		Sim:            loadSim(),
	}
}
