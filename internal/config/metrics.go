package config

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsEnabled, defaultMetricsEnabled),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envServiceName, defaultServiceName),
		OtlpEndpoint: envOrDefault(envOtlpEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtlpInsecure, false),
	}
}
