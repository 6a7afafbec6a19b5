package config

// SimConfig controls how the external simulator binary is launched. Platform
// is explicit configuration rather than a build-time flag so one build can
// target either launch path.
type SimConfig struct {
	Platform    string
	WindowsPath string
	MacPath     string
}

func loadSim() SimConfig {
	return SimConfig{
		Platform:    envOrDefault(envSimPlatform, defaultSimPlatform),
		WindowsPath: envOrDefault(envSimWindowsPath, defaultSimWindowsPath),
		MacPath:     envOrDefault(envSimMacPath, defaultSimMacPath),
	}
}
