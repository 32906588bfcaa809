package config

// Config holds runtime configuration for the server.
type Config struct {
	Port           string
	ReloadInterval Duration
	Content        ContentConfig
	Schedules      ScheduleConfig
	AdminToken     string
	Metrics        MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:           envOrDefault(envPort, defaultPort),
		ReloadInterval: durationEnvOrDefault(envReloadInterval, defaultReloadInterval),
		Content:        loadContent(),
		Schedules:      loadSchedules(),
		AdminToken:     envOrDefault(envAdminToken, ""),
		Metrics:        loadMetrics(),
	}
}
