package config

// ContentConfig selects where teams and schedules are read from.
type ContentConfig struct {
	Source string // fixture, yaml, sqlite
	Path   string // YAML directory or SQLite file
	// RetryAttempts bounds attempts per reload before the reload is marked failed.
	RetryAttempts int
}

// ScheduleConfig controls schedule resolution and rendering.
type ScheduleConfig struct {
	DefaultPolicy  string // published or schedule_date
	Timezone       string // zone used to compute "today" for hide-past
	BaseURL        string // prefix for "view full schedule" links
	NoMatchMessage string // overrides the built-in no-match notice
}

func loadContent() ContentConfig {
	return ContentConfig{
		Source:        choiceEnvOrDefault(envContentSource, defaultContentSource, "fixture", "yaml", "sqlite"),
		Path:          envOrDefault(envContentPath, defaultContentPath),
		RetryAttempts: intEnvOrDefault(envContentRetries, defaultContentRetries),
	}
}

func loadSchedules() ScheduleConfig {
	return ScheduleConfig{
		DefaultPolicy:  choiceEnvOrDefault(envDefaultPolicy, defaultPolicy, "published", "schedule_date"),
		Timezone:       envOrDefault(envTimezone, defaultTimezone),
		BaseURL:        envOrDefault(envBaseURL, defaultBaseURL),
		NoMatchMessage: envOrDefault(envNoMatchMessage, ""),
	}
}
