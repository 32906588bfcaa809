package config

import "time"

const (
	envPort           = "PORT"
	envReloadInterval = "RELOAD_INTERVAL"
	envContentSource  = "CONTENT_SOURCE"
	envContentPath    = "CONTENT_PATH"
	envContentRetries = "CONTENT_RETRY_ATTEMPTS"
	envDefaultPolicy  = "DEFAULT_SCHEDULE_POLICY"
	envTimezone       = "SCHEDULE_TIMEZONE"
	envBaseURL        = "SCHEDULE_BASE_URL"
	envNoMatchMessage = "NO_MATCH_MESSAGE"
	envAdminToken     = "ADMIN_TOKEN"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Content changes only when editors publish; a few minutes of staleness is fine.
	defaultReloadInterval = 5 * Duration(time.Minute)
	defaultContentSource  = "fixture"
	defaultContentPath    = "data/content"
	defaultContentRetries = 3
	defaultPolicy         = "published"
	defaultTimezone       = "UTC"
	defaultBaseURL        = "/schedules/"
	defaultMetricsPort    = "9090"
	defaultServiceName    = "schedule-grid-service"
)
