package config

const (
	defaultServerPort = 8080

	defaultDatabasePort           = 5432
	defaultDatabaseMaxConnections = 10

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.host":                    "",
		"database.port":                    defaultDatabasePort,
		"database.user":                    "",
		"database.password":                "",
		"database.name":                    "",
		"database.schema":                  "public",
		"database.max_connections":         defaultDatabaseMaxConnections,
		"database.min_connections":         0,
		"database.connect_timeout":         "5s",
		"database.migrate":                 true,
		"database.breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"database.breaker.timeout":         "10s",
		"database.breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"health.interval": "5s",
		"health.timeout":  "2s",

		"client.base_url":                        "http://localhost:8080",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todos-service",
	}
}
