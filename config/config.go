// Package config reads runtime configuration from the environment.
package config

import "os"

type Config struct {
	// HTTP server
	Port string

	// Local backend: sqlite file path.
	DBPath string

	// Remote backend: Postgres connection string. When set, the server and
	// the export/import commands run against Postgres instead of sqlite.
	DatabaseURL string

	// Tenant is the owner key rows are scoped by in the remote backend.
	Tenant string

	// Basic auth credentials. Both empty disables auth.
	AuthUser string
	AuthPass string

	LogLevel string
}

func Load() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		DBPath:      getEnv("DB_PATH", "data/ledger.db"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Tenant:      getEnv("TENANT", "default"),
		AuthUser:    getEnv("AUTH_USER", ""),
		AuthPass:    getEnv("AUTH_PASS", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
