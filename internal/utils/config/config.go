package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/synzk/hub-backend/internal/types/environments"
)

type AppConfig struct {
	Environment environments.Environment
	ApiServer   ApiServerConfig
	Postgres    DBConnection
}

type ApiServerConfig struct {
	Port           string
	AllowedOrigins string
}

type DBConnection struct {
	// URL is the full connection string. Empty means the service runs on
	// the in-memory store instead of postgres.
	URL string

	// DisableSSL is set when PGSSL=0; otherwise the connection requires
	// TLS without certificate verification.
	DisableSSL bool
}

func New() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// this will not override env variables if they already exist
	godotenv.Load(".env." + env)

	return &AppConfig{
		Environment: environments.Environment(env),
		ApiServer: ApiServerConfig{
			Port:           envVarWithDefault("PORT", "8080"),
			AllowedOrigins: envVarWithDefault("CORS_ORIGIN", "*"),
		},
		Postgres: DBConnection{
			URL:        os.Getenv("DATABASE_URL"),
			DisableSSL: os.Getenv("PGSSL") == "0",
		},
	}
}

func envVarWithDefault(envName, fallback string) string {
	if value := os.Getenv(envName); value != "" {
		return value
	}
	return fallback
}
