package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		ENV string
	}

	Log struct {
		Level     string
		Format    string
		Component string
		Source    bool
	}

	DB struct {
		// Driver is "sqlite" (embedded, default) or "mysql" (hosted).
		Driver string
		// Path is the sqlite database file.
		Path string
		// DSN is the mysql connection string, required when Driver is "mysql".
		DSN string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	HTTP struct {
		Host string
		Port string
	}

	Auth struct {
		JWTSecret string
	}
}

func New() *Config {
	// .env is optional; deployments normally set plain env vars.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.App.ENV = getEnvDefault("APP_ENV", "development")

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "valore")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	// Database
	cfg.DB.Driver = strings.ToLower(getEnvDefault("DB_DRIVER", "sqlite"))
	cfg.DB.Path = getEnvDefault("SQLITE_PATH", "valore.db")
	cfg.DB.DSN = os.Getenv("MYSQL_DSN")

	// Redis is optional; analytics counters are skipped when unset.
	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	if dbStr := getEnvDefault("REDIS_DB", "0"); dbStr != "" {
		if dbInt, err := strconv.Atoi(dbStr); err == nil {
			cfg.Redis.DB = dbInt
		}
	}

	// HTTP
	cfg.HTTP.Host = getEnvDefault("HTTP_HOST", "127.0.0.1")
	cfg.HTTP.Port = getEnvDefault("HTTP_PORT", "8080")

	// Auth
	cfg.Auth.JWTSecret = getEnvDefault("JWT_SECRET", "dev-secret")

	return cfg
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
