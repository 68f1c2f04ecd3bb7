// Package config loads the service configuration from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = "8080"
	defaultDriver         = "sqlite"
	defaultSQLitePath     = "budget_manager.db"
	defaultConnectTimeout = 30 * time.Second
	defaultRequestTimeout = 5 * time.Second
	defaultCacheTTL       = 5 * time.Minute
)

// Config holds every setting the server needs at startup.
type Config struct {
	Port string

	DB DBConfig

	// RequestTimeout bounds every store call made while serving a request.
	RequestTimeout time.Duration

	Redis RedisConfig

	CORSEnabled bool
}

// DBConfig selects and addresses the relational store.
type DBConfig struct {
	Driver string // "sqlite" or "postgres"

	// sqlite
	Path string

	// postgres
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// ConnectTimeout is the total budget for retrying the initial connection.
	ConnectTimeout time.Duration
}

// RedisConfig addresses the optional expense cache.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

// Enabled reports whether a Redis host has been configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// Addr returns host:port, defaulting the port to 6379.
func (r RedisConfig) Addr() string {
	port := r.Port
	if port == "" {
		port = "6379"
	}
	return r.Host + ":" + port
}

// Load reads a .env file when present and then builds Config from the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("could not load .env", "error", err)
		}
	}
	return FromEnv()
}

// FromEnv builds Config from the current environment only.
func FromEnv() Config {
	return Config{
		Port: getString("PORT", defaultPort),
		DB: DBConfig{
			Driver:         getString("DB_DRIVER", defaultDriver),
			Path:           getString("DB_PATH", defaultSQLitePath),
			Host:           os.Getenv("DB_HOST"),
			Port:           getString("DB_PORT", "5432"),
			User:           os.Getenv("DB_USER"),
			Password:       os.Getenv("DB_PASSWORD"),
			Name:           os.Getenv("DB_NAME"),
			SSLMode:        getString("DB_SSLMODE", "disable"),
			ConnectTimeout: getDuration("DB_CONNECT_TIMEOUT", defaultConnectTimeout),
		},
		RequestTimeout: getDuration("REQUEST_TIMEOUT", defaultRequestTimeout),
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     os.Getenv("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			TTL:      getDuration("CACHE_TTL", defaultCacheTTL),
		},
		CORSEnabled: getBool("CORS_ENABLED", false),
	}
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}
