package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Default roster constraints for the current season.
const (
	DefaultTeamSize = 5
	DefaultMMRCap   = 1500
)

// DatabaseConfig holds the postgres connection values.
type DatabaseConfig struct {
	DSN            string
	Database       string
	MigrationsPath string
}

// RedisConfig holds the redis connection values.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// BucketConfig holds the S3 values used for log uploads.
type BucketConfig struct {
	Region       string
	Endpoint     string
	AccessKey    string
	AccessSecret string
	LogBucket    string
}

// DiscordConfig holds the OAuth application values.
type DiscordConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

// AuthConfig holds the session token values.
type AuthConfig struct {
	JWTSecret  string
	SessionTTL time.Duration
}

// LeagueConfig holds the fantasy league rules and the stats page location.
type LeagueConfig struct {
	StatsURL       string
	LockDeadline   time.Time
	TeamSize       int
	MMRCap         int
	IngestInterval time.Duration
}

// Config is the full application configuration.
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Bucket   BucketConfig
	Discord  DiscordConfig
	Auth     AuthConfig
	League   LeagueConfig
}

// Load reads the configuration from the environment.
// Outside docker the variables are loaded from a .env file first.
func Load() (*Config, error) {
	if os.Getenv("ENVIRONMENT") != "docker" {
		godotenv.Load()
	}

	cfg := &Config{
		Database: DatabaseConfig{
			DSN:            os.Getenv("DATABASE_DSN"),
			Database:       os.Getenv("DATABASE_NAME"),
			MigrationsPath: getEnvDefault("MIGRATIONS_PATH", "migrations"),
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     os.Getenv("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Bucket: BucketConfig{
			Region:       os.Getenv("BUCKET_REGION"),
			Endpoint:     os.Getenv("BUCKET_ENDPOINT"),
			AccessKey:    os.Getenv("BUCKET_ACCESS_KEY"),
			AccessSecret: os.Getenv("BUCKET_ACCESS_SECRET"),
			LogBucket:    os.Getenv("BUCKET_LOG_NAME"),
		},
		Discord: DiscordConfig{
			ClientID:     os.Getenv("DISCORD_CLIENT_ID"),
			ClientSecret: os.Getenv("DISCORD_CLIENT_SECRET"),
			RedirectURI:  os.Getenv("DISCORD_REDIRECT_URI"),
		},
		Auth: AuthConfig{
			JWTSecret:  os.Getenv("JWT_SECRET"),
			SessionTTL: 24 * time.Hour,
		},
		League: LeagueConfig{
			StatsURL:       getEnvDefault("STATS_URL", "https://vdc.gg/stats"),
			TeamSize:       getEnvIntDefault("TEAM_SIZE", DefaultTeamSize),
			MMRCap:         getEnvIntDefault("MMR_CAP", DefaultMMRCap),
			IngestInterval: 24 * time.Hour,
		},
	}

	// The lock deadline is a hard gate on every roster mutation, so a
	// malformed value must fail the startup instead of defaulting.
	deadline := getEnvDefault("LOCK_DEADLINE", "2025-05-27T23:59:59Z")
	parsed, err := time.Parse(time.RFC3339, deadline)
	if err != nil {
		return nil, fmt.Errorf("invalid LOCK_DEADLINE %q: %w", deadline, err)
	}
	cfg.League.LockDeadline = parsed

	if interval := os.Getenv("INGEST_INTERVAL"); interval != "" {
		parsed, err := time.ParseDuration(interval)
		if err != nil {
			return nil, fmt.Errorf("invalid INGEST_INTERVAL %q: %w", interval, err)
		}
		cfg.League.IngestInterval = parsed
	}

	return cfg, nil
}

func getEnvDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
