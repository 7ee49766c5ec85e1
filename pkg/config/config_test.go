package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("ENVIRONMENT", "docker")

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, DefaultTeamSize, cfg.League.TeamSize)
		assert.Equal(t, DefaultMMRCap, cfg.League.MMRCap)
		assert.Equal(t, "https://vdc.gg/stats", cfg.League.StatsURL)
		assert.Equal(t, 24*time.Hour, cfg.League.IngestInterval)
		assert.Equal(t, "migrations", cfg.Database.MigrationsPath)

		expectedDeadline, _ := time.Parse(time.RFC3339, "2025-05-27T23:59:59Z")
		assert.Equal(t, expectedDeadline, cfg.League.LockDeadline)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("LOCK_DEADLINE", "2026-01-15T12:00:00Z")
		t.Setenv("TEAM_SIZE", "6")
		t.Setenv("MMR_CAP", "1800")
		t.Setenv("INGEST_INTERVAL", "6h")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, 6, cfg.League.TeamSize)
		assert.Equal(t, 1800, cfg.League.MMRCap)
		assert.Equal(t, 6*time.Hour, cfg.League.IngestInterval)
		assert.Equal(t, 2026, cfg.League.LockDeadline.Year())
	})

	t.Run("malformedLockDeadlineFailsStartup", func(t *testing.T) {
		t.Setenv("LOCK_DEADLINE", "soon")

		cfg, err := Load()

		assert.Nil(t, cfg)
		assert.Error(t, err)
	})

	t.Run("malformedIngestIntervalFailsStartup", func(t *testing.T) {
		t.Setenv("INGEST_INTERVAL", "often")

		cfg, err := Load()

		assert.Nil(t, cfg)
		assert.Error(t, err)
	})
}
