package testutil

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"valfantasy/pkg/config"
	"valfantasy/pkg/database"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestConnection starts a postgres container with the full schema
// applied and returns the gorm connection pool plus a cleanup func.
func NewTestConnection(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	ctx := context.Background()

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_DB":       "testdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	dsn := fmt.Sprintf(
		"host=%s port=%s user=test password=test dbname=testdb sslmode=disable TimeZone=UTC",
		host, port.Port(),
	)

	// Create the database instance.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open gorm connection: %v", err)
	}

	sqlDB, sqlErr := db.DB()
	if sqlErr != nil {
		t.Fatalf("Failed to get SQL DB: %v", sqlErr)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		t.Fatalf("failed ping: %v", err)
	}

	// Run the migrations to replicate the full schema.
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Database:       "testdb",
			MigrationsPath: migrationsDir(t),
		},
	}
	if err := database.RunMigrations(cfg, sqlDB); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	cleanup := func() {
		sqlDB.Close()
		tc.CleanupContainer(t, container)
	}

	return db, cleanup
}

// migrationsDir resolves the migrations directory relative to this file,
// so the tests work regardless of the package they run from.
func migrationsDir(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("couldn't resolve the test file location")
	}

	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "migrations")
}
