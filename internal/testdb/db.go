package testdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/pageza/fitsync-pro/backend/config"
	"github.com/pageza/fitsync-pro/backend/internal/database"
)

// TestDB wraps a PostgreSQL instance running in a container
type TestDB struct {
	DB        *gorm.DB
	Config    *config.Config
	Container testcontainers.Container
}

// Close cleans up the test database
func (td *TestDB) Close() error {
	if sqlDB, err := td.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if td.Container != nil {
		return td.Container.Terminate(context.Background())
	}
	return nil
}

// SetupTestDB starts PostgreSQL in a container and migrates it.
// The test is skipped in -short mode.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping container-based test in short mode")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "fitsync_test",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("Skipping: could not start PostgreSQL container: %v", err)
	}

	// Get container host and port
	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := &config.Config{
		DBDriver:   "postgres",
		DBHost:     host,
		DBPort:     port.Port(),
		DBUser:     "test",
		DBPassword: "test",
		DBName:     "fitsync_test",
		DBSSLMode:  "disable",
		JWTSecret:  "test-secret",
	}

	db, err := database.New(cfg)
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	testDB := &TestDB{
		DB:        db,
		Config:    cfg,
		Container: container,
	}

	// Register cleanup
	t.Cleanup(func() {
		if err := testDB.Close(); err != nil {
			t.Logf("Error cleaning up test database: %v", err)
		}
	})

	return testDB
}
