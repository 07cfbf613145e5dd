package testhelpers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/fitsync-pro/backend/config"
	"github.com/pageza/fitsync-pro/backend/internal/database"
)

// SetupTestDatabase opens a migrated SQLite database that lives for the duration of the test
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "fitsync_test.db"),
	}

	db, err := database.New(cfg)
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
