package testutils

import (
	"context"
	"testing"

	"sport-predict/internal/auth"
	"sport-predict/internal/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory database with every table migrated.
// The handle is closed when the test ends.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get test database handle: %v", err)
	}
	// every pooled connection to :memory: would see its own empty database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// NewSeededDB returns a test database populated with the mock data
func NewSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := NewTestDB(t)
	if err := database.SeedMockData(context.Background(), db, auth.NewPasswordHasher(false)); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}
	return db
}
