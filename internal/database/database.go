package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"sport-predict/internal/config"
	"sport-predict/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	sqlite3 "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open establishes the process-wide connection pool. The caller owns the
// returned handle and must release it with Close.
func Open(cfg config.DatabaseConfig, dsn string) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg, dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Error),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Printf("[Database] Connection established (driver=%s)", cfg.Driver)
	return db, nil
}

func dialectorFor(cfg config.DatabaseConfig, dsn string) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		return postgres.Open(dsn), nil
	case "sqlite", "sqlite3":
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
		if cfg.Driver == "sqlite3" {
			return sqlite3.Open(cfg.Path), nil
		}
		return sqlite.Open(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func ensureDir(path string) error {
	if path == "" || path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}
	return nil
}

// AutoMigrate creates or updates every table the service uses
func AutoMigrate(db *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Sport{},
		&models.Team{},
		&models.Match{},
		&models.Prediction{},
	}

	for _, model := range tables {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrating %T: %w", model, err)
		}
	}

	log.Println("[Database] Migrations completed successfully")
	return nil
}

// Ping verifies the connection is alive
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	log.Println("[Database] Connection closed")
	return nil
}
