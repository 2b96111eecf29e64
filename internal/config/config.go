package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	App      AppConfig
	Client   ClientConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver   string // sqlite, sqlite3 or postgres
	Path     string // file path for the sqlite drivers
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port        string
	FrontendURL string
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Env       string
	JWTSecret string
}

// ClientConfig holds settings for the command line client
type ClientConfig struct {
	APIBaseURL string
	StorageDir string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			Path:     getEnv("DB_PATH", "data/sports_prediction.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "sports_prediction"),
		},
		Server: ServerConfig{
			Port:        getEnv("PORT", "3001"),
			FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		},
		App: AppConfig{
			Env:       getEnv("APP_ENV", EnvDevelopment),
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Client: ClientConfig{
			APIBaseURL: getEnv("API_BASE_URL", "http://localhost:3001"),
			StorageDir: getEnv("PREDICTIONS_DIR", ".sportpredict"),
		},
	}

	switch config.Database.Driver {
	case "sqlite", "sqlite3", "postgres":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", config.Database.Driver)
	}

	// Validate required fields
	if config.App.JWTSecret == "" {
		if config.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		config.App.JWTSecret = "development-only-secret"
	}

	return config, nil
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.App.Env == EnvProduction
}

// GetDSN returns the PostgreSQL connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

// getEnv gets an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
