// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Backend selects the storage implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// Config holds every setting the gym desk reads at startup.
type Config struct {
	// DataDir holds plans.txt, equipment.txt and members.txt.
	DataDir string

	Backend Backend

	// SQLitePath is used when Backend is BackendSQLite. Empty means
	// gym.db inside DataDir.
	SQLitePath string

	AdminUsername string
	AdminPassword string

	// AdminPasswordHash, when set, is a bcrypt hash that replaces
	// AdminPassword.
	AdminPasswordHash string

	// MetricsFile receives a Prometheus text dump at shutdown. Empty
	// disables it.
	MetricsFile string

	LogLevel string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		DataDir:       "data",
		Backend:       BackendFile,
		AdminUsername: "admin",
		AdminPassword: "admin123",
		LogLevel:      "info",
	}
}

// Load reads settings from the environment on top of Default. It does not
// validate them: command-line flags may still override what it returns.
func Load() Config {
	def := Default()
	return Config{
		DataDir:           getEnv("GYM_DATA_DIR", def.DataDir),
		Backend:           Backend(getEnv("GYM_BACKEND", string(def.Backend))),
		SQLitePath:        getEnv("GYM_SQLITE_PATH", ""),
		AdminUsername:     getEnv("GYM_ADMIN_USERNAME", def.AdminUsername),
		AdminPassword:     getEnv("GYM_ADMIN_PASSWORD", def.AdminPassword),
		AdminPasswordHash: getEnv("GYM_ADMIN_PASSWORD_HASH", ""),
		MetricsFile:       getEnv("GYM_METRICS_FILE", ""),
		LogLevel:          getEnv("LOG_LEVEL", def.LogLevel),
	}
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, BackendFile, BackendSQLite)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data directory must not be empty")
	}
	if c.AdminUsername == "" {
		return fmt.Errorf("admin username must not be empty")
	}
	return nil
}

// DatabasePath returns the SQLite file to use.
func (c Config) DatabasePath() string {
	if c.SQLitePath != "" {
		return c.SQLitePath
	}
	return filepath.Join(c.DataDir, "gym.db")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
