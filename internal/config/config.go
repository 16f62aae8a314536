// ABOUTME: Fitness configuration: JSON file plus environment overrides.
// ABOUTME: Resolves the database path, data directory and logging settings.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/harperreed/fitness/internal/storage"
)

// Config stores fitness tool configuration.
type Config struct {
	// DataDir is the directory holding fitness.db. Supports ~ expansion.
	// Defaults to ~/.local/share/fitness.
	DataDir string `json:"data_dir,omitempty" env:"FITNESS_DATA_DIR"`

	// DBPath is the full database path and wins over DataDir.
	DBPath string `json:"db_path,omitempty" env:"DB_PATH"`

	LogLevel string `json:"log_level,omitempty" env:"FITNESS_LOG_LEVEL"`
	LogFile  string `json:"log_file,omitempty" env:"FITNESS_LOG_FILE"`
	LogJSON  bool   `json:"log_json,omitempty" env:"FITNESS_LOG_JSON"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDBPath returns the database file path.
func (c *Config) GetDBPath() string {
	if c.DBPath != "" {
		return ExpandPath(c.DBPath)
	}
	return filepath.Join(c.GetDataDir(), "fitness.db")
}

// GetLogLevel defaults to info.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore opens the SQLite ledger at GetDBPath.
func (c *Config) OpenStore() (*storage.Store, error) {
	if c.DBPath == "" && c.DataDir == "" {
		return storage.OpenDefault()
	}
	return storage.Open(c.GetDBPath())
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitness", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(GetConfigPath())
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
