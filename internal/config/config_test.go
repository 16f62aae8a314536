// ABOUTME: Tests for fitness configuration management.
// ABOUTME: Covers load, save, env overrides, database path resolution, and path expansion.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points config and data lookups at a temp dir and clears the
// environment overrides.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	for _, k := range []string{"DB_PATH", "FITNESS_DATA_DIR", "FITNESS_LOG_LEVEL", "FITNESS_LOG_FILE", "FITNESS_LOG_JSON"} {
		t.Setenv(k, "")
	}
	return tmpDir
}

func TestGetDataDirDefault(t *testing.T) {
	tmpDir := isolate(t)

	cfg := &Config{}
	want := filepath.Join(tmpDir, "data", "fitness")
	if got := cfg.GetDataDir(); got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/fitness-data"}
	want := filepath.Join(home, "fitness-data")
	if got := cfg.GetDataDir(); got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestGetDBPath(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/fitness-test"}
	if got := cfg.GetDBPath(); got != "/tmp/fitness-test/fitness.db" {
		t.Errorf("GetDBPath() = %q", got)
	}

	cfg.DBPath = "/srv/fitness/ledger.db"
	if got := cfg.GetDBPath(); got != "/srv/fitness/ledger.db" {
		t.Errorf("GetDBPath() with DBPath = %q", got)
	}
}

func TestGetLogLevelDefault(t *testing.T) {
	if got := (&Config{}).GetLogLevel(); got != "info" {
		t.Errorf("GetLogLevel() = %q, want info", got)
	}
	if got := (&Config{LogLevel: "debug"}).GetLogLevel(); got != "debug" {
		t.Errorf("GetLogLevel() = %q, want debug", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := map[string]string{
		"":               "",
		"/tmp/foo":       "/tmp/foo",
		"~":              home,
		"~/data/fitness": filepath.Join(home, "data/fitness"),
		"data/fitness":   "data/fitness",
	}
	for in, want := range tests {
		if got := ExpandPath(in); got != want {
			t.Errorf("ExpandPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.DataDir != "" || cfg.DBPath != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	isolate(t)

	cfg := &Config{DataDir: "/tmp/fitness-data", LogLevel: "warn"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.DataDir != "/tmp/fitness-data" {
		t.Errorf("DataDir mismatch: got %q", loaded.DataDir)
	}
	if loaded.LogLevel != "warn" {
		t.Errorf("LogLevel mismatch: got %q", loaded.LogLevel)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)

	if err := (&Config{DataDir: "/from/file", LogLevel: "warn"}).Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	t.Setenv("DB_PATH", "/from/env/fitness.db")
	t.Setenv("FITNESS_LOG_JSON", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.GetDBPath() != "/from/env/fitness.db" {
		t.Errorf("GetDBPath() = %q", cfg.GetDBPath())
	}
	if cfg.DataDir != "/from/file" {
		t.Errorf("unset env var should keep file value, got %q", cfg.DataDir)
	}
	if !cfg.LogJSON {
		t.Error("expected LogJSON from environment")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestLoadInvalidEnv(t *testing.T) {
	isolate(t)
	t.Setenv("FITNESS_LOG_JSON", "sometimes")

	if _, err := Load(); err == nil {
		t.Error("expected error for unparseable FITNESS_LOG_JSON")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := isolate(t)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))

	if err := (&Config{}).Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}
	configDir := filepath.Join(tmpDir, "nonexistent", "fitness")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := isolate(t)

	configDir := filepath.Join(tmpDir, "fitness")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestOpenStore(t *testing.T) {
	cfg := &Config{DBPath: filepath.Join(t.TempDir(), "nested", "fitness.db")}

	store, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() failed: %v", err)
	}
	defer store.Close()

	if store.Path() != cfg.DBPath {
		t.Errorf("store path = %q, want %q", store.Path(), cfg.DBPath)
	}
}

func TestOpenStoreDefaultPath(t *testing.T) {
	tmpDir := isolate(t)

	store, err := (&Config{}).OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() failed: %v", err)
	}
	defer store.Close()

	want := filepath.Join(tmpDir, "data", "fitness", "fitness.db")
	if store.Path() != want {
		t.Errorf("store path = %q, want %q", store.Path(), want)
	}
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if got := GetConfigPath(); got != "/custom/config/fitness/config.json" {
		t.Errorf("GetConfigPath() = %q", got)
	}
}
