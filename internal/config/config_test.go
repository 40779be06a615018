package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"app"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Equal(t, "students.db", cfg.DatabasePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("DATABASE_PATH", "/tmp/env.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/env.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/env.db")
	resetArgs(t, "-d", "/tmp/flag.db")

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/flag.db", cfg.DatabasePath)
}

func TestLoadConfig_JSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	data, err := json.Marshal(jsonConfig{DatabasePath: "/tmp/json.db", LogLevel: "warn"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	resetArgs(t, "-c", path)
	cfg := LoadConfig()
	assert.Equal(t, "/tmp/json.db", cfg.DatabasePath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_FlagBeatsJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_path":"/tmp/json.db"}`), 0o600))

	resetArgs(t, "-c", path, "-d", "/tmp/flag.db")
	cfg := LoadConfig()
	assert.Equal(t, "/tmp/flag.db", cfg.DatabasePath)
}

func TestParseJSON_MalformedPanics(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	resetArgs(t, "-c", path)
	assert.Panics(t, func() { LoadConfig() })
}
