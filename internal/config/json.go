package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/studentdesk/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling; empty fields
// leave the current Config values untouched.
type jsonConfig struct {
	DatabasePath string `json:"database_path"`
	LogLevel     string `json:"log_level"`
}

// parseJSON overlays Config with values loaded from the JSON file named by
// the -c/-config flags. When no file is given the function returns without
// effect; an unreadable or malformed file panics (startup-time failure).
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
