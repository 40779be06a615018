// Package config loads runtime settings for the student desk application.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: path to the SQLite database file.
//   - LogLevel: minimum log level (debug, info, warn, error).
type Config struct {
	DatabasePath string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "students.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including an optional .env file), a JSON file (if -c or
// -config points at one), and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
