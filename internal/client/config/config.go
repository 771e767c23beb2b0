// Package config holds settings for the userdb command-line client:
// defaults, an optional JSON file (-c/-config) and command-line flags,
// applied in that order.
package config

import "time"

// Config holds runtime settings for the userdb client.
//
// Fields:
//   - ServerURL: base URL of the userdb HTTP API.
//   - RequestTimeout: per-request deadline.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
