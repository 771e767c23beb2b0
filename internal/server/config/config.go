// Package config handles configuration for the userdb server,
// including defaults, JSON overlay, command-line flags and validation.
package config

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the userdb server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the HTTP API.
//   - DatabaseDSN: SQLite file path (created on first start) or a postgres:// URL.
//   - HashAlgorithm: password digest, one of sha256, sha3-256, blake2b-256.
//   - LogLevel: debug, info, warn or error.
//   - UnifiedLoginErrors: report unknown user and wrong password identically.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
//   - CORSAllowedOrigins: origins allowed by the CORS middleware.
type Config struct {
	EndpointAddrHTTP   string `validate:"required"`
	DatabaseDSN        string `validate:"required"`
	HashAlgorithm      string `validate:"oneof=sha256 sha3-256 blake2b-256"`
	LogLevel           string `validate:"oneof=debug info warn error"`
	UnifiedLoginErrors bool
	ShutdownTimeout    time.Duration `validate:"min=0"`
	CORSAllowedOrigins []string      `validate:"required,min=1,dive,required"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8000"
	c.DatabaseDSN = "db/UserDB.sqlite"
	c.HashAlgorithm = "sha256"
	c.LogLevel = "info"
	c.UnifiedLoginErrors = false
	c.ShutdownTimeout = 5 * time.Second
	c.CORSAllowedOrigins = []string{"*"}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints declared in the struct tags.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
