package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userdb/internal/flagx"
	"github.com/dmitrijs2005/userdb/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Pointer fields distinguish an
// absent key from a zero value, so a partial file only overrides what it sets.
// Durations accept "5s" or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP   *string         `json:"endpoint_addr_http"`
	DatabaseDSN        *string         `json:"database_dsn"`
	HashAlgorithm      *string         `json:"hash_algorithm"`
	LogLevel           *string         `json:"log_level"`
	UnifiedLoginErrors *bool           `json:"unified_login_errors"`
	ShutdownTimeout    *timex.Duration `json:"shutdown_timeout"`
	CORSAllowedOrigins []string        `json:"cors_allowed_origins"`
}

// parseJson overlays config with the JSON file named by -c or -config.
// Without either flag nothing is loaded. Unreadable files and invalid JSON
// panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != nil {
		config.EndpointAddrHTTP = *c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.HashAlgorithm != nil {
		config.HashAlgorithm = *c.HashAlgorithm
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
	if c.UnifiedLoginErrors != nil {
		config.UnifiedLoginErrors = *c.UnifiedLoginErrors
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.CORSAllowedOrigins != nil {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
}
