package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-d", "postgres://u:p@db/users", "-p", "blake2b-256",
				"-l", "debug", "-u", "-s", "10", "-o", "http://a.example, http://b.example",
			},
			expected: &Config{
				EndpointAddrHTTP:   "127.0.0.1:9090",
				DatabaseDSN:        "postgres://u:p@db/users",
				HashAlgorithm:      "blake2b-256",
				LogLevel:           "debug",
				UnifiedLoginErrors: true,
				ShutdownTimeout:    10 * time.Second,
				CORSAllowedOrigins: []string{"http://a.example", "http://b.example"},
			},
		},
		{
			name: "unknown flags ignored, defaults kept",
			args: []string{"cmd", "-c", "server.json", "-x", "1", "-a", ":9000"},
			expected: &Config{
				EndpointAddrHTTP:   ":9000",
				DatabaseDSN:        "db/UserDB.sqlite",
				HashAlgorithm:      "sha256",
				LogLevel:           "info",
				ShutdownTimeout:    5 * time.Second,
				CORSAllowedOrigins: []string{"*"},
			},
		},
		{
			name:        "non-numeric timeout",
			args:        []string{"cmd", "-s", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			config.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,, b ,"))
	assert.Nil(t, splitList(""))
}
