package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/userdb/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-d string   database DSN: SQLite path or postgres:// URL
//	-p string   password hash algorithm
//	-l string   log level
//	-u bool     unified login errors
//	-s int      shutdown timeout, seconds
//	-o string   comma-separated CORS origins
//
// Only these flags are taken from os.Args (see flagx.FilterArgs), so the JSON
// config flag can coexist with them.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-p", "-l", "-u", "-s", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.HashAlgorithm, "p", config.HashAlgorithm, "password hash algorithm")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.UnifiedLoginErrors, "u", config.UnifiedLoginErrors, "same error for unknown user and wrong password")

	shutdownTimeout := fs.Int("s", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	origins := fs.String("o", strings.Join(config.CORSAllowedOrigins, ","), "CORS allowed origins, comma separated")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
	config.CORSAllowedOrigins = splitList(*origins)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
