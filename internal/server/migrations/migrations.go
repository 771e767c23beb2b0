// Package migrations embeds the schema of the users table for each supported
// SQL dialect. Files follow goose's "-- +goose Up/Down" annotations.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS

// Directories inside Migrations, one per dialect.
const (
	SQLiteDir   = "sqlite"
	PostgresDir = "postgres"
)
