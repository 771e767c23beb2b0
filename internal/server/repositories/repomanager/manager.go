// Package repomanager vends dialect-specific repositories and runs the
// embedded schema migrations for that dialect.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/userdb/internal/dbx"
	"github.com/dmitrijs2005/userdb/internal/server/repositories/accounts"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	Dialect() string
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
}

// migrationLogger receives goose's progress output. It stays silent until
// SetMigrationLogger is called, so nothing reaches the stdlib log package.
var migrationLogger goose.Logger = goose.NopLogger()

// SetMigrationLogger routes goose output to l for all managers.
func SetMigrationLogger(l goose.Logger) {
	if l == nil {
		l = goose.NopLogger()
	}
	migrationLogger = l
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}
