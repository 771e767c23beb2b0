// Package storage owns the database behind the account store: it picks the
// driver from the DSN, prepares the schema and hands out repositories.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userdb/internal/filex"
	"github.com/dmitrijs2005/userdb/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/userdb/internal/server/repositories/repomanager"
)

// sqliteBusyTimeout makes concurrent SQLite writers wait for the lock.
const sqliteBusyTimeout = "_pragma=busy_timeout(5000)"

const memoryDSN = ":memory:"

type Storage struct {
	db      *sql.DB
	manager repomanager.RepositoryManager
	path    string // sqlite file, empty for postgres and :memory:
}

// IsPostgresDSN reports whether dsn addresses a PostgreSQL server.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Open prepares a connection pool for dsn without touching the database.
// Postgres URLs use the pgx driver; anything else is a SQLite file path.
func Open(dsn string) (*Storage, error) {
	if IsPostgresDSN(dsn) {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return &Storage{db: db, manager: repomanager.NewPostgresRepositoryManager()}, nil
	}

	if dsn == "" {
		return nil, fmt.Errorf("empty database dsn")
	}

	path := sqliteFilePath(dsn)

	db, err := sql.Open("sqlite", sqliteDSN(dsn))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if path == "" {
		// every connection to :memory: would see its own empty database
		db.SetMaxOpenConns(1)
	}

	return &Storage{db: db, manager: repomanager.NewSQLiteRepositoryManager(), path: path}, nil
}

// sqliteFilePath returns the database file a SQLite DSN refers to, without
// the "file:" scheme or query parameters. In-memory databases have no file.
func sqliteFilePath(dsn string) string {
	path, query, _ := strings.Cut(dsn, "?")
	path = strings.TrimPrefix(path, "file:")
	if path == memoryDSN || path == "" || strings.Contains(query, "mode=memory") {
		return ""
	}
	return path
}

func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + sqliteBusyTimeout
}

// Initialize makes the store usable: it creates the directory of a SQLite
// file, checks connectivity and applies the schema. Calling it again on an
// initialized store changes nothing.
func (s *Storage) Initialize(ctx context.Context) error {
	if s.path != "" {
		if _, err := filex.EnsureParentDir(s.path); err != nil {
			return fmt.Errorf("storage dir: %w", err)
		}
	}

	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping %s: %w", s.manager.Dialect(), err)
	}

	if err := s.manager.RunMigrations(ctx, s.db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	return nil
}

// Accounts returns the account repository bound to the connection pool.
func (s *Storage) Accounts() accounts.Repository {
	return s.manager.Accounts(s.db)
}

func (s *Storage) DB() *sql.DB { return s.db }

func (s *Storage) Manager() repomanager.RepositoryManager { return s.manager }

func (s *Storage) Close() error {
	return s.db.Close()
}
