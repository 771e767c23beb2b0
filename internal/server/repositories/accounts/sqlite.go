package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userdb/internal/common"
	"github.com/dmitrijs2005/userdb/internal/dbx"
	"github.com/dmitrijs2005/userdb/internal/server/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_digest, created_at) VALUES (?, ?, ?, ?)`,
		account.Username, account.Email, account.PasswordDigest, formatCreatedAt(account.CreatedAt))
	if err != nil {
		if isSQLiteUniqueViolation(err) {
			return nil, fmt.Errorf("username %q: %w", account.Username, common.ErrorAlreadyExists)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	created := *account
	created.ID = id
	created.CreatedAt = account.CreatedAt.UTC()
	return &created, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.Account, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, username, email, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Account, 0)
	for rows.Next() {
		account, err := scanPublic(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		result = append(result, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, username, email, created_at FROM users WHERE id = ?`, id)
	account, err := scanPublic(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to get account[%d]: %w", id, err)
	}
	return account, nil
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_digest, created_at FROM users WHERE username = ?`, username)
	account, err := scanWithDigest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to get account[%s]: %w", username, err)
	}
	return account, nil
}

// isSQLiteUniqueViolation reports a UNIQUE or PRIMARY KEY constraint
// failure. Other constraint failures (NOT NULL, CHECK) are not duplicates.
func isSQLiteUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	default:
		return false
	}
}
