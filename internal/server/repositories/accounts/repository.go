// Package accounts persists models.Account rows in the users table.
package accounts

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/userdb/internal/server/models"
)

// Repository is the account store. Uniqueness of usernames is enforced by the
// database; Create reports a violation as common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	List(ctx context.Context) ([]*models.Account, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
}

// createdAtLayout is the textual form of users.created_at.
const createdAtLayout = time.RFC3339Nano

func formatCreatedAt(t time.Time) string {
	return t.UTC().Format(createdAtLayout)
}

func parseCreatedAt(s string) (time.Time, error) {
	t, err := time.Parse(createdAtLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid created_at %q: %w", s, err)
	}
	return t.UTC(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanPublic reads id, username, email, created_at.
func scanPublic(row rowScanner) (*models.Account, error) {
	var (
		account   models.Account
		createdAt string
	)
	if err := row.Scan(&account.ID, &account.Username, &account.Email, &createdAt); err != nil {
		return nil, err
	}
	t, err := parseCreatedAt(createdAt)
	if err != nil {
		return nil, err
	}
	account.CreatedAt = t
	return &account, nil
}

// scanWithDigest reads id, username, email, password_digest, created_at.
func scanWithDigest(row rowScanner) (*models.Account, error) {
	var (
		account   models.Account
		createdAt string
	)
	if err := row.Scan(&account.ID, &account.Username, &account.Email, &account.PasswordDigest, &createdAt); err != nil {
		return nil, err
	}
	t, err := parseCreatedAt(createdAt)
	if err != nil {
		return nil, err
	}
	account.CreatedAt = t
	return &account, nil
}
