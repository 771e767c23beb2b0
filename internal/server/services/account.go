// Package services contains server-side business logic. This file implements
// AccountService, which registers accounts, lists them and checks login
// credentials.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/userdb/internal/common"
	"github.com/dmitrijs2005/userdb/internal/cryptox"
	"github.com/dmitrijs2005/userdb/internal/server/config"
	"github.com/dmitrijs2005/userdb/internal/server/models"
	"github.com/dmitrijs2005/userdb/internal/server/repositories/repomanager"
)

// AccountService provides account operations:
// - Register: create an account with a hashed password
// - Authenticate: verify a username/password pair
// - List, Get: read accounts without their digests
type AccountService struct {
	db                 *sql.DB
	repomanager        repomanager.RepositoryManager
	hash               cryptox.HashFunc
	unifiedLoginErrors bool
	now                func() time.Time
}

// NewAccountService constructs an AccountService using repositories, the
// password hasher and server config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, hash cryptox.HashFunc, cfg *config.Config) *AccountService {
	return &AccountService{
		db:                 db,
		repomanager:        m,
		hash:               hash,
		unifiedLoginErrors: cfg.UnifiedLoginErrors,
		now:                time.Now,
	}
}

// Register stores a new account. The username's uniqueness is left to the
// database; a clash yields common.ErrDuplicateUsername.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*models.Account, error) {
	account := &models.Account{
		Username:       username,
		Email:          email,
		PasswordDigest: s.hash(password),
		CreatedAt:      s.now().UTC(),
	}

	repo := s.repomanager.Accounts(s.db)
	created, err := repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	created.PasswordDigest = ""
	return created, nil
}

// Authenticate checks password against the stored digest of username and
// returns the username on success. Failures are common.ErrAccountNotFound or
// common.ErrCredentialMismatch. With unified login errors configured both are
// additionally wrapped in common.ErrorUnauthorized, which callers should test
// for first.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Accounts(s.db)
	account, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", s.loginFailure(common.ErrAccountNotFound)
		}
		return "", fmt.Errorf("error searching account: %w", err)
	}

	if !cryptox.DigestsEqual(account.PasswordDigest, s.hash(password)) {
		return "", s.loginFailure(common.ErrCredentialMismatch)
	}

	return account.Username, nil
}

func (s *AccountService) loginFailure(err error) error {
	if s.unifiedLoginErrors {
		return fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}
	return err
}

// List returns all accounts in creation order.
func (s *AccountService) List(ctx context.Context) ([]*models.Account, error) {
	list, err := s.repomanager.Accounts(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing accounts: %w", err)
	}
	return list, nil
}

// Get returns the account with the given id or common.ErrAccountNotFound.
func (s *AccountService) Get(ctx context.Context, id int64) (*models.Account, error) {
	account, err := s.repomanager.Accounts(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error getting account: %w", err)
	}
	return account, nil
}
