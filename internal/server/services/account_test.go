package services

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userdb/internal/common"
	"github.com/dmitrijs2005/userdb/internal/cryptox"
	"github.com/dmitrijs2005/userdb/internal/dbx"
	"github.com/dmitrijs2005/userdb/internal/server/config"
	"github.com/dmitrijs2005/userdb/internal/server/models"
	"github.com/dmitrijs2005/userdb/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/userdb/internal/server/storage"
)

// --- helpers ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newTestConfig(unified bool) *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.UnifiedLoginErrors = unified
	return cfg
}

// newStoreService wires the service to a real SQLite file in a temp dir.
func newStoreService(t *testing.T, unified bool) (*AccountService, *storage.Storage) {
	t.Helper()
	st, err := storage.Open(filepath.Join(t.TempDir(), "UserDB.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Initialize(context.Background()))

	return NewAccountService(st.DB(), st.Manager(), cryptox.HashPassword, newTestConfig(unified)), st
}

type fakeAccountsRepo struct {
	createErr error
	listErr   error
	getErr    error
	byNameErr error
}

func (f *fakeAccountsRepo) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	return nil, f.createErr
}
func (f *fakeAccountsRepo) List(ctx context.Context) ([]*models.Account, error) {
	return nil, f.listErr
}
func (f *fakeAccountsRepo) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	return nil, f.getErr
}
func (f *fakeAccountsRepo) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	return nil, f.byNameErr
}

type fakeRepoManager struct {
	repo *fakeAccountsRepo
}

func (m *fakeRepoManager) Dialect() string                              { return "fake" }
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(db dbx.DBTX) accounts.Repository     { return m.repo }

func newFakeService(repo *fakeAccountsRepo) *AccountService {
	return NewAccountService(nil, &fakeRepoManager{repo: repo}, cryptox.HashPassword, newTestConfig(false))
}

// --- register ---

func TestRegister_StoresDigestNotPlaintext(t *testing.T) {
	s, st := newStoreService(t, false)
	fixed := time.Date(2026, 10, 18, 12, 0, 0, 0, time.FixedZone("KST", 9*3600))
	s.now = func() time.Time { return fixed }
	ctx := context.Background()

	acc, err := s.Register(ctx, "alice", "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), acc.ID)
	assert.Empty(t, acc.PasswordDigest, "digest must not leave the service")
	assert.Equal(t, fixed.UTC(), acc.CreatedAt)

	stored, err := st.Accounts().GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, cryptox.HashPassword("secret"), stored.PasswordDigest)
	assert.NotEqual(t, "secret", stored.PasswordDigest)
	assert.Equal(t, time.Date(2026, 10, 18, 3, 0, 0, 0, time.UTC), stored.CreatedAt)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	s, st := newStoreService(t, false)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "a@x.com", "secret")
	require.NoError(t, err)

	_, err = s.Register(ctx, "alice", "other@x.com", "other")
	assert.True(t, errors.Is(err, common.ErrDuplicateUsername))

	var n int
	require.NoError(t, st.DB().QueryRow(`SELECT COUNT(*) FROM users WHERE username = ?`, "alice").Scan(&n))
	assert.Equal(t, 1, n)
}

func TestRegister_NoFieldValidation(t *testing.T) {
	s, _ := newStoreService(t, false)

	_, err := s.Register(context.Background(), "bob", "not-an-email", "")
	assert.NoError(t, err)
}

func TestRegister_RepoError(t *testing.T) {
	s := newFakeService(&fakeAccountsRepo{createErr: errBoom{}})

	_, err := s.Register(context.Background(), "alice", "a@x.com", "secret")
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`error creating account: .*boom`), err.Error())
	assert.False(t, errors.Is(err, common.ErrDuplicateUsername))
}

// --- authenticate ---

func TestAuthenticate_MatchesOnlyRegistrationPassword(t *testing.T) {
	s, _ := newStoreService(t, false)
	ctx := context.Background()

	creds := map[string]string{"alice": "secret", "bob": "hunter2", "carol": ""}
	for u, p := range creds {
		_, err := s.Register(ctx, u, u+"@x.com", p)
		require.NoError(t, err)
	}

	for u, p := range creds {
		got, err := s.Authenticate(ctx, u, p)
		require.NoError(t, err, u)
		assert.Equal(t, u, got)

		_, err = s.Authenticate(ctx, u, p+"x")
		assert.True(t, errors.Is(err, common.ErrCredentialMismatch), u)
	}
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	s, _ := newStoreService(t, false)

	_, err := s.Authenticate(context.Background(), "ghost", "secret")
	assert.True(t, errors.Is(err, common.ErrAccountNotFound))
}

func TestAuthenticate_UnifiedErrors(t *testing.T) {
	s, _ := newStoreService(t, true)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "a@x.com", "secret")
	require.NoError(t, err)

	_, errUnknown := s.Authenticate(ctx, "ghost", "secret")
	_, errWrong := s.Authenticate(ctx, "alice", "wrong")

	assert.True(t, errors.Is(errUnknown, common.ErrorUnauthorized))
	assert.True(t, errors.Is(errWrong, common.ErrorUnauthorized))
	assert.True(t, errors.Is(errUnknown, common.ErrAccountNotFound))
	assert.True(t, errors.Is(errWrong, common.ErrCredentialMismatch))

	got, err := s.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
}

func TestAuthenticate_RepoError(t *testing.T) {
	s := newFakeService(&fakeAccountsRepo{byNameErr: errBoom{}})

	_, err := s.Authenticate(context.Background(), "alice", "secret")
	assert.Regexp(t, regexp.MustCompile(`error searching account: .*boom`), err.Error())
}

// --- reads ---

func TestListAndGet(t *testing.T) {
	s, _ := newStoreService(t, false)
	ctx := context.Background()

	for _, u := range []string{"a", "b", "c"} {
		_, err := s.Register(ctx, u, u+"@x.com", "pw-"+u)
		require.NoError(t, err)
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, u := range []string{"a", "b", "c"} {
		assert.Equal(t, int64(i+1), list[i].ID)
		assert.Equal(t, u, list[i].Username)
		assert.Equal(t, u+"@x.com", list[i].Email)
		assert.Empty(t, list[i].PasswordDigest)
		assert.False(t, list[i].CreatedAt.IsZero())
	}

	got, err := s.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Username)

	_, err = s.Get(ctx, 999)
	assert.True(t, errors.Is(err, common.ErrAccountNotFound))
}

func TestListAndGet_RepoErrors(t *testing.T) {
	s := newFakeService(&fakeAccountsRepo{listErr: errBoom{}, getErr: errBoom{}})

	_, err := s.List(context.Background())
	assert.Regexp(t, regexp.MustCompile(`error listing accounts: .*boom`), err.Error())

	_, err = s.Get(context.Background(), 1)
	assert.Regexp(t, regexp.MustCompile(`error getting account: .*boom`), err.Error())
	assert.False(t, errors.Is(err, common.ErrAccountNotFound))
}
