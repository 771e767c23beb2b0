package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/userdb/internal/client/config"
	"github.com/dmitrijs2005/userdb/internal/client/models"
)

type fakeClient struct {
	regUser, regEmail string
	regPass           []byte
	regMsg            string
	regErr            error

	loginUser string
	loginPass []byte
	loginMsg  string
	loginErr  error

	users   []models.User
	listErr error

	getID  int64
	user   *models.User
	getErr error

	pingErr error
}

func (f *fakeClient) Register(_ context.Context, username, email string, password []byte) (string, error) {
	f.regUser, f.regEmail, f.regPass = username, email, append([]byte(nil), password...)
	return f.regMsg, f.regErr
}
func (f *fakeClient) Login(_ context.Context, username string, password []byte) (string, error) {
	f.loginUser, f.loginPass = username, append([]byte(nil), password...)
	return f.loginMsg, f.loginErr
}
func (f *fakeClient) ListUsers(context.Context) ([]models.User, error) { return f.users, f.listErr }
func (f *fakeClient) GetUser(_ context.Context, id int64) (*models.User, error) {
	f.getID = id
	return f.user, f.getErr
}
func (f *fakeClient) Ping(context.Context) error { return f.pingErr }

func newTestApp(fc *fakeClient, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return newApp(cfg, fc, strings.NewReader(input), &out), &out
}

// stubInputs replaces the prompt helpers with canned answers in order.
func stubInputs(t *testing.T, lines []string, password []byte) {
	t.Helper()
	origLine, origPass := askLine, askPassword
	i := 0
	askLine = func(_ *bufio.Reader, _ io.Writer, _ string) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		i++
		return lines[i-1], nil
	}
	askPassword = func(_ io.Writer, _ string) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		askLine = origLine
		askPassword = origPass
	})
}
