package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/userdb/internal/client/client"
)

func TestRegister_Success(t *testing.T) {
	pw := []byte("secret")
	stubInputs(t, []string{"alice", "a@x.com"}, pw)

	fc := &fakeClient{regMsg: "Registration successful"}
	app, out := newTestApp(fc, "")

	require.NoError(t, app.Register(context.Background()))

	assert.Equal(t, "alice", fc.regUser)
	assert.Equal(t, "a@x.com", fc.regEmail)
	assert.Equal(t, []byte("secret"), fc.regPass)
	assert.Equal(t, make([]byte, 6), pw, "password must be wiped")
	assert.Contains(t, out.String(), "Registration successful")
	assert.Equal(t, ModeOnline, app.Mode)
	assert.False(t, app.isLoggedIn())
}

func TestRegister_Duplicate(t *testing.T) {
	stubInputs(t, []string{"alice", "a@x.com"}, []byte("secret"))

	fc := &fakeClient{regErr: &client.APIError{StatusCode: http.StatusBadRequest, Detail: "Username already exists"}}
	app, out := newTestApp(fc, "")

	err := app.Register(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "Error: Username already exists")
}

func TestRegister_InputError(t *testing.T) {
	stubInputs(t, nil, []byte("secret"))

	fc := &fakeClient{}
	app, _ := newTestApp(fc, "")

	require.Error(t, app.Register(context.Background()))
	assert.Empty(t, fc.regUser)
}

func TestLogin_Success(t *testing.T) {
	pw := []byte("secret")
	stubInputs(t, []string{"alice"}, pw)

	fc := &fakeClient{loginMsg: "Welcome, alice!"}
	app, out := newTestApp(fc, "")

	require.NoError(t, app.Login(context.Background()))

	assert.Equal(t, "alice", fc.loginUser)
	assert.Equal(t, []byte("secret"), fc.loginPass)
	assert.Equal(t, make([]byte, 6), pw)
	assert.True(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Welcome, alice!")
	assert.Equal(t, "(alice online)", app.getStatus())
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantOut  string
		wantMode Mode
	}{
		{
			name:     "wrong password",
			err:      &client.APIError{StatusCode: http.StatusBadRequest, Detail: "Incorrect password"},
			wantOut:  "Error: Incorrect password",
			wantMode: ModeOnline,
		},
		{
			name:     "server down",
			err:      fmt.Errorf("%w: dial tcp", client.ErrUnavailable),
			wantOut:  "Server unavailable",
			wantMode: ModeOffline,
		},
		{
			name:     "other",
			err:      errors.New("decode response: boom"),
			wantOut:  "Error: decode response: boom",
			wantMode: ModeOnline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubInputs(t, []string{"alice"}, []byte("wrong"))

			app, out := newTestApp(&fakeClient{loginErr: tt.err}, "")

			require.Error(t, app.Login(context.Background()))
			assert.False(t, app.isLoggedIn())
			assert.Contains(t, out.String(), tt.wantOut)
			assert.Equal(t, tt.wantMode, app.Mode)
		})
	}
}

func TestAuth_WipesPasswordOnFailure(t *testing.T) {
	failure := &client.APIError{StatusCode: http.StatusNotFound, Detail: "User not found"}

	pw := []byte("secret")
	stubInputs(t, []string{"alice", "a@x.com"}, pw)
	app, _ := newTestApp(&fakeClient{regErr: failure}, "")
	require.Error(t, app.Register(context.Background()))
	assert.Equal(t, make([]byte, 6), pw)

	pw = []byte("secret")
	stubInputs(t, []string{"alice"}, pw)
	app, _ = newTestApp(&fakeClient{loginErr: failure}, "")
	require.Error(t, app.Login(context.Background()))
	assert.Equal(t, make([]byte, 6), pw)
}
