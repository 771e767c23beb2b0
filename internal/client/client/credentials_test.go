package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsBody(t *testing.T) {
	tests := []struct {
		name     string
		password string
		email    []string
		want     map[string]string
	}{
		{
			name:     "login",
			password: "secret",
			want:     map[string]string{"username": "al\"ice", "password": "secret"},
		},
		{
			name:     "register with empty email",
			password: "secret",
			email:    []string{""},
			want:     map[string]string{"username": "al\"ice", "email": "", "password": "secret"},
		},
		{
			name:     "escaped password",
			password: "q\"b\\s\n\r\t\x01ü",
			email:    []string{"a@x.com"},
			want:     map[string]string{"username": "al\"ice", "email": "a@x.com", "password": "q\"b\\s\n\r\t\x01ü"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := credentialsBody("al\"ice", []byte(tt.password), tt.email...)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(body), cap(body))

			var got map[string]string
			require.NoError(t, json.Unmarshal(body, &got), string(body))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegister_PasswordWithSpecialCharacters(t *testing.T) {
	c, rec := newTestServer(t, http.StatusOK, `{"message":"ok"}`)
	pw := []byte("p\"a\\ss\x7fword")

	_, err := c.Register(context.Background(), "alice", "a@x.com", pw)
	require.NoError(t, err)

	assert.Equal(t, "p\"a\\ss\x7fword", rec.body["password"])
	assert.Equal(t, []byte("p\"a\\ss\x7fword"), pw, "caller's buffer is left for the caller to wipe")
}
