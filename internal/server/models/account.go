// Package models defines the server-side entities persisted by userdb.
package models

import "time"

// Account is a registered user identity. Rows are created once and never
// updated or deleted.
type Account struct {
	ID       int64
	Username string
	Email    string

	// PasswordDigest is the one-way hash of the password. It is only
	// populated by lookups that need it for authentication.
	PasswordDigest string

	// CreatedAt is the UTC creation instant.
	CreatedAt time.Time
}
