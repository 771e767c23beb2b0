// Package common defines sentinel errors shared by the storage, service and
// transport layers of userdb. Callers should use errors.Is to match them.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrCredentialMismatch = errors.New("credential mismatch")
	ErrorUnauthorized     = errors.New("unauthorized")
	ErrorInternal         = errors.New("internal error")
)
