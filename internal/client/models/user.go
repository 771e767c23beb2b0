// Package models defines the shapes the client receives from the server.
package models

import "time"

// User is an account as listed by the server. It never carries a password.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
