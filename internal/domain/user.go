package domain

import "time"

// User is the credential record gating access to the registry. The auth core
// never mutates it after registration.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
