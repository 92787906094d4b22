package auth

import "time"

// User is a domain entity representing a registered account.
type User struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
