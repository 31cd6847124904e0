package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is the outcome of a successful login.
type Session struct {
	Token     string
	ExpiresIn int64
}
