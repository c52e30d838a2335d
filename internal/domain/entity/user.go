package entity

import "time"

// User is an operator account. Username is unique.
type User struct {
	ID           string
	Username     string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, never the plain password
	CreatedAt    time.Time
	LastUpdated  time.Time
}
