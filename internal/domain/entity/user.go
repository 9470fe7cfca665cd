package entity

import "time"

// User represents an account owner. Passwords are stored only as bcrypt hashes.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
