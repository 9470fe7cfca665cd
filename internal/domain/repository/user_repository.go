package repository

import "github.com/rkeng/billing-api/internal/domain/entity"

// UserRepository defines the persistence port for User.
// Lookup methods return (nil, nil) when no row matches.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	// UpdatePassword persists a new password hash for the user.
	UpdatePassword(id, passwordHash string) error
}
