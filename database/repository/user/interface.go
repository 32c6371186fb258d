package userRepo

import (
	"carhive/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetByID retrieves a user by its unique ID. Returns nil if absent.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns nil if absent.
	GetByEmail(email string) (*models.User, error)
}
