package userRepo

import (
	"context"
	"errors"

	"localpro/models"
)

//go:generate mockgen -source=user_interface.go -destination=mocks/mock_user_repository.go -package=mocks

var ErrNotFound = errors.New("user not found")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
