// Package users stores identity records. Usernames are unique; lookups by
// login expect the already-normalized (lowercase, trimmed) form.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophwallet/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills in its ID. A taken username yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, profile models.UserProfile) error
	// Find returns users whose first or last name contains filter,
	// case-insensitively, ordered by username.
	Find(ctx context.Context, filter string, limit int) ([]*models.User, error)
}
