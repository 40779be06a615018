// Package users contains the durable store for login credentials.
package users

import (
	"context"

	"github.com/dmitrijs2005/studentdesk/internal/models"
)

// Repository is the keyed store for User records. Username uniqueness is
// guaranteed by a durable constraint; a violating write surfaces as a
// DuplicateKeyError.
type Repository interface {
	// Add inserts a validated user and returns the assigned id.
	Add(ctx context.Context, u *models.User) (int64, error)

	// GetByUsername returns the user with the given username or
	// common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Count returns the total number of stored users.
	Count(ctx context.Context) (int, error)
}
