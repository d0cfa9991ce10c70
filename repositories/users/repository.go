// Package users declares the repository contract for persisting identity
// records.
package users

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/models"
)

// Repository defines storage operations over user rows. Lookup methods
// return common.ErrorNotFound when no row matches.
type Repository interface {
	// Create inserts a new user row. The caller supplies the id.
	Create(ctx context.Context, user *models.User) error

	// GetByID looks up a user by primary key.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail looks up a user by its unique email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Update patches the row identified by user.ID. Nil optional fields
	// leave the stored values untouched.
	Update(ctx context.Context, user *models.User) error

	// DeleteByID removes a user row. Deleting a non-existent user is not
	// an error.
	DeleteByID(ctx context.Context, id string) error
}
