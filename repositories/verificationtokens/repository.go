// Package verificationtokens declares the repository contract for single-use
// verification tokens used in passwordless/email flows.
package verificationtokens

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/models"
)

// Repository defines storage operations over verification token rows.
// Lookup methods return common.ErrorNotFound when no row matches.
type Repository interface {
	// Create inserts a new verification token row.
	Create(ctx context.Context, token *models.VerificationToken) error

	// GetByToken looks up a row by its token (the primary key).
	GetByToken(ctx context.Context, token string) (*models.VerificationToken, error)

	// Get looks up a row by the unique (identifier, token) pair.
	Get(ctx context.Context, identifier, token string) (*models.VerificationToken, error)

	// Delete removes the row matching the (identifier, token) pair.
	// Deleting a non-existent row is not an error.
	Delete(ctx context.Context, identifier, token string) error
}
