// Package sessions declares the repository contract for persisting login
// sessions keyed by their unique session token.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/authkeeper/models"
)

// Repository defines storage operations over session rows.
type Repository interface {
	// Create inserts a new session row. The caller supplies the id.
	Create(ctx context.Context, session *models.Session) error

	// GetByToken looks up a session by its unique token. Returns
	// common.ErrorNotFound when the token is absent.
	GetByToken(ctx context.Context, token string) (*models.Session, error)

	// Update patches the row identified by token. Nil arguments leave the
	// stored values untouched.
	Update(ctx context.Context, token string, expires *time.Time, userID *string) error

	// DeleteByToken removes a session by its token. Deleting a non-existent
	// session is not an error.
	DeleteByToken(ctx context.Context, token string) error

	// DeleteByUserID removes every session owned by userID.
	DeleteByUserID(ctx context.Context, userID string) error
}
