// Package accounts declares the repository contract for persisting linked
// external-provider identities.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/models"
)

// Repository defines storage operations over account rows. The
// (provider, providerAccountID) pair is unique, so lookups by it match at
// most one row.
type Repository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByProvider(ctx context.Context, provider, providerAccountID string) (*models.Account, error)
	DeleteByProvider(ctx context.Context, provider, providerAccountID string) error
	DeleteByUserID(ctx context.Context, userID string) error
}
