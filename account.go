package authkeeper

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/models"
	"github.com/google/uuid"
)

// LinkAccount inserts an account row and reads it back by the unique
// (provider, providerAccountID) pair. An empty ID is filled with a fresh
// UUID before the insert. A duplicate provider pair surfaces as the store's
// constraint violation, never as a silent no-op.
func (a *Adapter) LinkAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}

	var created *models.Account
	err := a.multiStep(ctx, func(ctx context.Context, r repos) error {
		if err := r.account.Create(ctx, account); err != nil {
			return err
		}
		var err error
		created, err = r.account.GetByProvider(ctx, account.Provider, account.ProviderAccountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UnlinkAccount removes the account row matching the (provider,
// providerAccountID) pair. Unlinking a pair that is not linked is a no-op.
func (a *Adapter) UnlinkAccount(ctx context.Context, provider, providerAccountID string) error {
	return a.r.account.DeleteByProvider(ctx, provider, providerAccountID)
}
