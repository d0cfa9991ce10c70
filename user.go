package authkeeper

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/authkeeper/common"
	"github.com/dmitrijs2005/authkeeper/models"
	"github.com/google/uuid"
)

// CreateUser inserts a user row and reads it back. An empty ID is filled
// with a fresh UUID before the insert. The insert and the fetch are two
// independent statements unless WithAtomicMultiStep is set; a concurrent
// writer touching the row in between is an accepted race.
func (a *Adapter) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	var created *models.User
	err := a.multiStep(ctx, func(ctx context.Context, r repos) error {
		if err := r.users.Create(ctx, user); err != nil {
			return err
		}
		var err error
		if user.Email != nil {
			created, err = r.users.GetByEmail(ctx, *user.Email)
		} else {
			created, err = r.users.GetByID(ctx, user.ID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetUser looks up a user by id. Returns (nil, nil) when absent.
func (a *Adapter) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := a.r.users.GetByID(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmail looks up a user by its unique email. Returns (nil, nil)
// when absent.
func (a *Adapter) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := a.r.users.GetByEmail(ctx, email)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByAccount resolves the user owning the account identified by the
// unique (provider, providerAccountID) pair, using two sequential point
// lookups. Returns (nil, nil) when either the account or its user is absent.
func (a *Adapter) GetUserByAccount(ctx context.Context, provider, providerAccountID string) (*models.User, error) {
	account, err := a.r.account.GetByProvider(ctx, provider, providerAccountID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user, err := a.r.users.GetByID(ctx, account.UserID)
	if errors.Is(err, common.ErrorNotFound) {
		a.log.Warn(ctx, "account references missing user",
			"provider", provider, "provider_account_id", providerAccountID, "user_id", account.UserID)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser patches the user row identified by user.ID (nil optional
// fields are left untouched) and reads it back. Updating a user that does
// not exist returns common.ErrorNotFound.
func (a *Adapter) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	var updated *models.User
	err := a.multiStep(ctx, func(ctx context.Context, r repos) error {
		if err := r.users.Update(ctx, user); err != nil {
			return err
		}
		var err error
		updated, err = r.users.GetByID(ctx, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteUser removes the user and every row referencing it. Cascade order
// is sessions, then accounts, then the user row, so the FK constraints hold
// at each step. Without WithAtomicMultiStep a failure mid-cascade leaves
// the earlier deletes applied.
func (a *Adapter) DeleteUser(ctx context.Context, userID string) error {
	return a.multiStep(ctx, func(ctx context.Context, r repos) error {
		if err := r.session.DeleteByUserID(ctx, userID); err != nil {
			return err
		}
		if err := r.account.DeleteByUserID(ctx, userID); err != nil {
			return err
		}
		return r.users.DeleteByID(ctx, userID)
	})
}
