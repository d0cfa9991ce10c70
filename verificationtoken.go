package authkeeper

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/authkeeper/common"
	"github.com/dmitrijs2005/authkeeper/models"
)

// CreateVerificationToken inserts a verification token row and reads it back
// by its token (the primary key).
func (a *Adapter) CreateVerificationToken(ctx context.Context, token *models.VerificationToken) (*models.VerificationToken, error) {
	var created *models.VerificationToken
	err := a.multiStep(ctx, func(ctx context.Context, r repos) error {
		if err := r.tokens.Create(ctx, token); err != nil {
			return err
		}
		var err error
		created, err = r.tokens.GetByToken(ctx, token.Token)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UseVerificationToken consumes the token matching the (identifier, token)
// pair: the row is fetched and then deleted, so a second call with the same
// pair returns (nil, nil). Single use is the point; the delete always runs
// after a successful fetch.
func (a *Adapter) UseVerificationToken(ctx context.Context, identifier, token string) (*models.VerificationToken, error) {
	var used *models.VerificationToken
	err := a.multiStep(ctx, func(ctx context.Context, r repos) error {
		found, err := r.tokens.Get(ctx, identifier, token)
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		used = found
		return r.tokens.Delete(ctx, identifier, token)
	})
	if err != nil {
		return nil, err
	}
	return used, nil
}
