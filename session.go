package authkeeper

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/authkeeper/common"
	"github.com/dmitrijs2005/authkeeper/models"
	"github.com/google/uuid"
)

// CreateSession inserts a session row and reads it back by its unique token.
// An empty ID is filled with a fresh UUID before the insert.
func (a *Adapter) CreateSession(ctx context.Context, session *models.Session) (*models.Session, error) {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}

	var created *models.Session
	err := a.multiStep(ctx, func(ctx context.Context, r repos) error {
		if err := r.session.Create(ctx, session); err != nil {
			return err
		}
		var err error
		created, err = r.session.GetByToken(ctx, session.SessionToken)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetSessionAndUser looks up a session by token and then its owning user.
// Returns (nil, nil, nil) when the session is absent. An existing session
// whose user is missing is treated the same way, so a dangling reference is
// never exposed to the caller; the orphan is logged.
func (a *Adapter) GetSessionAndUser(ctx context.Context, sessionToken string) (*models.Session, *models.User, error) {
	session, err := a.r.session.GetByToken(ctx, sessionToken)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	user, err := a.r.users.GetByID(ctx, session.UserID)
	if errors.Is(err, common.ErrorNotFound) {
		a.log.Warn(ctx, "session references missing user",
			"session_token", sessionToken, "user_id", session.UserID)
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return session, user, nil
}

// UpdateSession patches the session row identified by session.SessionToken
// and reads it back. Zero-valued Expires and empty UserID are left
// untouched. Updating a session that does not exist returns
// common.ErrorNotFound.
func (a *Adapter) UpdateSession(ctx context.Context, session *models.Session) (*models.Session, error) {
	var expires *time.Time
	if !session.Expires.IsZero() {
		expires = &session.Expires
	}
	var userID *string
	if session.UserID != "" {
		userID = &session.UserID
	}

	var updated *models.Session
	err := a.multiStep(ctx, func(ctx context.Context, r repos) error {
		if err := r.session.Update(ctx, session.SessionToken, expires, userID); err != nil {
			return err
		}
		var err error
		updated, err = r.session.GetByToken(ctx, session.SessionToken)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteSession removes a session by token and returns the row as it was
// before the delete. The fetch always happens first; the store's delete
// semantics are never relied on for the return value. Returns (nil, nil)
// when no such session exists.
func (a *Adapter) DeleteSession(ctx context.Context, sessionToken string) (*models.Session, error) {
	var deleted *models.Session
	err := a.multiStep(ctx, func(ctx context.Context, r repos) error {
		session, err := r.session.GetByToken(ctx, sessionToken)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return err
		}
		if err == nil {
			deleted = session
		}
		return r.session.DeleteByToken(ctx, sessionToken)
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
