package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/common"
	"github.com/dmitrijs2005/authkeeper/dbx"
	"github.com/dmitrijs2005/authkeeper/models"
)

// PostgresRepository implements account storage over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts
		(id, user_id, type, provider, provider_account_id,
		 refresh_token, access_token, expires_at, token_type, scope, id_token, session_state)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	if _, err := r.db.ExecContext(ctx, query,
		account.ID, account.UserID, account.Type, account.Provider, account.ProviderAccountID,
		account.RefreshToken, account.AccessToken, account.ExpiresAt, account.TokenType,
		account.Scope, account.IDToken, account.SessionState); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByProvider(ctx context.Context, provider, providerAccountID string) (*models.Account, error) {
	query := `
		SELECT id, user_id, type, provider, provider_account_id,
		       refresh_token, access_token, expires_at, token_type, scope, id_token, session_state
		FROM accounts
		WHERE provider = $1 AND provider_account_id = $2
	`
	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, provider, providerAccountID).Scan(
		&account.ID, &account.UserID, &account.Type, &account.Provider, &account.ProviderAccountID,
		&account.RefreshToken, &account.AccessToken, &account.ExpiresAt, &account.TokenType,
		&account.Scope, &account.IDToken, &account.SessionState)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}

func (r *PostgresRepository) DeleteByProvider(ctx context.Context, provider, providerAccountID string) error {
	query := `
		DELETE FROM accounts
		WHERE provider = $1 AND provider_account_id = $2
	`
	if _, err := r.db.ExecContext(ctx, query, provider, providerAccountID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByUserID(ctx context.Context, userID string) error {
	query := `
		DELETE FROM accounts
		WHERE user_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
