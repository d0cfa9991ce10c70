package verificationtokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/common"
	"github.com/dmitrijs2005/authkeeper/dbx"
	"github.com/dmitrijs2005/authkeeper/models"
)

// PostgresRepository implements verification token storage over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, token *models.VerificationToken) error {
	query := `
		INSERT INTO verification_tokens (identifier, token, expires)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query,
		token.Identifier, token.Token, token.Expires); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*models.VerificationToken, error) {
	query := `
		SELECT identifier, token, expires FROM verification_tokens
		WHERE token = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, token))
}

func (r *PostgresRepository) Get(ctx context.Context, identifier, token string) (*models.VerificationToken, error) {
	query := `
		SELECT identifier, token, expires FROM verification_tokens
		WHERE identifier = $1 AND token = $2
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, identifier, token))
}

func (r *PostgresRepository) Delete(ctx context.Context, identifier, token string) error {
	query := `
		DELETE FROM verification_tokens
		WHERE identifier = $1 AND token = $2
	`
	if _, err := r.db.ExecContext(ctx, query, identifier, token); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.VerificationToken, error) {
	token := &models.VerificationToken{}
	err := row.Scan(&token.Identifier, &token.Token, &token.Expires)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return token, nil
}
