// Package repomanager wires together the per-entity repositories and the
// schema migration surface for a concrete storage backend.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/authkeeper/dbx"
	"github.com/dmitrijs2005/authkeeper/repositories/accounts"
	"github.com/dmitrijs2005/authkeeper/repositories/sessions"
	"github.com/dmitrijs2005/authkeeper/repositories/users"
	"github.com/dmitrijs2005/authkeeper/repositories/verificationtokens"
)

// RepositoryManager vends repository implementations bound to a DBTX and
// exposes the two schema operations: create all tables (RunMigrations) and
// drop them again in reverse order (ResetMigrations).
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	ResetMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Accounts(db dbx.DBTX) accounts.Repository
	VerificationTokens(db dbx.DBTX) verificationtokens.Repository
}
