package authkeeper

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/config"
	"github.com/dmitrijs2005/authkeeper/dbx"
	"github.com/dmitrijs2005/authkeeper/logging"
	"github.com/dmitrijs2005/authkeeper/repomanager"
	"github.com/dmitrijs2005/authkeeper/repositories/accounts"
	"github.com/dmitrijs2005/authkeeper/repositories/sessions"
	"github.com/dmitrijs2005/authkeeper/repositories/users"
	"github.com/dmitrijs2005/authkeeper/repositories/verificationtokens"
)

// Adapter implements the fourteen persistence operations of the
// authentication contract. It is safe for concurrent use: it holds no
// mutable state and performs no locking of its own.
type Adapter struct {
	db     *sql.DB
	rm     repomanager.RepositoryManager
	log    logging.Logger
	atomic bool
	ownsDB bool

	// repositories bound to the shared connection, used by single-step
	// operations; multi-step operations may rebind them to a transaction.
	r repos
}

// Option customizes an Adapter.
type Option func(*Adapter)

// WithLogger injects a structured logger. The default drops everything.
func WithLogger(l logging.Logger) Option {
	return func(a *Adapter) { a.log = l }
}

// WithAtomicMultiStep wraps each multi-step operation (insert+refetch,
// delete-cascade, fetch+delete) in a transaction. This strengthens the
// default non-transactional behavior without changing the external contract.
func WithAtomicMultiStep() Option {
	return func(a *Adapter) { a.atomic = true }
}

// WithRepositoryManager swaps the storage backend. The default is the
// PostgreSQL manager.
func WithRepositoryManager(rm repomanager.RepositoryManager) Option {
	return func(a *Adapter) { a.rm = rm }
}

// New constructs an Adapter over an existing database connection. The
// connection is injected once and held for the adapter's lifetime; the
// caller remains responsible for closing it.
func New(db *sql.DB, opts ...Option) *Adapter {
	a := &Adapter{
		db:  db,
		rm:  repomanager.NewPostgresRepositoryManager(),
		log: logging.NewDiscardLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.r = a.reposFor(db)
	return a
}

// Open connects to PostgreSQL using the given config, applies pool settings,
// optionally runs the embedded schema migrations, and returns a ready
// Adapter. Close releases the connection opened here.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*Adapter, error) {
	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	a := New(db, opts...)
	a.ownsDB = true

	if cfg.AutoMigrate {
		if err := a.rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration error: %w", err)
		}
	}

	return a, nil
}

// Close closes the underlying connection if the adapter opened it itself.
func (a *Adapter) Close() error {
	if !a.ownsDB {
		return nil
	}
	return a.db.Close()
}

// repos bundles per-entity repositories bound to one DBTX so a multi-step
// operation can run either on the shared connection or inside a transaction.
type repos struct {
	users   users.Repository
	session sessions.Repository
	account accounts.Repository
	tokens  verificationtokens.Repository
}

func (a *Adapter) reposFor(db dbx.DBTX) repos {
	return repos{
		users:   a.rm.Users(db),
		session: a.rm.Sessions(db),
		account: a.rm.Accounts(db),
		tokens:  a.rm.VerificationTokens(db),
	}
}

// multiStep runs fn against the shared connection, or inside a transaction
// when WithAtomicMultiStep is set.
func (a *Adapter) multiStep(ctx context.Context, fn func(ctx context.Context, r repos) error) error {
	if a.atomic {
		return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return fn(ctx, a.reposFor(tx))
		})
	}
	return fn(ctx, a.r)
}
