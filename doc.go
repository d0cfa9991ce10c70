// Package authkeeper maps a fixed set of authentication entities (users,
// sessions, linked external-provider accounts, one-time verification tokens)
// onto PostgreSQL and exposes them through the narrow capability contract
// consumed by an external authentication framework.
//
// The adapter holds no state of its own: all consistency guarantees
// (uniqueness, foreign-key integrity) are delegated to the database schema.
// Multi-step operations (insert+refetch, delete-cascade, fetch+delete) run
// as independent statements by default; the WithAtomicMultiStep option wraps
// each of them in a transaction.
package authkeeper
