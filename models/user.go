// Package models defines the typed entity records persisted by the adapter.
// Optional columns are represented as pointer fields: a nil pointer means the
// column is NULL / absent.
package models

import "time"

// User is an identity record. Email is optional but unique when present.
type User struct {
	ID            string
	Name          *string
	Email         *string
	EmailVerified *time.Time
	Image         *string
}
