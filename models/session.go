package models

import "time"

// Session is a live login session. SessionToken uniquely identifies at most
// one row; UserID references an existing User (enforced by the schema's
// foreign key, not by the adapter).
type Session struct {
	ID           string
	SessionToken string
	UserID       string
	Expires      time.Time
}
