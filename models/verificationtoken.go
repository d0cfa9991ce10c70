package models

import "time"

// VerificationToken is a single-use secret for passwordless/email flows.
// Token is the primary key; the (Token, Identifier) pair is unique. A token
// is consumed (deleted) exactly once.
type VerificationToken struct {
	Identifier string
	Token      string
	Expires    time.Time
}
