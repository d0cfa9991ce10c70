package models

// Account is a linked external-provider identity. The (Provider,
// ProviderAccountID) pair is globally unique and is the lookup key for
// sign-in with an already-linked identity. Token bookkeeping fields are
// opaque to the adapter.
type Account struct {
	ID                string
	UserID            string
	Type              string
	Provider          string
	ProviderAccountID string
	RefreshToken      *string
	AccessToken       *string
	ExpiresAt         *int64
	TokenType         *string
	Scope             *string
	IDToken           *string
	SessionState      *string
}
