package repository

import "context"

// Caller is the authenticated identity the host attaches to a callable
// request: account id plus verified email.
type Caller struct {
	UID   string
	Email string
}

// IdentityProvider defines the port to the managed identity service.
type IdentityProvider interface {
	// CreateAccount creates an account and returns its id. A duplicate email
	// yields domain.ErrAlreadyExists.
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
}

// TokenVerifier validates a caller-supplied ID token.
type TokenVerifier interface {
	// Verify returns the caller behind a valid token, or
	// domain.ErrUnauthenticated when the token is missing, expired or forged.
	Verify(ctx context.Context, idToken string) (*Caller, error)
}
