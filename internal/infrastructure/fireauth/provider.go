package fireauth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"

	"github.com/huluca/repairshop-backend/internal/domain"
	"github.com/huluca/repairshop-backend/internal/domain/repository"
)

var (
	_ repository.IdentityProvider = (*Provider)(nil)
	_ repository.TokenVerifier    = (*Provider)(nil)
)

// Provider implements the identity-provider and token-verifier ports over
// Firebase Authentication.
type Provider struct {
	client *auth.Client
}

// New builds the auth adapter from an initialized Firebase app.
func New(ctx context.Context, app *firebase.App) (*Provider, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("create auth client: %w", err)
	}
	return &Provider{client: client}, nil
}

// CreateAccount creates an identity-provider account. A duplicate email maps
// to domain.ErrAlreadyExists; every other failure is propagated as-is for the
// caller to classify.
func (p *Provider) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", domain.ErrAlreadyExists
		}
		return "", fmt.Errorf("create identity account: %w", err)
	}
	return record.UID, nil
}

// Verify validates an ID token and returns the caller behind it.
func (p *Provider) Verify(ctx context.Context, idToken string) (*repository.Caller, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	email, _ := token.Claims["email"].(string)
	return &repository.Caller{UID: token.UID, Email: email}, nil
}
