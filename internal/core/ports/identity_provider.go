package ports

import (
	"context"
	"time"
)

// ProviderSession is the outcome of a successful call to an external
// identity provider: a bearer token minted by the provider.
type ProviderSession struct {
	Subject     string
	AccessToken string
	ExpiresAt   time.Time
}

// IdentityProvider delegates credential handling to an external service.
// Used by the provider-backed AuthService strategy; the local strategy never
// touches it.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (*ProviderSession, error)
	SignIn(ctx context.Context, email, password string) (*ProviderSession, error)
}
