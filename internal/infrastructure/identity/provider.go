// Package identity implements the external identity provider client used by
// the provider-delegated authentication strategy.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/merqado/commerce-api/internal/core/domain"
	"github.com/merqado/commerce-api/internal/core/ports"
)

const requestTimeout = 10 * time.Second

// Provider talks to an external identity service over HTTP. The service owns
// credential storage and token issuance; this client only exchanges
// email/password for a session.
type Provider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewProvider creates a Provider for the given base URL and API key.
func NewProvider(baseURL, apiKey string) *Provider {
	return &Provider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// SignUp registers the credential with the provider and returns the session
// it minted for the new account.
func (p *Provider) SignUp(ctx context.Context, email, password string) (*ports.ProviderSession, error) {
	return p.exchange(ctx, "/auth/v1/signup", email, password)
}

// SignIn verifies the credential with the provider. Any rejection surfaces as
// ErrInvalidCredentials; the provider does not distinguish failure causes.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*ports.ProviderSession, error) {
	return p.exchange(ctx, "/auth/v1/token", email, password)
}

func (p *Provider) exchange(ctx context.Context, path, email, password string) (*ports.ProviderSession, error) {
	body, err := json.Marshal(credentialsRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("marshal provider request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call identity provider: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest:
		return nil, domain.ErrInvalidCredentials
	default:
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("decode provider response: %w", err)
	}

	return &ports.ProviderSession{
		Subject:     session.UserID,
		AccessToken: session.AccessToken,
		ExpiresAt:   time.Now().UTC().Add(time.Duration(session.ExpiresIn) * time.Second),
	}, nil
}
