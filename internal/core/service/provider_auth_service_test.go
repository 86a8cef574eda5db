package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/merqado/commerce-api/internal/core/domain"
	"github.com/merqado/commerce-api/internal/core/ports"
)

type stubProvider struct {
	signUpErr error
	signInErr error
}

func (p *stubProvider) SignUp(_ context.Context, email, _ string) (*ports.ProviderSession, error) {
	if p.signUpErr != nil {
		return nil, p.signUpErr
	}
	return &ports.ProviderSession{Subject: email, AccessToken: "provider-token", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (p *stubProvider) SignIn(_ context.Context, email, _ string) (*ports.ProviderSession, error) {
	if p.signInErr != nil {
		return nil, p.signInErr
	}
	return &ports.ProviderSession{Subject: email, AccessToken: "provider-token", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func TestProviderAuthService_Signup(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewProviderAuthService(&stubProvider{}, repo, nil, zerolog.Nop())

	result, err := svc.Signup(context.Background(), signupInput("alice", "alice@example.com"))
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if result.Token != "provider-token" {
		t.Fatalf("expected provider-minted token, got %q", result.Token)
	}
	if result.User.PasswordHash != "" {
		t.Fatalf("local row must not carry a credential when delegated")
	}
}

func TestProviderAuthService_Signup_DuplicateBeforeProvider(t *testing.T) {
	repo := newStubUserRepo()
	provider := &stubProvider{signUpErr: domain.ErrInvalidCredentials}
	svc := NewProviderAuthService(provider, repo, nil, zerolog.Nop())

	_, _ = repo.Insert(context.Background(), &domain.User{Username: "alice", Email: "alice@example.com"})

	// Conflict detection must fire before the provider is ever called.
	if _, err := svc.Signup(context.Background(), signupInput("alice2", "alice@example.com")); err != domain.ErrDuplicateEmail {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestProviderAuthService_Login_ProviderRejection(t *testing.T) {
	repo := newStubUserRepo()
	queue := &captureQueue{}
	svc := NewProviderAuthService(&stubProvider{signInErr: domain.ErrInvalidCredentials}, repo, queue, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "bob@example.com", "bad", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(queue.events) != 1 || queue.events[0].Kind != domain.AuthEventLoginFailed {
		t.Fatalf("expected one login_failed event, got %+v", queue.events)
	}
}

func TestProviderAuthService_Login_DisabledAccount(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewProviderAuthService(&stubProvider{}, repo, nil, zerolog.Nop())

	_, _ = repo.Insert(context.Background(), &domain.User{
		Username: "carol", Email: "carol@example.com", IsActive: false,
	})

	if _, err := svc.Login(context.Background(), "carol@example.com", "pass", ""); err != domain.ErrAccountDisabled {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}
