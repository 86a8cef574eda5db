package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/merqado/commerce-api/internal/core/domain"
	"github.com/merqado/commerce-api/internal/core/ports"
)

// ProviderAuthService implements the provider-delegated authentication
// strategy: credentials and token issuance are handled by an external
// identity provider, while the local store keeps the profile row (roles,
// flags) keyed by email. Deployments wire either this or AuthService, never
// both.
type ProviderAuthService struct {
	provider ports.IdentityProvider
	users    ports.UserRepository
	events   ports.AuthEventQueue
	log      zerolog.Logger
}

func NewProviderAuthService(
	provider ports.IdentityProvider,
	users ports.UserRepository,
	events ports.AuthEventQueue,
	log zerolog.Logger,
) *ProviderAuthService {
	return &ProviderAuthService{provider: provider, users: users, events: events, log: log}
}

func (s *ProviderAuthService) Signup(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if _, err := domain.ParseRole(string(in.Role)); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	session, err := s.provider.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	// The provider owns the credential; the local row carries no hash.
	user := domain.NewUser(in.Username, in.Email, "", in.FullName, in.Role, time.Now().UTC())
	created, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.enqueue(domain.AuthEventSignup, created.Email, in.RemoteIP)
	s.log.Info().Str("email", created.Email).Msg("user signed up via identity provider")

	return &ports.AuthResult{User: created, Token: session.AccessToken}, nil
}

func (s *ProviderAuthService) Login(ctx context.Context, email, password, remoteIP string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	session, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		s.enqueue(domain.AuthEventLoginFailed, email, remoteIP)
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDisabled
	}

	s.enqueue(domain.AuthEventLogin, user.Email, remoteIP)
	return &ports.AuthResult{User: user, Token: session.AccessToken}, nil
}

func (s *ProviderAuthService) enqueue(kind domain.AuthEventKind, subject, remoteIP string) {
	if s.events == nil {
		return
	}
	s.events.Enqueue(domain.AuthEvent{
		Subject:   subject,
		Kind:      kind,
		Timestamp: time.Now().UTC(),
		RemoteIP:  remoteIP,
	})
}
