package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/merqado/commerce-api/internal/core/domain"
	"github.com/merqado/commerce-api/internal/core/ports"
)

// AuthService implements signup and login with self-issued bearer tokens.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	ttl    time.Duration
	events ports.AuthEventQueue
	log    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	tokenTTL time.Duration,
	events ports.AuthEventQueue,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, hasher: hasher, tokens: tokens, ttl: tokenTTL, events: events, log: log}
}

// Signup creates a new account. Conflicts are checked before any mutation, so
// a duplicate email or username leaves the store untouched.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
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

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(in.Username, in.Email, hash, in.FullName, in.Role, time.Now().UTC())
	created, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.Email, s.ttl)
	if err != nil {
		return nil, err
	}

	s.record(domain.AuthEventSignup, created.Email, in.RemoteIP)
	s.log.Info().Str("email", created.Email).Str("role", string(in.Role)).Msg("user signed up")

	return &ports.AuthResult{User: created, Token: token}, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password are indistinguishable to the caller; a disabled account is only
// reported after the password has been verified.
func (s *AuthService) Login(ctx context.Context, email, password, remoteIP string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(domain.AuthEventLoginFailed, email, remoteIP)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.record(domain.AuthEventLoginFailed, email, remoteIP)
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrAccountDisabled
	}

	token, err := s.tokens.Issue(user.Email, s.ttl)
	if err != nil {
		return nil, err
	}

	s.record(domain.AuthEventLogin, user.Email, remoteIP)
	s.log.Info().Str("email", user.Email).Msg("user logged in")

	return &ports.AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) record(kind domain.AuthEventKind, subject, remoteIP string) {
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
