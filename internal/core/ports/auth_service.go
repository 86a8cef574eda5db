package ports

import (
	"context"

	"github.com/merqado/commerce-api/internal/core/domain"
)

// SignupInput carries all data needed to create an account.
type SignupInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     domain.Role
	RemoteIP string
}

// AuthResult is returned by signup and login on success.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthService is the authentication use-case boundary. A deployment wires
// exactly one implementation at startup: self-issued tokens or delegation to
// an external identity provider.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password, remoteIP string) (*AuthResult, error)
}
