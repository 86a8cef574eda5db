package ports

import (
	"context"

	"github.com/merqado/commerce-api/internal/core/domain"
)

// UpdateUserInput carries a partial user update; nil fields are left unchanged.
type UpdateUserInput struct {
	Email    *string
	FullName *string
	IsActive *bool
	Roles    []domain.Role
}

// UserService defines administrative user operations.
type UserService interface {
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
