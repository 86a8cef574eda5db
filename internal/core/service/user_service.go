package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/merqado/commerce-api/internal/core/domain"
	"github.com/merqado/commerce-api/internal/core/ports"
)

// UserService implements administrative user operations. Authorization is
// enforced at the route level (RequireAnyRole); this layer only applies the
// mutation rules.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Update applies a partial update. When the roles set is replaced and no
// longer contains the primary role, the primary role follows the first entry
// of the new set so the membership invariant keeps holding.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if len(in.Roles) > 0 {
		for _, r := range in.Roles {
			if _, err := domain.ParseRole(string(r)); err != nil {
				return nil, err
			}
		}
		user.Roles = in.Roles
		if !user.HasAnyRole(user.PrimaryRole) {
			user.PrimaryRole = in.Roles[0]
		}
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
