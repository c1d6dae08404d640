package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stylehive/shop-system/internal/core/domain"
	"github.com/stylehive/shop-system/internal/core/ports"
)

// UserService implements user listing and admin role management.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) GetUser(ctx context.Context, identifier string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, identifier)
}

func (s *UserService) PromoteAdmin(ctx context.Context, identifier string) error {
	user, err := s.repo.FindByEmail(ctx, identifier)
	if err != nil {
		return err
	}

	// The base role must be held before admin can be granted.
	if !user.HasRole(domain.RoleUser) {
		return domain.ErrNotVerified
	}
	if user.HasRole(domain.RoleAdmin) {
		return domain.ErrAlreadyAdmin
	}

	// The repository applies a guard filter, so a concurrent promotion from
	// the same identifier surfaces ErrAlreadyAdmin instead of double-adding.
	if err := s.repo.GrantAdmin(ctx, identifier); err != nil {
		return err
	}

	s.logger.Info().Str("email", identifier).Msg("admin role granted")
	return nil
}

func (s *UserService) DemoteAdmin(ctx context.Context, identifier string) error {
	user, err := s.repo.FindByEmail(ctx, identifier)
	if err != nil {
		return err
	}

	if !user.HasRole(domain.RoleAdmin) {
		return domain.ErrNotAdmin
	}

	if err := s.repo.RevokeAdmin(ctx, identifier); err != nil {
		return err
	}

	s.logger.Info().Str("email", identifier).Msg("admin role revoked")
	return nil
}

func (s *UserService) ListAdmins(ctx context.Context) ([]*domain.User, error) {
	admins, err := s.repo.FindAdmins(ctx)
	if err != nil {
		return nil, err
	}
	// An empty admin list is reported as an error, matching observed
	// behaviour of the API this replaces.
	if len(admins) == 0 {
		return nil, domain.ErrNoAdmins
	}
	return admins, nil
}
