package ports

import (
	"context"

	"github.com/stylehive/shop-system/internal/core/domain"
)

// UserService covers user listing and admin role management. The identifier
// in every operation is the user's email.
type UserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, identifier string) (*domain.User, error)

	// PromoteAdmin adds the admin role. The user must hold the base role
	// first; a redundant promotion is rejected, not silently accepted.
	PromoteAdmin(ctx context.Context, identifier string) error

	// DemoteAdmin removes the admin role; demoting a non-admin is rejected.
	DemoteAdmin(ctx context.Context, identifier string) error

	// ListAdmins returns every admin-capable user; an empty result is
	// domain.ErrNoAdmins (observed behaviour, kept as is).
	ListAdmins(ctx context.Context) ([]*domain.User, error)
}
