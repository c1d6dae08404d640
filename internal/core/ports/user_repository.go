package ports

import (
	"context"

	"github.com/stylehive/shop-system/internal/core/domain"
)

// UserRepository defines persistence operations on user documents.
// Every write is scoped to a single document.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailRegistered when the
	// unique email index is violated.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindAdmins(ctx context.Context) ([]*domain.User, error)

	// UpdateCart replaces the embedded cart in one atomic write.
	UpdateCart(ctx context.Context, email string, cart domain.Cart) error

	// GrantAdmin adds the admin role with a guard filter so a concurrent
	// duplicate grant loses the race and gets domain.ErrAlreadyAdmin.
	GrantAdmin(ctx context.Context, email string) error

	// RevokeAdmin removes the admin role; domain.ErrNotAdmin when the role
	// was already absent.
	RevokeAdmin(ctx context.Context, email string) error
}
