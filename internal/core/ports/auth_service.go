package ports

import (
	"context"
	"time"

	"github.com/stylehive/shop-system/internal/core/domain"
)

// RegisterInput carries the registration payload.
type RegisterInput struct {
	Username       string
	Email          string
	Password       string
	RepeatPassword string
}

// Session is returned by Login; ExpiresAt matches the token expiry so the
// cookie and the JWT expire together.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// AuthService implements registration, login and identity resolution.
type AuthService interface {
	// Register stores a new user with a hashed password and the default
	// role set. No session is issued; a separate login is required.
	Register(ctx context.Context, input RegisterInput) error

	// Login verifies credentials and issues a signed session token.
	// Remember extends the token lifetime.
	Login(ctx context.Context, email, password string, remember bool) (*Session, error)

	// Whoami re-resolves the authenticated email against the persisted user
	// record so role changes take effect without re-login. A vanished record
	// maps to domain.ErrUnauthenticated.
	Whoami(ctx context.Context, email string) (*domain.User, error)
}
