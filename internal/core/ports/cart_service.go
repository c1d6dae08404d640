package ports

import (
	"context"

	"github.com/stylehive/shop-system/internal/core/domain"
)

// CartService operates on the actor's embedded cart. The actor is the
// authenticated user's email; domain.ErrUserNotFound is returned when the
// actor's record has vanished.
type CartService interface {
	Get(ctx context.Context, actor string) (*domain.Cart, error)

	// AddItem increments an existing line or appends a new one capturing the
	// product's current name and price.
	AddItem(ctx context.Context, actor, productID string, quantity int) (*domain.Cart, error)

	RemoveItem(ctx context.Context, actor, productID string) (*domain.Cart, error)

	// DecreaseQuantity decrements the line by one; a line reaching zero is
	// removed entirely.
	DecreaseQuantity(ctx context.Context, actor, productID string) (*domain.Cart, error)

	Clear(ctx context.Context, actor string) (*domain.Cart, error)
}
