package ports

import (
	"context"

	"github.com/stylehive/shop-system/internal/core/domain"
)

// UpdateProductFields carries the optional fields of a partial product
// update. Nil means "leave unchanged".
type UpdateProductFields struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
	Size        *string
	Image       *string
}

// ProductRepository defines persistence operations on catalog documents.
type ProductRepository interface {
	// Create inserts a new product. Returns domain.ErrDuplicateProduct when
	// the unique name index is violated.
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)

	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)

	// Update merges the provided fields and returns the updated document.
	Update(ctx context.Context, id string, fields UpdateProductFields) (*domain.Product, error)

	Delete(ctx context.Context, id string) error

	// AddLike inserts the actor into the liked-by set and increments the
	// counter in one guarded write; domain.ErrAlreadyLiked when the actor is
	// already present. Returns the new like count.
	AddLike(ctx context.Context, id, actor string) (int, error)

	// RemoveLike is the inverse of AddLike; domain.ErrNotLiked when the
	// actor is absent from the liked-by set.
	RemoveLike(ctx context.Context, id, actor string) (int, error)
}
