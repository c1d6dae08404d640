package ports

import (
	"context"

	"github.com/stylehive/shop-system/internal/core/domain"
)

// CreateProductInput carries all data needed to create a catalog entry.
// Image is either an external URL or the public path of an uploaded file.
type CreateProductInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Size        string
	Image       string
}

// ProductService defines use-case operations for the catalog.
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, fields UpdateProductFields) (*domain.Product, error)
	Delete(ctx context.Context, id string) error

	// Like and Unlike register exactly one like per actor per direction and
	// return the new like count.
	Like(ctx context.Context, id, actor string) (int, error)
	Unlike(ctx context.Context, id, actor string) (int, error)
}
