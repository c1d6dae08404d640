package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/stylehive/shop-system/internal/core/domain"
	"github.com/stylehive/shop-system/internal/core/ports"
)

// CatalogCache abstracts the Redis catalog cache. A (nil, nil) Get is a miss.
type CatalogCache interface {
	Get(ctx context.Context) ([]*domain.Product, error)
	Set(ctx context.Context, products []*domain.Product) error
	Invalidate(ctx context.Context) error
}

// ProductService implements catalog CRUD and like/unlike toggling.
type ProductService struct {
	repo         ports.ProductRepository
	cache        CatalogCache
	priceCeiling float64
	logger       zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache CatalogCache, priceCeiling float64, logger zerolog.Logger) *ProductService {
	if priceCeiling <= 0 {
		priceCeiling = 500
	}
	return &ProductService{repo: repo, cache: cache, priceCeiling: priceCeiling, logger: logger}
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache read failed, querying store")
		} else if cached != nil {
			return cached, nil
		}
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, products); err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return products, nil
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	fields := ports.UpdateProductFields{
		Name:        &input.Name,
		Description: &input.Description,
		Category:    &input.Category,
		Price:       &input.Price,
		Size:        &input.Size,
	}
	if err := s.validate(fields); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Size:        input.Size,
		Image:       input.Image,
		Liked:       0,
		UsersLiked:  []string{},
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id string, fields ports.UpdateProductFields) (*domain.Product, error) {
	if err := s.validate(fields); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) Like(ctx context.Context, id, actor string) (int, error) {
	if actor == "" {
		return 0, domain.ErrUnauthenticated
	}
	count, err := s.repo.AddLike(ctx, id, actor)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return count, nil
}

func (s *ProductService) Unlike(ctx context.Context, id, actor string) (int, error) {
	if actor == "" {
		return 0, domain.ErrUnauthenticated
	}
	count, err := s.repo.RemoveLike(ctx, id, actor)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return count, nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}

// validate checks whichever fields are present; nil fields pass untouched.
// Create validates through the same path with every field set.
func (s *ProductService) validate(f ports.UpdateProductFields) error {
	if f.Name != nil && (len(*f.Name) < 3 || len(*f.Name) > 25) {
		return fmt.Errorf("%w: name must be 3-25 characters", domain.ErrValidation)
	}
	if f.Description != nil && (len(*f.Description) < 10 || len(*f.Description) > 150) {
		return fmt.Errorf("%w: description must be 10-150 characters", domain.ErrValidation)
	}
	if f.Category != nil && (len(*f.Category) < 5 || len(*f.Category) > 25) {
		return fmt.Errorf("%w: category must be 5-25 characters", domain.ErrValidation)
	}
	if f.Price != nil {
		if *f.Price <= 0 || *f.Price > s.priceCeiling {
			return fmt.Errorf("%w: price must be greater than 0 and no more than %g", domain.ErrValidation, s.priceCeiling)
		}
		if !twoDecimals(*f.Price) {
			return fmt.Errorf("%w: price can only have up to two decimal places", domain.ErrValidation)
		}
	}
	if f.Size != nil && !domain.ValidSize(*f.Size) {
		return fmt.Errorf("%w: size must be one of: S, M, L, XL", domain.ErrValidation)
	}
	return nil
}

func twoDecimals(p float64) bool {
	cents := p * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}
