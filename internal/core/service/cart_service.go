package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/stylehive/shop-system/internal/core/domain"
	"github.com/stylehive/shop-system/internal/core/ports"
)

// CartService operates on the cart embedded in the actor's user document.
// Each mutation is a load, an in-memory recompute and a single cart write.
type CartService struct {
	users    ports.UserRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewCartService(users ports.UserRepository, products ports.ProductRepository, logger zerolog.Logger) *CartService {
	return &CartService{users: users, products: products, logger: logger}
}

func (s *CartService) Get(ctx context.Context, actor string) (*domain.Cart, error) {
	user, err := s.users.FindByEmail(ctx, actor)
	if err != nil {
		return nil, err
	}
	return &user.Cart, nil
}

func (s *CartService) AddItem(ctx context.Context, actor, productID string, quantity int) (*domain.Cart, error) {
	if productID == "" || quantity <= 0 {
		return nil, fmt.Errorf("%w: product id and a positive quantity are required", domain.ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, actor)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if item := user.Cart.Item(productID); item != nil {
		item.Quantity += quantity
	} else {
		// Price and name are frozen at insertion time; later catalog price
		// changes do not reach existing cart lines.
		user.Cart.Items = append(user.Cart.Items, domain.CartItem{
			ProductID: productID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
		})
	}

	return s.persist(ctx, user)
}

func (s *CartService) RemoveItem(ctx context.Context, actor, productID string) (*domain.Cart, error) {
	user, err := s.users.FindByEmail(ctx, actor)
	if err != nil {
		return nil, err
	}

	if !user.Cart.Remove(productID) {
		return nil, domain.ErrItemNotInCart
	}

	return s.persist(ctx, user)
}

func (s *CartService) DecreaseQuantity(ctx context.Context, actor, productID string) (*domain.Cart, error) {
	user, err := s.users.FindByEmail(ctx, actor)
	if err != nil {
		return nil, err
	}

	item := user.Cart.Item(productID)
	if item == nil {
		return nil, domain.ErrItemNotInCart
	}
	item.Quantity--

	return s.persist(ctx, user)
}

func (s *CartService) Clear(ctx context.Context, actor string) (*domain.Cart, error) {
	user, err := s.users.FindByEmail(ctx, actor)
	if err != nil {
		return nil, err
	}

	user.Cart.Clear()

	if err := s.users.UpdateCart(ctx, user.Email, user.Cart); err != nil {
		return nil, err
	}
	return &user.Cart, nil
}

func (s *CartService) persist(ctx context.Context, user *domain.User) (*domain.Cart, error) {
	user.Cart.Recompute()
	if err := s.users.UpdateCart(ctx, user.Email, user.Cart); err != nil {
		return nil, err
	}
	s.logger.Debug().Str("email", user.Email).Int("count", user.Cart.Count).Msg("cart updated")
	return &user.Cart, nil
}
