package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/stylehive/shop-system/internal/core/domain"
)

type stubCartService struct {
	getFn      func(ctx context.Context, actor string) (*domain.Cart, error)
	addFn      func(ctx context.Context, actor, productID string, quantity int) (*domain.Cart, error)
	removeFn   func(ctx context.Context, actor, productID string) (*domain.Cart, error)
	decreaseFn func(ctx context.Context, actor, productID string) (*domain.Cart, error)
	clearFn    func(ctx context.Context, actor string) (*domain.Cart, error)
}

func (s *stubCartService) Get(ctx context.Context, actor string) (*domain.Cart, error) {
	return s.getFn(ctx, actor)
}

func (s *stubCartService) AddItem(ctx context.Context, actor, productID string, quantity int) (*domain.Cart, error) {
	return s.addFn(ctx, actor, productID, quantity)
}

func (s *stubCartService) RemoveItem(ctx context.Context, actor, productID string) (*domain.Cart, error) {
	return s.removeFn(ctx, actor, productID)
}

func (s *stubCartService) DecreaseQuantity(ctx context.Context, actor, productID string) (*domain.Cart, error) {
	return s.decreaseFn(ctx, actor, productID)
}

func (s *stubCartService) Clear(ctx context.Context, actor string) (*domain.Cart, error) {
	return s.clearFn(ctx, actor)
}

func cartWith(items ...domain.CartItem) *domain.Cart {
	cart := domain.NewCart()
	cart.Items = items
	cart.Recompute()
	return &cart
}

func TestCartHandler_Get(t *testing.T) {
	stub := &stubCartService{
		getFn: func(_ context.Context, actor string) (*domain.Cart, error) {
			require.Equal(t, "alice@example.com", actor)
			return cartWith(domain.CartItem{ProductID: "p1", Name: "Denim Jacket", Price: 89.99, Quantity: 2}), nil
		},
	}
	handler := NewCartHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/cart", "")
	c.Set("email", "alice@example.com")

	require.NoError(t, handler.Get(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	cart, ok := resp["cart"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(2), cart["count"])
	require.Equal(t, 179.98, cart["subtotal"])
}

func TestCartHandler_Add(t *testing.T) {
	stub := &stubCartService{
		addFn: func(_ context.Context, actor, productID string, quantity int) (*domain.Cart, error) {
			require.Equal(t, "alice@example.com", actor)
			require.Equal(t, "p1", productID)
			require.Equal(t, 2, quantity)
			return cartWith(domain.CartItem{ProductID: "p1", Price: 89.99, Quantity: 2}), nil
		},
	}
	handler := NewCartHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/cart/add", `{"productId":"p1","quantity":2}`)
	c.Set("email", "alice@example.com")

	require.NoError(t, handler.Add(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_Add_RejectsZeroQuantity(t *testing.T) {
	stub := &stubCartService{
		addFn: func(_ context.Context, _, _ string, _ int) (*domain.Cart, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewCartHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/cart/add", `{"productId":"p1","quantity":0}`)
	c.Set("email", "alice@example.com")

	err := handler.Add(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCartHandler_Add_UnknownProduct(t *testing.T) {
	stub := &stubCartService{
		addFn: func(_ context.Context, _, _ string, _ int) (*domain.Cart, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewCartHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/cart/add", `{"productId":"missing","quantity":1}`)
	c.Set("email", "alice@example.com")

	err := handler.Add(c)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCartHandler_Decrease(t *testing.T) {
	stub := &stubCartService{
		decreaseFn: func(_ context.Context, actor, productID string) (*domain.Cart, error) {
			require.Equal(t, "p1", productID)
			return cartWith(domain.CartItem{ProductID: "p1", Price: 89.99, Quantity: 1}), nil
		},
	}
	handler := NewCartHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/api/v1/cart/decrease", `{"productId":"p1"}`)
	c.Set("email", "alice@example.com")

	require.NoError(t, handler.Decrease(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_Remove(t *testing.T) {
	stub := &stubCartService{
		removeFn: func(_ context.Context, actor, productID string) (*domain.Cart, error) {
			require.Equal(t, "p1", productID)
			return cartWith(), nil
		},
	}
	handler := NewCartHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/v1/cart/remove/p1", "")
	c.SetParamNames("productId")
	c.SetParamValues("p1")
	c.Set("email", "alice@example.com")

	require.NoError(t, handler.Remove(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_Remove_NotInCart(t *testing.T) {
	stub := &stubCartService{
		removeFn: func(_ context.Context, _, _ string) (*domain.Cart, error) {
			return nil, domain.ErrItemNotInCart
		},
	}
	handler := NewCartHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/api/v1/cart/remove/p9", "")
	c.SetParamNames("productId")
	c.SetParamValues("p9")
	c.Set("email", "alice@example.com")

	err := handler.Remove(c)
	require.ErrorIs(t, err, domain.ErrItemNotInCart)
}

func TestCartHandler_Clear(t *testing.T) {
	stub := &stubCartService{
		clearFn: func(_ context.Context, actor string) (*domain.Cart, error) {
			require.Equal(t, "alice@example.com", actor)
			return cartWith(), nil
		},
	}
	handler := NewCartHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/v1/cart/clear", "")
	c.Set("email", "alice@example.com")

	require.NoError(t, handler.Clear(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	cart, ok := resp["cart"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(0), cart["count"])
	require.Equal(t, float64(0), cart["total"])
}
