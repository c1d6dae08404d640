package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stylehive/shop-system/internal/api/metrics"
	"github.com/stylehive/shop-system/internal/core/domain"
	"github.com/stylehive/shop-system/internal/core/ports"
)

type addToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"required,gt=0"`
}

type decreaseQuantityRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type cartResponse struct {
	Message string       `json:"message,omitempty"`
	Cart    *domain.Cart `json:"cart"`
}

// CartHandler handles the authenticated user's embedded cart.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Get returns the cart with its derived fields.
//
// @Summary      Get the cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	cart, err := h.service.Get(c.Request().Context(), actorEmail(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cartResponse{Cart: cart})
}

// Add puts a product into the cart or increments an existing line.
//
// @Summary      Add an item to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addToCartRequest  true  "Product and quantity"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /cart/add [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cart, err := h.service.AddItem(c.Request().Context(), actorEmail(c), req.ProductID, req.Quantity)
	if err != nil {
		return err
	}

	metrics.CartOpsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, cartResponse{Message: "item added to cart", Cart: cart})
}

// Decrease lowers a line's quantity by one, removing the line at zero.
//
// @Summary      Decrease an item's quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      decreaseQuantityRequest  true  "Product id"
// @Success      200   {object}  cartResponse
// @Failure      404   {object}  errorResponse
// @Router       /cart/decrease [patch]
func (h *CartHandler) Decrease(c echo.Context) error {
	var req decreaseQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cart, err := h.service.DecreaseQuantity(c.Request().Context(), actorEmail(c), req.ProductID)
	if err != nil {
		return err
	}

	metrics.CartOpsTotal.WithLabelValues("decrease").Inc()
	return c.JSON(http.StatusOK, cartResponse{Message: "item quantity decreased", Cart: cart})
}

// Remove deletes a cart line regardless of quantity.
//
// @Summary      Remove an item from the cart
// @Tags         cart
// @Produce      json
// @Param        productId  path      string  true  "Product id"
// @Success      200        {object}  cartResponse
// @Failure      404        {object}  errorResponse
// @Router       /cart/remove/{productId} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	cart, err := h.service.RemoveItem(c.Request().Context(), actorEmail(c), c.Param("productId"))
	if err != nil {
		return err
	}

	metrics.CartOpsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, cartResponse{Message: "item removed from cart", Cart: cart})
}

// Clear empties the cart and zeroes its derived fields.
//
// @Summary      Clear the cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Failure      404  {object}  errorResponse
// @Router       /cart/clear [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	cart, err := h.service.Clear(c.Request().Context(), actorEmail(c))
	if err != nil {
		return err
	}

	metrics.CartOpsTotal.WithLabelValues("clear").Inc()
	return c.JSON(http.StatusOK, cartResponse{Message: "cart cleared", Cart: cart})
}

// actorEmail extracts the identity injected by the Auth middleware.
func actorEmail(c echo.Context) string {
	email, _ := c.Get("email").(string)
	return email
}
