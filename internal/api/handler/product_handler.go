package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stylehive/shop-system/internal/api/metrics"
	"github.com/stylehive/shop-system/internal/core/ports"
)

// ProductHandler handles catalog CRUD and like/unlike.
type ProductHandler struct {
	service ports.ProductService
	// uploadDir receives product images posted as multipart files.
	uploadDir string
}

func NewProductHandler(service ports.ProductService, uploadDir string) *ProductHandler {
	return &ProductHandler{service: service, uploadDir: uploadDir}
}

// List returns the full catalog, unfiltered and unpaginated.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create adds a catalog entry. The image is supplied either as an image_url
// form/JSON field or as an uploaded "image" file part.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product fields"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	image := req.Image
	if uploaded, err := saveImage(c, "image", h.uploadDir); err != nil {
		return err
	} else if uploaded != "" {
		image = uploaded
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Size:        req.Size,
		Image:       image,
	})
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(product.Size).Inc()
	return c.JSON(http.StatusCreated, product)
}

// Update merges the provided fields into an existing product.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toFields())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete permanently removes a product.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id  path      string  true  "Product id"
// @Success      200 {object}  messageResponse
// @Failure      404 {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "product deleted successfully"})
}

// Like registers the authenticated user's like on a product.
//
// @Summary      Like a product
// @Tags         products
// @Produce      json
// @Param        id  path      string  true  "Product id"
// @Success      200 {object}  likeResponse
// @Failure      400 {object}  errorResponse
// @Failure      401 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Router       /products/{id}/like [post]
func (h *ProductHandler) Like(c echo.Context) error {
	actor, _ := c.Get("email").(string)

	count, err := h.service.Like(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}

	metrics.ProductLikesTotal.WithLabelValues("like").Inc()
	return c.JSON(http.StatusOK, likeResponse{Liked: count})
}

// Unlike withdraws the authenticated user's like.
//
// @Summary      Unlike a product
// @Tags         products
// @Produce      json
// @Param        id  path      string  true  "Product id"
// @Success      200 {object}  likeResponse
// @Failure      400 {object}  errorResponse
// @Failure      401 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Router       /products/{id}/unlike [post]
func (h *ProductHandler) Unlike(c echo.Context) error {
	actor, _ := c.Get("email").(string)

	count, err := h.service.Unlike(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}

	metrics.ProductLikesTotal.WithLabelValues("unlike").Inc()
	return c.JSON(http.StatusOK, likeResponse{Liked: count})
}
