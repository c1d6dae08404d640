package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/stylehive/shop-system/internal/core/domain"
	"github.com/stylehive/shop-system/internal/core/ports"
)

type stubProductService struct {
	listFn   func(ctx context.Context) ([]*domain.Product, error)
	createFn func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error)
	updateFn func(ctx context.Context, id string, fields ports.UpdateProductFields) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string) error
	likeFn   func(ctx context.Context, id, actor string) (int, error)
	unlikeFn func(ctx context.Context, id, actor string) (int, error)
}

func (s *stubProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductService) Update(ctx context.Context, id string, fields ports.UpdateProductFields) (*domain.Product, error) {
	return s.updateFn(ctx, id, fields)
}

func (s *stubProductService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubProductService) Like(ctx context.Context, id, actor string) (int, error) {
	return s.likeFn(ctx, id, actor)
}

func (s *stubProductService) Unlike(ctx context.Context, id, actor string) (int, error) {
	return s.unlikeFn(ctx, id, actor)
}

func TestProductHandler_List(t *testing.T) {
	stub := &stubProductService{
		listFn: func(_ context.Context) ([]*domain.Product, error) {
			return []*domain.Product{
				{ID: "p1", Name: "Denim Jacket", Price: 89.99},
				{ID: "p2", Name: "Wool Scarf", Price: 24.5},
			}, nil
		},
	}
	handler := NewProductHandler(stub, t.TempDir())

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/products", "")

	require.NoError(t, handler.List(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var products []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 2)
	require.Equal(t, "Denim Jacket", products[0]["name"])
}

func TestProductHandler_Create_JSON(t *testing.T) {
	stub := &stubProductService{
		createFn: func(_ context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			require.Equal(t, "Denim Jacket", input.Name)
			require.Equal(t, "M", input.Size)
			require.Equal(t, "https://cdn.example.com/jacket.png", input.Image)
			return &domain.Product{ID: "p1", Name: input.Name, Size: input.Size, Image: input.Image}, nil
		},
	}
	handler := NewProductHandler(stub, t.TempDir())

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/products",
		`{"name":"Denim Jacket","description":"Classic denim jacket with brass buttons","category":"outerwear","price":89.99,"size":"M","image":"https://cdn.example.com/jacket.png"}`)

	require.NoError(t, handler.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "p1", resp["id"])
}

func TestProductHandler_Create_Multipart_SavesImage(t *testing.T) {
	uploadDir := t.TempDir()

	stub := &stubProductService{
		createFn: func(_ context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			require.True(t, strings.HasPrefix(input.Image, "/uploads/"))
			require.True(t, strings.HasSuffix(input.Image, "jacket.png"))
			return &domain.Product{ID: "p1", Name: input.Name, Image: input.Image}, nil
		},
	}
	handler := NewProductHandler(stub, uploadDir)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for field, value := range map[string]string{
		"name":        "Denim Jacket",
		"description": "Classic denim jacket with brass buttons",
		"category":    "outerwear",
		"price":       "89.99",
		"size":        "M",
	} {
		require.NoError(t, writer.WriteField(field, value))
	}
	part, err := writer.CreateFormFile("image", "jacket.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	// The file landed in the upload directory.
	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.True(t, strings.HasSuffix(entries[0].Name(), "jacket.png"))

	saved, err := os.ReadFile(filepath.Join(uploadDir, entries[0].Name()))
	require.NoError(t, err)
	require.Equal(t, "png-bytes", string(saved))
}

func TestProductHandler_Create_RejectsBadPayload(t *testing.T) {
	stub := &stubProductService{
		createFn: func(_ context.Context, _ ports.CreateProductInput) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub, t.TempDir())

	// Name below the minimum length fails request validation.
	c, _ := newTestContext(t, http.MethodPost, "/api/v1/products",
		`{"name":"ab","description":"Classic denim jacket with brass buttons","category":"outerwear","price":89.99,"size":"M"}`)

	err := handler.Create(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestProductHandler_Update_PartialFields(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(_ context.Context, id string, fields ports.UpdateProductFields) (*domain.Product, error) {
			require.Equal(t, "p1", id)
			require.Nil(t, fields.Name)
			require.NotNil(t, fields.Price)
			require.Equal(t, 59.99, *fields.Price)
			return &domain.Product{ID: id, Price: *fields.Price}, nil
		},
	}
	handler := NewProductHandler(stub, t.TempDir())

	c, rec := newTestContext(t, http.MethodPatch, "/api/v1/products/p1", `{"price":59.99}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, handler.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_Update_NotFound(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(_ context.Context, _ string, _ ports.UpdateProductFields) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewProductHandler(stub, t.TempDir())

	c, _ := newTestContext(t, http.MethodPatch, "/api/v1/products/missing", `{"price":10}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.Update(c)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductHandler_Delete(t *testing.T) {
	stub := &stubProductService{
		deleteFn: func(_ context.Context, id string) error {
			require.Equal(t, "p1", id)
			return nil
		},
	}
	handler := NewProductHandler(stub, t.TempDir())

	c, rec := newTestContext(t, http.MethodDelete, "/api/v1/products/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, handler.Delete(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "product deleted successfully", resp["message"])
}

func TestProductHandler_Like(t *testing.T) {
	stub := &stubProductService{
		likeFn: func(_ context.Context, id, actor string) (int, error) {
			require.Equal(t, "p1", id)
			require.Equal(t, "alice@example.com", actor)
			return 3, nil
		},
	}
	handler := NewProductHandler(stub, t.TempDir())

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/products/p1/like", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	c.Set("email", "alice@example.com")

	require.NoError(t, handler.Like(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, float64(3), resp["liked"])
}

func TestProductHandler_Unlike_NotLiked(t *testing.T) {
	stub := &stubProductService{
		unlikeFn: func(_ context.Context, _, _ string) (int, error) {
			return 0, domain.ErrNotLiked
		},
	}
	handler := NewProductHandler(stub, t.TempDir())

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/products/p1/unlike", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	c.Set("email", "alice@example.com")

	err := handler.Unlike(c)
	require.ErrorIs(t, err, domain.ErrNotLiked)
}
