package handler

import "github.com/stylehive/shop-system/internal/core/ports"

// createProductRequest binds from JSON or multipart form; in the multipart
// case the image arrives as a file part instead of the Image field.
type createProductRequest struct {
	Name        string  `json:"name"        form:"name"        validate:"required,min=3,max=25"`
	Description string  `json:"description" form:"description" validate:"required,min=10,max=150"`
	Category    string  `json:"category"    form:"category"    validate:"required,min=5,max=25"`
	Price       float64 `json:"price"       form:"price"       validate:"required,gt=0"`
	Size        string  `json:"size"        form:"size"        validate:"required,oneof=S M L XL"`
	Image       string  `json:"image"       form:"image_url"   validate:"omitempty,url"`
}

// updateProductRequest carries the optional fields of a partial update.
// Present fields are re-validated with the same bounds as create.
type updateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=3,max=25"`
	Description *string  `json:"description" validate:"omitempty,min=10,max=150"`
	Category    *string  `json:"category"    validate:"omitempty,min=5,max=25"`
	Price       *float64 `json:"price"       validate:"omitempty,gt=0"`
	Size        *string  `json:"size"        validate:"omitempty,oneof=S M L XL"`
	Image       *string  `json:"image"       validate:"omitempty,url"`
}

func (r updateProductRequest) toFields() ports.UpdateProductFields {
	return ports.UpdateProductFields{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Size:        r.Size,
		Image:       r.Image,
	}
}

type likeResponse struct {
	Liked int `json:"liked"`
}
