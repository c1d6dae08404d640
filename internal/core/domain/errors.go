package domain

import "errors"

// ErrValidation is the base error for malformed or out-of-range input.
// Field-specific messages wrap it with fmt.Errorf("%w: ...").
var ErrValidation = errors.New("validation failed")

// Registration and credential errors.
var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrWeakPassword     = errors.New("password must be at least 8 characters with one lowercase, one uppercase, one digit and one symbol")
	ErrInvalidUsername  = errors.New("username may only contain letters")
	ErrEmailRegistered  = errors.New("user with this email already exists")

	ErrEmailNotRegistered = errors.New("invalid credentials: provided email is not registered")
	ErrIncorrectPassword  = errors.New("invalid credentials: incorrect password")
	ErrUnauthenticated    = errors.New("authentication required")
)

// Catalog errors.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("product with this name already exists")
	ErrAlreadyLiked     = errors.New("you have already liked this product")
	ErrNotLiked         = errors.New("you haven't liked this product")
)

// Cart errors.
var ErrItemNotInCart = errors.New("item not found in cart")

// User and role management errors.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrNotVerified  = errors.New("user is not verified")
	ErrAlreadyAdmin = errors.New("user is already an admin")
	ErrNotAdmin     = errors.New("user is not an admin")
	ErrNoAdmins     = errors.New("no admins found")
)
