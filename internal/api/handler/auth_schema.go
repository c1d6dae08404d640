package handler

import "github.com/stylehive/shop-system/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for operations whose only payload is a
// confirmation message.
type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Username       string `json:"username"        validate:"required"`
	Email          string `json:"email"           validate:"required,email"`
	Password       string `json:"password"        validate:"required"`
	RepeatPassword string `json:"repeat_password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

// userResponse is the public view of an account; the password hash never
// leaves the domain type anyway (json:"-"), this narrows the rest.
type userResponse struct {
	Email    string   `json:"email"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{Email: u.Email, Username: u.Username, Roles: u.Roles}
}

type loginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

type statusResponse struct {
	Authorized bool         `json:"authorized"`
	User       userResponse `json:"user"`
}
