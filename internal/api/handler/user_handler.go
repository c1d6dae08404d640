package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stylehive/shop-system/internal/core/domain"
	"github.com/stylehive/shop-system/internal/core/ports"
)

type usersResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    []*domain.User `json:"data"`
}

type singleUserResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Data    *domain.User `json:"data"`
}

// UserHandler handles user listing and admin role management. The
// :identifier path parameter is the user's email.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns every account. Password hashes are never serialized.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{
		Status:  "success",
		Message: "all users successfully retrieved",
		Data:    users,
	})
}

// Get returns a single account by email.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        identifier  path      string  true  "User email"
// @Success      200         {object}  singleUserResponse
// @Failure      404         {object}  errorResponse
// @Router       /user/{identifier} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("identifier"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, singleUserResponse{
		Status:  "success",
		Message: "user retrieved successfully",
		Data:    user,
	})
}

// AddAdmin grants the admin role.
//
// @Summary      Grant the admin role
// @Tags         users
// @Produce      json
// @Param        identifier  path      string  true  "User email"
// @Success      200         {object}  messageResponse
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /user/{identifier}/add-admin [put]
func (h *UserHandler) AddAdmin(c echo.Context) error {
	if err := h.service.PromoteAdmin(c.Request().Context(), c.Param("identifier")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user added to administrator role successfully"})
}

// RemoveAdmin revokes the admin role.
//
// @Summary      Revoke the admin role
// @Tags         users
// @Produce      json
// @Param        identifier  path      string  true  "User email"
// @Success      200         {object}  messageResponse
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /user/{identifier}/remove-admin [put]
func (h *UserHandler) RemoveAdmin(c echo.Context) error {
	if err := h.service.DemoteAdmin(c.Request().Context(), c.Param("identifier")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user removed from administrator role successfully"})
}

// Admins lists every admin-capable user. An empty result is a 404, matching
// the behaviour of the API this replaces.
//
// @Summary      List admins
// @Tags         users
// @Produce      json
// @Success      200  {object}  usersResponse
// @Failure      404  {object}  errorResponse
// @Router       /admins [get]
func (h *UserHandler) Admins(c echo.Context) error {
	admins, err := h.service.ListAdmins(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{
		Status:  "success",
		Message: "all admins successfully retrieved",
		Data:    admins,
	})
}
