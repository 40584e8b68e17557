package rest

import (
	"net/http"

	"github.com/daniilsolovey/news-website/internal/newsportal"
	"github.com/labstack/echo/v4"
)

// Login handles POST /api/v1/users/login
// @Summary Log in
// @Description Returns a bearer token for valid credentials
// @Tags users
// @Accept json
// @Produce json
// @Param request body rest.LoginRequest true "Credentials"
// @Success 200 {object} rest.TokenResponse
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/users/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	user, err := h.users.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.handleManagerError(c, err)
	} else if user == nil {
		return h.handleError(c, nil, http.StatusUnauthorized, "invalid username or password")
	}

	token, expiresAt, err := h.tokens.Issue(*user)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      NewUser(*user),
	})
}

// Register handles POST /api/v1/users
// @Summary Register user
// @Description Admins register users; the first user may register without a token
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.RegisterRequest true "User"
// @Success 201 {object} rest.User
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/users [post]
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	user, err := h.users.AddUser(c.Request().Context(), h.actor(c), newsportal.Registration{
		Username: req.Username,
		Role:     newsportal.Role(req.Role),
		Password: req.Password,
	})
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusCreated, NewUser(*user))
}

// DeleteUser handles DELETE /api/v1/users/:username
// @Summary Delete user
// @Description Deletes the user and their news. Admins may delete anyone, others only themselves
// @Tags users
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 204
// @Failure 401,403,404,500 {object} map[string]string
// @Router /api/v1/users/{username} [delete]
func (h *Handler) DeleteUser(c echo.Context) error {
	err := h.users.DeleteUser(c.Request().Context(), h.actor(c), newsportal.User{Username: c.Param("username")})
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
