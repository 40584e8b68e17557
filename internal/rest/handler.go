package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/news-website/internal/newsportal"
	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	categories *newsportal.CategoryManager
	news       *newsportal.NewsManager
	users      *newsportal.UserManager
	tokens     *TokenIssuer
	log        *slog.Logger
}

func NewHandler(
	categories *newsportal.CategoryManager,
	news *newsportal.NewsManager,
	users *newsportal.UserManager,
	tokens *TokenIssuer,
	log *slog.Logger,
) *Handler {
	return &Handler{
		categories: categories,
		news:       news,
		users:      users,
		tokens:     tokens,
		log:        log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.ErrorContext(c.Request().Context(), "handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// handleManagerError maps manager errors onto HTTP statuses.
func (h *Handler) handleManagerError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, newsportal.ErrValidation):
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	case errors.Is(err, newsportal.ErrUnauthenticated):
		return h.handleError(c, err, http.StatusUnauthorized, err.Error())
	case errors.Is(err, newsportal.ErrForbidden):
		return h.handleError(c, err, http.StatusForbidden, err.Error())
	case errors.Is(err, newsportal.ErrNotFound):
		return h.handleError(c, err, http.StatusNotFound, err.Error())
	}

	return h.handleError(c, err, http.StatusInternalServerError, "internal error")
}

func (h *Handler) actor(c echo.Context) newsportal.Actor {
	return newsportal.ActorFrom(c.Request().Context())
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}

func bindQuery(c echo.Context, dst any) error {
	return urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), dst)
}

// Health handles GET /health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
