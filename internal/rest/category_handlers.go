package rest

import (
	"net/http"

	"github.com/daniilsolovey/news-website/internal/newsportal"
	"github.com/labstack/echo/v4"
)

// Categories handles GET /api/v1/categories
// @Summary Get all categories
// @Description Returns all categories with their news
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.categories.Categories(c.Request().Context())
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategories(categories))
}

// AddCategory handles POST /api/v1/categories
// @Summary Add category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.CategoryRequest true "Category"
// @Success 201 {object} rest.Category
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/categories [post]
func (h *Handler) AddCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	category, err := h.categories.AddCategory(c.Request().Context(), h.actor(c), newsportal.Category{Name: req.Name})
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusCreated, NewCategory(*category))
}
