package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const defaultPopularMinViews = 10

// News handles GET /api/v1/news
// @Summary Get news sorted by date
// @Description Returns one page of news sorted by date, newest first unless asc=true
// @Tags news
// @Produce json
// @Param asc query bool false "Oldest first"
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (default: 20, max: 100)"
// @Success 200 {array} rest.News
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/news [get]
func (h *Handler) News(c echo.Context) error {
	var req NewsListRequest
	if err := bindQuery(c, &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	list, err := h.news.NewsSortedByDate(c.Request().Context(), !req.Asc, req.Page, req.PageSize)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewNewsList(list))
}

// AllNews handles GET /api/v1/news/all
// @Summary Get all news
// @Tags news
// @Produce json
// @Success 200 {array} rest.News
// @Failure 500 {object} map[string]string
// @Router /api/v1/news/all [get]
func (h *Handler) AllNews(c echo.Context) error {
	list, err := h.news.News(c.Request().Context())
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewNewsList(list))
}

// PopularNews handles GET /api/v1/news/popular
// @Summary Get popular news
// @Description Returns news with at least min_views views, most viewed first
// @Tags news
// @Produce json
// @Param min_views query int false "Minimum views (default: 10)"
// @Success 200 {array} rest.News
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/news/popular [get]
func (h *Handler) PopularNews(c echo.Context) error {
	req := PopularRequest{MinViews: defaultPopularMinViews}
	if err := bindQuery(c, &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	list, err := h.news.PopularNews(c.Request().Context(), req.MinViews)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewNewsList(list))
}

// NewsCount handles GET /api/v1/news/count
// @Summary Get news count
// @Tags news
// @Produce json
// @Param category_id query int false "Count only news in this category"
// @Success 200 {object} rest.CountResponse
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/news/count [get]
func (h *Handler) NewsCount(c echo.Context) error {
	var req NewsCountRequest
	if err := bindQuery(c, &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	var categoryID *int
	if req.CategoryID != 0 {
		categoryID = &req.CategoryID
	}

	count, err := h.news.NewsCount(c.Request().Context(), categoryID)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, CountResponse{Count: count})
}

// NewsByID handles GET /api/v1/news/:id
// @Summary Get news by ID
// @Description Returns a single news item and counts the read as a view
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} rest.News
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/news/{id} [get]
func (h *Handler) NewsByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	news, err := h.news.NewsByID(c.Request().Context(), id)
	if err != nil {
		return h.handleManagerError(c, err)
	} else if news == nil {
		return h.handleError(c, nil, http.StatusNotFound, "news not found")
	}

	return c.JSON(http.StatusOK, NewNews(*news))
}

// NewsByCategory handles GET /api/v1/categories/:id/news
// @Summary Get news of a category
// @Tags news
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} rest.News
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/categories/{id}/news [get]
func (h *Handler) NewsByCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	category, err := h.categories.CategoryByID(c.Request().Context(), id)
	if err != nil {
		return h.handleManagerError(c, err)
	} else if category == nil {
		return h.handleError(c, nil, http.StatusNotFound, "category not found")
	}

	list, err := h.news.NewsByCategory(c.Request().Context(), id)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewNewsList(list))
}

// AddNews handles POST /api/v1/news
// @Summary Publish news
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.NewsRequest true "News"
// @Success 201 {object} rest.News
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/news [post]
func (h *Handler) AddNews(c echo.Context) error {
	var req NewsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	news, err := h.news.AddNews(c.Request().Context(), h.actor(c), req.ToModel(0))
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusCreated, NewNews(*news))
}

// EditNews handles PUT /api/v1/news/:id
// @Summary Edit news
// @Description Only the author or an admin may edit
// @Tags news
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "News ID"
// @Param request body rest.NewsRequest true "News"
// @Success 200 {object} rest.News
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/v1/news/{id} [put]
func (h *Handler) EditNews(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req NewsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	news, err := h.news.EditNews(c.Request().Context(), h.actor(c), req.ToModel(id))
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewNews(*news))
}

// DeleteNews handles DELETE /api/v1/news/:id
// @Summary Delete news
// @Description Only the author or an admin may delete
// @Tags news
// @Security BearerAuth
// @Param id path int true "News ID"
// @Success 204
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/v1/news/{id} [delete]
func (h *Handler) DeleteNews(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.news.DeleteNews(c.Request().Context(), h.actor(c), id); err != nil {
		return h.handleManagerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
