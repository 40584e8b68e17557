package rest

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"

	healthPath = "/health"
)

// NewEcho returns an echo instance with request id, recovery and request logging middleware.
func NewEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.InfoContext(c.Request().Context(), "HTTP request",
				"method", v.Method,
				"path", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"request_id", v.RequestID,
			)
			return nil
		},
	}))

	return e
}

// RegisterRoutes registers the health check and the API routes. Every API route runs behind the
// bearer token middleware.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET(healthPath, h.Health)

	api := e.Group(apiV1Prefix, h.tokens.Authenticate)

	api.POST("/users/login", h.Login)
	api.POST("/users", h.Register)
	api.DELETE("/users/:username", h.DeleteUser)

	api.GET("/categories", h.Categories)
	api.POST("/categories", h.AddCategory)
	api.GET("/categories/:id/news", h.NewsByCategory)

	api.GET("/news", h.News)
	api.GET("/news/all", h.AllNews)
	api.GET("/news/popular", h.PopularNews)
	api.GET("/news/count", h.NewsCount)
	api.GET("/news/:id", h.NewsByID)
	api.POST("/news", h.AddNews)
	api.PUT("/news/:id", h.EditNews)
	api.DELETE("/news/:id", h.DeleteNews)
}
