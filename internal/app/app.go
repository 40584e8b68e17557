package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/news-website/config"
	"github.com/daniilsolovey/news-website/internal/db"
	"github.com/daniilsolovey/news-website/internal/newsportal"
	"github.com/daniilsolovey/news-website/internal/rest"
	"github.com/daniilsolovey/news-website/internal/rpc"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const rpcPath = "/rpc/"

type App struct {
	Store  *db.Store
	Logger *slog.Logger
	Echo   *echo.Echo
	Config config.Config
}

func New(cfg config.Config, store *db.Store, logger *slog.Logger) *App {
	return NewWithHasher(cfg, store, newsportal.NewBcryptHasher(bcrypt.DefaultCost), logger)
}

// NewWithHasher is New with a custom password hasher.
func NewWithHasher(cfg config.Config, store *db.Store, hasher newsportal.PasswordHasher, logger *slog.Logger) *App {
	categories := newsportal.NewCategoryManager(store, logger)
	news := newsportal.NewNewsManager(store, logger)
	users := newsportal.NewUserManager(store, hasher, logger)
	tokens := rest.NewTokenIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL.Duration)

	e := rest.NewEcho(logger)
	rest.NewHandler(categories, news, users, tokens, logger).RegisterRoutes(e)

	rpcServer := rpc.New(logger, rpc.Managers{
		Categories: categories,
		News:       news,
		Users:      users,
	}, tokens)
	e.Any(rpcPath, echo.WrapHandler(rpcServer), tokens.Authenticate)

	return &App{
		Store:  store,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, port)
	a.Logger.InfoContext(ctx, "service started", "addr", addr)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return a.Store.Close()
}
