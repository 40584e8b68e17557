package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/news-website/config"
	"github.com/daniilsolovey/news-website/internal/app"
	"github.com/daniilsolovey/news-website/internal/db"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug  = flag.Bool("debug", false, "enable debug mode")
	cfg      config.Config
	lg       *slog.Logger
)

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	var err error
	cfg, err = config.Load(*flConfig)
	exitOnError(err)

	ctx := context.Background()

	store, err := newStore(ctx)
	exitOnError(err)

	service := app.New(cfg, store, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Port)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newStore(ctx context.Context) (*db.Store, error) {
	if cfg.InMemory {
		lg.Warn("using in-memory store, data is lost on restart")
		return db.NewInMemory(lg), nil
	}

	if cfg.Migrate {
		if err := db.Migrate(ctx, cfg.PostgresURL()); err != nil {
			return nil, err
		}
	}

	conn := pg.Connect(&cfg.Database)
	if cfg.LogQueries {
		conn.AddQueryHook(db.NewQueryHook(lg))
	}

	store := db.New(conn, lg)
	if err := store.Ping(ctx); err != nil {
		store.Close()
		return nil, err
	}

	return store, nil
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
