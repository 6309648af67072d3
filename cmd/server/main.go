package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/teamroster/internal/api"
	"github.com/mcoot/teamroster/internal/config"
	"github.com/mcoot/teamroster/internal/factory"
	"github.com/mcoot/teamroster/internal/web"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	envCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: envCfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	app, err := factory.New(factory.ConfigFromEnv(envCfg, logger))
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		RosterService: app.RosterService,
	})
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:        logger,
		RosterService: app.RosterService,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	server := api.NewServer(mux, api.ServerConfigFromEnv(envCfg), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("roster server configured",
		slog.String("addr", server.Addr()),
		slog.String("storage", envCfg.StorageType))

	return server.Run(ctx)
}
