// Package app wires configuration, storage, services and transport together
// and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/taskloop/taskloop-backend/internal/adapter/postgres"
	taskrepo "github.com/taskloop/taskloop-backend/internal/adapter/postgres/task"
	"github.com/taskloop/taskloop-backend/internal/adapter/provider/claude"
	"github.com/taskloop/taskloop-backend/internal/auth"
	"github.com/taskloop/taskloop-backend/internal/config"
	"github.com/taskloop/taskloop-backend/internal/service/generation"
	tasksvc "github.com/taskloop/taskloop-backend/internal/service/task"
	"github.com/taskloop/taskloop-backend/internal/transport/middleware"
	"github.com/taskloop/taskloop-backend/internal/transport/rest"
)

// Run starts the application and blocks until the context is cancelled or a
// termination signal arrives.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	logger.Info("starting", slog.String("version", Version))

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	taskRepo := taskrepo.New(pool)
	provider := claude.NewProvider(cfg.Generation, logger)

	taskService := tasksvc.NewService(logger, taskRepo)
	generationService := generation.NewService(logger, provider)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	router := rest.NewRouter(rest.RouterDeps{
		Logger:     logger,
		CORS:       cfg.CORS,
		Auth:       middleware.Auth(jwtManager),
		Tasks:      rest.NewTaskHandler(logger, taskService),
		Topics:     rest.NewTopicHandler(logger, taskService),
		Generation: rest.NewGenerationHandler(logger, generationService),
		Health:     rest.NewHealthHandler(pool, Version),
	})

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
