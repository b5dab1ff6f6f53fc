// Package app wires configuration, storage, services, and transport into
// a runnable HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/articlehub/backend/internal/adapter/postgres"
	articlerepo "github.com/articlehub/backend/internal/adapter/postgres/article"
	userrepo "github.com/articlehub/backend/internal/adapter/postgres/user"
	"github.com/articlehub/backend/internal/auth"
	"github.com/articlehub/backend/internal/config"
	"github.com/articlehub/backend/internal/events"
	articlesvc "github.com/articlehub/backend/internal/service/article"
	authsvc "github.com/articlehub/backend/internal/service/auth"
	"github.com/articlehub/backend/internal/transport/middleware"
	"github.com/articlehub/backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, assembles services and transport, and serves HTTP until
// ctx is canceled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	articles := articlerepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hub := events.NewHub(logger, cfg.Events.SubscriberBuffer)

	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	articleService := articlesvc.NewService(logger, articles, users, hub, txManager)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rateLimiter.Stop()

	mux := rest.NewRouter(
		rest.NewArticleHandler(articleService, logger),
		rest.NewAuthHandler(authService, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
		rest.NewEventsHandler(hub, logger),
	)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		rateLimiter.Limit(cfg.RateLimit.RequestsPerMinute),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
