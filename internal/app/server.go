package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/learnenglish-backend/internal/auth"
	"github.com/heartmarshall/learnenglish-backend/internal/config"
	"github.com/heartmarshall/learnenglish-backend/internal/transport/middleware"
	"github.com/heartmarshall/learnenglish-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, wires the
// application and serves HTTP until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
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

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	var jwt *auth.JWTManager
	if cfg.Auth.Enabled() {
		jwt = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	} else {
		logger.Warn("auth secret not configured, administrative endpoints disabled")
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	dictionaryURL := cfg.Scraper.DictionaryURL
	handlers := Handlers{
		Health: rest.NewHealthHandler(Version,
			rest.Probe{Name: "database", Target: c.Pool, Critical: true},
			rest.Probe{Name: "dictionary", Target: rest.PingFunc(func(ctx context.Context) error {
				return c.Fetcher.Ping(ctx, dictionaryURL)
			})},
		),
		Word:     rest.NewWordHandler(c.Words, logger),
		Import:   rest.NewImportHandler(c.Importer, logger),
		Category: rest.NewCategoryHandler(c.Categories, logger),
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewRouter(cfg, logger, handlers, jwt, limiter),
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
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
