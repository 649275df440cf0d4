// @title Tareas Backend API
// @version 1.0
// @description Multi-user task list API. Users register, log in and manage their own tasks.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/cors"

	_ "TAREAS_BACK-END/docs" // This is required for swagger
	"TAREAS_BACK-END/internal/auth"
	"TAREAS_BACK-END/internal/config"
	"TAREAS_BACK-END/internal/handlers"
	"TAREAS_BACK-END/internal/logging"
	"TAREAS_BACK-END/internal/middleware"
	"TAREAS_BACK-END/internal/migrations"
	"TAREAS_BACK-END/internal/repositories/repomanager"
	"TAREAS_BACK-END/internal/routes"
	"TAREAS_BACK-END/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)

	if err := run(cfg, logger); err != nil {
		logger.Error(context.Background(), "server exited", "error", err)
		os.Exit(1)
	}
}

func newPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	pcfg.ConnConfig.RuntimeParams["application_name"] = "tareas-backend"
	pcfg.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(cfg.Database.StatementTimeout.Milliseconds(), 10)
	pcfg.MaxConns = cfg.Database.MaxConns
	pcfg.MinConns = cfg.Database.MinConns
	pcfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

func run(cfg *config.Config, logger *logging.SlogLogger) error {
	ctx := context.Background()

	pool, err := newPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	// goose needs database/sql; share the pgx pool through the stdlib bridge
	sqlDB := stdlib.OpenDBFromPool(pool)
	if err := migrations.Up(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return fmt.Errorf("migrations: %w", err)
	}
	sqlDB.Close()
	logger.Info(ctx, "database ready")

	hasher, err := auth.NewBcryptHasher(cfg.Security.BcryptCost)
	if err != nil {
		return err
	}
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL)

	repos := repomanager.NewPostgresRepositoryManager()
	userService := services.NewUserService(pool, repos, hasher, tokens, logger.With("component", "users"))
	taskService := services.NewTaskService(pool, repos, logger.With("component", "tasks"))

	// --- HTTP Handlers ---
	mux := routes.SetupRoutes(routes.Handlers{
		Auth:    handlers.NewAuthHandler(userService),
		Profile: handlers.NewProfileHandler(userService),
		Tasks:   handlers.NewTaskHandler(taskService),
		Health:  handlers.NewHealthHandler(pool, logger.With("component", "health")),
	}, tokens, routes.Options{Debug: cfg.Server.Debug, Swagger: true})

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	handler := c.Handler(middleware.Chain(mux,
		middleware.RequestLogger(logger),
		middleware.Recoverer(logger),
		middleware.SecurityHeaders,
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
	))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "HTTP server listening", "addr", srv.Addr, "debug", cfg.Server.Debug)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		logger.Info(ctx, "shutting down server", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info(ctx, "server stopped")
	return nil
}
