package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytehaven/staffdesk/api/internal/config"
	"github.com/bytehaven/staffdesk/api/internal/database"
	"github.com/bytehaven/staffdesk/api/internal/handler"
	"github.com/bytehaven/staffdesk/api/internal/metrics"
	"github.com/bytehaven/staffdesk/api/internal/middleware"
	"github.com/bytehaven/staffdesk/api/internal/repository"
	"github.com/bytehaven/staffdesk/api/internal/service"
	"github.com/bytehaven/staffdesk/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	applicationRepo := repository.NewApplicationRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	applicationService := service.NewApplicationService(service.ApplicationServiceConfig{
		Repo: applicationRepo,
	})

	settingsService := service.NewSettingsService(service.SettingsServiceConfig{
		Repo: settingsRepo,
	})

	authService := service.NewAuthService(service.AuthServiceConfig{
		Signer:       jwtService,
		PasswordHash: cfg.Admin.PasswordHash,
	})

	seederService := service.NewSeederService(applicationRepo)

	// Initialize idempotency store
	idempotencyStore := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{
		TTL:     24 * time.Hour,
		Cleanup: time.Hour,
	})
	defer idempotencyStore.Stop()

	// Initialize handlers
	applicationHandler := handler.NewApplicationHandler(applicationService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	authHandler := handler.NewAuthHandler(authService)
	seederHandler := handler.NewSeederHandler(seederService)
	healthHandler := handler.NewHealthHandler(db)

	adminMiddleware := middleware.AdminAuth(jwtService)
	idempotent := middleware.Idempotency(idempotencyStore)

	// Setup routes
	mux := http.NewServeMux()

	// Health and metrics
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", metrics.Handler())

	// Public endpoints
	mux.Handle("POST /api/applications", idempotent(http.HandlerFunc(applicationHandler.Submit)))
	mux.HandleFunc("GET /api/settings", settingsHandler.Get)
	mux.HandleFunc("POST /api/admin/login", authHandler.Login)

	// Review dashboard endpoints - requires admin session
	mux.Handle("GET /api/applications", adminMiddleware(http.HandlerFunc(applicationHandler.List)))
	mux.Handle("GET /api/applications/stats", adminMiddleware(http.HandlerFunc(applicationHandler.Stats)))
	mux.Handle("PATCH /api/applications/{applicationId}", adminMiddleware(idempotent(http.HandlerFunc(applicationHandler.Update))))
	mux.Handle("DELETE /api/applications/{applicationId}", adminMiddleware(http.HandlerFunc(applicationHandler.Delete)))
	mux.Handle("PATCH /api/settings", adminMiddleware(idempotent(http.HandlerFunc(settingsHandler.Update))))

	// Seeder endpoints (for development/testing) - requires admin session
	if !cfg.IsProduction() {
		mux.Handle("POST /api/admin/seed/applications", adminMiddleware(http.HandlerFunc(seederHandler.SeedApplications)))
		mux.Handle("DELETE /api/admin/seed/cleanup", adminMiddleware(http.HandlerFunc(seederHandler.Cleanup)))
	}

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		metrics.InstrumentHandler,
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
