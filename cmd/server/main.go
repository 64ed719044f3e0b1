package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/ankitpatil/disha/internal"
	"github.com/ankitpatil/disha/internal/auth"
	"github.com/ankitpatil/disha/internal/billing"
	"github.com/ankitpatil/disha/internal/entitlement"
	"github.com/ankitpatil/disha/internal/events"
	"github.com/ankitpatil/disha/internal/export"
	"github.com/ankitpatil/disha/internal/handler"
	"github.com/ankitpatil/disha/internal/kv"
	"github.com/ankitpatil/disha/internal/metrics"
	"github.com/ankitpatil/disha/internal/middleware"
	"github.com/ankitpatil/disha/internal/repository"
	"github.com/ankitpatil/disha/internal/storage"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database connection and run migrations
	db, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	if err := internal.RunMigrations(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database pool failed: %w", err)
	}
	defer pool.Close()
	logger.Info("Database ready")

	// Subscription and usage record store
	store, closeStore, err := newKVStore(cfg, pool)
	if err != nil {
		return err
	}
	defer closeStore()
	logger.Info("KV store ready", "provider", cfg.KVProvider)

	// Object storage for result exports
	objects, err := newObjectStorage(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("Object storage ready", "provider", cfg.StorageProvider)

	// Event publisher (no-op without brokers)
	publisher := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
	defer publisher.Close()

	// Core services
	engine := entitlement.New(store, logger)
	results := repository.NewResultRepository(pool)
	exports := export.NewService(objects, engine, logger)

	billingEnabled := cfg.StripeSecretKey != "" && cfg.StripeWebhookSecret != ""
	billingSvc := billing.NewStripeService(cfg.StripeSecretKey, cfg.StripeWebhookSecret, billing.PriceConfig{
		ProMonthlyPriceID: cfg.StripeProMonthlyPriceID,
		MaxMonthlyPriceID: cfg.StripeMaxMonthlyPriceID,
	})
	if !billingEnabled {
		logger.Warn("Stripe not configured; checkout applies upgrades directly")
	}

	// Token verification
	var verifier *auth.Verifier
	if !cfg.AuthDisabled {
		verifier, err = auth.NewVerifier(cfg.AuthIssuer, cfg.AuthAudience, cfg.AuthJWKSURL)
		if err != nil {
			return fmt.Errorf("auth verifier initialization failed: %w", err)
		}
	} else {
		logger.Warn("Auth disabled; requests attributed to the local development user")
	}

	// Middleware
	authMw := middleware.NewAuthMiddleware(verifier, logger, cfg.AuthDisabled)
	loggingMw := middleware.NewRequestLoggingMiddleware(logger)
	metricsAuthMw := middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	mux.Handle("GET /metrics", metricsAuthMw.Handler(promhttp.Handler()))

	// Exported result downloads (local storage only; S3 serves its own URLs)
	if local, ok := objects.(*storage.LocalStorage); ok {
		fs := http.FileServer(http.Dir(local.BasePath()))
		mux.Handle("GET /files/", http.StripPrefix("/files/", fs))
	}

	// Public API
	handler.NewPlanHandler(logger).RegisterRoutes(mux)
	handler.NewDirectoryHandler(logger).RegisterRoutes(mux)

	billingHandler := handler.NewBillingHandler(
		billingSvc, engine, store, publisher, cfg.BaseURL, billingEnabled, logger)
	billingHandler.RegisterWebhook(mux)

	// Authenticated API
	requireAuth := authMw.Handler
	handler.NewSubscriptionHandler(engine, publisher, logger).RegisterRoutes(mux, requireAuth)
	handler.NewAssessmentHandler(engine, results, exports, publisher, logger).RegisterRoutes(mux, requireAuth)
	billingHandler.RegisterRoutes(mux, requireAuth)

	root := metrics.Middleware(loggingMw.Handler(mux))

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: root,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

// newKVStore builds the configured subscription/usage store. The returned
// close function releases provider resources.
func newKVStore(cfg *internal.Config, pool *pgxpool.Pool) (kv.Store, func(), error) {
	switch cfg.KVProvider {
	case kv.ProviderMemory:
		return kv.NewMemoryStore(), func() {}, nil
	case kv.ProviderPostgres:
		return kv.NewPostgresStore(pool), func() {}, nil
	case kv.ProviderRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		return kv.NewRedisStore(client), func() { client.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown KV provider: %s", cfg.KVProvider)
}

func newObjectStorage(cfg *internal.Config, logger *slog.Logger) (storage.Storage, error) {
	switch cfg.StorageProvider {
	case storage.ProviderS3:
		return storage.NewS3Storage(storage.S3Config{
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			BucketName:      cfg.S3BucketName,
			PublicURL:       cfg.S3PublicURL,
			Region:          cfg.S3Region,
		}, logger)
	case storage.ProviderLocal:
		return storage.NewLocalStorage(storage.LocalConfig{
			BasePath: cfg.LocalStoragePath,
			BaseURL:  cfg.LocalStorageURL,
		}, logger)
	}
	return nil, fmt.Errorf("unknown storage provider: %s", cfg.StorageProvider)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
