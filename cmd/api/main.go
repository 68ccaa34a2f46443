package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-admin/internal/cache"
	"storefront-admin/internal/config"
	"storefront-admin/internal/database"
	"storefront-admin/internal/handler"
	"storefront-admin/internal/health"
	"storefront-admin/internal/metrics"
	"storefront-admin/internal/repository"
	"storefront-admin/internal/router"
	"storefront-admin/internal/service"
	"storefront-admin/internal/voucher"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting storefront admin API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, pool, "up", logger); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// FAQ cache is optional; without Redis every public read goes to Postgres.
	var faqCache cache.Cache
	if cfg.Redis.Enabled {
		redisCache, err := cache.Connect(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, FAQ cache disabled")
		} else {
			defer redisCache.Close()
			faqCache = redisCache
		}
	}

	// Initialize repositories
	voucherRepo := repository.NewVoucherRepository(pool, logger)
	faqRepo := repository.NewFAQRepository(pool, logger)
	paymentMethodRepo := repository.NewPaymentMethodRepository(pool, logger)

	if cfg.VoucherImport.Enabled {
		if err := importVouchers(ctx, cfg.VoucherImport, voucherRepo, m, logger); err != nil {
			return fmt.Errorf("failed to import vouchers: %w", err)
		}
	}

	// Initialize voucher validator
	validatorConfig := voucher.DefaultValidatorConfig()
	validatorConfig.CurrencySymbol = cfg.Currency.Symbol
	validator := voucher.NewValidator(voucherRepo, validatorConfig, m, logger)

	// Initialize services
	voucherService := service.NewVoucherService(voucherRepo, validator, logger)
	faqService := service.NewFAQService(faqRepo, faqCache, cfg.Redis.FAQTTL, m, logger)
	paymentMethodService := service.NewPaymentMethodService(paymentMethodRepo, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Health:        handler.NewHealthHandler(health.NewChecker(cfg.Backend, pool, nil, logger), logger),
		Voucher:       handler.NewVoucherHandler(voucherService, logger),
		FAQ:           handler.NewFAQHandler(faqService, logger),
		PaymentMethod: handler.NewPaymentMethodHandler(paymentMethodService, logger),
	}

	// Initialize router
	mux := router.New(handlers, cfg.Auth.APIKey, m, promhttp.Handler(), logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// importVouchers upserts the configured voucher file, trying S3 first when enabled.
func importVouchers(ctx context.Context, cfg config.VoucherImportConfig, store voucher.Upserter, m *metrics.Metrics, logger zerolog.Logger) error {
	fileLoader := voucher.NewFileLoader(logger)

	var s3Loader voucher.Loader
	if cfg.S3Enabled {
		l, err := voucher.NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = l
		}
	} else {
		logger.Info().Msg("using local file system for voucher import (S3 disabled)")
	}

	loader := voucher.NewFallbackLoader(s3Loader, fileLoader, cfg.S3Prefix, cfg.S3Enabled, logger)

	importCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	_, err := voucher.NewImporter(loader, store, m, logger).Import(importCtx, cfg.File)
	return err
}
