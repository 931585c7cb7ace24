// Package cli provides common initialization for the finview binaries:
// logging, .env loading, configuration and service wiring.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"finview/internal/backend"
	"finview/internal/cache"
	"finview/internal/config"
	"finview/internal/log"
	"finview/internal/market"
	"finview/internal/report"
	"finview/internal/services"
	"finview/internal/settings"
	"finview/internal/sheets"
)

// SetupLogger initializes structured logging at the LOG_LEVEL level and sets
// it as the default logger.
func SetupLogger() *log.Logger {
	cfg := log.DefaultConfig()
	cfg.Level = log.ParseLevel(os.Getenv("LOG_LEVEL"))
	logger := log.New(cfg)
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// NewLedgerReader builds the ledger source selected by cfg.LedgerBackend.
func NewLedgerReader(ctx context.Context, cfg *config.Config, logger *log.Logger) (sheets.LedgerReader, error) {
	bc, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}
	return backend.NewFactory(logger).CreateLedger(ctx, bc)
}

// App holds the wired services shared by the binaries.
type App struct {
	Ledger sheets.LedgerReader
	Home   *services.HomeService
	Report *services.ReportService
	Search *services.SearchService
	Caches *cache.Manager
}

// NewApp wires the ledger source, market clients and services from cfg.
// The returned cache manager is registered but not started.
func NewApp(ctx context.Context, cfg *config.Config, logger *log.Logger) (*App, error) {
	ledger, err := NewLedgerReader(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	hc := market.NewHTTPClient(cfg.MarketTimeout)
	rates := market.NewExchangeRateClient(cfg.CurrencyAPIURL, cfg.APIKeyCurrency, hc, cfg.MarketCacheTTL)
	prices := market.NewFinnhubClient(cfg.StockAPIURL, cfg.APIKeyStock, hc, cfg.MarketCacheTTL)
	caches := cache.NewManager()
	caches.Register(rates.Cache())
	caches.Register(prices.Cache())

	return &App{
		Ledger: ledger,
		Home:   services.NewHomeService(ledger, settings.File(cfg.UserSettingsPath), rates, prices, cfg.BaseCurrency, logger),
		Report: services.NewReportService(ledger, report.NewWriter(cfg.ReportDir), logger),
		Search: services.NewSearchService(ledger, logger),
		Caches: caches,
	}, nil
}

// GracefulShutdown sets up signal handling for graceful shutdown.
// Returns a context that will be cancelled on shutdown signals,
// and a channel that signals when cleanup has finished.
func GracefulShutdown(logger *log.Logger, timeout time.Duration, cleanup func(context.Context)) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String(), log.FieldOperation, log.OpShutdown)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
		defer shutdownCancel()

		cancel()
		if cleanup != nil {
			cleanup(shutdownCtx)
		}

		if shutdownCtx.Err() != nil {
			logger.Warn("Shutdown timeout reached")
		} else {
			logger.Info("Shutdown complete")
		}
		close(done)
	}()

	return ctx, done
}

// WaitForShutdown blocks until the context is cancelled and cleanup is done.
func WaitForShutdown(ctx context.Context, done <-chan struct{}) {
	<-ctx.Done()
	<-done
}
