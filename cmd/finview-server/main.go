package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"finview/internal/cli"
	apphttp "finview/internal/http"
	"finview/internal/log"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	app, err := cli.NewApp(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize", log.FieldOperation, log.OpStartup, log.FieldError, err)
		os.Exit(1)
	}

	srv := apphttp.NewServer(":"+cfg.Port, apphttp.Options{
		Home:               app.Home,
		Search:             app.Search,
		Report:             app.Report,
		Ledger:             app.Ledger,
		Logger:             logger,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func(shutdownCtx context.Context) {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", log.FieldError, err)
		}
		app.Caches.Stop()
	})
	app.Caches.Start(ctx, cfg.MarketCacheTTL)

	logger.Info("Starting finview server", "port", cfg.Port, log.FieldBackend, cfg.LedgerBackend, log.FieldOperation, log.OpStartup)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", log.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully")
}
