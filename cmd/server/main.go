package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"company_analysis/internal/app/di"
	"company_analysis/internal/app/router"
	"company_analysis/internal/config"
	analysishandler "company_analysis/internal/feature/analysis/transport/handler"
	analysisusecase "company_analysis/internal/feature/analysis/usecase"
	"company_analysis/internal/feature/report/adapters/inprocess"
	reporthandler "company_analysis/internal/feature/report/transport/handler"
	platformhandler "company_analysis/internal/platform/http/handler"
	"company_analysis/internal/platform/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Setup(os.Stdout, cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Provider
	provider, err := di.NewCompletionProvider(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create analysis provider: %w", err)
	}

	// Repository
	recorder, gdb, err := di.NewGenerationRecorder(cfg.GenerationLog)
	if err != nil {
		return fmt.Errorf("failed to open generation log: %w", err)
	}
	if gdb != nil {
		defer func() {
			if sqlDB, err := gdb.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					slog.Error("failed to close generation log database", "error", err)
				}
			}
		}()
	}

	// Usecase
	analysisUC := analysisusecase.NewAnalysisUsecase(provider, cfg.Analysis.Provider, recorder)

	// Handler
	analysisH := analysishandler.NewAnalysisHandler(analysisUC)
	reportH := reporthandler.NewReportHandler(inprocess.NewFetcher(analysisUC))

	// ルータ生成
	r := router.NewRouter(router.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Provider:       platformhandler.ProviderStatus{Name: cfg.Analysis.Provider, Configured: provider != nil},
	}, analysisH, reportH)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("starting server", "address", srv.Addr, "provider", cfg.Analysis.Provider)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("starting shutdown")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}
	return nil
}
