package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/deepaksuresh242006-wq/snekers-store/api/routes"
	"github.com/deepaksuresh242006-wq/snekers-store/internal/auth"
	checkoutsvc "github.com/deepaksuresh242006-wq/snekers-store/internal/checkout"
	"github.com/deepaksuresh242006-wq/snekers-store/internal/marketplace"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/config"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/logger"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	seed, err := marketplace.DefaultSeed()
	if err != nil {
		logg.Error(context.Background(), "failed to load seed catalog", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	storeMetrics := metrics.NewStoreMetrics(registry)

	store, err := marketplace.New(marketplace.Config{
		UndoWindow: cfg.Marketplace.UndoWindow,
	}, seed, logg, storeMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create marketplace store", err)
		os.Exit(1)
	}

	authCollaborator, err := auth.NewService(cfg.Session, store, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth collaborator", err)
		os.Exit(1)
	}
	store.BindSessionEnder(authCollaborator)

	shippingFee, err := cfg.Checkout.ShippingFee()
	if err != nil {
		logg.Error(context.Background(), "invalid shipping fee", err)
		os.Exit(1)
	}
	checkoutService, err := checkoutsvc.NewService(checkoutsvc.Params{
		Store:           store,
		Logger:          logg,
		Metrics:         storeMetrics,
		ProcessingDelay: cfg.Checkout.ProcessingDelay,
		ShippingFee:     shippingFee,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, store, authCollaborator, checkoutService, registry),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	stop, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	select {
	case err := <-errCh:
		if err != nil {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stop.Done():
	}

	logg.Info(ctx, "shutting down api server")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	var closeErr error
	closeErr = multierr.Append(closeErr, server.Shutdown(shutdownCtx))
	store.Close()
	if closeErr != nil {
		logg.Error(ctx, "shutdown finished with errors", closeErr)
		os.Exit(1)
	}
	logg.Info(ctx, "api server stopped")
}
