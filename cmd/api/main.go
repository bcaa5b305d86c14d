package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VanderIG123/stylists-api/internal/audit"
	"github.com/VanderIG123/stylists-api/internal/bootstrap"
	"github.com/VanderIG123/stylists-api/internal/clock"
	"github.com/VanderIG123/stylists-api/internal/config"
	"github.com/VanderIG123/stylists-api/internal/identity"
	"github.com/VanderIG123/stylists-api/internal/logging"
	"github.com/VanderIG123/stylists-api/internal/metrics"
	"github.com/VanderIG123/stylists-api/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	st, closeStore, err := bootstrap.OpenStore(ctx, cfg, logger, m)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	mediaStore, err := bootstrap.MediaStore(cfg)
	if err != nil {
		return err
	}

	limiter, closeLimiter := bootstrap.Limiter(ctx, cfg, logger)
	defer func() { _ = closeLimiter() }()

	auditDispatcher := audit.NewDispatcher(audit.New(logger), logger)
	defer auditDispatcher.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	if err := routes.RegisterRoutes(r, routes.Deps{
		Config:  cfg,
		Log:     logger,
		Store:   st,
		Clock:   clock.New(cfg.Timezone),
		Metrics: m,
		Audit:   auditDispatcher,
		Media:   mediaStore,
		Limiter: limiter,
		Hasher:  identity.NewBcryptHasher(cfg.BcryptCost),
	}); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", zap.String("addr", cfg.Addr()), zap.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
