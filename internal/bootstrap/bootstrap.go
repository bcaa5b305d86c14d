// Package bootstrap builds the pieces shared by the API server and the
// operator CLI from a loaded config.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/VanderIG123/stylists-api/internal/clock"
	"github.com/VanderIG123/stylists-api/internal/config"
	"github.com/VanderIG123/stylists-api/internal/media"
	"github.com/VanderIG123/stylists-api/internal/metrics"
	"github.com/VanderIG123/stylists-api/internal/middleware"
	"github.com/VanderIG123/stylists-api/internal/storage"
	"github.com/VanderIG123/stylists-api/internal/store"
)

// OpenStore connects the configured persister and loads every collection.
// The returned func releases the persister.
func OpenStore(ctx context.Context, cfg *config.Config, log *zap.Logger, m *metrics.Metrics) (*store.Store, func() error, error) {
	var (
		p       storage.Persister
		closeFn = func() error { return nil }
	)

	switch cfg.StorageDriver {
	case "postgres":
		pg, err := storage.OpenPostgres(cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		p, closeFn = pg, pg.Close
	default:
		fp, err := storage.NewFilePersister(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		p = fp
	}

	clk := clock.New(cfg.Timezone)
	s, err := store.Open(ctx, p, log.Named("store"), store.Options{
		Strict:       cfg.StrictLoad,
		SeedStylists: store.DefaultStylists(clk.Now()),
		OnPersist: func(c store.Collection, took time.Duration, err error) {
			m.ObservePersist(string(c), took, err)
		},
	})
	if err != nil {
		_ = closeFn()
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return s, closeFn, nil
}

func MediaStore(cfg *config.Config) (media.Store, error) {
	if cfg.MediaDriver == "s3" {
		return media.NewS3Store(media.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
			BaseURL:   cfg.MediaBaseURL,
		})
	}
	return media.NewDiskStore(cfg.MediaDir, cfg.MediaBaseURL)
}

// Limiter shares the budget through redis when REDIS_ADDR is set and falls
// back to a per-process limiter otherwise.
func Limiter(ctx context.Context, cfg *config.Config, log *zap.Logger) (middleware.Limiter, func() error) {
	if cfg.RateLimitPerMin <= 0 {
		return nil, func() error { return nil }
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		err := client.Ping(pingCtx).Err()
		if err == nil {
			return middleware.NewRedisLimiter(client, cfg.RateLimitPerMin), client.Close
		}
		log.Warn("redis unavailable, using in-memory rate limiter", zap.Error(err))
		_ = client.Close()
	}

	return middleware.NewMemoryLimiter(cfg.RateLimitPerMin, cfg.RateLimitBurst), func() error { return nil }
}
