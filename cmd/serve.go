package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dradle/my-bike-rent/internal/config"
	"github.com/dradle/my-bike-rent/internal/db"
	httpSrv "github.com/dradle/my-bike-rent/internal/http"
	"github.com/dradle/my-bike-rent/internal/logger"
	"github.com/dradle/my-bike-rent/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run HTTP dashboard server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger.Init(cfg.Log.Level, cfg.Log.Encoding)
		defer func() { _ = logger.Log.Sync() }()

		svc, cleanup, err := buildLookup(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		var rds redis.Cmdable
		if cfg.Redis.Addr != "" {
			redisClient, err := db.NewRedisClient(db.RedisOpts{
				Addr:        cfg.Redis.Addr,
				Password:    cfg.Redis.Password,
				DB:          cfg.Redis.DB,
				DialTimeout: cfg.Redis.DialTimeout,
			})
			if err != nil {
				return fmt.Errorf("redis connect: %w", err)
			}
			defer func() { _ = redisClient.Close() }()
			rds = redisClient
		} else {
			logger.Log.Info("redis not configured, rate limiting disabled")
		}

		metrics.MustRegister(prometheus.DefaultRegisterer)

		server := httpSrv.NewServer(httpSrv.Options{
			Config:  cfg,
			Lookup:  svc,
			Redis:   rds,
			Metrics: prometheus.DefaultGatherer,
			Log:     logger.Log,
		})

		errCh := make(chan error, 1)
		go func() {
			logger.Log.Info("starting http", zap.String("addr", cfg.HTTP.Addr))
			errCh <- server.Start(cfg.HTTP.Addr)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-sigCh:
			logger.Log.Info("signal received, shutting down", zap.String("signal", sig.String()))
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Log.Error("http server exited", zap.Error(err))
				return err
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		_ = server.Shutdown(ctx)

		return nil
	},
}
