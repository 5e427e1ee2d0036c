package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"plotmarket/internal/api"
	"plotmarket/internal/api/handler/v1handler"
	"plotmarket/internal/config"
	"plotmarket/internal/locations"
	"plotmarket/internal/orders"
	"plotmarket/internal/plots"
	"plotmarket/internal/users"
	"plotmarket/internal/worker"
	"plotmarket/pkg/logger"
	"plotmarket/pkg/metrics"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getRedis returns a Redis client when one is configured, or nil.
func getRedis(ctx context.Context, cfg *config.Config) (*redis.Client, func()) {
	if cfg.Redis.Addr == "" {
		logger.Info(ctx, "redis not configured, auth rate limiting disabled")

		return nil, func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn(ctx, "redis is not reachable, rate limiter will fail open", zap.Error(err))
	}

	return rdb, func() {
		if err := rdb.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			rdb, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()

			mp, err := api.NewMeterProvider()
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			meter := mp.Meter("plotmarket")

			orderMetrics, err := metrics.NewOrders(meter)
			if err != nil {
				logger.Fatal(ctx, "could not create order metrics", zap.Error(err))
			}

			plotsService := plots.New(strg, plots.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, plotsService, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			deps := api.Deps{
				Deps: v1handler.Deps{
					Users:     users.New(strg, getTokenManager(cfg)),
					Locations: locations.New(strg),
					Plots:     plotsService,
					Orders:    orders.New(strg, orderMetrics),
					Storage:   strg,
				},
				Meter: meter,
			}
			if rdb != nil {
				deps.Redis = rdb
			}
			stopWebserver := setupServer(ctx, cfg, deps)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}

			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
