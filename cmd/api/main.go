package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/NonattoDev/ecommercesoftline-backend/api/routes"
	"github.com/NonattoDev/ecommercesoftline-backend/internal/analytics"
	"github.com/NonattoDev/ecommercesoftline-backend/internal/cart"
	"github.com/NonattoDev/ecommercesoftline-backend/internal/company"
	"github.com/NonattoDev/ecommercesoftline-backend/internal/orders"
	"github.com/NonattoDev/ecommercesoftline-backend/internal/products"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/config"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/db"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/logger"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/metrics"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/migrate"
	"github.com/NonattoDev/ecommercesoftline-backend/pkg/redis"
)

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

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	productsRepo := products.NewRepository(dbClient.DB())
	companyRepo := company.NewRepository(dbClient.DB())
	ordersRepo := orders.NewRepository(dbClient.DB())
	analyticsRepo := analytics.NewRepository(dbClient.DB())

	cartService, err := cart.NewService(cart.NewRedisStore(redisClient, cfg.Cart.SnapshotTTL))
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(dbClient, ordersRepo, productsRepo, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	analyticsService, err := analytics.NewService(analyticsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create analytics service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	httpMetrics := metrics.NewHTTPMetrics(registry)

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
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			httpMetrics,
			registry,
			cartService,
			orderService,
			analyticsService,
			productsRepo,
			companyRepo,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
