package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aceitestapia/fueltrack-backend/api/routes"
	"github.com/aceitestapia/fueltrack-backend/internal/auth"
	"github.com/aceitestapia/fueltrack-backend/internal/entries"
	"github.com/aceitestapia/fueltrack-backend/internal/events"
	"github.com/aceitestapia/fueltrack-backend/internal/exits"
	"github.com/aceitestapia/fueltrack-backend/internal/staff"
	"github.com/aceitestapia/fueltrack-backend/internal/stock"
	"github.com/aceitestapia/fueltrack-backend/pkg/auth/session"
	"github.com/aceitestapia/fueltrack-backend/pkg/config"
	"github.com/aceitestapia/fueltrack-backend/pkg/db"
	"github.com/aceitestapia/fueltrack-backend/pkg/logger"
	"github.com/aceitestapia/fueltrack-backend/pkg/metrics"
	"github.com/aceitestapia/fueltrack-backend/pkg/migrate"
	"github.com/aceitestapia/fueltrack-backend/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 15 * time.Second

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(ctx, "failed to create session manager", err)
		os.Exit(1)
	}

	staffRepo := staff.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		StaffRepo:      staffRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(ctx, "failed to create auth service", err)
		os.Exit(1)
	}

	staffService, err := staff.NewService(staffRepo)
	if err != nil {
		logg.Error(ctx, "failed to create staff service", err)
		os.Exit(1)
	}

	publisher, err := events.NewPublisher(redisClient, cfg.ChangeFeed, logg)
	if err != nil {
		logg.Error(ctx, "failed to create change publisher", err)
		os.Exit(1)
	}

	entriesService, err := entries.NewService(entries.NewRepository(dbClient.DB()), publisher)
	if err != nil {
		logg.Error(ctx, "failed to create entries service", err)
		os.Exit(1)
	}

	exitsService, err := exits.NewService(exits.NewRepository(dbClient.DB()), publisher)
	if err != nil {
		logg.Error(ctx, "failed to create exits service", err)
		os.Exit(1)
	}

	stockService, err := stock.NewService(stock.ServiceParams{
		Repo:   stock.NewRepository(dbClient.DB()),
		Cache:  redisClient,
		Config: cfg.ChangeFeed,
		Logger: logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to create stock service", err)
		os.Exit(1)
	}

	feedMetrics := metrics.NewChangeFeedMetrics(prometheus.DefaultRegisterer)
	hub, err := events.NewHub(events.HubParams{
		Config:  cfg.ChangeFeed,
		Stats:   stockService,
		Metrics: feedMetrics,
		Logger:  logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to create change feed hub", err)
		os.Exit(1)
	}

	source, err := events.RedisSource(ctx, redisClient, cfg.ChangeFeed, logg)
	if err != nil {
		logg.Error(ctx, "failed to subscribe change feed", err)
		os.Exit(1)
	}
	go hub.Run(ctx, source)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	startCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(startCtx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:         cfg,
			Logger:         logg,
			DB:             dbClient,
			Redis:          redisClient,
			SessionManager: sessionManager,
			AuthService:    authService,
			StaffService:   staffService,
			EntriesService: entriesService,
			ExitsService:   exitsService,
			StockService:   stockService,
			Hub:            hub,
			HTTPMetrics:    metrics.NewHTTPMetrics(prometheus.DefaultRegisterer),
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logg.Info(context.Background(), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(context.Background(), "error during shutdown", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	}
}
