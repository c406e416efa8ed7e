package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"characters_back/cache"
	"characters_back/catalog"
	"characters_back/characters"
	"characters_back/config"
	"characters_back/server"
	"characters_back/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := storage.OpenFromConfig(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := storage.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	favoriteRepo, redisClient, err := favoriteRepository(cfg, db)
	if err != nil {
		log.Fatalf("favorites backend: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := server.NewMetrics(reg)

	svc := catalog.NewService(storage.NewCharacterStore(db), catalog.WithRecorder(metrics))
	favs := catalog.NewFavoriteService(favoriteRepo, catalog.WithRecorder(metrics))

	engine := server.New(server.Options{
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		Metrics:        metrics,
		Gatherer:       reg,
		Health:         healthCheck(db, redisClient),
	})
	characters.RegisterRoutes(engine, svc, favs, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting server", slog.String("addr", srv.Addr), slog.String("favorites_backend", cfg.FavoritesBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
}

// favoriteRepository picks the favorites store named by FAVORITES_BACKEND.
// The returned client is nil unless Redis is in use.
func favoriteRepository(cfg config.Config, db *gorm.DB) (catalog.FavoriteRepository, *redis.Client, error) {
	if cfg.FavoritesBackend != config.FavoritesRedis {
		return storage.NewFavoriteStore(db), nil, nil
	}

	client, err := cache.NewClient(context.Background(), cache.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, nil, err
	}
	return storage.NewRedisFavoriteStore(client), client, nil
}

func healthCheck(db *gorm.DB, client *redis.Client) server.Pinger {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return err
		}
		if client != nil {
			return client.Ping(ctx).Err()
		}
		return nil
	}
}
