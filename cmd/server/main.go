package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/fire_dashboard/docs"
	"github.com/shenikar/fire_dashboard/internal/config"
	v1 "github.com/shenikar/fire_dashboard/internal/handler/http/v1"
	"github.com/shenikar/fire_dashboard/internal/observability"
	"github.com/shenikar/fire_dashboard/internal/repository"
	"github.com/shenikar/fire_dashboard/internal/service"
	"github.com/shenikar/fire_dashboard/pkg/logger"
	redisclient "github.com/shenikar/fire_dashboard/pkg/redis"
)

// @title Fire Department Dashboard API
// @version 1.0
// @description Incidents, stations, firefighters and call statistics of a fire department.
// @host localhost:8080
// @BasePath /api
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := clockwork.NewRealClock()
	metrics := observability.NewMetrics()

	// Кеш статистики: Redis, если настроен, иначе память процесса
	statsCache, closeCache, err := newStatsCache(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to init stats cache: %v", err)
	}
	defer closeCache()

	// Инициализация репозитория
	var repo service.Repository
	if cfg.SeedSampleData {
		repo = repository.NewSeededRepository(clock.Now().UTC())
		log.Info("Loaded sample department data")
	} else {
		repo = repository.NewMemoryRepository()
	}

	// Инициализация сервисов
	departmentService := service.NewDepartmentService(repo, statsCache, clock, log, metrics, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(departmentService, log, cfg)
	router := v1.NewRouter(handler, metrics)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}

func newStatsCache(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.StatsCache, func(), error) {
	if cfg.RedisAddr == "" {
		cache := repository.NewMemoryStatsCache(cfg.StatsCacheTTL)
		log.Info("Using in-memory stats cache")
		return cache, cache.Stop, nil
	}

	client, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}
	log.WithField("addr", cfg.RedisAddr).Info("Successfully connected to Redis")

	return repository.NewRedisStatsCache(client, cfg.StatsCacheTTL), func() { _ = client.Close() }, nil
}
