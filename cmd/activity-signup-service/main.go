// Package main запускает HTTP-сервис записи на активности
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"activity-signup-service/internal/config"
	httpapi "activity-signup-service/internal/http"
	"activity-signup-service/internal/metrics"
	"activity-signup-service/internal/repository"
	"activity-signup-service/internal/service"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Чтение конфигурации (YAML + ENV)
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Database.DSN == "" {
		log.Fatal("database DSN is required (database.dsn in config or DB_DSN env)")
	}

	// Подключение к БД
	db, err := repository.NewPostgres(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("failed to init postgres: %v", err)
	}
	defer db.Pool.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	// 1. Инициализация репозитория и менеджера транзакций
	activityRepo := repository.NewActivityRepo(db)
	txManager := repository.NewTransactionManager(db)

	// Стартовый каталог для пустой базы
	if err := txManager.RunInTransaction(ctx, activityRepo.SeedDefaults); err != nil {
		log.Fatalf("failed to seed activities: %v", err)
	}

	// 2. Инициализация сервиса
	activityService := service.NewActivityService(activityRepo, txManager)

	// 3. Метрики и HTTP-обработчик
	m := metrics.New()
	handler := httpapi.NewHandler(activityService, m, cfg.HTTP.CORSAllowedOrigins, logger)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
