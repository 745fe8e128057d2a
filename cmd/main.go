package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/guard_dispatch_system/internal/config"
	"github.com/shenikar/guard_dispatch_system/internal/events"
	v1 "github.com/shenikar/guard_dispatch_system/internal/handler/http/v1"
	"github.com/shenikar/guard_dispatch_system/internal/handler/subscriber"
	"github.com/shenikar/guard_dispatch_system/internal/models"
	"github.com/shenikar/guard_dispatch_system/internal/registry"
	"github.com/shenikar/guard_dispatch_system/internal/repository"
	"github.com/shenikar/guard_dispatch_system/internal/routing"
	"github.com/shenikar/guard_dispatch_system/internal/service"
	"github.com/shenikar/guard_dispatch_system/internal/webhook"
	"github.com/shenikar/guard_dispatch_system/pkg/logger"
	mqttclient "github.com/shenikar/guard_dispatch_system/pkg/mqtt"
	"github.com/shenikar/guard_dispatch_system/pkg/postgres"
	redisclient "github.com/shenikar/guard_dispatch_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/guard_dispatch_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Guard Dispatch System API
// @version 1.0
// @description Guard location tracking, geofence monitoring and dispatch recommendations.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newEventPublisher выбирает транспорт событий по EVENT_SINK
func newEventPublisher(cfg *config.Config, redisClient *redis.Client) (events.Publisher, io.Closer, error) {
	switch cfg.EventSink {
	case "rabbitmq":
		conn, err := amqp.Dial(cfg.RabbitMQURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to RabbitMQ: %w", err)
		}
		publisher, err := events.NewRabbitMQPublisher(conn)
		if err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		return publisher, closerFunc(func() error {
			_ = publisher.Close()
			return conn.Close()
		}), nil
	case "kafka":
		publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		return publisher, publisher, nil
	default:
		return events.NewRedisPublisher(redisClient), closerFunc(func() error { return nil }), nil
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Транспорт событий
	publisher, publisherCloser, err := newEventPublisher(cfg, redisClient)
	if err != nil {
		log.Fatalf("Failed to init event publisher: %v", err)
	}
	defer publisherCloser.Close()
	log.WithField("sink", cfg.EventSink).Info("Event publisher ready")

	// Вебхуки читают очередь Redis, поэтому работают только с этим транспортом
	if cfg.WebhookURL != "" && cfg.EventSink == "redis" {
		webhook.NewWebhookWorker(redisClient, log, cfg).Start(ctx)
	}

	// Реестр позиций
	locationRegistry := registry.New(registry.Options{StalenessThreshold: cfg.LocationStaleness})

	// Маршрутизация
	chain, err := routing.NewChainFromConfig(cfg, log)
	if err != nil {
		log.Fatalf("Failed to init route providers: %v", err)
	}
	fallback := routing.NewFallbackEstimator(cfg.FallbackDetourFactor, cfg.FallbackWalkingSpeedMPS, cfg.FallbackDrivingSpeedMPS)

	// Инициализация репозиториев
	geofenceRepo := repository.NewGeofenceRepository(dbpool, redisClient, cfg.GeofenceCacheTTL)

	// Инициализация сервисов
	locationService := service.NewLocationService(locationRegistry, log)
	zoneService := service.NewZoneService(geofenceRepo, log)
	dispatchService := service.NewDispatchCoordinator(locationRegistry, chain, fallback, publisher, service.DispatchOptions{
		OverfetchFactor: cfg.DispatchOverfetchFactor,
		Concurrency:     cfg.DispatchConcurrency,
		Deadline:        cfg.DispatchDeadline,
		PublishTimeout:  cfg.DispatchPublishTimeout,
		Mode:            models.TravelModeWalking,
	}, log)
	geofenceMonitor := service.NewGeofenceMonitor(locationRegistry, zoneService, publisher, cfg.GeofenceStaleness, log)
	geofenceMonitor.Start(ctx, cfg.GeofenceCheckInterval)

	// Очистка реестра, состояния зон удалённых охранников сбрасываются
	registry.NewSweeper(locationRegistry, cfg.SweepInterval, cfg.LocationRetention, log).
		OnRemove(geofenceMonitor.Forget).
		Start(ctx)

	// Приём координат по MQTT
	if cfg.MQTTBroker != "" {
		mqttClient, err := mqttclient.NewMQTTClient(cfg, log)
		if err != nil {
			log.Fatalf("Failed to connect to MQTT broker: %v", err)
		}
		defer mqttClient.Disconnect(250)

		locationSubscriber := subscriber.NewLocationSubscriber(mqttClient, cfg.MQTTTopic, locationService, geofenceMonitor, log)
		if err := locationSubscriber.Start(ctx); err != nil {
			log.Fatalf("Failed to subscribe to guard locations: %v", err)
		}
		defer locationSubscriber.Stop()
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(locationService, dispatchService, zoneService, geofenceMonitor, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	dispatchService.Wait()

	log.Info("Server gracefully stopped")
}
