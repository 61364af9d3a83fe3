package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/adilbekov/stockledger/internal/inventory"
	httpdelivery "github.com/adilbekov/stockledger/internal/inventory/delivery/http"
	"github.com/adilbekov/stockledger/internal/inventory/store"
	"github.com/adilbekov/stockledger/internal/inventory/usecase/command"
	"github.com/adilbekov/stockledger/kafka"
	"github.com/adilbekov/stockledger/pkg/kv"
	"github.com/adilbekov/stockledger/pkg/logger"
	"github.com/adilbekov/stockledger/pkg/tracing"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	serviceName := getEnv("SERVICE_NAME", "stockledger")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting inventory service")

	ctx := context.Background()

	if getEnv("TRACING_ENABLED", "false") == "true" {
		tp, err := tracing.InitTracer(serviceName)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
				logger.Logger.Warn().Err(err).Msg("Failed to shut down tracer")
			}
		}()
		logger.Logger.Info().Msg("Tracing initialized")
	}

	backend, err := openBackend()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open storage backend")
	}
	defer backend.Close()

	inventoryStore, err := store.Open(ctx, backend)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open inventory store")
	}
	logger.Logger.Info().Msg("Inventory store initialized")

	var publisher command.EventPublisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		p, err := kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to Kafka")
		}
		defer p.Close()
		publisher = p
	}

	handler, err := inventory.InitializeHTTPHandler(inventoryStore, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	server := newHTTPServer(handler, httpPort)

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

// openBackend selects the blob storage backend from the environment.
func openBackend() (kv.Store, error) {
	switch backend := getEnv("KV_BACKEND", "file"); backend {
	case "file":
		return kv.NewFileStore(getEnv("DATA_DIR", "./data"))
	case "redis":
		db, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
		return kv.NewRedisStore(
			getEnv("REDIS_ADDR", "localhost:6379"),
			getEnv("REDIS_PASSWORD", ""),
			db,
		)
	case "postgres":
		return kv.NewPostgresStore(kv.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "stockledger"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		})
	case "memory":
		return kv.NewMemoryStore(), nil
	default:
		logger.Logger.Warn().Str("backend", backend).Msg("Unknown KV_BACKEND, using file")
		return kv.NewFileStore(getEnv("DATA_DIR", "./data"))
	}
}

func newHTTPServer(handler *httpdelivery.InventoryHandler, port string) *http.Server {
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router)
	router.Handle("/metrics", promhttp.Handler())

	var root http.Handler = router
	root = httpdelivery.LoggingMiddleware(root)
	root = httpdelivery.RequestIDMiddleware(root)
	root = otelhttp.NewHandler(root, "inventory-http")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return &http.Server{
		Addr:    ":" + port,
		Handler: c.Handler(root),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
