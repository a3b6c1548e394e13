package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gorm.io/gorm"

	"github.com/tair/book-inventory/internal/catalog"
	catalogRepo "github.com/tair/book-inventory/internal/catalog/repository"
	"github.com/tair/book-inventory/internal/inventory"
	inventoryRepo "github.com/tair/book-inventory/internal/inventory/repository"
	invCommand "github.com/tair/book-inventory/internal/inventory/usecase/command"
	"github.com/tair/book-inventory/internal/user"
	userRepo "github.com/tair/book-inventory/internal/user/repository"
	kafkaBroker "github.com/tair/book-inventory/kafka"
	"github.com/tair/book-inventory/pkg/database"
	"github.com/tair/book-inventory/pkg/logger"
	"github.com/tair/book-inventory/pkg/metrics"
	"github.com/tair/book-inventory/pkg/tracing"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "book-inventory")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting book inventory service")

	// Tracing
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
	} else {
		defer tracing.Shutdown(context.Background(), tp)
	}

	// Database
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "bookinventory"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	runMigrations(db)

	// Redis (token revocation list)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})
	defer redisClient.Close()

	// Kafka is optional: without brokers the ledger simply does not emit
	// events.
	var publisher *kafkaBroker.Publisher
	var consumer *kafkaBroker.Consumer
	if brokersEnv := getEnv("KAFKA_BROKERS", ""); brokersEnv != "" {
		brokers := strings.Split(brokersEnv, ",")
		publisher, err = kafkaBroker.NewPublisher(brokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka publisher")
		}
		defer publisher.Close()

		consumer = startLowStockWatcher(brokers)
		if consumer != nil {
			defer consumer.Close()
		}
	} else {
		logger.Logger.Info().Msg("KAFKA_BROKERS not set, event publishing disabled")
	}

	// Handlers via Wire
	transactionRepository := inventoryRepo.NewGormTransactionRepositoryWithTracing(db)

	bookHandler, err := catalog.InitializeBookHandler(db, transactionRepository)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize book handler")
	}
	authorHandler, err := catalog.InitializeAuthorHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize author handler")
	}
	categoryHandler, err := catalog.InitializeCategoryHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize category handler")
	}
	publisherHandler, err := catalog.InitializePublisherHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize publisher handler")
	}

	transactionHandler, err := inventory.InitializeTransactionHandler(db, eventPublisherOrNil(publisher))
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize transaction handler")
	}

	userHandler, err := user.InitializeUserHandler(db, redisClient)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize user handler")
	}
	authMiddleware, err := user.InitializeAuthMiddleware(redisClient)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize auth middleware")
	}

	// Router
	router := mux.NewRouter()

	bookHandler.RegisterRoutes(router, authMiddleware.RequireAdmin)
	authorHandler.RegisterRoutes(router, authMiddleware.RequireAdmin)
	categoryHandler.RegisterRoutes(router, authMiddleware.RequireAdmin)
	publisherHandler.RegisterRoutes(router, authMiddleware.RequireAdmin)
	transactionHandler.RegisterRoutes(router, authMiddleware.RequireAdmin)
	userHandler.RegisterRoutes(router)

	registerHealthCheck(router, sqlDB)
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := c.Handler(metrics.Middleware(otelhttp.NewHandler(router, "http.server")))

	httpPort := getEnv("HTTP_PORT", "8080")
	logger.Logger.Info().
		Str("port", httpPort).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	go func() {
		if err := http.ListenAndServe(":"+httpPort, handler); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

// runMigrations creates and upgrades every table, including the partial
// unique indexes the catalog relies on.
func runMigrations(db *gorm.DB) {
	migrators := []interface{ AutoMigrate() error }{
		catalogRepo.NewGormAuthorRepository(db),
		catalogRepo.NewGormCategoryRepository(db),
		catalogRepo.NewGormPublisherRepository(db),
		catalogRepo.NewGormBookRepository(db),
		inventoryRepo.NewGormTransactionRepository(db),
		userRepo.NewGormUserRepository(db),
	}
	for _, m := range migrators {
		if err := m.AutoMigrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}
	logger.Logger.Info().Msg("Database initialized successfully")
}

// startLowStockWatcher consumes the ledger topic and warns when a book's
// stock falls under the configured threshold.
func startLowStockWatcher(brokers []string) *kafkaBroker.Consumer {
	threshold, err := strconv.Atoi(getEnv("LOW_STOCK_THRESHOLD", "5"))
	if err != nil || threshold < 0 {
		threshold = 5
	}

	consumer, err := kafkaBroker.NewConsumer(brokers, "book-inventory-low-stock", []string{kafkaBroker.TopicInventoryTransactions})
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to create Kafka consumer, low stock watcher disabled")
		return nil
	}

	consumer.RegisterHandler(kafkaBroker.EventTypeTransactionRecorded, func(ctx context.Context, event kafkaBroker.TransactionRecordedEvent) error {
		if event.ResultingQuantity < threshold {
			logger.Warn(ctx).
				Str("book_id", event.BookID).
				Int("resulting_quantity", event.ResultingQuantity).
				Int("threshold", threshold).
				Msg("Book stock below threshold")
		}
		return nil
	})

	if err := consumer.Start(context.Background()); err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to start Kafka consumer")
		consumer.Close()
		return nil
	}
	return consumer
}

func registerHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		status := "healthy"
		code := http.StatusOK
		if err := db.PingContext(r.Context()); err != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]string{"status": status})
	}).Methods("GET")
}

// eventPublisherOrNil avoids handing a typed nil pointer to the handler,
// which would defeat its nil check.
func eventPublisherOrNil(p *kafkaBroker.Publisher) invCommand.EventPublisher {
	if p == nil {
		return nil
	}
	return p
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
