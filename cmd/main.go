package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/fraud-monitor/internal/facades"
	"github.com/sbilibin2017/fraud-monitor/internal/handlers"
	"github.com/sbilibin2017/fraud-monitor/internal/logger"
	"github.com/sbilibin2017/fraud-monitor/internal/metrics"
	"github.com/sbilibin2017/fraud-monitor/internal/middlewares"
	"github.com/sbilibin2017/fraud-monitor/internal/repositories"
	"github.com/sbilibin2017/fraud-monitor/internal/services"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string

	Seed          uint64
	RecordsPerDay int
	Rule          string

	RedisHost         string // empty disables the dataset cache
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	KafkaBrokers     []string // empty disables alert publishing
	KafkaAlertsTopic string
}

// @title fraud-monitor API
// @version 1.0.0
// @description Synthetic transaction generator and fraud monitoring dashboard
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, generator, Redis, Kafka and logging configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", "json")

	// Generator config
	if cfg.Seed, err = strconv.ParseUint(getEnv("GENERATOR_SEED", "42"), 10, 64); err != nil {
		return cfg, fmt.Errorf("GENERATOR_SEED: %w", err)
	}
	if cfg.RecordsPerDay, err = strconv.Atoi(getEnv("RECORDS_PER_DAY", strconv.Itoa(services.DefaultRecordsPerDay))); err != nil {
		return cfg, fmt.Errorf("RECORDS_PER_DAY: %w", err)
	}
	if cfg.RecordsPerDay <= 0 {
		return cfg, fmt.Errorf("RECORDS_PER_DAY must be positive, got %d", cfg.RecordsPerDay)
	}
	cfg.Rule = getEnv("FRAUD_RULE", "percentile")

	// Redis config
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return cfg, fmt.Errorf("REDIS_PORT: %w", err)
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return cfg, fmt.Errorf("REDIS_DB: %w", err)
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return cfg, fmt.Errorf("REDIS_POOL_SIZE: %w", err)
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return cfg, fmt.Errorf("REDIS_MIN_IDLE_CONNS: %w", err)
	}
	if cfg.RedisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "3600")); err != nil {
		return cfg, fmt.Errorf("REDIS_EXP_SECOND: %w", err)
	}

	// Kafka config
	for _, b := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaAlertsTopic = getEnv("KAFKA_ALERTS_TOPIC", "fraud-alerts")

	return cfg, nil
}

// newRouter wires handlers for svc under chi with the logging middleware.
func newRouter(cfg config, svc *services.DashboardService, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/transactions", handlers.NewGetTransactionsHandler(svc))
		r.Get("/transactions/suspicious", handlers.NewGetSuspiciousHandler(svc))
		r.Get("/summary", handlers.NewGetSummaryHandler(svc))
		r.Get("/alerts", handlers.NewGetAlertsHandler(svc))
		r.Get("/rules", handlers.NewGetRulesHandler(svc))
	})

	r.Get("/charts/category.png", handlers.NewCategoryChartHandler(svc))
	r.Get("/charts/location.png", handlers.NewLocationChartHandler(svc))

	r.Handle("/metrics", m.Handler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}

// run initializes the logger, optional Redis cache and Kafka alert stream,
// and the HTTP server. It sets up routes and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to Redis
	var cache services.DatasetCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		cache = repositories.NewDatasetCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
		logger.Log.Infow("dataset cache enabled", "addr", rdb.Options().Addr)
	} else {
		logger.Log.Info("REDIS_HOST not set, dataset cache disabled")
	}

	// Connect to Kafka
	var publisher services.AlertPublisher
	if len(cfg.KafkaBrokers) > 0 {
		alerts := facades.NewAlertKafkaFacade(facades.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaAlertsTopic))
		defer alerts.Close()
		publisher = alerts
		logger.Log.Infow("alert publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaAlertsTopic)
	} else {
		logger.Log.Info("KAFKA_BROKERS not set, alert publishing disabled")
	}

	m := metrics.New()

	svc := services.NewDashboardService(services.DashboardConfig{
		Seed:          cfg.Seed,
		RecordsPerDay: cfg.RecordsPerDay,
		Rule:          cfg.Rule,
	}, cache, publisher, m)

	// fail fast on a bad FRAUD_RULE
	if _, err := svc.Rule(services.Query{Days: services.DefaultDays, Limit: services.DefaultLimit}); err != nil {
		return fmt.Errorf("FRAUD_RULE %q: %w", cfg.Rule, err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(cfg, svc, m),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
