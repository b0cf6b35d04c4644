package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contentforge/backend/internal/application/content"
	appusage "github.com/contentforge/backend/internal/application/usage"
	"github.com/contentforge/backend/internal/domain/usage"
	"github.com/contentforge/backend/internal/infrastructure/auth"
	"github.com/contentforge/backend/internal/infrastructure/cache"
	"github.com/contentforge/backend/internal/infrastructure/config"
	"github.com/contentforge/backend/internal/infrastructure/generation"
	"github.com/contentforge/backend/internal/infrastructure/logger"
	"github.com/contentforge/backend/internal/infrastructure/persistence"
	"github.com/contentforge/backend/internal/infrastructure/telemetry"
	"github.com/contentforge/backend/internal/interfaces/http/handler"
	"github.com/contentforge/backend/internal/interfaces/http/middleware"
	"github.com/contentforge/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const version = "1.0.0"

//	@title			ContentForge Backend API
//	@version		1.0
//	@description	Turns generated marketing content into persisted campaigns, content series and usage records.

//	@host		localhost:8080
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	ctx := context.Background()

	logs, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
		Level:             logger.ParseLevel(cfg.Log.Level),
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize log export", zap.Error(err))
	}
	log = logs.Bridge(log)
	defer zap.ReplaceGlobals(log)()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("Starting ContentForge backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("counter_backend", cfg.Usage.CounterBackend),
	)

	tracer, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	meters, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsExportInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), cfg.Telemetry.DBSlowQueryThresh)
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	dbSystem := "postgresql"
	if cfg.Database.Driver == "sqlite" {
		dbSystem = "sqlite"
		// no golang-migrate driver for sqlite; the schema comes from the models
		if err := persistence.AutoMigrate(db.DB); err != nil {
			log.Fatal("Failed to migrate sqlite schema", zap.Error(err))
		}
	}
	if err := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Telemetry.DBSlowQueryThresh,
		DBSystem:        dbSystem,
	}, log).Register(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	log.Info("Database connected successfully")

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			if cfg.Usage.CounterBackend == "redis" {
				log.Fatal("Redis is required for usage counters", zap.Error(err))
			}
			log.Warn("Redis unavailable, continuing without it", zap.Error(err))
		} else {
			defer func() {
				_ = redisClient.Close()
			}()
		}
	}

	var counters usage.CounterRepository = persistence.NewGormUsageCounterRepository(db.DB)
	if cfg.Usage.CounterBackend == "redis" {
		counters = cache.NewRedisUsageCounter(redisClient)
	}

	factoryOpts := []cache.FactoryOption{
		cache.WithLogger(log),
		cache.WithInMemoryFallback(cfg.Usage.IdempotencyMemoryFallback),
	}
	if redisClient != nil {
		factoryOpts = append(factoryOpts, cache.WithClient(redisClient))
	}
	idempotency, err := cache.NewIdempotencyStoreFactory(cfg.Redis, factoryOpts...).CreateStore(ctx)
	if err != nil {
		log.Fatal("Failed to create idempotency store", zap.Error(err))
	}
	defer func() {
		_ = idempotency.Close()
	}()

	policy, err := cfg.TierPolicy()
	if err != nil {
		log.Fatal("Invalid tier configuration", zap.Error(err))
	}

	contentMetrics, err := telemetry.NewContentMetrics(meters.Meter("contentforge/content"))
	if err != nil {
		log.Fatal("Failed to create content metrics", zap.Error(err))
	}

	campaigns := persistence.NewGormCampaignRepository(db.DB)
	recorder := appusage.NewRecorder(persistence.NewGormUsageEventRepository(db.DB), counters, log)
	quotas := appusage.NewQuotaService(policy, counters, log)

	opts := []content.Option{
		content.WithIdempotencyStore(idempotency, cfg.Usage.IdempotencyTTL),
		content.WithMetrics(contentMetrics),
	}
	if cfg.Generation.APIKey != "" {
		generator, err := generation.NewOpenAIGenerator(cfg.Generation, log)
		if err != nil {
			log.Fatal("Failed to create generator", zap.Error(err))
		}
		opts = append(opts, content.WithGenerator(generator))
	} else {
		log.Warn("Generation API key not set, /content/generate is unavailable")
	}
	orchestrator := content.NewOrchestrator(campaigns, recorder, quotas, log, opts...)

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatal("Failed to get sql.DB", zap.Error(err))
	}
	checks := map[string]handler.Pinger{"database": sqlDB}
	if redisClient != nil {
		checks["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	var generateLimiter *middleware.RateLimiter
	if cfg.HTTP.GenerateRateLimit > 0 {
		generateLimiter = middleware.NewRateLimiter(cfg.HTTP.GenerateRateLimit, time.Minute)
		go generateLimiter.Run(runCtx)
	}

	engine := router.New(router.Handlers{
		Content:  handler.NewContentHandler(orchestrator, cfg.Generation.Timeout),
		Campaign: handler.NewCampaignHandler(campaigns),
		Usage:    handler.NewUsageHandler(quotas, recorder),
		Health:   handler.NewHealthHandler(cfg.App.Name, version, checks),
	}, auth.NewTokenVerifier(cfg.JWT), router.Options{
		ServiceName:    cfg.Telemetry.ServiceName,
		TracingEnabled: tracer.IsEnabled(),
		Meter:          meters.Meter("contentforge/http"),
		MaxBodySize:    cfg.HTTP.MaxBodySize,
		CORS: middleware.CORSConfig{
			AllowOrigins:  cfg.HTTP.CORSAllowOrigins,
			AllowMethods:  cfg.HTTP.CORSAllowMethods,
			AllowHeaders:  cfg.HTTP.CORSAllowHeaders,
			ExposeHeaders: []string{middleware.RequestIDHeader, "Retry-After"},
			MaxAge:        12 * time.Hour,
		},
		TrustedProxies:  cfg.HTTP.TrustedProxies,
		GenerateLimiter: generateLimiter,
		Swagger: middleware.SwaggerConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.Swagger.RequireAuth,
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		},
	}, log)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := meters.Shutdown(shutdownCtx); err != nil {
		log.Warn("Failed to flush metrics", zap.Error(err))
	}
	if err := tracer.Shutdown(shutdownCtx); err != nil {
		log.Warn("Failed to flush traces", zap.Error(err))
	}
	if err := logs.Shutdown(shutdownCtx); err != nil {
		log.Warn("Failed to flush logs", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
