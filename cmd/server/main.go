package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	identityapp "github.com/slimatic/zakapp-sub007/internal/application/identity"
	zakatapp "github.com/slimatic/zakapp-sub007/internal/application/zakat"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/auth"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/cache"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/config"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/logger"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/persistence"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/pricefeed"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/telemetry"
	"github.com/slimatic/zakapp-sub007/internal/interfaces/http/handler"
	"github.com/slimatic/zakapp-sub007/internal/interfaces/http/middleware"
	"github.com/slimatic/zakapp-sub007/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting zakat engine",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Database connection with zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	assetRepo := persistence.NewGormAssetRepository(db.DB)
	liabilityRepo := persistence.NewGormLiabilityRepository(db.DB)
	snapshotRepo := persistence.NewGormSnapshotRepository(db.DB)

	// Calculation result cache and metal price feed. With Redis enabled both
	// share one client; otherwise the cache is process-local and prices come
	// straight from configuration.
	var resultCache cache.ResultCache
	var priceProvider pricefeed.MetalPriceProvider

	staticPrices, err := pricefeed.NewStaticProvider(cfg.Nisab)
	if err != nil {
		log.Fatal("Failed to initialize price provider", zap.Error(err))
	}
	priceProvider = staticPrices

	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		resultCache = cache.NewRedisResultCacheWithClient(redisClient)
		priceProvider = pricefeed.NewCachedProvider(staticPrices, redisClient, cfg.Nisab.PriceTTL)
		log.Info("Redis cache enabled", zap.String("addr", cfg.Redis.RedisAddr()))
	} else {
		resultCache = cache.NewInMemoryResultCache()
	}
	defer func() {
		if err := resultCache.Close(); err != nil {
			log.Error("Error closing result cache", zap.Error(err))
		}
	}()

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	assetService := zakatapp.NewAssetService(assetRepo, resultCache, log)
	liabilityService := zakatapp.NewLiabilityService(liabilityRepo, resultCache, log)
	calculationService := zakatapp.NewCalculationService(assetRepo, liabilityRepo, snapshotRepo, priceProvider, resultCache, cfg.Cache.TTL, log)
	methodologyService := zakatapp.NewMethodologyService()

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	assetHandler := handler.NewAssetHandler(assetService)
	liabilityHandler := handler.NewLiabilityHandler(liabilityService)
	calculationHandler := handler.NewCalculationHandler(calculationService)
	methodologyHandler := handler.NewMethodologyHandler(methodologyService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, ordered: request ID first so every later stage can
	// tag its logs and spans, panics recovered before anything else runs.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// API routes behind JWT authentication, public endpoints skipped
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		SkipPathPrefixes: []string{
			"/api/v1/methodologies",
		},
		Logger: log,
	}))

	r.Register(authHandler).
		Register(assetHandler).
		Register(liabilityHandler).
		Register(calculationHandler).
		Register(methodologyHandler)
	r.Setup()

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports liveness and database reachability
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
