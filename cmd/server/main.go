package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/fridgetofork/pantry-admin/internal/application/catalog"
	dashboardapp "github.com/fridgetofork/pantry-admin/internal/application/dashboard"
	mealplanapp "github.com/fridgetofork/pantry-admin/internal/application/mealplan"
	pantryapp "github.com/fridgetofork/pantry-admin/internal/application/pantry"
	profileapp "github.com/fridgetofork/pantry-admin/internal/application/profile"
	shoppingapp "github.com/fridgetofork/pantry-admin/internal/application/shopping"
	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/cache"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/config"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/logger"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/persistence"
	"github.com/fridgetofork/pantry-admin/internal/infrastructure/telemetry"
	"github.com/fridgetofork/pantry-admin/internal/interfaces/http/handler"
	"github.com/fridgetofork/pantry-admin/internal/interfaces/http/middleware"
	"github.com/fridgetofork/pantry-admin/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fridgetofork/pantry-admin/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Pantry Admin API
//	@version		1.0.0
//	@description	Back-office API over pantry stock, recipes, meal plans and shopping lists

//	@contact.name	Pantry Admin maintainers
//	@contact.url	https://github.com/fridgetofork/pantry-admin

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@externalDocs.description	OpenAPI
//	@externalDocs.url			https://swagger.io/resources/open-api/

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := &logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}
	bootLog, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx := context.Background()
	collector := telemetry.Collector{
		Endpoint:    cfg.Telemetry.CollectorEndpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    cfg.Telemetry.Insecure,
	}

	// OTLP log bridge; the final logger tees into it when enabled
	logProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Collector: collector,
		Enabled:   cfg.Telemetry.Enabled && cfg.Telemetry.LogsEnabled,
	}, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize log exporter", zap.Error(err))
	}

	log := bootLog
	if logProvider.IsEnabled() {
		log, err = logger.New(logCfg, logProvider.ZapCore(logger.ParseLevel(cfg.Log.Level)))
		if err != nil {
			bootLog.Fatal("Failed to initialize logger", zap.Error(err))
		}
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Pantry Admin",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Collector:     collector,
		Enabled:       cfg.Telemetry.Enabled,
		SamplingRatio: cfg.Telemetry.SamplingRatio,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer", zap.Error(err))
	}

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Collector:      collector,
		Enabled:        cfg.Telemetry.Enabled && cfg.Telemetry.MetricsEnabled,
		ExportInterval: cfg.Telemetry.MetricsInterval,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter", zap.Error(err))
	}

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:         cfg.Profiling.Enabled,
		ServerAddress:   cfg.Profiling.ServerAddress,
		ApplicationName: cfg.Telemetry.ServiceName,
		UploadRate:      cfg.Profiling.UploadInterval,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.IsEnabled() && cfg.Profiling.SpanProfiles {
		tracerProvider.EnableSpanProfiles()
	}

	gormCfg := logger.GormConfigFor(cfg.Log.Level)
	gormCfg.LogSQL = cfg.App.Env != "production"
	gormLog := logger.NewGormLogger(log, gormCfg)

	db, err := persistence.Open(&cfg.Database, persistence.WithLogger(gormLog))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected",
		zap.String("driver", cfg.Database.Driver),
		zap.Int("max_open_conns", db.Stats().MaxOpenConnections),
	)

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		dbTracing := telemetry.DefaultDBTracingConfig()
		dbTracing.Enabled = true
		dbTracing.LogFullSQL = cfg.Telemetry.DBLogFullSQL
		if cfg.Telemetry.DBSlowQueryThresh > 0 {
			dbTracing.SlowQueryThresh = cfg.Telemetry.DBSlowQueryThresh
		}
		if cfg.Database.Driver == config.DriverSQLite {
			dbTracing.DBSystem = "sqlite"
		}
		if err := telemetry.NewDBTracingPlugin(dbTracing, log).Register(db.DB); err != nil {
			log.Fatal("Failed to register database tracing", zap.Error(err))
		}
	}

	optionsCache, backend, err := cache.NewOptionsCacheFactory(cfg.Redis, cache.WithLogger(log)).CreateCache(ctx)
	if err != nil {
		log.Fatal("Failed to initialize ingredient options cache", zap.Error(err))
	}
	defer func() {
		_ = optionsCache.Close()
	}()

	clock := shared.NewSystemClock(cfg.App.Location())

	// Initialize repositories
	ingredientRepo := persistence.NewGormIngredientRepository(db.DB)
	recipeRepo := persistence.NewGormRecipeRepository(db.DB)
	recipeMatchRepo := persistence.NewGormRecipeMatchRepository(db.DB)
	pantryItemRepo := persistence.NewGormPantryItemRepository(db.DB)
	profileRepo := persistence.NewGormProfileRepository(db.DB)
	mealPlanRepo := persistence.NewGormMealPlanRepository(db.DB)
	shoppingListRepo := persistence.NewGormShoppingListRepository(db.DB)

	// Initialize application services
	ingredientService := catalogapp.NewIngredientService(ingredientRepo, optionsCache)
	recipeService := catalogapp.NewRecipeService(recipeRepo, ingredientRepo)
	pantryService := pantryapp.NewPantryService(pantryItemRepo, clock)
	profileService := profileapp.NewProfileService(profileRepo, pantryItemRepo, recipeMatchRepo, clock)
	mealPlanService := mealplanapp.NewMealPlanService(mealPlanRepo)
	shoppingListService := shoppingapp.NewShoppingListService(shoppingListRepo)
	dashboardService := dashboardapp.NewDashboardService(profileRepo, ingredientRepo, pantryItemRepo, clock)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log, "/health"),
		middleware.Secure(),
		middleware.CORSWithConfig(corsCfg),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	var limiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer limiter.Stop()
		engine.Use(middleware.RateLimit(limiter))
	}

	engine.Use(
		middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     tracerProvider.IsEnabled(),
		}),
		middleware.SpanErrorMarker(),
		middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
			MeterProvider: meterProvider,
			Logger:        log,
			Enabled:       meterProvider.IsEnabled(),
		}),
	)
	if profiler.IsEnabled() {
		engine.Use(middleware.Profiling())
	}

	// Liveness and readiness, outside the versioned API
	systemHandler := handler.NewSystemHandler(cfg.App.Name, version).
		AddCheck("database", handler.HealthCheckerFunc(db.PingContext))
	if pinger, ok := optionsCache.(handler.HealthChecker); ok && backend == cache.BackendRedis {
		systemHandler.AddCheck("cache", pinger)
	}
	engine.GET("/health", systemHandler.Health)

	docsGuard := middleware.SwaggerProtection(middleware.SwaggerConfig{
		Enabled:    cfg.Swagger.Enabled,
		AllowedIPs: cfg.Swagger.AllowedIPs,
	})
	engine.GET("/openapi.json", docsGuard, docs.Handler)
	engine.GET("/swagger/*any", docsGuard, ginSwagger.WrapHandler(swaggerFiles.Handler))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	groups := router.APIGroups(router.Handlers{
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Ingredient:   handler.NewIngredientHandler(ingredientService),
		PantryItem:   handler.NewPantryItemHandler(pantryService),
		Profile:      handler.NewProfileHandler(profileService),
		Recipe:       handler.NewRecipeHandler(recipeService),
		MealPlan:     handler.NewMealPlanHandler(mealPlanService),
		ShoppingList: handler.NewShoppingListHandler(shoppingListService),
	})
	for _, g := range groups {
		r.Register(g)
		log.Debug("Route group registered", zap.String("group", g.Name()), zap.Int("routes", len(g.Routes())))
	}
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
		log.Info("Server starting", zap.String("addr", srv.Addr), zap.String("api", r.BasePath()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := profiler.Stop(); err != nil {
		log.Warn("Failed to stop profiler", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Failed to flush metrics", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Failed to flush traces", zap.Error(err))
	}
	if err := logProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Failed to flush logs", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
