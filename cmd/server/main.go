package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	inventoryapp "github.com/restopos/backend/internal/application/inventory"
	purchasingapp "github.com/restopos/backend/internal/application/purchasing"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/infrastructure/cache"
	"github.com/restopos/backend/internal/infrastructure/config"
	"github.com/restopos/backend/internal/infrastructure/event"
	"github.com/restopos/backend/internal/infrastructure/logger"
	"github.com/restopos/backend/internal/infrastructure/migration"
	"github.com/restopos/backend/internal/infrastructure/persistence"
	"github.com/restopos/backend/internal/infrastructure/scheduler"
	"github.com/restopos/backend/internal/infrastructure/storage"
	"github.com/restopos/backend/internal/infrastructure/telemetry"
	"github.com/restopos/backend/internal/interfaces/http/handler"
	"github.com/restopos/backend/internal/interfaces/http/middleware"
	"github.com/restopos/backend/internal/interfaces/http/router"
	"github.com/restopos/backend/migrations"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/restopos/backend/docs"
)

//	@title			Restaurant Inventory API
//	@version		1.0
//	@description	Inventory consumption and costing for restaurant point of sale

//	@contact.name	API Support

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

	// Initialize logger
	logCfg := &logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}
	log, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting inventory service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx := context.Background()

	// Telemetry providers are registered globally before anything opens spans
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	logsProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	if logsProvider.IsEnabled() {
		// From here on records also go to the collector
		logCfg.Bridge = logsProvider.Core()
		if log, err = logger.New(logCfg); err != nil {
			panic("Failed to initialize bridged logger: " + err.Error())
		}
	}

	// Database
	db, err := persistence.NewDatabase(&cfg.Database, log, cfg.Log.Level)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	dbTracing := telemetry.DefaultDBTracingConfig()
	dbTracing.Enabled = cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled
	dbTracing.LogFullSQL = cfg.Telemetry.DBLogFullSQL
	if err := telemetry.NewDBTracingPlugin(dbTracing, log).Register(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		if err := applyMigrations(db, log); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	// Repositories
	itemRepo := persistence.NewGormItemRepository(db.DB)
	priceRepo := persistence.NewGormBusinessItemPriceRepository(db.DB)
	componentRepo := persistence.NewGormCompositeComponentRepository(db.DB)
	stockRepo := persistence.NewGormStockRecordRepository(db.DB)
	movementRepo := persistence.NewGormMovementRepository(db.DB)
	recipeRepo := persistence.NewGormRecipeRepository(db.DB)
	reservationRepo := persistence.NewGormReservationRepository(db.DB)
	transferRepo := persistence.NewGormTransferRepository(db.DB)
	countRepo := persistence.NewGormCountRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	activityRepo := persistence.NewGormActivityRepository(db.DB)
	settingsRepo := persistence.NewGormBusinessSettingsRepository(db.DB)

	scope := persistence.NewGormTransactionScope(db.DB)

	// Application services
	costLedger := inventoryapp.NewCostLedger(scope, itemRepo, priceRepo, componentRepo, log)
	stockLedger := inventoryapp.NewStockLedger(scope, stockRepo, movementRepo, log)
	itemService := inventoryapp.NewItemService(itemRepo, priceRepo, componentRepo, costLedger, log)
	recipeResolver := inventoryapp.NewRecipeResolver(recipeRepo, log)
	workflow := inventoryapp.NewOrderInventoryWorkflow(recipeResolver, stockLedger, reservationRepo, inventoryapp.WorkflowConfig{
		DecisionWindow:  cfg.Inventory.DecisionWindow,
		ExpireBatchSize: cfg.Inventory.ExpireBatchSize,
	}, log)
	transferService := inventoryapp.NewTransferService(transferRepo, itemRepo, stockLedger, log)
	countService := inventoryapp.NewInventoryCountService(countRepo, itemRepo, stockLedger, log)
	receivingService := purchasingapp.NewReceivingService(
		purchaseOrderRepo,
		activityRepo,
		itemRepo,
		stockLedger,
		costLedger,
		purchasingapp.Config{DefaultTaxRate: cfg.Inventory.DefaultTaxRate},
		log,
	)
	receivingService.SetTaxRateProvider(settingsRepo)

	// Event bus. Cost changes cascade into composites and menu recipes once
	// per event id, across restarts when Redis is available.
	eventBus := event.NewInMemoryEventBus(log)
	idempotencyStore := cache.NewIdempotencyStore(ctx, cfg.Redis, log)
	defer func() { _ = idempotencyStore.Close() }()

	cascade := inventoryapp.NewCostCascadeHandler(costLedger, itemRepo, componentRepo, recipeRepo, log)
	eventBus.Subscribe(event.NewIdempotentHandler(
		"cost_cascade",
		cascade,
		idempotencyStore,
		shared.IdempotencyConfig{TTL: cfg.Inventory.IdempotencyTTL, Enabled: true},
		log,
	))

	inventoryMetrics, err := telemetry.NewInventoryMetrics(meterProvider.Meter("restopos/inventory"))
	if err != nil {
		log.Fatal("Failed to initialize inventory metrics", zap.Error(err))
	}
	eventBus.Subscribe(inventoryMetrics)

	for _, svc := range []interface {
		SetEventPublisher(shared.EventPublisher)
	}{costLedger, stockLedger, itemService, transferService, countService, receivingService} {
		svc.SetEventPublisher(eventBus)
	}
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// Invoice storage
	uploader, err := newInvoiceStorage(ctx, cfg, receivingService, log)
	if err != nil {
		log.Fatal("Failed to initialize invoice storage", zap.Error(err))
	}

	// Pending decision sweeper
	sweeper, err := scheduler.NewDecisionSweeper(workflow, scheduler.DecisionSweeperConfig{
		Enabled:    true,
		Interval:   cfg.Inventory.SweepInterval,
		RunTimeout: 30 * time.Second,
	}, log, scheduler.WithSweepRecorder(inventoryMetrics))
	if err != nil {
		log.Fatal("Failed to create decision sweeper", zap.Error(err))
	}
	if err := sweeper.Start(ctx); err != nil {
		log.Fatal("Failed to start decision sweeper", zap.Error(err))
	}

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", handler.NewHealthHandler(db).Check)

	// Swagger documentation endpoint
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r := router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithAPIMiddleware(middleware.BusinessScope(), middleware.SpanEnricher()),
	)
	r.Register(
		handler.NewItemHandler(itemService, costLedger),
		handler.NewStockHandler(stockLedger),
		handler.NewOrderHandler(recipeResolver, workflow),
		handler.NewTransferHandler(transferService),
		handler.NewCountHandler(countService),
		handler.NewPurchaseOrderHandler(receivingService, uploader),
	)
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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := sweeper.Stop(shutdownCtx); err != nil {
		log.Warn("Decision sweeper did not stop cleanly", zap.Error(err))
	}
	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Warn("Event bus did not stop cleanly", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Meter provider shutdown failed", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Tracer provider shutdown failed", zap.Error(err))
	}

	log.Info("Server exited gracefully")
	if err := logsProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Logger provider shutdown failed", zap.Error(err))
	}
}

// applyMigrations brings the schema up to date from the embedded migrations
func applyMigrations(db *persistence.Database, log *zap.Logger) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	m, err := migration.NewFromFS(sqlDB, migrations.FS, log)
	if err != nil {
		return err
	}
	return m.Up()
}

// newInvoiceStorage wires invoice image storage into receiving and returns
// the uploader the purchase order endpoints presign with. Without a bucket,
// development gets an in-memory stand-in and other environments skip the
// existence check and have no uploader.
func newInvoiceStorage(ctx context.Context, cfg *config.Config, receiving *purchasingapp.ReceivingService, log *zap.Logger) (handler.InvoiceUploader, error) {
	if cfg.Storage.Enabled() {
		s3Storage, err := storage.NewS3InvoiceStorage(ctx, &cfg.Storage, storage.WithLogger(log))
		if err != nil {
			return nil, err
		}
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		receiving.SetInvoiceStorage(s3Storage)
		log.Info("Invoice storage enabled", zap.String("bucket", s3Storage.Bucket()))
		return s3Storage, nil
	}

	if cfg.App.Env == "development" {
		stub := storage.NewStubInvoiceStorage()
		receiving.SetInvoiceStorage(stub)
		log.Warn("Invoice storage not configured, using in-memory storage")
		return stub, nil
	}

	log.Warn("Invoice storage not configured, invoice refs are not verified")
	return nil, nil
}
