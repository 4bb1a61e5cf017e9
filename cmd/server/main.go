package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"uavops-service/internal/infrastructure/config"
	"uavops-service/internal/infrastructure/oauth"
	"uavops-service/internal/infrastructure/persistence"
	mongoRepo "uavops-service/internal/interface/repository"
	"uavops-service/internal/interface/rest"
	"uavops-service/internal/usecase"
	"uavops-service/pkg/logger"
	"uavops-service/pkg/metrics"

	domainRepo "uavops-service/internal/domain/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	defer log.Sync()
	log.Info("Starting UAV Ops Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	// Reference dictionaries live in PostgreSQL; without a DSN the service
	// runs with dictionary validation disabled.
	var categoryRepository domainRepo.CategoryRepository
	if cfg.PostgresURI != "" {
		gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		categoryRepository = mongoRepo.NewGormCategoryRepository(gormDB)
	} else {
		log.Warn("POSTGRES_DSN not set, flight category validation disabled")
	}

	// Attachment store is optional; without a bucket stale uploads are
	// simply left in place.
	var attachmentRepository domainRepo.AttachmentRepository
	if cfg.S3Bucket != "" {
		attachmentRepository, err = mongoRepo.NewS3AttachmentRepository(ctx, mongoRepo.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
			PublicURL: cfg.S3PublicURL,
		}, log)
		if err != nil {
			log.Fatal("Failed to set up attachment store", "error", err)
		}
	} else {
		log.Warn("S3_BUCKET not set, attachment cleanup disabled")
	}

	// Set up repositories
	droneRepository := mongoRepo.NewMongoDroneRepository(db)
	flightRepository := mongoRepo.NewMongoFlightRepository(db)
	checklistRepository := mongoRepo.NewMongoChecklistRepository(db)
	userRepository := mongoRepo.NewMongoUserRepository(db)
	auditRepository := mongoRepo.NewMongoAuditLogRepository(db)

	// Set up services
	m := metrics.NewMetrics("uavops")
	auditRecorder := usecase.NewAuditRecorder(auditRepository, m, log)

	droneService := usecase.NewDroneService(droneRepository, auditRecorder, attachmentRepository, m, log)
	flightService := usecase.NewFlightService(flightRepository, categoryRepository, auditRecorder, log)
	checklistService := usecase.NewChecklistService(checklistRepository, auditRecorder, attachmentRepository, m, log)
	userService := usecase.NewUserService(userRepository, auditRecorder, log)
	reportService := usecase.NewReportService()
	auditService := usecase.NewAuditLogService(auditRepository, log)

	// Set up identity verification
	verifier, err := oauth.NewGoogleIdentity(ctx, cfg.GoogleClientID, log)
	if err != nil {
		log.Fatal("Failed to set up identity verifier", "error", err)
	}
	authenticator := rest.NewAuthenticator(verifier, userService, log)

	// Set up HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(rest.Instrument(m))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"version": cfg.AppVersion,
		})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", authenticator.Middleware())
	rest.RegisterDroneRoutes(api, droneService)
	rest.RegisterFlightRoutes(api, flightService)
	rest.RegisterChecklistRoutes(api, checklistService)
	rest.RegisterUserRoutes(api, userService)
	rest.RegisterReportRoutes(api, flightService, droneService, reportService)
	rest.RegisterAuditRoutes(api, auditService)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	// Let in-flight attachment cleanups finish
	droneService.DrainCleanups()
	checklistService.DrainCleanups()

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("UAV Ops Service stopped")
}
