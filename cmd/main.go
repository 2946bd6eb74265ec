package main

import (
	"context"
	"errors"
	"fmt"
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

	"github.com/mvoloshin/camera_coordination_system/internal/analysis"
	"github.com/mvoloshin/camera_coordination_system/internal/blob"
	"github.com/mvoloshin/camera_coordination_system/internal/config"
	"github.com/mvoloshin/camera_coordination_system/internal/geolocate"
	"github.com/mvoloshin/camera_coordination_system/internal/geomodel"
	v1 "github.com/mvoloshin/camera_coordination_system/internal/handler/http/v1"
	"github.com/mvoloshin/camera_coordination_system/internal/ledger"
	"github.com/mvoloshin/camera_coordination_system/internal/notification"
	"github.com/mvoloshin/camera_coordination_system/internal/overlay"
	"github.com/mvoloshin/camera_coordination_system/internal/repository"
	"github.com/mvoloshin/camera_coordination_system/internal/service"
	"github.com/mvoloshin/camera_coordination_system/pkg/logger"
	"github.com/mvoloshin/camera_coordination_system/pkg/postgres"
	redisclient "github.com/mvoloshin/camera_coordination_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/mvoloshin/camera_coordination_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Camera Coordination System API
// @version 1.0
// @description Neighborhood camera coordination API: camera registry, footage access requests, incident zones and footage analysis.
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

// newAnalyzer picks the hosted backend configured for footage analysis.
func newAnalyzer(cfg *config.Config, log *logrus.Logger) analysis.Analyzer {
	if cfg.AnalysisBackend == analysis.BackendSecondary {
		return analysis.NewChatBackend(cfg.SecondaryAPIKey, cfg.SecondaryModel, cfg.SecondaryBaseURL, cfg.AnalysisTimeout, log)
	}
	return analysis.NewInlineBackend(cfg.PrimaryAPIKey, cfg.PrimaryModel, cfg.PrimaryBaseURL, cfg.AnalysisTimeout, log)
}

// seedZones fills the incident and alert tables from the generated
// neighborhood when they are still empty.
func seedZones(ctx context.Context, cameraService service.CameraService, incidentService service.IncidentService, alertService service.AlertService, log *logrus.Logger) {
	existing, err := incidentService.ListIncidents(ctx, 1, 1)
	if err != nil {
		log.WithError(err).Warn("Could not inspect incident table, skipping seed")
	} else if len(existing) == 0 {
		for _, inc := range cameraService.Incidents() {
			zone := inc
			if err := incidentService.CreateIncident(ctx, &zone); err != nil {
				log.WithError(err).Warn("Failed to seed incident zone")
			}
		}
	}

	alerts, err := alertService.ListAlerts(ctx, 1)
	if err != nil {
		log.WithError(err).Warn("Could not inspect alert table, skipping seed")
	} else if len(alerts) == 0 {
		for _, alert := range cameraService.Alerts() {
			a := alert
			if err := alertService.CreateAlert(ctx, &a); err != nil {
				log.WithError(err).Warn("Failed to seed community alert")
			}
		}
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	publisher := notification.NewRedisPublisher(redisClient)

	worker := notification.NewWorker(redisClient, log, cfg)
	worker.Start(ctx)

	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient)
	alertRepo := repository.NewAlertRepository(dbpool)

	accessLedger := ledger.New(log)
	videoStore := blob.NewStore(log)
	defer videoStore.ReleaseAll()

	generator := geomodel.New(time.Now().UnixNano())
	locator := geolocate.NewLocator(cfg.IPLookupURL, geolocate.Coordinate{
		Latitude:  cfg.DefaultLatitude,
		Longitude: cfg.DefaultLongitude,
	}, cfg.GeolocationTimeout, log)
	geocoder := geolocate.NewGeocoder(cfg.GeocoderBaseURL, cfg.GeolocationTimeout, log)

	cameraService := service.NewCameraService(generator, locator, geocoder, accessLedger, log)
	incidentService := service.NewIncidentService(incidentRepo, log, cfg, publisher)
	alertService := service.NewAlertService(alertRepo, log)
	requestService := service.NewRequestService(accessLedger, cameraService, videoStore, newAnalyzer(cfg, log), publisher, log)

	cameraService.Seed(ctx, nil)
	seedZones(ctx, cameraService, incidentService, alertService, log)

	mapper := overlay.NewMapper(cfg.OverlayClasses)

	handler := v1.NewHandler(cameraService, requestService, incidentService, alertService, mapper, log, cfg)

	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, v1.APIKeyAuthMiddleware(cfg, log))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
