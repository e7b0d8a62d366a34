package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/mlanzi/spese-backend/config"
	"github.com/mlanzi/spese-backend/handlers"
	"github.com/mlanzi/spese-backend/logger"
	"github.com/mlanzi/spese-backend/router"
	"github.com/mlanzi/spese-backend/services"
	"github.com/mlanzi/spese-backend/store"
)

func main() {
	// A missing .env is fine in deployed environments.
	_ = godotenv.Load()

	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Store layer over the hosted Postgres REST API.
	client := store.NewClient(cfg.Supabase.URL, cfg.Supabase.Key, time.Duration(cfg.Supabase.TimeoutSeconds)*time.Second)
	categoryStore := store.NewCategoryStore(client)
	customerStore := store.NewCustomerStore(client)
	projectStore := store.NewProjectStore(client)
	vehicleStore := store.NewVehicleStore(client)
	expenseStore := store.NewExpenseStore(client)
	tripStore := store.NewTripStore(client)

	// Receipt image storage: S3-compatible bucket when credentials are
	// configured, local disk otherwise.
	var fileStorage services.FileStorage
	localUploadsDir := ""
	if cfg.Storage.AccessKeyID != "" && cfg.Storage.SecretAccessKey != "" {
		s3Storage, err := services.NewS3FileStorage(
			cfg.Storage.AccountID,
			cfg.Storage.Bucket,
			cfg.Storage.AccessKeyID,
			cfg.Storage.SecretAccessKey,
			cfg.Storage.PublicBaseURL,
		)
		if err != nil {
			log.Fatalf("Failed to initialize S3 storage: %v", err)
		}
		fileStorage = s3Storage
		log.Infow("Using S3 object storage", "bucket", cfg.Storage.Bucket)
	} else {
		local := services.NewLocalFileStorage(cfg.Storage.LocalDir)
		fileStorage = local
		localUploadsDir = local.BasePath()
		log.Infow("Using local file storage", "dir", localUploadsDir)
	}

	ocrService, err := services.NewOCRService(context.Background(), cfg.OCR)
	if err != nil {
		log.Fatalf("Failed to initialize OCR: %v", err)
	}

	tripService := services.NewTripService(tripStore, vehicleStore, cfg.DefaultRate())
	statsService := services.NewStatsService(expenseStore, tripStore)
	exportService := services.NewExportService(expenseStore, tripStore)
	uploadService := services.NewUploadService(fileStorage, ocrService, cfg.Upload)
	healthService := services.NewHealthService(client, cfg.Server.Version)

	r := router.SetupRouter(router.Dependencies{
		Config:          cfg,
		CategoryHandler: handlers.NewCategoryHandler(categoryStore),
		CustomerHandler: handlers.NewCustomerHandler(customerStore),
		ProjectHandler:  handlers.NewProjectHandler(projectStore),
		VehicleHandler:  handlers.NewVehicleHandler(vehicleStore),
		ExpenseHandler:  handlers.NewExpenseHandler(expenseStore),
		TripHandler:     handlers.NewTripHandler(tripStore, tripService),
		UploadHandler:   handlers.NewUploadHandler(uploadService, cfg.Upload.MaxSizeBytes),
		StatsHandler:    handlers.NewStatsHandler(statsService),
		ExportHandler:   handlers.NewExportHandler(exportService),
		HealthHandler:   handlers.NewHealthHandler(healthService),
		LocalUploadsDir: localUploadsDir,
	})

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
