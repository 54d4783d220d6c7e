package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hostpms-connector/internal/infrastructure/config"
	"hostpms-connector/internal/infrastructure/oauth"
	"hostpms-connector/internal/infrastructure/persistence"
	apiRepo "hostpms-connector/internal/interface/repository"
	"hostpms-connector/internal/usecase"
	"hostpms-connector/pkg/logger"
	"hostpms-connector/pkg/metrics"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Starting HostPMS Connector", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.Connect(ctx,
		cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword, cfg.MongoTimeout)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up PostgreSQL hotel registry
	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up AWS clients
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		log.Fatal("Failed to load AWS configuration", "error", err)
	}
	s3Client := s3.NewFromConfig(awsCfg)
	sqsClient := sqs.NewFromConfig(awsCfg)

	// Set up ESB OAuth
	esbOAuth := oauth.NewESBOAuth(cfg.ESBTokenURL, cfg.ESBClientID, cfg.ESBClientSecret, log)

	// Set up repositories
	hostpmsRepo := apiRepo.NewHostPMSAPIRepository(
		cfg.HostAPIBaseURL, cfg.HostAPISubscriptionKey,
		cfg.HostAPITimeout, cfg.HostAPIMaxRetries, log)
	esbRepo := apiRepo.NewESBAPIRepository(esbOAuth.Client(ctx), cfg.ESBBaseURL, cfg.HostAPIMaxRetries, log)
	storageRepo := apiRepo.NewS3StorageRepository(s3Client, cfg.S3BucketPrefix, log)
	notifierRepo := apiRepo.NewSQSNotifierRepository(sqsClient, cfg.SQSQueueName, log)
	hotelRepo := apiRepo.NewGormHotelRepository(gormDB)
	runRepo := apiRepo.NewMongoRunRepository(db)

	// Set up metrics and orchestrator
	m := metrics.NewMetrics("hostpms")
	orchestrator := usecase.NewOrchestrator(
		hostpmsRepo, esbRepo, storageRepo, notifierRepo, hotelRepo, runRepo,
		m, cfg.StatWindowStartOffset, cfg.StatWindowEndOffset, cfg.HotelWorkers, log)
	orchestrator.SetFallbackHotels(cfg.DefaultHotels)

	// Start the sync loop in a goroutine
	go func() {
		orchestrator.ProcessAll(ctx)

		syncTicker := time.NewTicker(cfg.SyncInterval)
		defer syncTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Sync loop stopped")
				return
			case <-syncTicker.C:
				orchestrator.ProcessAll(ctx)
			}
		}
	}()

	// Set up HTTP server for metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
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

	cancel() // Cancel the context to stop the sync loop

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("HostPMS Connector stopped")
}
