package main

import (
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/config"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/api"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/database"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/exporter"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/generator"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/pipeline"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/processor"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/queue"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if err := config.LoadReferenceConfig(); err != nil {
		logger.WithError(err).Warn("Failed to load reference table overrides, using built-in tables")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0755); err != nil {
		logger.WithError(err).Fatal("Failed to create database directory")
	}
	logger.Infof("Using database at: %s", cfg.Database.Path)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	gormDB, err := gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{})
	if err != nil {
		logger.WithError(err).Fatal("Failed to open database for batch processing")
	}

	restaurantQueue := queue.NewRestaurantQueue(cfg.BatchProcessing.QueueSize, logger)
	defer restaurantQueue.Close()

	batchProcessor := processor.NewBatchProcessor(gormDB, restaurantQueue, cfg, logger)
	batchProcessor.Start()
	defer batchProcessor.Stop()

	gen := generator.New(cfg.Generation.Location, nil, logger)
	exp := exporter.New(cfg.Generation.ResultsDir, logger)
	runner := pipeline.NewRunner(cfg, gen, db, restaurantQueue, exp, logger)

	if cfg.Pipeline.EnableScheduling {
		scheduler := pipeline.NewScheduler(runner, cfg.Pipeline.UpdateFrequency, logger)
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		AllowCredentials: true,
	}))

	api.SetupRoutes(router, db, runner, logger)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
