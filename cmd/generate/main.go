package main

import (
	"flag"
	"math/rand"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/config"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/exporter"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/generator"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/pipeline"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed for a reproducible run (0 uses the current time)")
	resultsDir := flag.String("results-dir", "", "override the results directory")
	flag.Parse()

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
	if *resultsDir != "" {
		cfg.Generation.ResultsDir = *resultsDir
	}

	if err := config.LoadReferenceConfig(); err != nil {
		logger.WithError(err).Warn("Failed to load reference table overrides, using built-in tables")
	}

	gen := generator.New(cfg.Generation.Location, nil, logger)
	exp := exporter.New(cfg.Generation.ResultsDir, logger)
	runner := pipeline.NewRunner(cfg, gen, nil, nil, exp, logger)

	var result *pipeline.RunResult
	if *seed != 0 {
		result, err = runner.RunWithRNG(rand.New(rand.NewSource(*seed)))
	} else {
		result, err = runner.Run()
	}
	if err != nil {
		logger.WithError(err).Fatal("Generation run failed")
	}

	logger.WithFields(logrus.Fields{
		"restaurants":    len(result.Restaurants),
		"total_reviews":  result.Analysis.TotalReviews,
		"average_rating": result.Analysis.AverageRating,
		"output":         result.OutputPath,
	}).Info("Generation run completed")
}
