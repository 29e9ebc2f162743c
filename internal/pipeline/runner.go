package pipeline

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"

	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/config"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/analyzer"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/database"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/exporter"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/generator"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/geometry"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/models"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/queue"
)

// Runner executes one full generate-analyze-persist-export job.
type Runner struct {
	config    *config.Config
	generator *generator.Generator
	db        *database.Database
	queue     *queue.RestaurantQueue
	exporter  *exporter.Exporter
	logger    *logrus.Logger
}

// RunResult summarizes a completed job.
type RunResult struct {
	Session     models.GenerationSession
	Analysis    models.AnalysisReport
	Restaurants []models.Restaurant
	OutputPath  string
}

func NewRunner(cfg *config.Config, gen *generator.Generator, db *database.Database, q *queue.RestaurantQueue, exp *exporter.Exporter, logger *logrus.Logger) *Runner {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return &Runner{
		config:    cfg,
		generator: gen,
		db:        db,
		queue:     q,
		exporter:  exp,
		logger:    logger,
	}
}

// Run executes a job with a time-seeded random source.
func (r *Runner) Run() (*RunResult, error) {
	return r.RunWithRNG(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// RunWithRNG executes a job with the given random source. Passing a
// fixed seed reproduces a run exactly.
func (r *Runner) RunWithRNG(rng *rand.Rand) (*RunResult, error) {
	session := models.GenerationSession{
		ID:           uuid.NewString(),
		Location:     r.config.Generation.Location,
		BusinessType: generator.BusinessType,
		Status:       models.SessionStatusRunning,
		StartedAt:    time.Now().UTC(),
	}
	if r.db != nil {
		if err := r.db.CreateSession(&session); err != nil {
			return nil, err
		}
	}

	result, err := r.run(&session, rng)
	if r.db != nil {
		status := models.SessionStatusCompleted
		errorMessage := ""
		if err != nil {
			status = models.SessionStatusFailed
			errorMessage = err.Error()
		}
		if dbErr := r.db.CompleteSession(session.ID, status, session.RestaurantsGenerated, session.ReviewsGenerated, errorMessage); dbErr != nil {
			r.logger.WithError(dbErr).Error("Failed to close generation session")
		}
	}
	if err != nil {
		return nil, err
	}

	result.Session = session
	return result, nil
}

func (r *Runner) run(session *models.GenerationSession, rng *rand.Rand) (*RunResult, error) {
	neighborhoods, cuisines := config.GetReferenceTables()

	restaurants, err := r.generator.Generate(neighborhoods, cuisines, rng)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	if max := r.config.Generation.MaxResults; max > 0 && len(restaurants) > max {
		restaurants = restaurants[:max]
	}

	session.RestaurantsGenerated = len(restaurants)
	for _, restaurant := range restaurants {
		session.ReviewsGenerated += len(restaurant.Reviews)
	}

	report := analyzer.Analyze(restaurants)

	if r.queue != nil {
		r.enqueue(restaurants)
	}

	if r.db != nil {
		if err := r.db.SaveAnalysis(session.Location, session.BusinessType, "market", report); err != nil {
			r.logger.WithError(err).Error("Failed to save analysis snapshot")
		}
	}

	var outputPath string
	if r.exporter != nil {
		if _, hullErr := r.exporter.ExportHulls(coverageHulls(restaurants, r.logger), session.StartedAt); hullErr != nil {
			r.logger.WithError(hullErr).Error("Failed to export neighborhood hulls")
		}

		doc := models.ResultDocument{
			GeneratedAt:      session.StartedAt,
			Location:         session.Location,
			BusinessType:     session.BusinessType,
			TotalResults:     len(restaurants),
			GeneratorVersion: exporter.GeneratorVersion,
			Analysis:         report,
			Restaurants:      restaurants,
		}
		outputPath, err = r.exporter.Export(doc)
		if err != nil {
			return nil, err
		}
	}

	r.logger.WithFields(logrus.Fields{
		"session_id":  session.ID,
		"restaurants": len(restaurants),
		"reviews":     session.ReviewsGenerated,
	}).Info("Pipeline run completed")

	return &RunResult{
		Analysis:    report,
		Restaurants: restaurants,
		OutputPath:  outputPath,
	}, nil
}

// coverageHulls groups the run's coordinates by neighborhood, keeping
// the generation order of the neighborhoods.
func coverageHulls(restaurants []models.Restaurant, logger *logrus.Logger) *geojson.FeatureCollection {
	index := make(map[string]int)
	var groups []geometry.NeighborhoodPoints
	for _, restaurant := range restaurants {
		i, ok := index[restaurant.Neighborhood]
		if !ok {
			i = len(groups)
			index[restaurant.Neighborhood] = i
			groups = append(groups, geometry.NeighborhoodPoints{Name: restaurant.Neighborhood})
		}
		groups[i].Points = append(groups[i].Points, orb.Point{restaurant.Coordinates.Lng, restaurant.Coordinates.Lat})
	}
	return geometry.NeighborhoodHulls(groups, logger)
}

// enqueue pushes the collection in config-sized batches. Full-queue
// pushes are logged and dropped; the exported document still carries the
// complete run.
func (r *Runner) enqueue(restaurants []models.Restaurant) {
	size := r.config.Pipeline.BatchSize
	if size < 1 {
		size = len(restaurants)
	}
	for start := 0; start < len(restaurants); start += size {
		end := start + size
		if end > len(restaurants) {
			end = len(restaurants)
		}
		batch := make([]*models.Restaurant, 0, end-start)
		for i := start; i < end; i++ {
			batch = append(batch, &restaurants[i])
		}
		if err := r.queue.Push(batch); err != nil {
			r.logger.WithError(err).WithField("batch_size", len(batch)).Error("Failed to enqueue batch")
		}
	}
}
