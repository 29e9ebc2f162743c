package pipeline

import (
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/config"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/exporter"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/generator"
)

func testConfig(resultsDir string) *config.Config {
	cfg := &config.Config{}
	cfg.Generation.Location = "Santo Domingo, República Dominicana"
	cfg.Generation.MaxResults = 500
	cfg.Generation.ResultsDir = resultsDir
	cfg.Pipeline.BatchSize = 50
	return cfg
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func TestRunWithRNG(t *testing.T) {
	dir := t.TempDir()
	logger := testLogger()
	cfg := testConfig(dir)

	gen := generator.New(cfg.Generation.Location, nil, logger)
	exp := exporter.New(dir, logger)
	runner := NewRunner(cfg, gen, nil, nil, exp, logger)

	result, err := runner.RunWithRNG(rand.New(rand.NewSource(1)))
	assert.NoError(t, err)
	assert.NotNil(t, result)

	assert.Len(t, result.Restaurants, 500)
	assert.Equal(t, 500, result.Analysis.TotalRestaurants)
	assert.Greater(t, result.Analysis.TotalReviews, 0)
	assert.Equal(t, result.Analysis.TotalReviews, result.Session.ReviewsGenerated)
	assert.Equal(t, 500, result.Session.RestaurantsGenerated)
	assert.NotEmpty(t, result.Session.ID)

	// Result document and hull collection land in the results directory.
	assert.FileExists(t, result.OutputPath)
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRunWithRNG_Deterministic(t *testing.T) {
	dir := t.TempDir()
	logger := testLogger()
	cfg := testConfig(dir)

	gen := generator.New(cfg.Generation.Location, nil, logger)
	runner := NewRunner(cfg, gen, nil, nil, nil, logger)

	first, err := runner.RunWithRNG(rand.New(rand.NewSource(42)))
	assert.NoError(t, err)
	second, err := runner.RunWithRNG(rand.New(rand.NewSource(42)))
	assert.NoError(t, err)

	assert.Equal(t, first.Restaurants, second.Restaurants)
	assert.Equal(t, first.Analysis, second.Analysis)
}

func TestRunWithRNG_MaxResultsTruncation(t *testing.T) {
	logger := testLogger()
	cfg := testConfig(t.TempDir())
	cfg.Generation.MaxResults = 10

	gen := generator.New(cfg.Generation.Location, nil, logger)
	runner := NewRunner(cfg, gen, nil, nil, nil, logger)

	result, err := runner.RunWithRNG(rand.New(rand.NewSource(1)))
	assert.NoError(t, err)
	assert.Len(t, result.Restaurants, 10)
	assert.Equal(t, 10, result.Session.RestaurantsGenerated)
}

func TestSchedulerDue(t *testing.T) {
	logger := testLogger()

	tests := []struct {
		name      string
		frequency string
		at        time.Time
		expected  bool
	}{
		{
			name:      "Hourly on the hour",
			frequency: FrequencyHourly,
			at:        time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC),
			expected:  true,
		},
		{
			name:      "Hourly mid hour",
			frequency: FrequencyHourly,
			at:        time.Date(2025, 3, 14, 15, 30, 0, 0, time.UTC),
			expected:  false,
		},
		{
			name:      "Daily at two",
			frequency: FrequencyDaily,
			at:        time.Date(2025, 3, 14, 2, 0, 0, 0, time.UTC),
			expected:  true,
		},
		{
			name:      "Daily at wrong hour",
			frequency: FrequencyDaily,
			at:        time.Date(2025, 3, 14, 3, 0, 0, 0, time.UTC),
			expected:  false,
		},
		{
			name:      "Weekly on Monday at two",
			frequency: FrequencyWeekly,
			at:        time.Date(2025, 3, 17, 2, 0, 0, 0, time.UTC),
			expected:  true,
		},
		{
			name:      "Weekly on Tuesday",
			frequency: FrequencyWeekly,
			at:        time.Date(2025, 3, 18, 2, 0, 0, 0, time.UTC),
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduler(nil, tt.frequency, logger)
			assert.Equal(t, tt.expected, s.due(tt.at))
		})
	}
}

func TestNewScheduler_UnknownFrequencyFallsBackToDaily(t *testing.T) {
	s := NewScheduler(nil, "fortnightly", testLogger())
	assert.Equal(t, FrequencyDaily, s.frequency)
}
