package processor

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/config"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/database"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/models"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/queue"
)

func setupTestDatabases(t *testing.T) (*database.Database, *gorm.DB) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := database.NewDatabase(path)
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.NoError(t, db.RunMigrations())

	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	assert.NoError(t, err)

	return db, gormDB
}

func testBatchConfig() *config.Config {
	cfg := &config.Config{}
	cfg.BatchProcessing.QueueSize = 10
	cfg.BatchProcessing.ProcessorCount = 1
	cfg.BatchProcessing.MaxRetries = 1
	cfg.BatchProcessing.RetryDelay = 0
	return cfg
}

func testRestaurant(name string, rating float64) *models.Restaurant {
	return &models.Restaurant{
		Name:         name,
		Address:      "Calle 12, Santo Domingo, República Dominicana",
		Phone:        "+1 809-555-0101",
		Rating:       rating,
		ReviewCount:  120,
		BusinessType: "restaurant",
		CuisineType:  "Dominican",
		PriceRange:   "$$",
		Location:     "Santo Domingo, República Dominicana",
		Neighborhood: "Piantini",
		Coordinates:  models.Coordinates{Lat: 18.455, Lng: -69.945},
		OpeningHours: "Mon-Sun: 11:00 AM - 11:00 PM",
		Features:     []string{"Delivery", "Terraza"},
		Reviews: []models.Review{
			{Text: "Excelente comida, muy recomendado", Reviewer: "Ana M.", Rating: 5, Date: "2024-05-10"},
			{Text: "Servicio lento y comida fría", Reviewer: "Luis F.", Rating: 2, Date: "2024-07-21"},
		},
	}
}

func waitForRestaurants(t *testing.T, db *database.Database, expected int) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		stats, err := db.GetStoredStats()
		assert.NoError(t, err)
		if stats.TotalRestaurants == expected {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d stored restaurants", expected)
}

func TestBatchProcessor_PersistsAndUpserts(t *testing.T) {
	db, gormDB := setupTestDatabases(t)

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	q := queue.NewRestaurantQueue(10, logger)
	defer q.Close()

	p := NewBatchProcessor(gormDB, q, testBatchConfig(), logger)
	p.Start()
	defer p.Stop()

	batch := []*models.Restaurant{
		testRestaurant("El Conuco", 4.5),
		testRestaurant("La Terraza Criolla", 4.1),
	}
	assert.NoError(t, q.Push(batch))

	waitForRestaurants(t, db, 2)

	stored, err := db.GetRestaurants("Piantini", "Dominican", 0)
	assert.NoError(t, err)
	assert.Len(t, stored, 2)
	assert.Equal(t, []string{"Delivery", "Terraza"}, stored[0].Features)

	reviews, err := db.GetReviews(stored[0].ID)
	assert.NoError(t, err)
	assert.Len(t, reviews, 2)

	// Review text is sentiment-scored on the way in.
	var positives int
	err = db.GetDB().QueryRow(
		`SELECT COUNT(*) FROM reviews WHERE sentiment_label = 'positive'`,
	).Scan(&positives)
	assert.NoError(t, err)
	assert.Equal(t, 2, positives)

	// Re-pushing the same businesses updates rows instead of adding them.
	updated := []*models.Restaurant{
		testRestaurant("El Conuco", 3.9),
		testRestaurant("La Terraza Criolla", 4.8),
	}
	assert.NoError(t, q.Push(updated))

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		stored, err = db.GetRestaurants("", "", 0)
		assert.NoError(t, err)
		if len(stored) == 2 && stored[0].Rating == 3.9 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	stored, err = db.GetRestaurants("", "", 0)
	assert.NoError(t, err)
	assert.Len(t, stored, 2)
	assert.Equal(t, 3.9, stored[0].Rating)

	stats, err := db.GetStoredStats()
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRestaurants)
	assert.Equal(t, 4, stats.TotalReviews)
}
