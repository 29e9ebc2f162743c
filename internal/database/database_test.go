package database

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/models"
)

func setupTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.NoError(t, db.RunMigrations())
	return db
}

func TestSessionLifecycle(t *testing.T) {
	db := setupTestDatabase(t)

	session := &models.GenerationSession{
		ID:           "3f6d2c1a-1111-2222-3333-444455556666",
		Location:     "Santo Domingo, República Dominicana",
		BusinessType: "restaurant",
		Status:       models.SessionStatusRunning,
		StartedAt:    time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, db.CreateSession(session))

	assert.NoError(t, db.CompleteSession(session.ID, models.SessionStatusCompleted, 500, 4800, ""))

	sessions, err := db.GetSessions(10)
	assert.NoError(t, err)
	assert.Len(t, sessions, 1)

	got := sessions[0]
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, models.SessionStatusCompleted, got.Status)
	assert.Equal(t, 500, got.RestaurantsGenerated)
	assert.Equal(t, 4800, got.ReviewsGenerated)
	assert.True(t, got.StartedAt.Equal(session.StartedAt))
	assert.NotNil(t, got.CompletedAt)
	assert.Empty(t, got.ErrorMessage)
}

func TestCompleteSession_FailedRun(t *testing.T) {
	db := setupTestDatabase(t)

	session := &models.GenerationSession{
		ID:           "aaaa1111-bbbb-2222-cccc-333344445555",
		Location:     "Santo Domingo, República Dominicana",
		BusinessType: "restaurant",
		Status:       models.SessionStatusRunning,
		StartedAt:    time.Now().UTC(),
	}
	assert.NoError(t, db.CreateSession(session))
	assert.NoError(t, db.CompleteSession(session.ID, models.SessionStatusFailed, 0, 0, "invalid reference configuration"))

	sessions, err := db.GetSessions(1)
	assert.NoError(t, err)
	assert.Equal(t, models.SessionStatusFailed, sessions[0].Status)
	assert.Equal(t, "invalid reference configuration", sessions[0].ErrorMessage)
}

func TestCompleteSession_UnknownID(t *testing.T) {
	db := setupTestDatabase(t)

	err := db.CompleteSession("missing", models.SessionStatusCompleted, 0, 0, "")
	assert.Error(t, err)
}

func TestAnalysisSnapshots(t *testing.T) {
	db := setupTestDatabase(t)

	location := "Santo Domingo, República Dominicana"

	latest, err := db.GetLatestAnalysis(location, "market")
	assert.NoError(t, err)
	assert.Nil(t, latest)

	first := models.AnalysisReport{TotalRestaurants: 100, AverageRating: 4.1}
	assert.NoError(t, db.SaveAnalysis(location, "restaurant", "market", first))

	second := models.AnalysisReport{TotalRestaurants: 500, AverageRating: 4.2}
	assert.NoError(t, db.SaveAnalysis(location, "restaurant", "market", second))

	latest, err = db.GetLatestAnalysis(location, "market")
	assert.NoError(t, err)
	assert.NotNil(t, latest)

	var decoded models.AnalysisReport
	assert.NoError(t, json.Unmarshal(latest, &decoded))
	assert.Equal(t, 500, decoded.TotalRestaurants)
}

func TestGetRestaurants_EmptyDatabase(t *testing.T) {
	db := setupTestDatabase(t)

	restaurants, err := db.GetRestaurants("", "", 0)
	assert.NoError(t, err)
	assert.Empty(t, restaurants)

	stats, err := db.GetStoredStats()
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalRestaurants)
	assert.Equal(t, 0.0, stats.AverageRating)
}
