package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/models"
)

type Database struct {
	db *sql.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		return nil, err
	}

	return &Database{db: db}, nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) GetDB() *sql.DB {
	return d.db
}

// GetRestaurants returns stored restaurants, optionally filtered by
// neighborhood, cuisine and a minimum rating. Review lists are not
// attached; use GetReviews per business.
func (d *Database) GetRestaurants(neighborhood, cuisine string, minRating float64) ([]models.Restaurant, error) {
	query := `
        SELECT
            id,
            name,
            COALESCE(address, '') as address,
            COALESCE(phone, '') as phone,
            website,
            COALESCE(rating, 0) as rating,
            COALESCE(review_count, 0) as review_count,
            business_type,
            COALESCE(cuisine_type, '') as cuisine_type,
            COALESCE(price_range, '') as price_range,
            location,
            COALESCE(neighborhood, '') as neighborhood,
            latitude,
            longitude,
            COALESCE(opening_hours, '') as opening_hours,
            COALESCE(features, '[]') as features
        FROM businesses
        WHERE (? = '' OR neighborhood = ?)
        AND (? = '' OR cuisine_type = ?)
        AND rating >= ?
        ORDER BY id
    `
	rows, err := d.db.Query(query,
		neighborhood, neighborhood,
		cuisine, cuisine,
		minRating,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []models.Restaurant
	for rows.Next() {
		var r models.Restaurant
		var website sql.NullString
		var latitude, longitude sql.NullFloat64
		var featuresJSON string

		err := rows.Scan(
			&r.ID,
			&r.Name,
			&r.Address,
			&r.Phone,
			&website,
			&r.Rating,
			&r.ReviewCount,
			&r.BusinessType,
			&r.CuisineType,
			&r.PriceRange,
			&r.Location,
			&r.Neighborhood,
			&latitude,
			&longitude,
			&r.OpeningHours,
			&featuresJSON,
		)
		if err != nil {
			return nil, err
		}

		if website.Valid && website.String != "" {
			w := website.String
			r.Website = &w
		}
		if latitude.Valid {
			r.Coordinates.Lat = latitude.Float64
		}
		if longitude.Valid {
			r.Coordinates.Lng = longitude.Float64
		}
		if err := json.Unmarshal([]byte(featuresJSON), &r.Features); err != nil {
			return nil, fmt.Errorf("failed to decode features for business %d: %w", r.ID, err)
		}

		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}

// GetTopRated returns the highest-rated stored restaurants, advertised
// review count breaking ties.
func (d *Database) GetTopRated(limit int) ([]models.Restaurant, error) {
	rows, err := d.db.Query(`
        SELECT id, name, COALESCE(rating, 0), COALESCE(review_count, 0),
               COALESCE(cuisine_type, ''), COALESCE(neighborhood, ''),
               COALESCE(price_range, '')
        FROM businesses
        ORDER BY rating DESC, review_count DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []models.Restaurant
	for rows.Next() {
		var r models.Restaurant
		err := rows.Scan(&r.ID, &r.Name, &r.Rating, &r.ReviewCount,
			&r.CuisineType, &r.Neighborhood, &r.PriceRange)
		if err != nil {
			return nil, err
		}
		r.BusinessType = "restaurant"
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}

// GetReviews returns the stored reviews of one business.
func (d *Database) GetReviews(businessID int64) ([]models.Review, error) {
	rows, err := d.db.Query(`
        SELECT text, COALESCE(reviewer, ''), COALESCE(rating, 0), COALESCE(review_date, '')
        FROM reviews
        WHERE business_id = ?
        ORDER BY id
    `, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.Text, &r.Reviewer, &r.Rating, &r.Date); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

// StoredStats summarizes the persisted collection.
type StoredStats struct {
	TotalRestaurants int     `json:"total_restaurants"`
	AverageRating    float64 `json:"average_rating"`
	TotalReviews     int     `json:"total_reviews"`
	PositiveReviews  int     `json:"positive_reviews"`
	NegativeReviews  int     `json:"negative_reviews"`
}

func (d *Database) GetStoredStats() (StoredStats, error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM businesses) as total_restaurants,
            COALESCE((SELECT AVG(rating) FROM businesses WHERE rating IS NOT NULL), 0) as average_rating,
            (SELECT COUNT(*) FROM reviews) as total_reviews,
            (SELECT COUNT(*) FROM reviews WHERE rating >= 4) as positive_reviews,
            (SELECT COUNT(*) FROM reviews WHERE rating <= 2) as negative_reviews
    `
	var stats StoredStats
	err := d.db.QueryRow(query).Scan(
		&stats.TotalRestaurants,
		&stats.AverageRating,
		&stats.TotalReviews,
		&stats.PositiveReviews,
		&stats.NegativeReviews,
	)
	return stats, err
}

// CreateSession records the start of a generation run.
func (d *Database) CreateSession(session *models.GenerationSession) error {
	_, err := d.db.Exec(`
        INSERT INTO generation_sessions (id, location, business_type, status, started_at)
        VALUES (?, ?, ?, ?, ?)
    `, session.ID, session.Location, session.BusinessType, session.Status, session.StartedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// CompleteSession closes a generation run with its final status.
func (d *Database) CompleteSession(id, status string, restaurants, reviews int, errorMessage string) error {
	result, err := d.db.Exec(`
        UPDATE generation_sessions
        SET status = ?, restaurants_generated = ?, reviews_generated = ?,
            completed_at = ?, error_message = ?
        WHERE id = ?
    `, status, restaurants, reviews, time.Now().UTC().Format(time.RFC3339), errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("session not found: %s", id)
	}
	return nil
}

// GetSessions returns the most recent generation sessions.
func (d *Database) GetSessions(limit int) ([]models.GenerationSession, error) {
	rows, err := d.db.Query(`
        SELECT id, location, business_type,
               COALESCE(restaurants_generated, 0),
               COALESCE(reviews_generated, 0),
               status, started_at,
               completed_at,
               COALESCE(error_message, '')
        FROM generation_sessions
        ORDER BY started_at DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.GenerationSession
	for rows.Next() {
		var s models.GenerationSession
		var startedAt string
		var completedAt sql.NullString

		err := rows.Scan(
			&s.ID, &s.Location, &s.BusinessType,
			&s.RestaurantsGenerated, &s.ReviewsGenerated,
			&s.Status, &startedAt, &completedAt, &s.ErrorMessage,
		)
		if err != nil {
			return nil, err
		}

		if t, err := time.Parse(time.RFC3339, startedAt); err == nil {
			s.StartedAt = t
		}
		if completedAt.Valid && completedAt.String != "" {
			if t, err := time.Parse(time.RFC3339, completedAt.String); err == nil {
				s.CompletedAt = &t
			}
		}

		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// SaveAnalysis stores an analysis snapshot as JSON.
func (d *Database) SaveAnalysis(location, businessType, analysisType string, results interface{}) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis results: %w", err)
	}

	_, err = d.db.Exec(`
        INSERT INTO market_analysis (location, business_type, analysis_type, results, created_at)
        VALUES (?, ?, ?, ?, ?)
    `, location, businessType, analysisType, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// GetLatestAnalysis returns the newest stored analysis snapshot of the
// given type, or nil when none exists.
func (d *Database) GetLatestAnalysis(location, analysisType string) (json.RawMessage, error) {
	var results string
	err := d.db.QueryRow(`
        SELECT results
        FROM market_analysis
        WHERE location = ? AND analysis_type = ?
        ORDER BY created_at DESC, id DESC
        LIMIT 1
    `, location, analysisType).Scan(&results)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis: %w", err)
	}
	return json.RawMessage(results), nil
}
