package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/models"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/sentiment"
)

// businessRow maps the businesses table for the gorm batch path. The raw
// SQL layer and this one share the same schema.
type businessRow struct {
	ID           int64 `gorm:"primaryKey"`
	Name         string
	Address      string
	Phone        string
	Website      *string
	Rating       float64
	ReviewCount  int
	BusinessType string
	CuisineType  string
	PriceRange   string
	Location     string
	Neighborhood string
	Latitude     float64
	Longitude    float64
	OpeningHours string
	Features     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (businessRow) TableName() string { return "businesses" }

type reviewRow struct {
	ID             int64 `gorm:"primaryKey"`
	BusinessID     int64
	Text           string
	Reviewer       string
	Rating         int
	ReviewDate     string
	SentimentScore float64
	SentimentLabel string
	CreatedAt      time.Time
}

func (reviewRow) TableName() string { return "reviews" }

// UpsertRestaurants writes a batch inside the given transaction. An
// existing business (same name, address and location) is updated and its
// reviews replaced; review text is sentiment-scored on the way in.
func UpsertRestaurants(tx *gorm.DB, batch []*models.Restaurant) error {
	now := time.Now().UTC()

	for _, r := range batch {
		features, err := json.Marshal(r.Features)
		if err != nil {
			return fmt.Errorf("failed to encode features for %q: %w", r.Name, err)
		}

		row := businessRow{
			Name:         r.Name,
			Address:      r.Address,
			Phone:        r.Phone,
			Website:      r.Website,
			Rating:       r.Rating,
			ReviewCount:  r.ReviewCount,
			BusinessType: r.BusinessType,
			CuisineType:  r.CuisineType,
			PriceRange:   r.PriceRange,
			Location:     r.Location,
			Neighborhood: r.Neighborhood,
			Latitude:     r.Coordinates.Lat,
			Longitude:    r.Coordinates.Lng,
			OpeningHours: r.OpeningHours,
			Features:     string(features),
			UpdatedAt:    now,
		}

		var existing businessRow
		err = tx.Where("name = ? AND address = ? AND location = ?", r.Name, r.Address, r.Location).
			First(&existing).Error
		switch {
		case err == nil:
			row.ID = existing.ID
			row.CreatedAt = existing.CreatedAt
			if err := tx.Save(&row).Error; err != nil {
				return fmt.Errorf("failed to update business %q: %w", r.Name, err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			row.CreatedAt = now
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert business %q: %w", r.Name, err)
			}
		default:
			return fmt.Errorf("failed to look up business %q: %w", r.Name, err)
		}

		if err := tx.Where("business_id = ?", row.ID).Delete(&reviewRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear reviews for %q: %w", r.Name, err)
		}

		if len(r.Reviews) == 0 {
			continue
		}
		reviews := make([]reviewRow, 0, len(r.Reviews))
		for _, review := range r.Reviews {
			scored := sentiment.Score(review.Text)
			reviews = append(reviews, reviewRow{
				BusinessID:     row.ID,
				Text:           review.Text,
				Reviewer:       review.Reviewer,
				Rating:         review.Rating,
				ReviewDate:     review.Date,
				SentimentScore: scored.Score,
				SentimentLabel: scored.Label,
				CreatedAt:      now,
			})
		}
		if err := tx.Create(&reviews).Error; err != nil {
			return fmt.Errorf("failed to insert reviews for %q: %w", r.Name, err)
		}
	}

	return nil
}
