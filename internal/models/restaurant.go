package models

import "time"

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Review is a single customer review attached to a restaurant.
type Review struct {
	Text     string `json:"text"`
	Reviewer string `json:"reviewer"`
	Rating   int    `json:"rating"`
	Date     string `json:"date"` // YYYY-MM-DD
}

// Restaurant is one generated business record. Every field is always
// populated except Website, which is present for roughly half of all
// records.
type Restaurant struct {
	ID           int64       `json:"id,omitempty"`
	Name         string      `json:"name"`
	Address      string      `json:"address"`
	Phone        string      `json:"phone"`
	Website      *string     `json:"website"`
	Rating       float64     `json:"rating"`
	ReviewCount  int         `json:"review_count"`
	BusinessType string      `json:"business_type"`
	CuisineType  string      `json:"cuisine_type"`
	PriceRange   string      `json:"price_range"`
	Location     string      `json:"location"`
	Neighborhood string      `json:"neighborhood"`
	Coordinates  Coordinates `json:"coordinates"`
	OpeningHours string      `json:"opening_hours"`
	Features     []string    `json:"features"`
	Reviews      []Review    `json:"reviews"`
}

// HasWebsite reports whether the restaurant carries a website URL.
func (r *Restaurant) HasWebsite() bool {
	return r.Website != nil && *r.Website != ""
}

// GenerationSession tracks a single generate-analyze-persist run.
type GenerationSession struct {
	ID                   string     `json:"id"`
	Location             string     `json:"location"`
	BusinessType         string     `json:"business_type"`
	RestaurantsGenerated int        `json:"restaurants_generated"`
	ReviewsGenerated     int        `json:"reviews_generated"`
	Status               string     `json:"status"` // running, completed, failed
	StartedAt            time.Time  `json:"started_at"`
	CompletedAt          *time.Time `json:"completed_at"`
	ErrorMessage         string     `json:"error_message,omitempty"`
}

const (
	SessionStatusRunning   = "running"
	SessionStatusCompleted = "completed"
	SessionStatusFailed    = "failed"
)
