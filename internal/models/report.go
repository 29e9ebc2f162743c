package models

import "time"

// FeatureCount is one entry of the ordered feature distribution.
type FeatureCount struct {
	Feature string `json:"feature"`
	Count   int    `json:"count"`
}

// SentimentSummary aggregates the flattened review list of a collection.
// All fields are zero when there are no reviews.
type SentimentSummary struct {
	AverageReviewRating float64 `json:"average_review_rating"`
	PositiveReviews     int     `json:"positive_reviews"`
	NegativeReviews     int     `json:"negative_reviews"`
	PositivePercentage  float64 `json:"positive_percentage"`
	NegativePercentage  float64 `json:"negative_percentage"`
}

// AnalysisReport holds the descriptive statistics of a restaurant
// collection. TotalReviews counts the attached review lists, not the
// review_count field; the two are independent.
type AnalysisReport struct {
	TotalRestaurants         int              `json:"total_restaurants"`
	AverageRating            float64          `json:"average_rating"`
	TotalReviews             int              `json:"total_reviews"`
	CuisineDistribution      map[string]int   `json:"cuisine_distribution"`
	PriceDistribution        map[string]int   `json:"price_distribution"`
	NeighborhoodDistribution map[string]int   `json:"neighborhood_distribution"`
	FeatureDistribution      []FeatureCount   `json:"feature_distribution"`
	SentimentAnalysis        SentimentSummary `json:"sentiment_analysis"`
}

// ResultDocument is the JSON artifact written after each run.
type ResultDocument struct {
	GeneratedAt      time.Time      `json:"generated_at"`
	Location         string         `json:"location"`
	BusinessType     string         `json:"business_type"`
	TotalResults     int            `json:"total_results"`
	GeneratorVersion string         `json:"generator_version"`
	Analysis         AnalysisReport `json:"analysis"`
	Restaurants      []Restaurant   `json:"restaurants"`
}
