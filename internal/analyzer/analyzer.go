package analyzer

import (
	"sort"

	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/models"
)

// featureTopN caps the feature distribution in the report.
const featureTopN = 15

// Analyze computes descriptive statistics over a restaurant collection.
// Pure function of its input; an empty collection yields a zero report.
func Analyze(restaurants []models.Restaurant) models.AnalysisReport {
	report := models.AnalysisReport{
		TotalRestaurants:         len(restaurants),
		CuisineDistribution:      map[string]int{},
		PriceDistribution:        map[string]int{},
		NeighborhoodDistribution: map[string]int{},
		FeatureDistribution:      []models.FeatureCount{},
	}
	if len(restaurants) == 0 {
		return report
	}

	var ratingSum float64
	featureCounts := map[string]int{}
	featureOrder := []string{} // first-encountered order, used for tie-breaks
	var allReviews []models.Review

	for _, r := range restaurants {
		ratingSum += r.Rating
		report.CuisineDistribution[r.CuisineType]++
		report.PriceDistribution[r.PriceRange]++
		report.NeighborhoodDistribution[r.Neighborhood]++

		for _, f := range r.Features {
			if _, seen := featureCounts[f]; !seen {
				featureOrder = append(featureOrder, f)
			}
			featureCounts[f]++
		}

		// Total reviews counts the attached lists, not the advertised
		// review_count field.
		report.TotalReviews += len(r.Reviews)
		allReviews = append(allReviews, r.Reviews...)
	}

	report.AverageRating = ratingSum / float64(len(restaurants))
	report.FeatureDistribution = topFeatures(featureCounts, featureOrder)
	report.SentimentAnalysis = summarizeSentiment(allReviews)

	return report
}

func topFeatures(counts map[string]int, order []string) []models.FeatureCount {
	ranked := make([]models.FeatureCount, 0, len(order))
	for _, f := range order {
		ranked = append(ranked, models.FeatureCount{Feature: f, Count: counts[f]})
	}
	// Stable sort keeps first-encountered order among equal counts.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > featureTopN {
		ranked = ranked[:featureTopN]
	}
	return ranked
}

func summarizeSentiment(reviews []models.Review) models.SentimentSummary {
	if len(reviews) == 0 {
		return models.SentimentSummary{}
	}

	var sum int
	var positive, negative int
	for _, r := range reviews {
		sum += r.Rating
		if r.Rating >= 4 {
			positive++
		}
		if r.Rating <= 2 {
			negative++
		}
	}

	total := float64(len(reviews))
	return models.SentimentSummary{
		AverageReviewRating: float64(sum) / total,
		PositiveReviews:     positive,
		NegativeReviews:     negative,
		PositivePercentage:  float64(positive) / total * 100,
		NegativePercentage:  float64(negative) / total * 100,
	}
}
