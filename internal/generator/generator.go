package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"

	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/config"
	"github.com/FCornielle/santo-domingo-restaurant-reviews-nlp/internal/models"
)

// ErrInvalidReference marks malformed reference tables. Validation runs
// before any sampling, so a run never partially generates.
var ErrInvalidReference = errors.New("invalid reference configuration")

func newConfigError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidReference, fmt.Sprintf(format, args...))
}

const (
	// BusinessType is stamped on every generated record.
	BusinessType = "restaurant"

	minFeatures = 2
	maxFeatures = 6

	minReviews = 5
	maxReviews = 15

	reviewYear = 2024

	websiteProbability = 0.5
)

// Review sentiment tier mix: 80% positive, 15% neutral, 5% negative in
// expectation. Draws are independent per review.
const (
	positiveCutoff = 0.80
	neutralCutoff  = 0.95
)

// Generator produces synthetic restaurant collections from fixed
// reference tables. It holds no mutable state between runs; all
// randomness comes from the injected source.
type Generator struct {
	location string
	vocab    *Vocabulary
	logger   *logrus.Logger
}

// New creates a generator for the given target location. A nil vocabulary
// selects the built-in word banks.
func New(location string, vocab *Vocabulary, logger *logrus.Logger) *Generator {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Generator{
		location: location,
		vocab:    vocab,
		logger:   logger,
	}
}

// Validate checks the reference tables. Any violation fails the whole run
// up front with an error wrapping ErrInvalidReference.
func (g *Generator) Validate(neighborhoods []config.Neighborhood, cuisines []config.CuisineProfile) error {
	if len(neighborhoods) == 0 {
		return newConfigError("neighborhood list is empty")
	}
	if len(cuisines) == 0 {
		return newConfigError("cuisine list is empty")
	}
	for _, n := range neighborhoods {
		if n.Count < 0 {
			return newConfigError("neighborhood %q has negative count %d", n.Name, n.Count)
		}
		if n.LatMin > n.LatMax || n.LngMin > n.LngMax {
			return newConfigError("neighborhood %q has an inverted bounding box", n.Name)
		}
	}
	for _, c := range cuisines {
		if len(c.PriceDist) == 0 {
			return newConfigError("cuisine %q has an empty price-tier set", c.Name)
		}
		for _, pt := range c.PriceDist {
			if pt.Weight <= 0 {
				return newConfigError("cuisine %q tier %q has non-positive weight %v", c.Name, pt.Tier, pt.Weight)
			}
		}
		if c.RatingMin > c.RatingMax {
			return newConfigError("cuisine %q has rating range [%v, %v]", c.Name, c.RatingMin, c.RatingMax)
		}
	}
	return g.vocab.Validate()
}

// Generate produces one restaurant per neighborhood slot. Output length
// always equals the sum of the neighborhood counts.
func (g *Generator) Generate(neighborhoods []config.Neighborhood, cuisines []config.CuisineProfile, rng *rand.Rand) ([]models.Restaurant, error) {
	if err := g.Validate(neighborhoods, cuisines); err != nil {
		return nil, err
	}

	total := config.TotalTargetCount(neighborhoods)
	restaurants := make([]models.Restaurant, 0, total)

	index := 0 // 1-based running index across all neighborhoods
	for _, neighborhood := range neighborhoods {
		bound := neighborhood.Bound()
		for i := 0; i < neighborhood.Count; i++ {
			index++
			restaurants = append(restaurants, g.generateOne(neighborhood, bound, cuisines, index, rng))
		}
	}

	g.logger.WithFields(logrus.Fields{
		"restaurants":   len(restaurants),
		"neighborhoods": len(neighborhoods),
	}).Info("Generated restaurant collection")

	return restaurants, nil
}

func (g *Generator) generateOne(neighborhood config.Neighborhood, bound orb.Bound, cuisines []config.CuisineProfile, index int, rng *rand.Rand) models.Restaurant {
	cuisine := cuisines[rng.Intn(len(cuisines))]

	namePart := g.vocab.NameParts[rng.Intn(len(g.vocab.NameParts))]
	template := g.vocab.NameTemplates[rng.Intn(len(g.vocab.NameTemplates))]
	name := fmt.Sprintf(template, namePart)
	// The running index keeps names unique across the whole run; the
	// very first record stays unsuffixed.
	if index > 1 {
		name = fmt.Sprintf("%s %d", name, index)
	}

	point := samplePoint(bound, rng)

	priceRange := sampleTier(cuisine.PriceDist, rng)

	rating := roundRating(cuisine.RatingMin + rng.Float64()*(cuisine.RatingMax-cuisine.RatingMin))
	reviewCount := sampleReviewCount(rating, rng)

	keyword := g.vocab.ReviewKeywords[rng.Intn(len(g.vocab.ReviewKeywords))]
	numReviews := intBetween(rng, minReviews, maxReviews)
	reviews := g.generateReviews(numReviews, keyword, rng)

	var website *string
	if rng.Float64() < websiteProbability {
		url := fmt.Sprintf("https://%s.com", strings.ToLower(namePart))
		website = &url
	}

	return models.Restaurant{
		Name:         name,
		Address:      g.composeAddress(rng),
		Phone:        fmt.Sprintf("+1 809-%d-%d", intBetween(rng, 200, 999), intBetween(rng, 1000, 9999)),
		Website:      website,
		Rating:       rating,
		ReviewCount:  reviewCount,
		BusinessType: BusinessType,
		CuisineType:  cuisine.Name,
		PriceRange:   priceRange,
		Location:     g.location,
		Neighborhood: neighborhood.Name,
		Coordinates:  models.Coordinates{Lat: point.Lat(), Lng: point.Lon()},
		OpeningHours: g.vocab.OpeningHours[rng.Intn(len(g.vocab.OpeningHours))],
		Features:     g.sampleFeatures(rng),
		Reviews:      reviews,
	}
}

// composeAddress builds "<type> <number>[ <suffix>], <city suffix>".
func (g *Generator) composeAddress(rng *rand.Rand) string {
	streetType := g.vocab.StreetTypes[rng.Intn(len(g.vocab.StreetTypes))]
	number := intBetween(rng, 1, 999)
	suffix := g.vocab.StreetSuffixes[rng.Intn(len(g.vocab.StreetSuffixes))]

	if suffix != "" {
		return fmt.Sprintf("%s %d %s, %s", streetType, number, suffix, g.location)
	}
	return fmt.Sprintf("%s %d, %s", streetType, number, g.location)
}

func (g *Generator) sampleFeatures(rng *rand.Rand) []string {
	count := intBetween(rng, minFeatures, maxFeatures)
	features := make([]string, 0, count)
	for _, idx := range rng.Perm(len(g.vocab.Features))[:count] {
		features = append(features, g.vocab.Features[idx])
	}
	return features
}

func (g *Generator) generateReviews(count int, keyword string, rng *rand.Rand) []models.Review {
	reviews := make([]models.Review, 0, count)
	for i := 0; i < count; i++ {
		var template string
		var rating int

		// Phrase pool and numeric sub-range come from the same draw,
		// so text tier and rating always agree.
		switch u := rng.Float64(); {
		case u < positiveCutoff:
			template = g.vocab.PositiveTemplates[rng.Intn(len(g.vocab.PositiveTemplates))]
			rating = intBetween(rng, 4, 5)
		case u < neutralCutoff:
			template = g.vocab.NeutralTemplates[rng.Intn(len(g.vocab.NeutralTemplates))]
			rating = intBetween(rng, 3, 4)
		default:
			template = g.vocab.NegativeTemplates[rng.Intn(len(g.vocab.NegativeTemplates))]
			rating = intBetween(rng, 1, 3)
		}

		reviews = append(reviews, models.Review{
			Text:     fmt.Sprintf(template, keyword),
			Reviewer: g.vocab.Reviewers[rng.Intn(len(g.vocab.Reviewers))],
			Rating:   rating,
			Date:     fmt.Sprintf("%d-%02d-%02d", reviewYear, intBetween(rng, 1, 12), intBetween(rng, 1, 28)),
		})
	}
	return reviews
}

// sampleTier draws a tier from the weighted distribution. Weights are
// normalized here, so configured weights need not sum to 1.
func sampleTier(dist []config.PriceTier, rng *rand.Rand) string {
	var total float64
	for _, pt := range dist {
		total += pt.Weight
	}

	target := rng.Float64() * total
	for _, pt := range dist {
		target -= pt.Weight
		if target < 0 {
			return pt.Tier
		}
	}
	// Floating point can leave target at exactly zero.
	return dist[len(dist)-1].Tier
}

// sampleReviewCount correlates the advertised review count with the
// rating. Independent from the length of the generated review list.
func sampleReviewCount(rating float64, rng *rand.Rand) int {
	base := int(50 + (rating-3.0)*200)
	low := base - 50
	if low < 10 {
		low = 10
	}
	high := base + 100
	if high < low {
		high = low
	}
	return intBetween(rng, low, high)
}

func samplePoint(bound orb.Bound, rng *rand.Rand) orb.Point {
	lng := bound.Min[0] + rng.Float64()*(bound.Max[0]-bound.Min[0])
	lat := bound.Min[1] + rng.Float64()*(bound.Max[1]-bound.Min[1])
	return orb.Point{lng, lat}
}

func roundRating(r float64) float64 {
	return math.Round(r*10) / 10
}

// intBetween returns a uniform integer in [low, high].
func intBetween(rng *rand.Rand, low, high int) int {
	return low + rng.Intn(high-low+1)
}
