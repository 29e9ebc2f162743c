package geometry

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNeighborhoodHulls_SquareWithInteriorPoint(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	groups := []NeighborhoodPoints{
		{
			Name: "Piantini",
			Points: []orb.Point{
				{-69.95, 18.45},
				{-69.94, 18.45},
				{-69.94, 18.46},
				{-69.95, 18.46},
				{-69.945, 18.455}, // interior point, must not be a hull vertex
			},
		},
	}

	fc := NeighborhoodHulls(groups, logger)
	assert.Len(t, fc.Features, 1)

	feature := fc.Features[0]
	assert.Equal(t, "Piantini", feature.Properties["neighborhood"])
	assert.Equal(t, 5, feature.Properties["point_count"])

	polygon, ok := feature.Geometry.(orb.Polygon)
	assert.True(t, ok)
	assert.Len(t, polygon, 1)

	ring := polygon[0]
	// Closed ring: square corners plus the repeated first point.
	assert.Len(t, ring, 5)
	assert.Equal(t, ring[0], ring[len(ring)-1])
	assert.NotContains(t, ring, orb.Point{-69.945, 18.455})
}

func TestNeighborhoodHulls_SkipsSmallAndDegenerateGroups(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	groups := []NeighborhoodPoints{
		{
			Name:   "Naco",
			Points: []orb.Point{{-69.96, 18.44}, {-69.95, 18.44}},
		},
		{
			// Duplicates collapse below the minimum.
			Name:   "Gazcue",
			Points: []orb.Point{{-69.91, 18.48}, {-69.91, 18.48}, {-69.91, 18.48}},
		},
		{
			// Collinear points span no area.
			Name:   "Bella Vista",
			Points: []orb.Point{{-69.93, 18.46}, {-69.92, 18.46}, {-69.91, 18.46}},
		},
	}

	fc := NeighborhoodHulls(groups, logger)
	assert.Empty(t, fc.Features)
}

func TestNeighborhoodHulls_Triangle(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	groups := []NeighborhoodPoints{
		{
			Name:   "Boca Chica",
			Points: []orb.Point{{-69.60, 18.35}, {-69.59, 18.35}, {-69.595, 18.36}},
		},
	}

	fc := NeighborhoodHulls(groups, logger)
	assert.Len(t, fc.Features, 1)

	polygon := fc.Features[0].Geometry.(orb.Polygon)
	assert.Len(t, polygon[0], 4)
}
