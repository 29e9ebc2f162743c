package geometry

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
)

// Hulls with fewer than three distinct points are skipped.
const minHullPoints = 3

// NeighborhoodPoints groups restaurant coordinates by neighborhood name.
type NeighborhoodPoints struct {
	Name   string
	Points []orb.Point
}

// NeighborhoodHulls computes a convex hull per neighborhood and returns
// them as a GeoJSON feature collection. Neighborhoods without enough
// distinct points are logged and skipped.
func NeighborhoodHulls(groups []NeighborhoodPoints, logger *logrus.Logger) *geojson.FeatureCollection {
	if logger == nil {
		logger = logrus.New()
	}

	fc := geojson.NewFeatureCollection()
	for _, group := range groups {
		points := dedupe(group.Points)
		if len(points) < minHullPoints {
			logger.WithField("neighborhood", group.Name).Warn("Not enough distinct points for a hull")
			continue
		}

		hull := convexHull(points)
		if hull == nil {
			continue
		}

		feature := geojson.NewFeature(orb.Polygon{hull})
		feature.Properties = geojson.Properties{
			"neighborhood": group.Name,
			"point_count":  len(points),
			"hull_type":    "convex",
		}
		fc.Append(feature)
	}

	return fc
}

func dedupe(points []orb.Point) []orb.Point {
	seen := make(map[orb.Point]bool, len(points))
	out := make([]orb.Point, 0, len(points))
	for _, p := range points {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// convexHull runs a Graham scan over the points and returns a closed
// ring, or nil when the points are collinear.
func convexHull(points []orb.Point) orb.Ring {
	pts := make([]orb.Point, len(points))
	copy(pts, points)

	sort.Slice(pts, func(i, j int) bool {
		if pts[i][0] != pts[j][0] {
			return pts[i][0] < pts[j][0]
		}
		return pts[i][1] < pts[j][1]
	})

	var lower []orb.Point
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []orb.Point
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < minHullPoints {
		return nil
	}

	hull = append(hull, hull[0])
	return orb.Ring(hull)
}

func cross(o, a, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}
