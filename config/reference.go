package config

import "github.com/paulmach/orb"

// Neighborhood is a named geographic zone with a bounding coordinate box
// and a target number of restaurants to generate inside it.
type Neighborhood struct {
	Name   string  `json:"name"`
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
	LngMin float64 `json:"lng_min"`
	LngMax float64 `json:"lng_max"`
	Count  int     `json:"count"`
}

// Bound returns the neighborhood box as an orb bound (lng/lat order).
func (n Neighborhood) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{n.LngMin, n.LatMin},
		Max: orb.Point{n.LngMax, n.LatMax},
	}
}

// PriceTier is one (tier, weight) pair of a cuisine's price distribution.
// Weights are normalized before sampling, so they need not sum to 1.
type PriceTier struct {
	Tier   string  `json:"tier"`
	Weight float64 `json:"weight"`
}

// CuisineProfile is a cuisine category with its price-tier distribution
// and the rating range its restaurants draw from.
type CuisineProfile struct {
	Name      string      `json:"name"`
	PriceDist []PriceTier `json:"price_distribution"`
	RatingMin float64     `json:"rating_min"`
	RatingMax float64     `json:"rating_max"`
}

// Tiers returns the declared tier names in order.
func (c CuisineProfile) Tiers() []string {
	tiers := make([]string, len(c.PriceDist))
	for i, pt := range c.PriceDist {
		tiers[i] = pt.Tier
	}
	return tiers
}

// SupportedNeighborhoods lists the Santo Domingo zones covered by the
// generator. Counts sum to 500.
var SupportedNeighborhoods = []Neighborhood{
	{Name: "Zona Colonial", LatMin: 18.47, LatMax: 18.48, LngMin: -69.89, LngMax: -69.88, Count: 80},
	{Name: "Piantini", LatMin: 18.45, LatMax: 18.46, LngMin: -69.95, LngMax: -69.94, Count: 70},
	{Name: "Naco", LatMin: 18.44, LatMax: 18.45, LngMin: -69.96, LngMax: -69.95, Count: 60},
	{Name: "Bella Vista", LatMin: 18.46, LatMax: 18.47, LngMin: -69.93, LngMax: -69.92, Count: 50},
	{Name: "Gazcue", LatMin: 18.48, LatMax: 18.49, LngMin: -69.91, LngMax: -69.90, Count: 40},
	{Name: "Villa Consuelo", LatMin: 18.49, LatMax: 18.50, LngMin: -69.90, LngMax: -69.89, Count: 35},
	{Name: "Los Prados", LatMin: 18.50, LatMax: 18.51, LngMin: -69.89, LngMax: -69.88, Count: 30},
	{Name: "Ensanche Naco", LatMin: 18.43, LatMax: 18.44, LngMin: -69.97, LngMax: -69.96, Count: 25},
	{Name: "Mirador Norte", LatMin: 18.52, LatMax: 18.53, LngMin: -69.88, LngMax: -69.87, Count: 20},
	{Name: "Mirador Sur", LatMin: 18.42, LatMax: 18.43, LngMin: -69.98, LngMax: -69.97, Count: 20},
	{Name: "Villa Mella", LatMin: 18.54, LatMax: 18.55, LngMin: -69.87, LngMax: -69.86, Count: 15},
	{Name: "Santo Domingo Este", LatMin: 18.48, LatMax: 18.49, LngMin: -69.85, LngMax: -69.84, Count: 15},
	{Name: "Santo Domingo Norte", LatMin: 18.55, LatMax: 18.56, LngMin: -69.86, LngMax: -69.85, Count: 10},
	{Name: "Santo Domingo Oeste", LatMin: 18.41, LatMax: 18.42, LngMin: -69.99, LngMax: -69.98, Count: 10},
	{Name: "Boca Chica", LatMin: 18.35, LatMax: 18.36, LngMin: -69.60, LngMax: -69.59, Count: 20},
}

// SupportedCuisines lists the cuisine profiles with their price
// distributions and rating ranges.
var SupportedCuisines = []CuisineProfile{
	{Name: "Dominican", PriceDist: []PriceTier{{"$", 0.4}, {"$$", 0.4}, {"$$$", 0.2}}, RatingMin: 3.5, RatingMax: 4.8},
	{Name: "International", PriceDist: []PriceTier{{"$", 0.1}, {"$$", 0.3}, {"$$$", 0.4}, {"$$$$", 0.2}}, RatingMin: 3.8, RatingMax: 4.9},
	{Name: "Italian", PriceDist: []PriceTier{{"$", 0.2}, {"$$", 0.5}, {"$$$", 0.3}}, RatingMin: 3.7, RatingMax: 4.7},
	{Name: "Chinese", PriceDist: []PriceTier{{"$", 0.6}, {"$$", 0.3}, {"$$$", 0.1}}, RatingMin: 3.4, RatingMax: 4.5},
	{Name: "Japanese", PriceDist: []PriceTier{{"$", 0.1}, {"$$", 0.3}, {"$$$", 0.4}, {"$$$$", 0.2}}, RatingMin: 3.9, RatingMax: 4.9},
	{Name: "Mexican", PriceDist: []PriceTier{{"$", 0.5}, {"$$", 0.4}, {"$$$", 0.1}}, RatingMin: 3.6, RatingMax: 4.6},
	{Name: "American", PriceDist: []PriceTier{{"$", 0.3}, {"$$", 0.5}, {"$$$", 0.2}}, RatingMin: 3.5, RatingMax: 4.7},
	{Name: "Fusion", PriceDist: []PriceTier{{"$", 0.2}, {"$$", 0.4}, {"$$$", 0.3}, {"$$$$", 0.1}}, RatingMin: 3.8, RatingMax: 4.8},
	{Name: "Seafood", PriceDist: []PriceTier{{"$", 0.2}, {"$$", 0.4}, {"$$$", 0.3}, {"$$$$", 0.1}}, RatingMin: 3.7, RatingMax: 4.8},
	{Name: "Fast Food", PriceDist: []PriceTier{{"$", 0.8}, {"$$", 0.2}}, RatingMin: 3.2, RatingMax: 4.4},
	{Name: "Mediterranean", PriceDist: []PriceTier{{"$", 0.2}, {"$$", 0.5}, {"$$$", 0.3}}, RatingMin: 3.8, RatingMax: 4.7},
	{Name: "Asian", PriceDist: []PriceTier{{"$", 0.3}, {"$$", 0.4}, {"$$$", 0.3}}, RatingMin: 3.6, RatingMax: 4.6},
	{Name: "French", PriceDist: []PriceTier{{"$", 0.1}, {"$$", 0.3}, {"$$$", 0.4}, {"$$$$", 0.2}}, RatingMin: 4.0, RatingMax: 4.9},
	{Name: "Steakhouse", PriceDist: []PriceTier{{"$", 0.1}, {"$$", 0.3}, {"$$$", 0.4}, {"$$$$", 0.2}}, RatingMin: 3.8, RatingMax: 4.8},
	{Name: "Pizza", PriceDist: []PriceTier{{"$", 0.6}, {"$$", 0.3}, {"$$$", 0.1}}, RatingMin: 3.3, RatingMax: 4.5},
}

// GetNeighborhoodByName returns a neighborhood configuration by name.
func GetNeighborhoodByName(name string) *Neighborhood {
	for _, n := range SupportedNeighborhoods {
		if n.Name == name {
			return &n
		}
	}
	return nil
}

// GetCuisineByName returns a cuisine profile by name.
func GetCuisineByName(name string) *CuisineProfile {
	for _, c := range SupportedCuisines {
		if c.Name == name {
			return &c
		}
	}
	return nil
}

// TotalTargetCount returns the number of restaurants a full run produces.
func TotalTargetCount(neighborhoods []Neighborhood) int {
	total := 0
	for _, n := range neighborhoods {
		total += n.Count
	}
	return total
}
