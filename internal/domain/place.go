package domain

import "strings"

var PlaceCategories = []Category{
	{ID: CategoryAll, Name: "All"},
	{ID: "attractions", Name: "Attractions"},
	{ID: "restaurants", Name: "Food"},
	{ID: "hotels", Name: "Hotels"},
	{ID: "emergency", Name: "Emergency"},
	{ID: "transport", Name: "Transport"},
}

type Place struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	City        string  `json:"city"`
	DistanceKm  float64 `json:"distance_km"`
	TravelTime  string  `json:"travel_time"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	IsOpen      bool    `json:"is_open"`
	Contact     string  `json:"contact"`
}

// Matches applies the map screen filter. Unlike destinations, only the name is searched.
func (p Place) Matches(city, category, query string) bool {
	if city != "" && !strings.EqualFold(p.City, city) {
		return false
	}
	if !categoryMatches(p.Category, category) {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(query))
	return q == "" || strings.Contains(strings.ToLower(p.Name), q)
}
