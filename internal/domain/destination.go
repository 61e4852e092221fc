package domain

import "strings"

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryAll matches every item in a filter.
const CategoryAll = "all"

var DestinationCategories = []Category{
	{ID: CategoryAll, Name: "All"},
	{ID: "nature", Name: "Nature"},
	{ID: "culture", Name: "Culture"},
	{ID: "food", Name: "Food"},
	{ID: "adventure", Name: "Adventure"},
	{ID: "wellness", Name: "Wellness"},
}

type Destination struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	DistanceKm  float64  `json:"distance_km"`
	Duration    string   `json:"duration"`
	PricePaise  int64    `json:"price_paise"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

// Matches applies the explore screen filter: category, then a case-insensitive
// substring of the name or the description.
func (d Destination) Matches(category, query string) bool {
	if !categoryMatches(d.Category, category) {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Name), q) || strings.Contains(strings.ToLower(d.Description), q)
}

func categoryMatches(have, want string) bool {
	return want == "" || want == CategoryAll || strings.EqualFold(have, want)
}

func KnownCategory(categories []Category, id string) bool {
	if id == "" {
		return true
	}
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
