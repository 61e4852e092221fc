package domain

import (
	"strings"
	"time"
)

type Traveler struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Notifications  bool      `json:"notifications"`
	LocationAccess bool      `json:"location_access"`
	ReviewsGiven   int       `json:"reviews_given"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Initials is the avatar fallback: first letter of each word of the name.
func (t Traveler) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(t.Name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

type TravelerStats struct {
	TripsPlanned  int `json:"trips_planned"`
	PlacesVisited int `json:"places_visited"`
	PhotosShared  int `json:"photos_shared"`
	ReviewsGiven  int `json:"reviews_given"`
}

type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

func Achievements(s TravelerStats) []Achievement {
	return []Achievement{
		{Title: "First Trip", Description: "Completed your first trip", Earned: s.TripsPlanned >= 1},
		{Title: "Culture Explorer", Description: "Visited 5 cultural sites", Earned: s.PlacesVisited >= 5},
		{Title: "Nature Lover", Description: "Explored 10 natural attractions", Earned: s.PlacesVisited >= 10},
		{Title: "Local Expert", Description: "Shared 20 reviews", Earned: s.ReviewsGiven >= 20},
	}
}
