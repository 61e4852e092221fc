package domain

import "time"

// BudgetPerStopPaise is the planner's flat estimate of ₹5,000 per destination.
const BudgetPerStopPaise int64 = 500000

type TripStop struct {
	Name string `json:"name"`
	Days int    `json:"days"`
}

type Trip struct {
	ID                   string     `json:"id"`
	TravelerID           string     `json:"traveler_id"`
	Name                 string     `json:"name"`
	StartDate            *time.Time `json:"start_date,omitempty"`
	EndDate              *time.Time `json:"end_date,omitempty"`
	Travelers            int        `json:"travelers"`
	Notes                string     `json:"notes"`
	Stops                []TripStop `json:"stops"`
	TotalDays            int        `json:"total_days"`
	EstimatedBudgetPaise int64      `json:"estimated_budget_paise"`
	CreatedAt            time.Time  `json:"created_at"`
}

type TripEstimate struct {
	TotalDays            int   `json:"total_days"`
	EstimatedBudgetPaise int64 `json:"estimated_budget_paise"`
}

func EstimateTrip(stops []TripStop) TripEstimate {
	var est TripEstimate
	for _, s := range stops {
		est.TotalDays += s.Days
	}
	est.EstimatedBudgetPaise = int64(len(stops)) * BudgetPerStopPaise
	return est
}

type PlannerOption struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Days     int    `json:"days"`
	Selected bool   `json:"selected"`
}

type TripSuggestion struct {
	Title        string   `json:"title"`
	Destinations []string `json:"destinations"`
	Days         int      `json:"days"`
	BudgetPaise  int64    `json:"budget_paise"`
}

var PlannerOptions = []PlannerOption{
	{ID: 1, Name: "Munnar", Days: 2, Selected: true},
	{ID: 2, Name: "Alleppey", Days: 1},
	{ID: 3, Name: "Kochi", Days: 1},
}

var TripSuggestions = []TripSuggestion{
	{Title: "Hill Station Escape", Destinations: []string{"Munnar", "Wayanad"}, Days: 4, BudgetPaise: 1200000},
	{Title: "Backwater Bliss", Destinations: []string{"Alleppey", "Kumarakom"}, Days: 3, BudgetPaise: 1500000},
	{Title: "Cultural Heritage", Destinations: []string{"Kochi", "Thrissur"}, Days: 3, BudgetPaise: 800000},
}
