package domain

import "time"

// DefaultMood is used when an entry is saved without one.
const DefaultMood = "😊"

var Moods = []string{"😊", "😍", "🤩", "😌", "🥰", "🌟", "🌿", "🏔️"}

func ValidMood(m string) bool {
	for _, mood := range Moods {
		if mood == m {
			return true
		}
	}
	return false
}

type JournalEntry struct {
	ID         string    `json:"id"`
	TravelerID string    `json:"traveler_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Location   string    `json:"location"`
	Mood       string    `json:"mood"`
	Photos     int       `json:"photos"`
	Tags       []string  `json:"tags"`
	EntryDate  time.Time `json:"entry_date"`
	CreatedAt  time.Time `json:"created_at"`
}
