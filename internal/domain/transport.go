package domain

import (
	"fmt"
	"time"
)

type TransportMode string

const (
	TransportModeFlight TransportMode = "flight"
	TransportModeTrain  TransportMode = "train"
	TransportModeBus    TransportMode = "bus"
	TransportModeBoat   TransportMode = "boat"
)

type TransportModeInfo struct {
	ID   TransportMode `json:"id"`
	Name string        `json:"name"`
}

// TransportModes is the tab order of the booking screen.
var TransportModes = []TransportModeInfo{
	{ID: TransportModeFlight, Name: "Flights"},
	{ID: TransportModeTrain, Name: "Trains"},
	{ID: TransportModeBus, Name: "Buses"},
	{ID: TransportModeBoat, Name: "Boats"},
}

func (m TransportMode) Valid() bool {
	for _, info := range TransportModes {
		if info.ID == m {
			return true
		}
	}
	return false
}

type Transport struct {
	ID             int64         `json:"id"`
	Mode           TransportMode `json:"mode"`
	Carrier        string        `json:"carrier"`
	Code           string        `json:"code"`
	Origin         string        `json:"origin"`
	Destination    string        `json:"destination"`
	DepartureTime  time.Time     `json:"departure_time"`
	ArrivalTime    time.Time     `json:"arrival_time"`
	Stops          int           `json:"stops"`
	Rating         float64       `json:"rating"`
	TotalSeats     int           `json:"total_seats"`
	AvailableSeats int           `json:"available_seats"`
	PricePaise     int64         `json:"price_paise"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (t Transport) Route() string {
	return t.Origin + " → " + t.Destination
}

func (t Transport) Duration() time.Duration {
	return t.ArrivalTime.Sub(t.DepartureTime)
}

// DurationLabel renders the duration the way the ticket list shows it, e.g. "2h 15m".
func (t Transport) DurationLabel() string {
	d := t.Duration()
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %02dm", h, m)
}

func (t Transport) StopsLabel() string {
	switch t.Stops {
	case 0:
		return "Non-stop"
	case 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", t.Stops)
	}
}
