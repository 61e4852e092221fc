package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusExpired   BookingStatus = "EXPIRED"
)

// Final reports whether no further transition is allowed.
func (s BookingStatus) Final() bool {
	return s == BookingStatusCancelled || s == BookingStatusExpired
}

type Booking struct {
	ID          int64
	TransportID int64
	SeatNumber  int
	Token       string
	Status      BookingStatus
	Insurance   InsurancePlanID
	TotalPaise  int64
	ExpiresAt   time.Time
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Reference is the customer-facing booking id, e.g. TV-2024-001234.
func (b Booking) Reference() string {
	year := b.CreatedAt.Year()
	if b.CreatedAt.IsZero() {
		year = time.Now().Year()
	}
	return fmt.Sprintf("TV-%d-%06d", year, b.ID)
}
