package email

import (
	"context"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/Domenick1991/tripverse/internal/kafka"
	"github.com/sirupsen/logrus"
)

var subjects = map[string]string{
	"booking_created":   "Your Trip Verse booking is on hold",
	"booking_confirmed": "Booking Confirmed! Have a wonderful journey",
	"booking_cancelled": "Your booking was cancelled",
	"booking_expired":   "Your booking hold expired",
}

// Sender writes notifications to the log; there is no mail transport yet.
type Sender struct {
	log *logrus.Logger
}

func NewSender(log *logrus.Logger) *Sender {
	return &Sender{log: log}
}

func Subject(eventType string) string {
	if s, ok := subjects[eventType]; ok {
		return s
	}
	return "Trip Verse update"
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if event.Email == "" {
		s.log.WithField("token", event.Token).Warn("booking event without recipient")
		return nil
	}
	s.log.WithFields(logrus.Fields{
		"to":        event.Email,
		"subject":   Subject(event.Type),
		"reference": event.Reference,
		"transport": event.TransportID,
		"seat":      event.SeatNumber,
		"total":     domain.FormatRupees(event.TotalPaise),
	}).Info("send email")
	return nil
}
