package email

import (
	"bytes"
	"context"
	"testing"

	"github.com/Domenick1991/tripverse/internal/kafka"
	"github.com/Domenick1991/tripverse/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "Booking Confirmed! Have a wonderful journey", Subject("booking_confirmed"))
	assert.Equal(t, "Trip Verse update", Subject("something_else"))
}

func TestSender_Send(t *testing.T) {
	var buf bytes.Buffer
	s := NewSender(logging.NewWithOutput("info", "json", &buf))

	err := s.Send(context.Background(), kafka.BookingEvent{Type: "booking_created", Email: "explorer@tripverse.com", TotalPaise: 454900})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "explorer@tripverse.com")
	assert.Contains(t, buf.String(), "₹4,549")
}

func TestSender_SendWithoutRecipient(t *testing.T) {
	var buf bytes.Buffer
	s := NewSender(logging.NewWithOutput("info", "json", &buf))

	assert.NoError(t, s.Send(context.Background(), kafka.BookingEvent{Token: "tok"}))
	assert.Contains(t, buf.String(), "booking event without recipient")
}
