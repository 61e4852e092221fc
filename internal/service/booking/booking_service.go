package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/Domenick1991/tripverse/internal/kafka"
	"github.com/Domenick1991/tripverse/internal/metrics"
	"github.com/Domenick1991/tripverse/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, token string) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, token string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, token string) (*domain.Booking, error)
	ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error)
}

type SeatLocker interface {
	AcquireSeatLock(ctx context.Context, transportID int64, seatNumber int, ttl time.Duration) (bool, error)
	ReleaseSeatLock(ctx context.Context, transportID int64, seatNumber int) error
	InvalidateTransports(ctx context.Context) error
}

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	locks              SeatLocker
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	holdTTL            time.Duration
	confirmationTTL    time.Duration
	publishRetries     int
	now                func() time.Time
	log                *logrus.Logger
}

type CreateBookingInput struct {
	TransportID int64                  `json:"transport_id"`
	SeatNumber  int                    `json:"seat_number"`
	Email       string                 `json:"email"`
	Insurance   domain.InsurancePlanID `json:"insurance"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithPublishRetries sets how many times an event write is attempted.
func WithPublishRetries(n int) BookingServiceOption {
	return func(s *BookingService) {
		s.publishRetries = n
	}
}

func WithLogger(log *logrus.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.log = log
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

// NewBookingService wires the booking flow. locks and producer may be nil;
// the flow then skips seat holds or events.
func NewBookingService(
	bookings repository.BookingRepository,
	locks SeatLocker,
	producer Producer,
	bookingTopic string,
	holdTTL, confirmationTTL time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:        bookings,
		locks:           locks,
		producer:        producer,
		bookingTopic:    bookingTopic,
		holdTTL:         holdTTL,
		confirmationTTL: confirmationTTL,
		publishRetries:  1,
		now:             time.Now,
		log:             logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func validationError(msg string) error {
	return fmt.Errorf("%s: %w", msg, domain.ErrValidation)
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.SeatNumber <= 0 {
		return nil, validationError("seat number must be positive")
	}
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, validationError("email is required")
	}
	plan, ok := domain.LookupInsurance(input.Insurance)
	if !ok {
		return nil, validationError(fmt.Sprintf("unknown insurance plan %q", input.Insurance))
	}

	locked := false
	if s.locks != nil {
		ok, err := s.locks.AcquireSeatLock(ctx, input.TransportID, input.SeatNumber, s.holdTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("seat is already locked: %w", domain.ErrConflict)
		}
		locked = true
	}

	expiresIn := s.confirmationTTL
	if expiresIn == 0 {
		expiresIn = s.holdTTL
	}

	booking := &domain.Booking{
		TransportID: input.TransportID,
		SeatNumber:  input.SeatNumber,
		Token:       uuid.NewString(),
		Insurance:   plan.ID,
		ExpiresAt:   s.now().Add(expiresIn),
		Email:       email,
	}

	if err := s.bookings.CreatePending(ctx, booking, plan.PricePaise); err != nil {
		if locked {
			_ = s.locks.ReleaseSeatLock(ctx, input.TransportID, input.SeatNumber)
		}
		return nil, err
	}

	booking.Status = domain.BookingStatusPending
	s.afterTransition(ctx, "booking_created", booking)
	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, token string) (*domain.Booking, error) {
	return s.bookings.GetByToken(ctx, token)
}

func (s *BookingService) ConfirmBooking(ctx context.Context, token string) (*domain.Booking, error) {
	current, err := s.bookings.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("booking is not pending: %w", domain.ErrConflict)
	}
	if !current.ExpiresAt.IsZero() && !s.now().Before(current.ExpiresAt) {
		return nil, fmt.Errorf("booking hold has expired: %w", domain.ErrConflict)
	}

	updated, err := s.bookings.Transition(ctx, token, domain.BookingStatusPending, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	s.afterTransition(ctx, "booking_confirmed", updated)
	if s.locks != nil {
		_ = s.locks.ReleaseSeatLock(ctx, updated.TransportID, updated.SeatNumber)
	}
	return updated, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, token string) (*domain.Booking, error) {
	current, err := s.bookings.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if current.Status.Final() {
		return current, nil
	}

	updated, err := s.bookings.Transition(ctx, token, current.Status, domain.BookingStatusCancelled)
	if errors.Is(err, domain.ErrConflict) {
		// Lost a race with another cancel or the expiry sweep; the winner
		// already returned the seat.
		latest, getErr := s.bookings.GetByToken(ctx, token)
		if getErr == nil && latest.Status.Final() {
			return latest, nil
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	s.releaseSeat(ctx, updated)
	s.afterTransition(ctx, "booking_cancelled", updated)
	if s.locks != nil {
		_ = s.locks.ReleaseSeatLock(ctx, updated.TransportID, updated.SeatNumber)
	}
	return updated, nil
}

func (s *BookingService) ExpirePendingBookings(ctx context.Context) ([]domain.Booking, error) {
	expired, err := s.bookings.ExpirePendingBefore(ctx, s.now())
	if err != nil {
		return nil, err
	}
	for i := range expired {
		b := &expired[i]
		s.releaseSeat(ctx, b)
		s.afterTransition(ctx, "booking_expired", b)
		if s.locks != nil {
			_ = s.locks.ReleaseSeatLock(ctx, b.TransportID, b.SeatNumber)
		}
	}
	return expired, nil
}

func (s *BookingService) releaseSeat(ctx context.Context, b *domain.Booking) {
	if err := s.bookings.ReleaseSeat(ctx, b.TransportID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.log.WithError(err).WithField("token", b.Token).Error("release seat")
	}
}

// afterTransition records the new status and emits the event. Seat counts
// changed, so the cached transport list is dropped as well.
func (s *BookingService) afterTransition(ctx context.Context, eventType string, booking *domain.Booking) {
	metrics.RecordBookingTransition(string(booking.Status))
	if s.locks != nil {
		_ = s.locks.InvalidateTransports(ctx)
	}
	if err := s.publish(ctx, eventType, booking); err != nil {
		metrics.RecordPublishFailure()
		s.log.WithError(err).WithFields(logrus.Fields{"event": eventType, "token": booking.Token}).Warn("failed to publish booking event")
	}
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		Token:       booking.Token,
		Reference:   booking.Reference(),
		TransportID: booking.TransportID,
		SeatNumber:  booking.SeatNumber,
		Email:       booking.Email,
		Status:      string(booking.Status),
		Insurance:   string(booking.Insurance),
		TotalPaise:  booking.TotalPaise,
		ExpiresAt:   booking.ExpiresAt,
	}
	retries := s.publishRetries
	if retries < 1 {
		retries = 1
	}
	if err := s.producer.PublishWithRetry(ctx, s.bookingTopic, booking.Token, event, retries); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.PublishWithRetry(ctx, s.notificationsTopic, booking.Token, event, retries)
	}
	return nil
}

var (
	_ BookingUseCase = (*BookingService)(nil)
	_ Producer       = (*kafka.Producer)(nil)
)
