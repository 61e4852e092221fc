package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/tripverse/internal/logging"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	failures int
	calls    int
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.calls++
	if w.err != nil {
		return w.err
	}
	if w.failures > 0 {
		w.failures--
		return errors.New("leader not available")
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

type fakeReader struct {
	messages []kafka.Message
	err      error
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, r.err
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) Close() error { return nil }

func TestProducer_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w, log: logging.Discard()}

	err := p.Publish(context.Background(), "bookings", "tok", BookingEvent{Type: "booking_created", Token: "tok"})
	require.NoError(t, err)
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "bookings", msg.Topic)
	assert.Equal(t, []byte("tok"), msg.Key)

	var event BookingEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, "booking_created", event.Type)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestProducer_PublishWithRetry_GivesUp(t *testing.T) {
	p := &Producer{writer: &fakeWriter{err: errors.New("broker down")}, log: logging.Discard()}

	err := p.PublishWithRetry(context.Background(), "bookings", "tok", BookingEvent{}, 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 1 retries")
}

func TestProducer_PublishWithRetry_RecoversAfterFailures(t *testing.T) {
	w := &fakeWriter{failures: 2}
	p := &Producer{writer: w, retryBackoff: time.Millisecond, log: logging.Discard()}

	err := p.PublishWithRetry(context.Background(), "bookings", "tok", BookingEvent{Type: "booking_created"}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, w.calls)
	assert.Len(t, w.messages, 1)
}

func TestProducer_PublishWithRetry_StopsOnCancel(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := &Producer{writer: w, retryBackoff: time.Hour, log: logging.Discard()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.PublishWithRetry(ctx, "bookings", "tok", BookingEvent{}, 3)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, w.calls)
}

func TestProducer_CheckConnection_NoBrokers(t *testing.T) {
	p := NewProducer(nil, logging.Discard())
	err := p.CheckConnection(context.Background())
	assert.EqualError(t, err, "no kafka brokers configured")
}

func TestConsumer_SkipsBadMessages(t *testing.T) {
	good, _ := json.Marshal(BookingEvent{Type: "booking_confirmed", Email: "a@b.c"})
	c := &Consumer{reader: &fakeReader{
		messages: []kafka.Message{{Value: []byte("{not json")}, {Value: good}},
		err:      context.Canceled,
	}}

	var seen []BookingEvent
	err := c.Consume(context.Background(), BookingEventHandler(logging.Discard(), func(_ context.Context, e BookingEvent) error {
		seen = append(seen, e)
		return nil
	}))

	assert.NoError(t, err)
	require.Len(t, seen, 1)
	assert.Equal(t, "booking_confirmed", seen[0].Type)
}

func TestConsumer_HandlerError(t *testing.T) {
	c := &Consumer{reader: &fakeReader{messages: []kafka.Message{{Value: []byte("{}")}}}}
	boom := errors.New("smtp down")

	err := c.Consume(context.Background(), func(context.Context, kafka.Message) error { return boom })
	assert.Equal(t, boom, err)
}
