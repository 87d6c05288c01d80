package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Sachin796/Worktopia/internal/core/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	declared   []string
	published  []amqp.Publishing
	routingKey string
	publishErr error
	closed     bool
}

func (f *fakeChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	f.declared = append(f.declared, name)
	return amqp.Queue{Name: name}, nil
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.routingKey = key
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestAMQPPublisher_PublishBookingCreated(t *testing.T) {
	ch := &fakeChannel{}
	connClosed := false
	p := &AMQPPublisher{url: "amqp://test", dial: func(string) (channel, func(), error) {
		return ch, func() { connClosed = true }, nil
	}}

	booking := domain.Booking{
		BookingID:   11,
		WorkspaceID: 3,
		UserID:      8,
		StartDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.PublishBookingCreated(context.Background(), booking))

	assert.Equal(t, []string{BookingCreatedQueue}, ch.declared)
	assert.Equal(t, BookingCreatedQueue, ch.routingKey)
	require.Len(t, ch.published, 1)
	assert.Equal(t, uint8(amqp.Persistent), ch.published[0].DeliveryMode)

	var evt BookingCreatedEvent
	require.NoError(t, json.Unmarshal(ch.published[0].Body, &evt))
	assert.Equal(t, int64(11), evt.BookingID)
	assert.Equal(t, "2024-03-01", evt.StartDate)
	assert.Equal(t, "2024-03-02", evt.EndDate)
	assert.True(t, ch.closed)
	assert.True(t, connClosed)
}

func TestAMQPPublisher_Errors(t *testing.T) {
	dialErr := errors.New("connection refused")
	p := &AMQPPublisher{url: "amqp://test", dial: func(string) (channel, func(), error) {
		return nil, nil, dialErr
	}}
	assert.ErrorIs(t, p.PublishBookingCreated(context.Background(), domain.Booking{}), dialErr)

	ch := &fakeChannel{publishErr: errors.New("channel closed")}
	p = &AMQPPublisher{url: "amqp://test", dial: func(string) (channel, func(), error) {
		return ch, func() {}, nil
	}}
	assert.Error(t, p.PublishBookingCreated(context.Background(), domain.Booking{}))
}

func TestNewPublisher_EmptyURLIsNoop(t *testing.T) {
	p := NewPublisher("")
	assert.IsType(t, NoopPublisher{}, p)
	assert.NoError(t, p.PublishBookingCreated(context.Background(), domain.Booking{}))
}
