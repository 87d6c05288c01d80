// Package queue publishes booking events to RabbitMQ.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Sachin796/Worktopia/internal/core/domain"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/Sachin796/Worktopia/internal/middleware"
	amqp "github.com/rabbitmq/amqp091-go"
)

// BookingCreatedQueue is the durable queue booking.created events are routed to.
const BookingCreatedQueue = "booking.created"

// BookingCreatedEvent is the message body of a booking.created event.
type BookingCreatedEvent struct {
	BookingID   int64     `json:"bookingID"`
	WorkspaceID int64     `json:"workspaceID"`
	UserID      int64     `json:"userID"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// dialFunc opens a channel and returns a func closing everything it opened.
type dialFunc func(url string) (channel, func(), error)

func dialAMQP(url string) (channel, func(), error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq dial failed: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq channel open failed: %w", err)
	}
	return ch, func() { _ = conn.Close() }, nil
}

// AMQPPublisher opens a connection per publish. Booking creation is rare enough for that.
type AMQPPublisher struct {
	url  string
	dial dialFunc
}

var _ portssvc.EventPublisher = (*AMQPPublisher)(nil)

// NewPublisher returns an AMQP publisher, or a no-op publisher when url is empty.
func NewPublisher(url string) portssvc.EventPublisher {
	if url == "" {
		return NoopPublisher{}
	}
	return &AMQPPublisher{url: url, dial: dialAMQP}
}

func (p *AMQPPublisher) PublishBookingCreated(ctx context.Context, booking domain.Booking) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	ch, closeConn, err := p.dial(p.url)
	if err != nil {
		logger.Error("Failed to connect to rabbitmq", slog.String("error", err.Error()))
		return err
	}
	defer closeConn()
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(BookingCreatedQueue, true, false, false, false, nil); err != nil {
		logger.Error("Failed to declare queue", slog.String("queue", BookingCreatedQueue), slog.String("error", err.Error()))
		return fmt.Errorf("rabbitmq queue declare failed: %w", err)
	}

	body, err := json.Marshal(BookingCreatedEvent{
		BookingID:   booking.BookingID,
		WorkspaceID: booking.WorkspaceID,
		UserID:      booking.UserID,
		StartDate:   booking.StartDate.Format(domain.DateLayout),
		EndDate:     booking.EndDate.Format(domain.DateLayout),
		CreatedAt:   booking.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", BookingCreatedQueue, false, false, msg); err != nil {
		logger.Error("Failed to publish booking event", slog.Int64("booking_id", booking.BookingID), slog.String("error", err.Error()))
		return fmt.Errorf("rabbitmq publish failed: %w", err)
	}
	return nil
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingCreated(context.Context, domain.Booking) error { return nil }
