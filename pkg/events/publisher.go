package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"roombook/pkg/logger"
	"roombook/pkg/model"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Publisher emits booking lifecycle events to Kafka. A nil *Publisher is a
// valid no-op publisher, which is how deployments without brokers run.
type Publisher struct {
	writer *kafka.Writer
	source string
	log    *logger.Logger
}

func NewPublisher(brokers []string, topic, source string, log *logger.Logger) *Publisher {
	if len(brokers) == 0 {
		log.Info("Booking event publishing disabled, no Kafka brokers configured")
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // Hash by key keeps per-room ordering
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error(fmt.Sprintf("Kafka writer: "+msg, args...))
		}),
	}

	log.Info("Booking event publisher initialized", "topic", topic, "brokers", brokers)
	return &Publisher{
		writer: writer,
		source: source,
		log:    log,
	}
}

// Publish emits one booking lifecycle event. Safe to call on a nil Publisher.
func (p *Publisher) Publish(ctx context.Context, eventType string, b *model.Booking) error {
	if p == nil {
		return nil
	}

	event := BookingEvent{
		EventID:       uuid.New().String(),
		Type:          eventType,
		BookingID:     b.ID,
		RoomID:        b.RoomID,
		BookingDate:   b.BookingDate,
		TimeFrom:      b.TimeFrom,
		TimeTo:        b.TimeTo,
		EmployeeEmail: b.EmployeeEmail,
		OccurredAt:    time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode booking event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(b.RoomID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(event.EventID)},
			{Key: HeaderEventType, Value: []byte(eventType)},
			{Key: HeaderSource, Value: []byte(p.source)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
