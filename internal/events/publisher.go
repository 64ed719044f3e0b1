// Package events publishes domain events to Kafka.
//
// Publishing is best-effort and optional: with no brokers configured the
// publisher is a no-op, and a failed publish is logged but never fails the
// operation that produced the event.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Event types emitted by the service.
const (
	TypePlanUpgraded          = "plan.upgraded"
	TypeSubscriptionCancelled = "subscription.cancelled"
	TypeAssessmentCompleted   = "assessment.completed"
)

// Event is the envelope written to the topic.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	UserID     string          `json:"user_id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Publisher writes events to a Kafka topic, keyed by user so per-user
// ordering is preserved.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewPublisher creates a Publisher. With no brokers it returns a disabled
// publisher whose Publish is a no-op.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	if len(brokers) == 0 {
		logger.Warn("event publishing disabled (no kafka brokers configured)")
		return &Publisher{logger: logger}
	}

	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  brokers,
		Topic:    topic,
		Balancer: &kafka.Hash{},
	})

	return &Publisher{writer: writer, logger: logger}
}

// Publish emits one event. Failures are logged, not returned; event
// delivery must never break the user-facing operation.
func (p *Publisher) Publish(ctx context.Context, eventType, userID string, payload any) {
	if p.writer == nil {
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("failed to encode event payload", "type", eventType, "error", err)
		return
	}

	event := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		Payload:    raw,
		OccurredAt: time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to encode event", "type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(userID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.ID)},
			{Key: "event_type", Value: []byte(eventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish event", "type", eventType, "error", err)
		return
	}

	p.logger.Debug("published event", "type", eventType, "user_id", userID)
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
