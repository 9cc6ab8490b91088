package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// BookingEvent is published after a ledger mutation has been committed
// and persisted. Consumers must tolerate duplicates: delivery is
// best-effort, not exactly-once.
type BookingEvent struct {
	ID     string    `json:"id"`
	Type   string    `json:"type"`
	UserID string    `json:"userid"`
	Date   string    `json:"date"`
	Movies []string  `json:"movies,omitempty"`
	Movie  string    `json:"movie,omitempty"`
	At     time.Time `json:"at"`
}

const (
	EventBookingAdded   = "booking_added"
	EventBookingDeleted = "booking_deleted"
)

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
