package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// BookingEvent is the payload published after a committed reservation or
// cancellation. EventID lets consumers deduplicate redelivered messages.
type BookingEvent struct {
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	BookingID    int64     `json:"booking_id"`
	FlightID     int64     `json:"flight_id"`
	UserID       int64     `json:"user_id"`
	CustomerName string    `json:"customer_name"`
	Email        string    `json:"email"`
	Seats        int       `json:"seats"`
	CreatedAt    time.Time `json:"created_at"`
}

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

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	})
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
