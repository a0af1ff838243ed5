package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-marketplace/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishEvent publishes a marketplace event to Kafka. Fire and forget:
// failures are logged, never surfaced to the caller.
func publishEvent(ctx context.Context, w KafkaWriter, eventType string, userID, listingID int64, amount float64) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", eventType)
		return
	}

	ev := models.MarketEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Type:      eventType,
		UserID:    userID,
		ListingID: listingID,
		Amount:    amount,
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", ev.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.EventID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", ev.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", ev.EventID, "type", eventType)
	}
}
