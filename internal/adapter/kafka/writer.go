// Package kafka publishes calculation records to a Kafka results topic for
// downstream archival and compliance reporting.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/gridclear/sagcalc/internal/config"
	"github.com/gridclear/sagcalc/internal/service"
)

// Publisher produces calculation records to a Kafka topic.
// It implements service.Publisher.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured results topic.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaResultsTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, logger: logger}
}

// Publish serializes and writes one calculation record. The record ID is the
// message key, so records for the same inputs land on the same partition and
// compact cleanly.
func (p *Publisher) Publish(ctx context.Context, rec service.Record) error {
	msg, err := serializeToMessage(rec)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializeToMessage marshals a calculation record into a Kafka message.
func serializeToMessage(rec service.Record) (kafkago.Message, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize calculation record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(rec.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "compliant", Value: []byte(strconv.FormatBool(rec.Result.NESC.Compliant))},
			{Key: "computed_at", Value: []byte(rec.Result.ComputedAt.Format(time.RFC3339))},
		},
	}, nil
}
