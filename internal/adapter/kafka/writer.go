package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/frostline/thermoscale-etl/internal/config"
	"github.com/frostline/thermoscale-etl/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces messages to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes multiple enriched readings to the sink
// Kafka topic in a single WriteMessages call for efficiency.
func (w *Writer) LoadBatch(ctx context.Context, readings []domain.Reading) error {
	if len(readings) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(readings))
	for i := range readings {
		msg, err := serializeToMessage(readings[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a Reading into a Kafka message. The sensor ID
// keys the message so all readings from one sensor land on the same partition
// in capture order.
func serializeToMessage(reading domain.Reading) (kafkago.Message, error) {
	data, err := json.Marshal(reading)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize reading: %w", err)
	}
	headers := []kafkago.Header{
		{Key: "unit", Value: []byte(reading.Unit)},
		{Key: "processed_at", Value: []byte(reading.ProcessedAt.Format(time.RFC3339))},
	}
	if reading.Concept != "" {
		headers = append(headers, kafkago.Header{Key: "concept", Value: []byte(reading.Concept)})
	}
	return kafkago.Message{
		Key:     []byte(reading.SensorID),
		Value:   data,
		Headers: headers,
	}, nil
}
