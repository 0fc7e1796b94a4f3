package kafka

import (
	"context"
	"log/slog"
	"time"

	"github.com/frostline/thermoscale-etl/internal/config"
	"github.com/frostline/thermoscale-etl/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Reader consumes messages from the source Kafka topic as part of a consumer
// group. It implements pipeline.BatchExtractor.
type Reader struct {
	reader        *kafkago.Reader
	logger        *slog.Logger
	flushInterval time.Duration
}

// NewReader creates a Kafka consumer for the configured source topic.
// Offsets are committed explicitly through each message's Commit callback,
// so a crash between read and commit replays the message instead of losing it.
func NewReader(cfg *config.Config, logger *slog.Logger) *Reader {
	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.KafkaBrokers,
		Topic:          cfg.KafkaSourceTopic,
		GroupID:        cfg.KafkaGroupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0, // synchronous commits
	})
	return &Reader{
		reader:        r,
		logger:        logger,
		flushInterval: cfg.BatchFlushInterval,
	}
}

// ExtractBatch reads up to batchSize messages. The first message blocks until
// one arrives or the context is cancelled; after that, the batch is cut when
// either batchSize is reached or the flush interval elapses, so a slow trickle
// of readings does not stall in a half-filled batch.
func (r *Reader) ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawReading, error) {
	first, err := r.reader.FetchMessage(ctx)
	if err != nil {
		return nil, err
	}

	batch := make([]domain.RawReading, 0, batchSize)
	batch = append(batch, r.mapMessage(first))

	deadline, cancel := context.WithTimeout(ctx, r.flushInterval)
	defer cancel()

	for len(batch) < batchSize {
		msg, err := r.reader.FetchMessage(deadline)
		if err != nil {
			if deadline.Err() != nil && ctx.Err() == nil {
				break // flush interval elapsed, ship what we have
			}
			return batch, nil
		}
		batch = append(batch, r.mapMessage(msg))
	}

	return batch, nil
}

func (r *Reader) Close() error {
	return r.reader.Close()
}

// mapMessage converts a Kafka message into a domain RawReading with a commit
// closure bound to this reader.
func (r *Reader) mapMessage(msg kafkago.Message) domain.RawReading {
	raw := mapMessageToRawReading(msg)
	raw.Commit = func(ctx context.Context) error {
		return r.reader.CommitMessages(ctx, msg)
	}
	return raw
}

func mapMessageToRawReading(msg kafkago.Message) domain.RawReading {
	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	return domain.RawReading{
		Key:       msg.Key,
		Value:     msg.Value,
		Headers:   headers,
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
		Timestamp: msg.Time,
	}
}
