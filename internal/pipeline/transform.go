package pipeline

import (
	"context"
	"log/slog"

	"github.com/frostline/thermoscale-etl/internal/domain"
)

// ReadingTransformer implements Transformer using domain transform functions
// with optional station registry enrichment.
type ReadingTransformer struct {
	resolver domain.StationResolver
	logger   *slog.Logger
}

// NewTransformer creates a ReadingTransformer. Pass a nil resolver to disable
// station enrichment.
func NewTransformer(resolver domain.StationResolver, logger *slog.Logger) *ReadingTransformer {
	return &ReadingTransformer{
		resolver: resolver,
		logger:   logger,
	}
}

func (t *ReadingTransformer) Transform(ctx context.Context, raw domain.RawReading) (domain.Reading, error) {
	reading, err := domain.ParseRawReading(raw)
	if err != nil {
		return domain.Reading{}, err
	}

	// Calibration must land before scale enrichment so the derived concept
	// reflects the corrected magnitude.
	reading = domain.EnrichWithStation(ctx, reading, t.resolver, t.logger)
	reading = domain.EnrichReading(reading)

	return reading, nil
}
