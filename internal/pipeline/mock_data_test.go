package pipeline_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/frostline/thermoscale-etl/internal/domain"
	"github.com/frostline/thermoscale-etl/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtureBaseDate = time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC)

func TestReadingTransformer_WithMockJSONData(t *testing.T) {
	transformer := pipeline.NewTransformer(nil, slog.Default())
	records := readFixtureRecords(t)
	require.Len(t, records, 12)

	unitCounts := map[string]int{}
	conceptCounts := map[string]int{}
	waypointCounts := map[string]int{}

	for i, rec := range records {
		payload, err := json.Marshal(rec)
		require.NoError(t, err)

		raw := domain.RawReading{
			Key:       []byte(rec.SensorID),
			Value:     payload,
			Topic:     "raw-thermometer-readings",
			Timestamp: fixtureBaseDate,
		}

		out, err := transformer.Transform(context.Background(), raw)
		require.NoError(t, err, "record %d (%s)", i, rec.SensorID)

		assert.Equal(t, rec.SensorID, out.SensorID)
		assert.Equal(t, rec.Site, out.Site)
		assert.NotEmpty(t, out.Display)
		assert.NotEmpty(t, out.ID)

		unitCounts[out.Unit]++
		if out.Concept != "" {
			conceptCounts[out.Concept]++
		}
		if out.Waypoint != "" {
			waypointCounts[out.Waypoint]++
		}

		if out.Unit == "kelvin" {
			assert.Empty(t, out.Concept, "kelvin readings carry no concept")
			assert.Nil(t, out.GaugePosition)
		} else {
			require.NotNil(t, out.GaugePosition, "record %d (%s)", i, rec.SensorID)
		}
	}

	assert.Equal(t, map[string]int{"celsius": 5, "fahrenheit": 4, "kelvin": 3}, unitCounts)
	assert.Equal(t, map[string]int{
		"frigid":     1,
		"cold":       2,
		"chilly":     1,
		"warm":       2,
		"hot":        2,
		"sweltering": 1,
	}, conceptCounts)
	assert.Equal(t, map[string]int{"freezing": 1, "boiling": 1}, waypointCounts)
}

func readFixtureRecords(t *testing.T) []domain.RawSensorRecord {
	t.Helper()

	path := filepath.Join("..", "..", "data", "mock", "thermometer_readings_combined.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []domain.RawSensorRecord
	require.NoError(t, json.Unmarshal(data, &records))
	return records
}
