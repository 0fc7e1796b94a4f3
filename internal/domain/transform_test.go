package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMsgTime = time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC)

func TestParseRawReading(t *testing.T) {
	t.Run("celsius record", func(t *testing.T) {
		data := []byte(`{"sensor_id":"attic-01","value":"21.5","unit":"c","captured_at":"2026-08-25T14:05:00Z","site":"warehouse","channel":"ambient","comments":"calm"}`)
		raw := RawReading{Value: data, Timestamp: testMsgTime}

		result, err := ParseRawReading(raw)

		require.NoError(t, err)
		assert.Equal(t, "attic-01", result.SensorID)
		assert.Equal(t, 21.5, result.Amount)
		assert.Equal(t, "celsius", result.Unit)
		assert.Equal(t, "warehouse", result.Site)
		assert.Equal(t, "ambient", result.Channel)
		assert.Equal(t, "calm", result.Comments)
		assert.Equal(t, time.Date(2026, 8, 25, 14, 5, 0, 0, time.UTC), result.CapturedAt)
		assert.True(t, strings.HasPrefix(result.ID, "attic-01-"))
		assert.Equal(t, data, result.RawPayload)
	})

	t.Run("fahrenheit record", func(t *testing.T) {
		data := []byte(`{"sensor_id":"porch-02","value":"72","unit":"F"}`)
		raw := RawReading{Value: data, Timestamp: testMsgTime}

		result, err := ParseRawReading(raw)

		require.NoError(t, err)
		assert.Equal(t, 72.0, result.Amount)
		assert.Equal(t, "fahrenheit", result.Unit)
	})

	t.Run("missing captured_at falls back to message timestamp", func(t *testing.T) {
		data := []byte(`{"sensor_id":"porch-02","value":"10","unit":"c"}`)
		raw := RawReading{Value: data, Timestamp: testMsgTime}

		result, err := ParseRawReading(raw)

		require.NoError(t, err)
		assert.Equal(t, testMsgTime, result.CapturedAt)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := ParseRawReading(RawReading{Value: []byte("{invalid json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse raw reading")
	})

	t.Run("missing sensor id", func(t *testing.T) {
		_, err := ParseRawReading(RawReading{Value: []byte(`{"value":"10","unit":"c"}`)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sensor_id")
	})

	t.Run("unparsable magnitude", func(t *testing.T) {
		_, err := ParseRawReading(RawReading{Value: []byte(`{"sensor_id":"a","value":"warmish","unit":"c"}`)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "warmish")
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := ParseRawReading(RawReading{Value: []byte(`{"sensor_id":"a","value":"10","unit":"rankine"}`)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rankine")
	})

	t.Run("bad captured_at", func(t *testing.T) {
		_, err := ParseRawReading(RawReading{Value: []byte(`{"sensor_id":"a","value":"10","unit":"c","captured_at":"yesterday"}`)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "captured_at")
	})

	t.Run("deterministic ID", func(t *testing.T) {
		data := []byte(`{"sensor_id":"attic-01","value":"21.5","unit":"c","captured_at":"2026-08-25T14:05:00Z"}`)
		raw := RawReading{Value: data, Timestamp: testMsgTime}

		r1, err := ParseRawReading(raw)
		require.NoError(t, err)
		r2, err := ParseRawReading(raw)
		require.NoError(t, err)

		assert.Equal(t, r1.ID, r2.ID)
	})
}

func TestGenerateID(t *testing.T) {
	at := testMsgTime

	t.Run("includes sensor prefix", func(t *testing.T) {
		id := generateID("attic-01", 21.5, Celsius, at)
		assert.True(t, strings.HasPrefix(id, "attic-01-"))
	})

	t.Run("different inputs produce different IDs", func(t *testing.T) {
		id1 := generateID("attic-01", 21.5, Celsius, at)
		id2 := generateID("attic-01", 21.5, Fahrenheit, at)
		id3 := generateID("attic-01", 21.5, Celsius, at.Add(time.Second))
		assert.NotEqual(t, id1, id2)
		assert.NotEqual(t, id1, id3)
	})

	t.Run("empty sensor id yields bare hash", func(t *testing.T) {
		id := generateID("", 21.5, Celsius, at)
		assert.NotEmpty(t, id)
		assert.NotContains(t, id, "-")
	})
}

func TestEnrichReading(t *testing.T) {
	fixedTime := time.Date(2026, 8, 25, 15, 30, 45, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixedTime))
	defer SetClock(nil)

	t.Run("celsius reading", func(t *testing.T) {
		r := Reading{
			ID:         "attic-01-abc",
			SensorID:   "attic-01",
			Amount:     5,
			Unit:       "celsius",
			CapturedAt: time.Date(2026, 8, 25, 14, 5, 0, 0, time.UTC),
		}

		result := EnrichReading(r)

		assert.Equal(t, "5.0°C", result.Display)
		assert.Equal(t, 5.0, result.Celsius)
		assert.Equal(t, 41.0, result.Fahrenheit)
		assert.Equal(t, 278.15, result.Kelvin)
		assert.Equal(t, "cold", result.Concept)
		assert.Equal(t, "cold", result.ConceptLabel)
		require.NotNil(t, result.ConceptRange)
		assert.Equal(t, ConceptRange{0, 10}, *result.ConceptRange)
		assert.Empty(t, result.Waypoint)
		require.NotNil(t, result.GaugePosition)
		assert.InDelta(t, 20.0/60.0, *result.GaugePosition, 1e-9)
		assert.Equal(t, time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC), result.TimeBucket)
		assert.Equal(t, fixedTime, result.ProcessedAt)
	})

	t.Run("boundary value classifies to lower bucket", func(t *testing.T) {
		r := Reading{Amount: 0, Unit: "celsius", CapturedAt: testMsgTime}

		result := EnrichReading(r)

		assert.Equal(t, "frigid", result.Concept)
		assert.Equal(t, "freezing", result.Waypoint)
		assert.Equal(t, "Freezing", result.WaypointLabel)
	})

	t.Run("fahrenheit reading uses imperial table", func(t *testing.T) {
		r := Reading{Amount: 85, Unit: "fahrenheit", CapturedAt: testMsgTime}

		result := EnrichReading(r)

		assert.Equal(t, "hot", result.Concept)
		assert.Equal(t, "hot", result.ConceptLabel)
		require.NotNil(t, result.ConceptRange)
		assert.Equal(t, ConceptRange{78, 92}, *result.ConceptRange)
		require.NotNil(t, result.GaugePosition)
		assert.InDelta(t, 0.75, *result.GaugePosition, 1e-9)
	})

	t.Run("kelvin reading gets conversions only", func(t *testing.T) {
		r := Reading{Amount: 280, Unit: "kelvin", CapturedAt: testMsgTime}

		result := EnrichReading(r)

		assert.InDelta(t, 6.85, result.Celsius, 1e-9)
		assert.Empty(t, result.Concept)
		assert.Nil(t, result.ConceptRange)
		assert.Nil(t, result.GaugePosition)
	})

	t.Run("out of table reading has no concept", func(t *testing.T) {
		r := Reading{Amount: -30, Unit: "celsius", CapturedAt: testMsgTime}

		result := EnrichReading(r)

		assert.Empty(t, result.Concept)
		assert.Nil(t, result.ConceptRange)
		require.NotNil(t, result.GaugePosition)
		assert.Equal(t, 0.0, *result.GaugePosition, "below-scale values clamp to the gauge bottom")
	})

	t.Run("zero capture time has no bucket", func(t *testing.T) {
		r := Reading{Amount: 21, Unit: "celsius"}

		result := EnrichReading(r)

		assert.True(t, result.TimeBucket.IsZero())
	})
}
