package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseRawReading deserializes a RawReading's value into a Reading. The
// magnitude and unit are validated here so the enrichment stage is total:
// bad JSON, an unparsable magnitude, or an unknown unit all fail the message.
func ParseRawReading(raw RawReading) (Reading, error) {
	var rec RawSensorRecord
	if err := json.Unmarshal(raw.Value, &rec); err != nil {
		return Reading{}, fmt.Errorf("parse raw reading: %w", err)
	}

	if strings.TrimSpace(rec.SensorID) == "" {
		return Reading{}, fmt.Errorf("parse raw reading: missing sensor_id")
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(rec.Value), 64)
	if err != nil {
		return Reading{}, fmt.Errorf("parse raw reading: magnitude %q: %w", rec.Value, err)
	}

	unit, err := ParseUnit(rec.Unit)
	if err != nil {
		return Reading{}, fmt.Errorf("parse raw reading: %w", err)
	}

	capturedAt, err := parseCapturedAt(rec.CapturedAt, raw.Timestamp)
	if err != nil {
		return Reading{}, fmt.Errorf("parse raw reading: %w", err)
	}

	return Reading{
		ID:       generateID(rec.SensorID, amount, unit, capturedAt),
		SensorID: strings.TrimSpace(rec.SensorID),
		Site:     strings.TrimSpace(rec.Site),
		Channel:  strings.TrimSpace(rec.Channel),
		Comments: rec.Comments,

		Amount:     amount,
		Unit:       unit.String(),
		CapturedAt: capturedAt,

		RawPayload: raw.Value,
	}, nil
}

// parseCapturedAt parses the collector's RFC 3339 capture time, falling back
// to the message timestamp when the field is empty.
func parseCapturedAt(s string, fallback time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("captured_at %q: %w", s, err)
	}
	return t.UTC(), nil
}

// generateID produces a deterministic ID from the reading's key fields.
// Deterministic IDs enable idempotent upserts downstream and replay safety:
// reprocessing the same raw message produces the same ID.
func generateID(sensorID string, amount float64, unit Unit, capturedAt time.Time) string {
	input := fmt.Sprintf("%s|%g|%s|%d", sensorID, amount, unit, capturedAt.UnixNano())
	hash := sha256.Sum256([]byte(input))
	short := hex.EncodeToString(hash[:8])
	sensorID = strings.TrimSpace(sensorID)
	if sensorID == "" {
		return short
	}
	return sensorID + "-" + short
}

// EnrichReading derives the scale view of a parsed reading: the magnitude in
// all three units, the comfort concept and its bounds, a waypoint tag when
// the value sits exactly on a reference point, the normalized gauge position
// on the unit system's display scale, and an hourly time bucket. Kelvin
// readings get conversions only; they have no concept table or gauge.
func EnrichReading(r Reading) Reading {
	t := r.Temperature()

	r.Display = t.String()
	r.Celsius = t.In(Celsius)
	r.Fahrenheit = t.In(Fahrenheit)
	r.Kelvin = t.In(Kelvin)

	if concept := Classify(t); concept != ConceptNone {
		r.Concept = concept.String()
		r.ConceptLabel = concept.Describe()
		if bounds, err := concept.Bounds(t.Unit()); err == nil {
			r.ConceptRange = &bounds
		}
	}

	if w := IdentifyWaypoint(t); w != WaypointNone {
		r.Waypoint = w.String()
		r.WaypointLabel = w.Label()
	}

	if sys, ok := t.Unit().System(); ok {
		pos := DisplayGauge(sys).Position(t)
		r.GaugePosition = &pos
	}

	r.TimeBucket = deriveTimeBucket(r.CapturedAt)
	r.ProcessedAt = clock.Now()
	return r
}

// deriveTimeBucket truncates the capture time to the hour in UTC.
// Returns zero time if the input is zero.
func deriveTimeBucket(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return t.UTC().Truncate(time.Hour)
}
