package domain

import (
	"context"
	"time"
)

// RawSensorRecord is the flat JSON structure the collector publishes for
// each thermometer sample. Value and unit arrive as strings because the
// collector forwards device payloads verbatim.
type RawSensorRecord struct {
	SensorID   string `json:"sensor_id"`
	Value      string `json:"value"`
	Unit       string `json:"unit"`
	CapturedAt string `json:"captured_at"` // RFC 3339; empty means use the message timestamp
	Site       string `json:"site"`
	Channel    string `json:"channel"`
	Comments   string `json:"comments"`
}

// RawReading is an unprocessed message from the source topic.
type RawReading struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Reading is the enriched representation written to the sink topic.
type Reading struct {
	ID       string `json:"id"`
	SensorID string `json:"sensor_id"`
	Site     string `json:"site,omitempty"`
	Channel  string `json:"channel,omitempty"`
	Comments string `json:"comments,omitempty"`

	// The reading as reported, plus the magnitude in every scale.
	Amount     float64 `json:"amount"`
	Unit       string  `json:"unit"`
	Display    string  `json:"display,omitempty"`
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"fahrenheit"`
	Kelvin     float64 `json:"kelvin"`

	// Scale enrichment.
	Concept       string        `json:"concept,omitempty"`
	ConceptLabel  string        `json:"concept_label,omitempty"`
	ConceptRange  *ConceptRange `json:"concept_range,omitempty"`
	Waypoint      string        `json:"waypoint,omitempty"`
	WaypointLabel string        `json:"waypoint_label,omitempty"`
	GaugePosition *float64      `json:"gauge_position,omitempty"`

	// Station enrichment fields.
	StationName        string  `json:"station_name,omitempty"`
	Placement          string  `json:"placement,omitempty"`
	CalibrationOffsetC float64 `json:"calibration_offset_c,omitempty"`
	StationSource      string  `json:"station_source,omitempty"` // "registry", "original", "failed"

	CapturedAt  time.Time `json:"captured_at"`
	TimeBucket  time.Time `json:"time_bucket,omitempty"`
	ProcessedAt time.Time `json:"processed_at"`

	RawPayload []byte `json:"-"`
}

// Temperature rebuilds the reading's value object from its amount and unit.
// Unknown unit strings were rejected at parse time, so the fallback never
// fires for pipeline-produced readings.
func (r Reading) Temperature() Temperature {
	unit, err := ParseUnit(r.Unit)
	if err != nil {
		unit = Celsius
	}
	return NewTemperature(r.Amount, unit)
}
