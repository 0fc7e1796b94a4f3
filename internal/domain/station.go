package domain

import (
	"context"
	"log/slog"
)

// StationInfo is registry metadata for a thermometer sensor.
type StationInfo struct {
	Name               string
	Site               string
	Placement          string  // "indoor" or "outdoor"
	CalibrationOffsetC float64 // additive correction on the Celsius scale
}

// StationResolver looks up station metadata for a sensor ID.
type StationResolver interface {
	Resolve(ctx context.Context, sensorID string) (StationInfo, error)
}

// EnrichWithStation attaches station metadata to a reading and applies the
// station's calibration offset to the reported magnitude. If resolver is nil
// or the lookup fails, the reading is returned with StationSource set
// accordingly (graceful degradation). Call before EnrichReading so the
// conversions and classification see the calibrated magnitude.
func EnrichWithStation(ctx context.Context, r Reading, resolver StationResolver, logger *slog.Logger) Reading {
	if resolver == nil {
		return r
	}

	info, err := resolver.Resolve(ctx, r.SensorID)
	if err != nil {
		logger.Warn("station lookup failed",
			"reading_id", r.ID,
			"sensor_id", r.SensorID,
			"error", err,
		)
		r.StationSource = "failed"
		return r
	}

	if info.Name == "" {
		r.StationSource = "original"
		return r
	}

	r.StationName = info.Name
	if info.Site != "" {
		r.Site = info.Site
	}
	r.Placement = info.Placement
	r.StationSource = "registry"

	if info.CalibrationOffsetC != 0 {
		r.CalibrationOffsetC = info.CalibrationOffsetC
		r.Amount = applyCalibration(r, info.CalibrationOffsetC)
	}
	return r
}

// applyCalibration shifts the reported magnitude by an offset expressed in
// Celsius, re-expressed in the reading's own unit. A 0.5 °C offset moves a
// Fahrenheit reading by 0.9 °F.
func applyCalibration(r Reading, offsetC float64) float64 {
	t := r.Temperature()
	return NewTemperature(t.Celsius()+offsetC, Celsius).In(t.Unit())
}
