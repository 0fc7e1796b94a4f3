package domain

import "fmt"

// Gauge maps temperatures onto a normalized [0,1] axis and back. It is the
// geometry behind any thermometer-style display: a host UI multiplies the
// position by its track height and is done, with no knowledge of units.
type Gauge struct {
	min Temperature
	max Temperature
}

// Mark is a waypoint's normalized position on a gauge.
type Mark struct {
	Waypoint Waypoint
	Position float64
}

// NewGauge builds a gauge over [min, max]. The bounds may be constructed in
// different units; only their canonical ordering matters.
func NewGauge(min, max Temperature) (Gauge, error) {
	if !min.Less(max) {
		return Gauge{}, fmt.Errorf("gauge min %s must be below max %s", min, max)
	}
	return Gauge{min: min, max: max}, nil
}

// DisplayGauge returns the gauge spanning the system's full concept table.
func DisplayGauge(sys System) Gauge {
	min, max := ScaleSpan(sys)
	return Gauge{min: min, max: max}
}

// Min returns the gauge's lower bound.
func (g Gauge) Min() Temperature { return g.min }

// Max returns the gauge's upper bound.
func (g Gauge) Max() Temperature { return g.max }

// Position returns the value's normalized position, clamped to [0,1].
// Interpolation happens on the canonical scale, so a Fahrenheit value lands
// at the same position as its Celsius equivalent.
func (g Gauge) Position(t Temperature) float64 {
	span := g.max.Celsius() - g.min.Celsius()
	p := (t.Celsius() - g.min.Celsius()) / span
	return clamp01(p)
}

// ValueAt inverts Position: it returns the temperature at a normalized
// position, expressed in the requested unit. The fraction is clamped.
func (g Gauge) ValueAt(fraction float64, unit Unit) Temperature {
	fraction = clamp01(fraction)
	c := g.min.Celsius() + fraction*(g.max.Celsius()-g.min.Celsius())
	return Temperature{amount: c, unit: Celsius}.ConvertTo(unit)
}

// WaypointMarks returns the waypoints that fall inside the gauge range with
// their normalized positions, in waypoint enumeration order.
func (g Gauge) WaypointMarks() []Mark {
	var marks []Mark
	for _, w := range waypointOrder {
		t := w.Resolve()
		if t.Less(g.min) || g.max.Less(t) {
			continue
		}
		marks = append(marks, Mark{Waypoint: w, Position: g.Position(t)})
	}
	return marks
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
