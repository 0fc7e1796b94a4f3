package domain

import "fmt"

// Temperature is an immutable magnitude-plus-unit value. The constructed
// magnitude is kept exactly as given; comparisons and arithmetic go through
// the canonical Celsius-equivalent so values built from different units are
// directly comparable.
type Temperature struct {
	amount float64
	unit   Unit
}

// NewTemperature builds a value from a magnitude expressed in the given unit.
func NewTemperature(amount float64, unit Unit) Temperature {
	return Temperature{amount: amount, unit: unit}
}

// Unit returns the unit the value was constructed with.
func (t Temperature) Unit() Unit { return t.unit }

// Amount returns the magnitude in the value's own unit, exactly as
// constructed.
func (t Temperature) Amount() float64 { return t.amount }

// Celsius returns the canonical magnitude, the pivot for every cross-unit
// operation.
func (t Temperature) Celsius() float64 {
	switch t.unit {
	case Fahrenheit:
		return (t.amount - 32) / 1.8
	case Kelvin:
		return t.amount - 273.15
	default:
		return t.amount
	}
}

// In returns the magnitude converted to the target unit. Total for all three
// units.
func (t Temperature) In(unit Unit) float64 {
	if unit == t.unit {
		return t.amount
	}
	c := t.Celsius()
	switch unit {
	case Fahrenheit:
		return c*1.8 + 32
	case Kelvin:
		return c + 273.15
	default:
		return c
	}
}

// ConvertTo re-expresses the value in the target unit. The result is a
// derived value: for magnitudes that don't convert exactly in floating
// point, its canonical form may differ from the receiver's in the last bit,
// and Equal is strict. Callers that need identity keep the original value.
func (t Temperature) ConvertTo(unit Unit) Temperature {
	return Temperature{amount: t.In(unit), unit: unit}
}

// Sub returns t minus o, expressed in t's unit regardless of o's unit.
func (t Temperature) Sub(o Temperature) Temperature {
	diff := Temperature{amount: t.Celsius() - o.Celsius(), unit: Celsius}
	return Temperature{amount: diff.In(t.unit), unit: t.unit}
}

// Equal reports whether the canonical magnitudes are exactly equal. There is
// deliberately no epsilon: two values constructed from the same magnitude
// and unit always compare equal, while values derived through chained
// arithmetic may not. Waypoint identification depends on this exactness.
func (t Temperature) Equal(o Temperature) bool {
	return t.Celsius() == o.Celsius()
}

// Compare orders by canonical magnitude, returning -1, 0, or +1. The unit a
// value was constructed with plays no part in ordering.
func (t Temperature) Compare(o Temperature) int {
	a, b := t.Celsius(), o.Celsius()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether t is strictly below o on the canonical scale.
func (t Temperature) Less(o Temperature) bool { return t.Celsius() < o.Celsius() }

// String formats the magnitude to one decimal place with the unit symbol,
// e.g. "21.5°C".
func (t Temperature) String() string {
	return fmt.Sprintf("%.1f%s", t.amount, t.unit.Symbol())
}
