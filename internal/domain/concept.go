package domain

import (
	"errors"
	"fmt"
)

// Concept is a named comfort bucket on the temperature scale. The enumeration
// order matters: shared boundaries between adjacent buckets are resolved in
// favor of the lower bucket by classifying in this order.
type Concept int

const (
	ConceptNone Concept = iota
	Frigid
	Cold
	Chilly
	Warm
	Hot
	Sweltering
)

// ErrKelvinRange is returned for any bucket query in Kelvin. Bound tables are
// authored for the metric and imperial systems only.
var ErrKelvinRange = errors.New("concept ranges are not defined for kelvin")

// conceptOrder is the classification order, lowest bucket first.
var conceptOrder = [...]Concept{Frigid, Cold, Chilly, Warm, Hot, Sweltering}

// ConceptRange is a closed [Min, Max] interval of magnitudes in a single unit.
type ConceptRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// The two bound tables are authored independently per system, not derived
// from each other by conversion. They disagree where they overlap: metric
// frigid is [-15,0] °C which is [5,32] °F, but imperial frigid is [10,30] °F.
// That mismatch is inherited from the product's original scale definitions
// and is kept as-is; see the package doc.
var (
	metricBounds = map[Concept]ConceptRange{
		Frigid:     {-15, 0},
		Cold:       {0, 10},
		Chilly:     {10, 18},
		Warm:       {18, 26},
		Hot:        {26, 33},
		Sweltering: {33, 45},
	}

	imperialBounds = map[Concept]ConceptRange{
		Frigid:     {10, 30},
		Cold:       {30, 50},
		Chilly:     {50, 65},
		Warm:       {65, 78},
		Hot:        {78, 92},
		Sweltering: {92, 110},
	}
)

func (c Concept) String() string {
	switch c {
	case Frigid:
		return "frigid"
	case Cold:
		return "cold"
	case Chilly:
		return "chilly"
	case Warm:
		return "warm"
	case Hot:
		return "hot"
	case Sweltering:
		return "sweltering"
	default:
		return "none"
	}
}

// Describe returns the human-readable scale label for the bucket.
func (c Concept) Describe() string {
	switch c {
	case Frigid:
		return "frigid"
	case Cold:
		return "cold"
	case Chilly:
		return "chilly to mild"
	case Warm:
		return "mild to warm"
	case Hot:
		return "hot"
	case Sweltering:
		return "sweltering"
	default:
		return ""
	}
}

// Bounds returns the bucket's [min, max] interval in the requested unit.
// Kelvin returns ErrKelvinRange; ConceptNone has no interval in any unit.
func (c Concept) Bounds(unit Unit) (ConceptRange, error) {
	sys, ok := unit.System()
	if !ok {
		return ConceptRange{}, ErrKelvinRange
	}

	table := metricBounds
	if sys == Imperial {
		table = imperialBounds
	}

	r, ok := table[c]
	if !ok {
		return ConceptRange{}, fmt.Errorf("no range table entry for concept %q", c)
	}
	return r, nil
}

// Average returns the midpoint of the bucket's interval as a temperature
// carrying the requested unit.
func (c Concept) Average(unit Unit) (Temperature, error) {
	r, err := c.Bounds(unit)
	if err != nil {
		return Temperature{}, err
	}
	return NewTemperature((r.Min+r.Max)/2, unit), nil
}

// Contains reports whether the value falls inside the bucket's interval for
// the value's own unit. Both ends are inclusive, so a value sitting exactly
// on a shared boundary is contained by both adjacent buckets.
func (c Concept) Contains(t Temperature) (bool, error) {
	r, err := c.Bounds(t.Unit())
	if err != nil {
		return false, err
	}
	amount := t.Amount()
	return r.Min <= amount && amount <= r.Max, nil
}

// Classify returns the first bucket, in enumeration order, that contains the
// value. Values outside all buckets classify as ConceptNone, as do Kelvin
// values, which have no bound table.
func Classify(t Temperature) Concept {
	if _, ok := t.Unit().System(); !ok {
		return ConceptNone
	}
	for _, c := range conceptOrder {
		if in, err := c.Contains(t); err == nil && in {
			return c
		}
	}
	return ConceptNone
}

// ScaleSpan returns the full extent of the system's bound table, from the
// bottom of frigid to the top of sweltering, in the system's display unit.
func ScaleSpan(sys System) (min, max Temperature) {
	unit := sys.Unit()
	lo, _ := Frigid.Bounds(unit)
	hi, _ := Sweltering.Bounds(unit)
	return NewTemperature(lo.Min, unit), NewTemperature(hi.Max, unit)
}
