package domain

import (
	"fmt"
	"strings"
)

// Unit is a temperature scale. The three scales are a closed set so callers
// can switch over them exhaustively instead of type-asserting.
type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
	Kelvin
)

// System is a measurement system, which selects the concept bound table.
type System int

const (
	Metric System = iota
	Imperial
)

// Symbol returns the display abbreviation for the unit.
func (u Unit) Symbol() string {
	switch u {
	case Fahrenheit:
		return "°F"
	case Kelvin:
		return "°K"
	default:
		return "°C"
	}
}

func (u Unit) String() string {
	switch u {
	case Fahrenheit:
		return "fahrenheit"
	case Kelvin:
		return "kelvin"
	default:
		return "celsius"
	}
}

// System returns the measurement system the unit belongs to. Kelvin belongs
// to neither: concept bound tables are only authored for Celsius and
// Fahrenheit, so ok is false for Kelvin.
func (u Unit) System() (System, bool) {
	switch u {
	case Celsius:
		return Metric, true
	case Fahrenheit:
		return Imperial, true
	default:
		return Metric, false
	}
}

func (s System) String() string {
	if s == Imperial {
		return "imperial"
	}
	return "metric"
}

// Unit returns the display unit for the system's bound table.
func (s System) Unit() Unit {
	if s == Imperial {
		return Fahrenheit
	}
	return Celsius
}

// ParseUnit resolves a wire-format unit string. Collectors report units in a
// handful of spellings ("c", "celsius", "°C", ...); anything else is an error.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius", "°c", "degc":
		return Celsius, nil
	case "f", "fahrenheit", "°f", "degf":
		return Fahrenheit, nil
	case "k", "kelvin", "°k", "degk":
		return Kelvin, nil
	default:
		return Celsius, fmt.Errorf("unknown temperature unit %q", s)
	}
}
