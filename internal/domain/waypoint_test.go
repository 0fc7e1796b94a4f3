package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaypoint_Resolve(t *testing.T) {
	tests := []struct {
		waypoint Waypoint
		celsius  float64
		label    string
	}{
		{Freezing, 0, "Freezing"},
		{Boiling, 100, "Boiling"},
		{BodyTemperature, 37, "Body Temperature"},
	}

	for _, tt := range tests {
		t.Run(tt.waypoint.String(), func(t *testing.T) {
			v := tt.waypoint.Resolve()
			assert.Equal(t, tt.celsius, v.Celsius())
			assert.Equal(t, Celsius, v.Unit())
			assert.Equal(t, tt.label, tt.waypoint.Label())
		})
	}
}

func TestIdentifyWaypoint(t *testing.T) {
	tests := []struct {
		name     string
		value    Temperature
		expected Waypoint
	}{
		{"boiling", NewTemperature(100, Celsius), Boiling},
		{"freezing", NewTemperature(0, Celsius), Freezing},
		{"body", NewTemperature(37, Celsius), BodyTemperature},
		{"freezing from fahrenheit", NewTemperature(32, Fahrenheit), Freezing},
		{"boiling from kelvin", NewTemperature(373.15, Kelvin), Boiling},
		{"near miss is not a waypoint", NewTemperature(99.9, Celsius), WaypointNone},
		{"room temperature", NewTemperature(21, Celsius), WaypointNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IdentifyWaypoint(tt.value))
		})
	}
}
