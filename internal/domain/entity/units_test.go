package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertTemperature(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from     UnitSystem
		to       UnitSystem
		expected float64
	}{
		{name: "celsius to fahrenheit freezing", value: 0, from: Metric, to: Imperial, expected: 32},
		{name: "celsius to fahrenheit boiling", value: 100, from: Metric, to: Imperial, expected: 212},
		{name: "fahrenheit to celsius body temp", value: 98.6, from: Imperial, to: Metric, expected: 37},
		{name: "celsius to kelvin", value: 20, from: Metric, to: Standard, expected: 293.15},
		{name: "kelvin to celsius", value: 273.15, from: Standard, to: Metric, expected: 0},
		{name: "same system is identity", value: 18.3, from: Metric, to: Metric, expected: 18.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertTemperature(tt.value, tt.from, tt.to)
			assert.InDelta(t, tt.expected, got, 0.01)
		})
	}
}

func TestConvertTemperatureRoundTrip(t *testing.T) {
	// Converting there and back must reproduce the original within rounding tolerance.
	for _, value := range []float64{-40, -17.8, 0, 0.1, 21.5, 35, 99.9} {
		viaImperial := ConvertTemperature(ConvertTemperature(value, Metric, Imperial), Imperial, Metric)
		assert.LessOrEqual(t, math.Abs(viaImperial-value), 0.1, "C->F->C for %v", value)

		viaStandard := ConvertTemperature(ConvertTemperature(value, Metric, Standard), Standard, Metric)
		assert.LessOrEqual(t, math.Abs(viaStandard-value), 0.1, "C->K->C for %v", value)
	}
}

func TestTemperatureLabel(t *testing.T) {
	assert.Equal(t, "°C", Metric.TemperatureLabel())
	assert.Equal(t, "°F", Imperial.TemperatureLabel())
	assert.Equal(t, "K", Standard.TemperatureLabel())
}

func TestParseUnitSystem(t *testing.T) {
	assert.Equal(t, Imperial, ParseUnitSystem("imperial"))
	assert.Equal(t, Standard, ParseUnitSystem("standard"))
	assert.Equal(t, Metric, ParseUnitSystem("metric"))
	assert.Equal(t, Metric, ParseUnitSystem(""))
	assert.Equal(t, Metric, ParseUnitSystem("bogus"))
}

func TestLocationQuery(t *testing.T) {
	assert.True(t, CityQuery("  ").IsZero())
	assert.False(t, CityQuery("Paris").IsZero())
	assert.False(t, CoordsQuery(48.85, 2.35).IsZero())
	assert.Equal(t, "Paris", CityQuery(" Paris ").City)
}
