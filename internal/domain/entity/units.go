package entity

// UnitSystem selects the measurement system sent to the provider and used for
// display formatting.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
	Standard UnitSystem = "standard"
)

// QueryValue returns the value of the provider's "units" request parameter.
func (u UnitSystem) QueryValue() string {
	return string(u)
}

// TemperatureLabel returns the display suffix for temperatures in this system.
func (u UnitSystem) TemperatureLabel() string {
	switch u {
	case Imperial:
		return "°F"
	case Standard:
		return "K"
	default:
		return "°C"
	}
}

// WindLabel returns the display suffix for wind speeds in this system.
func (u UnitSystem) WindLabel() string {
	if u == Imperial {
		return "mph"
	}
	return "m/s"
}

// ConvertTemperature converts a temperature value between unit systems.
func ConvertTemperature(value float64, from, to UnitSystem) float64 {
	if from == to {
		return value
	}

	// Normalize through Celsius.
	var celsius float64
	switch from {
	case Imperial:
		celsius = (value - 32) * 5 / 9
	case Standard:
		celsius = value - 273.15
	default:
		celsius = value
	}

	switch to {
	case Imperial:
		return celsius*9/5 + 32
	case Standard:
		return celsius + 273.15
	default:
		return celsius
	}
}

// ParseUnitSystem maps a stored or displayed value back to a UnitSystem,
// defaulting to Metric for anything unrecognized.
func ParseUnitSystem(value string) UnitSystem {
	switch UnitSystem(value) {
	case Imperial:
		return Imperial
	case Standard:
		return Standard
	default:
		return Metric
	}
}
