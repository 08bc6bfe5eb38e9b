package ui

import (
	"fmt"
	"strings"

	"skycast/internal/domain/entity"
	"skycast/pkg/msg"
)

// Alert thresholds by unit system.
const (
	heatThresholdC = 35.0
	coldThresholdC = 0.0
	heatThresholdF = 95.0
)

// CheckAlerts evaluates condition alerts for freshly fetched current
// conditions: rain in the description, or extreme temperatures. Returns the
// user-visible alert messages, possibly none.
func CheckAlerts(current entity.CurrentConditions) []string {
	var alerts []string

	description := strings.ToLower(current.Description)
	if strings.Contains(description, "rain") ||
		strings.Contains(description, "drizzle") ||
		strings.Contains(description, "shower") {
		alerts = append(alerts, msg.GetMessage("alert.rain", current.City))
	}

	label := current.Units.TemperatureLabel()
	temperature := fmt.Sprintf("%.1f", current.Temperature)

	switch current.Units {
	case entity.Metric:
		if current.Temperature >= heatThresholdC {
			alerts = append(alerts, msg.GetMessage("alert.heat", current.City, temperature, label))
		} else if current.Temperature <= coldThresholdC {
			alerts = append(alerts, msg.GetMessage("alert.cold", current.City, temperature, label))
		}
	case entity.Imperial:
		if current.Temperature >= heatThresholdF {
			alerts = append(alerts, msg.GetMessage("alert.heat", current.City, temperature, label))
		}
	}

	return alerts
}
