package entity

import "time"

// ForecastPoint is one native provider data point, typically on a 3-hour grid.
type ForecastPoint struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temperature"`
	Humidity    int       `json:"humidity"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// ForecastEntry is one day of forecast, aggregated from that day's points.
type ForecastEntry struct {
	Date        time.Time `json:"date"`
	MinTemp     float64   `json:"minTemp"`
	MaxTemp     float64   `json:"maxTemp"`
	AvgTemp     float64   `json:"avgTemp"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}

// Forecast is a chronological sequence of daily entries with unique dates.
type Forecast []ForecastEntry
