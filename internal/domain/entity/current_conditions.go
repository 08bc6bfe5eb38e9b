package entity

import "time"

// CurrentConditions is an immutable snapshot of the weather at one place and
// instant. It is replaced wholesale on each successful fetch, never mutated.
type CurrentConditions struct {
	City        string     `json:"city"`
	Country     string     `json:"country"`
	Timestamp   time.Time  `json:"timestamp"`
	Temperature float64    `json:"temperature"`
	FeelsLike   float64    `json:"feelsLike"`
	Humidity    int        `json:"humidity"`
	Pressure    int        `json:"pressure"`
	WindSpeed   float64    `json:"windSpeed"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Sunrise     time.Time  `json:"sunrise"`
	Sunset      time.Time  `json:"sunset"`
	Lat         float64    `json:"lat"`
	Lon         float64    `json:"lon"`
	Units       UnitSystem `json:"units"`
}
