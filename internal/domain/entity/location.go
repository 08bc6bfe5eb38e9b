package entity

import "strings"

// LocationQuery identifies the place a fetch is about: a free-text city name,
// or resolved coordinates when the name is unknown.
type LocationQuery struct {
	City      string  `json:"city"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	HasCoords bool    `json:"hasCoords"`
}

// CityQuery builds a LocationQuery from a free-text city name.
func CityQuery(city string) LocationQuery {
	return LocationQuery{City: strings.TrimSpace(city)}
}

// CoordsQuery builds a LocationQuery from resolved coordinates.
func CoordsQuery(lat, lon float64) LocationQuery {
	return LocationQuery{Lat: lat, Lon: lon, HasCoords: true}
}

// IsZero reports whether the query names no place at all.
func (q LocationQuery) IsZero() bool {
	return q.City == "" && !q.HasCoords
}
