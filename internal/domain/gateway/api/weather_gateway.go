package api

import (
	"skycast/internal/domain/entity"
)

// WeatherGateway defines the interface for calls against the weather provider.
// Every method is a plain request/response call: no retry loop beyond the
// client's backoff, no caching, idempotent for identical arguments. Failures
// carry a model.FetchError so callers can distinguish not-found, auth,
// network and parse problems.
type WeatherGateway interface {
	// FetchCurrent gets current conditions for a location
	FetchCurrent(query entity.LocationQuery, units entity.UnitSystem) (*entity.CurrentConditions, error)

	// FetchForecast gets the provider's native forecast points for a location,
	// typically 5 days on a 3-hour grid
	FetchForecast(query entity.LocationQuery, units entity.UnitSystem) ([]entity.ForecastPoint, error)
}
