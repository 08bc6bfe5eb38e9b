package weather

import (
	"skycast/internal/domain/entity"
	"skycast/internal/domain/model"
)

type UseCase interface {
	// FetchCurrent returns current conditions for a location
	FetchCurrent(query entity.LocationQuery, units entity.UnitSystem) (*entity.CurrentConditions, error)

	// FetchForecast returns one aggregated entry per day, chronological,
	// at most five days
	FetchForecast(query entity.LocationQuery, units entity.UnitSystem) (entity.Forecast, error)

	// FetchSnapshot fetches current conditions and forecast together. A
	// forecast failure is tolerated: the snapshot then carries current
	// conditions with an empty forecast.
	FetchSnapshot(query entity.LocationQuery, units entity.UnitSystem) (*model.WeatherSnapshot, error)

	// DetectLocation resolves the user's approximate location from network
	// origin. Failure means "no auto-detected location", not a fatal error.
	DetectLocation() (*entity.LocationQuery, error)
}
