package model

import "skycast/internal/domain/entity"

// WeatherSnapshot bundles everything one fetch produced. It is built on a
// background goroutine and handed to the UI context as a single immutable
// value, so no locking is needed on either side.
type WeatherSnapshot struct {
	Current   entity.CurrentConditions
	Forecast  entity.Forecast
	NextPoint *entity.ForecastPoint
	Units     entity.UnitSystem
}
