package weather

import (
	"sort"
	"time"

	"skycast/internal/domain/entity"
	"skycast/internal/domain/gateway/api"
	"skycast/internal/domain/model"
	"skycast/pkg/log"
)

// maxForecastDays bounds the aggregated forecast, matching the provider's
// 5-day window.
const maxForecastDays = 5

// middaySlot is the hour whose description and icon represent a day.
const middaySlot = 12

type weatherUseCase struct {
	apiGateway api.WeatherGateway
	geoGateway api.GeoGateway
}

func NewWeatherUseCase(apiGateway api.WeatherGateway, geoGateway api.GeoGateway) UseCase {
	return &weatherUseCase{
		apiGateway: apiGateway,
		geoGateway: geoGateway,
	}
}

// FetchCurrent returns current conditions for a location
func (uc *weatherUseCase) FetchCurrent(query entity.LocationQuery, units entity.UnitSystem) (*entity.CurrentConditions, error) {
	if query.IsZero() {
		return nil, model.NewFetchError(model.KindNotFound, "no location given", nil)
	}
	return uc.apiGateway.FetchCurrent(query, units)
}

// FetchForecast returns one aggregated entry per day, chronological, at most five days
func (uc *weatherUseCase) FetchForecast(query entity.LocationQuery, units entity.UnitSystem) (entity.Forecast, error) {
	if query.IsZero() {
		return nil, model.NewFetchError(model.KindNotFound, "no location given", nil)
	}

	points, err := uc.apiGateway.FetchForecast(query, units)
	if err != nil {
		return nil, err
	}

	return AggregateDaily(points), nil
}

// FetchSnapshot fetches current conditions and forecast together
func (uc *weatherUseCase) FetchSnapshot(query entity.LocationQuery, units entity.UnitSystem) (*model.WeatherSnapshot, error) {
	current, err := uc.FetchCurrent(query, units)
	if err != nil {
		return nil, err
	}

	snapshot := &model.WeatherSnapshot{
		Current: *current,
		Units:   units,
	}

	points, err := uc.apiGateway.FetchForecast(query, units)
	if err != nil {
		// Current conditions alone are still worth rendering.
		log.Warnf("forecast fetch for %q failed, rendering current conditions only: %v", current.City, err)
		return snapshot, nil
	}

	snapshot.Forecast = AggregateDaily(points)
	if len(points) > 0 {
		next := points[0]
		snapshot.NextPoint = &next
	}

	return snapshot, nil
}

// DetectLocation resolves the user's approximate location from network origin
func (uc *weatherUseCase) DetectLocation() (*entity.LocationQuery, error) {
	return uc.geoGateway.ResolveLocation()
}

// AggregateDaily folds the provider's 3-hour points into one entry per day.
// The day's description and icon come from the slot nearest midday; min, max
// and average temperature are computed across all of that day's points. The
// result is chronological, has no duplicate dates, and carries at most five
// days.
func AggregateDaily(points []entity.ForecastPoint) entity.Forecast {
	if len(points) == 0 {
		return nil
	}

	byDate := make(map[string][]entity.ForecastPoint)
	dates := make([]string, 0, maxForecastDays+1)
	for _, point := range points {
		date := point.Time.Format("2006-01-02")
		if _, seen := byDate[date]; !seen {
			dates = append(dates, date)
		}
		byDate[date] = append(byDate[date], point)
	}

	sort.Strings(dates)
	if len(dates) > maxForecastDays {
		dates = dates[:maxForecastDays]
	}

	forecast := make(entity.Forecast, 0, len(dates))
	for _, date := range dates {
		dayPoints := byDate[date]
		representative := dayPoints[0]
		bestDistance := middayDistance(representative.Time)

		entry := entity.ForecastEntry{
			MinTemp: dayPoints[0].Temperature,
			MaxTemp: dayPoints[0].Temperature,
		}

		var sum float64
		for _, point := range dayPoints {
			if point.Temperature < entry.MinTemp {
				entry.MinTemp = point.Temperature
			}
			if point.Temperature > entry.MaxTemp {
				entry.MaxTemp = point.Temperature
			}
			sum += point.Temperature

			if distance := middayDistance(point.Time); distance < bestDistance {
				bestDistance = distance
				representative = point
			}
		}

		day, _ := time.Parse("2006-01-02", date)
		entry.Date = day
		entry.AvgTemp = sum / float64(len(dayPoints))
		entry.Description = representative.Description
		entry.Icon = representative.Icon

		forecast = append(forecast, entry)
	}

	return forecast
}

// middayDistance measures how far a point's slot is from the midday slot.
func middayDistance(t time.Time) int {
	distance := t.Hour() - middaySlot
	if distance < 0 {
		return -distance
	}
	return distance
}
