package weather

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skycast/internal/domain/entity"
	"skycast/internal/domain/model"
)

type stubWeatherGateway struct {
	current     *entity.CurrentConditions
	currentErr  error
	points      []entity.ForecastPoint
	forecastErr error
}

func (s *stubWeatherGateway) FetchCurrent(query entity.LocationQuery, units entity.UnitSystem) (*entity.CurrentConditions, error) {
	return s.current, s.currentErr
}

func (s *stubWeatherGateway) FetchForecast(query entity.LocationQuery, units entity.UnitSystem) ([]entity.ForecastPoint, error) {
	return s.points, s.forecastErr
}

type stubGeoGateway struct {
	query *entity.LocationQuery
	err   error
}

func (s *stubGeoGateway) ResolveLocation() (*entity.LocationQuery, error) {
	return s.query, s.err
}

func point(day int, hour int, temp float64, desc string) entity.ForecastPoint {
	return entity.ForecastPoint{
		Time:        time.Date(2026, 3, day, hour, 0, 0, 0, time.UTC),
		Temperature: temp,
		Description: desc,
		Icon:        desc + "-icon",
	}
}

func TestAggregateDaily(t *testing.T) {
	points := []entity.ForecastPoint{
		point(2, 9, 10, "cloudy"),
		point(2, 12, 14, "sunny"),
		point(2, 18, 8, "rainy"),
		point(1, 15, 20, "clear"),
		point(1, 21, 16, "overcast"),
	}

	forecast := AggregateDaily(points)
	require.Len(t, forecast, 2)

	// Chronological, no duplicate dates even though input was unordered.
	assert.True(t, forecast[0].Date.Before(forecast[1].Date))
	assert.Equal(t, 1, forecast[0].Date.Day())
	assert.Equal(t, 2, forecast[1].Date.Day())

	// Day one has no midday slot; the nearest one (15:00) represents the day.
	assert.Equal(t, "clear", forecast[0].Description)
	assert.InDelta(t, 16.0, forecast[0].MinTemp, 0.001)
	assert.InDelta(t, 20.0, forecast[0].MaxTemp, 0.001)
	assert.InDelta(t, 18.0, forecast[0].AvgTemp, 0.001)

	// Day two has an exact midday slot.
	assert.Equal(t, "sunny", forecast[1].Description)
	assert.Equal(t, "sunny-icon", forecast[1].Icon)
	assert.InDelta(t, 8.0, forecast[1].MinTemp, 0.001)
	assert.InDelta(t, 14.0, forecast[1].MaxTemp, 0.001)
}

func TestAggregateDailyNonDecreasingUniqueDates(t *testing.T) {
	var points []entity.ForecastPoint
	for day := 1; day <= 6; day++ {
		for hour := 0; hour < 24; hour += 3 {
			points = append(points, point(day, hour, float64(day*10+hour), "x"))
		}
	}

	forecast := AggregateDaily(points)

	// Provider gives up to six partial days; we cap at five.
	require.Len(t, forecast, 5)

	seen := map[string]bool{}
	for i, entry := range forecast {
		date := entry.Date.Format("2006-01-02")
		assert.False(t, seen[date], "duplicate date %s", date)
		seen[date] = true
		if i > 0 {
			assert.False(t, entry.Date.Before(forecast[i-1].Date))
		}
	}
}

func TestAggregateDailyEmpty(t *testing.T) {
	assert.Nil(t, AggregateDaily(nil))
}

func TestFetchCurrentRejectsEmptyQuery(t *testing.T) {
	uc := NewWeatherUseCase(&stubWeatherGateway{}, &stubGeoGateway{})

	_, err := uc.FetchCurrent(entity.LocationQuery{}, entity.Metric)
	require.Error(t, err)
	assert.Equal(t, model.KindNotFound, model.KindOf(err))
}

func TestFetchSnapshotToleratesForecastFailure(t *testing.T) {
	gateway := &stubWeatherGateway{
		current: &entity.CurrentConditions{
			City:        "Rome",
			Temperature: 21.5,
			Units:       entity.Metric,
		},
		forecastErr: model.NewFetchError(model.KindNetwork, "", errors.New("timeout")),
	}
	uc := NewWeatherUseCase(gateway, &stubGeoGateway{})

	snapshot, err := uc.FetchSnapshot(entity.CityQuery("Rome"), entity.Metric)
	require.NoError(t, err)
	assert.Equal(t, "Rome", snapshot.Current.City)
	assert.Empty(t, snapshot.Forecast)
	assert.Nil(t, snapshot.NextPoint)
}

func TestFetchSnapshotCarriesForecastAndNextPoint(t *testing.T) {
	gateway := &stubWeatherGateway{
		current: &entity.CurrentConditions{City: "Tokyo", Units: entity.Metric},
		points: []entity.ForecastPoint{
			point(1, 12, 15, "sunny"),
			point(2, 12, 17, "cloudy"),
		},
	}
	uc := NewWeatherUseCase(gateway, &stubGeoGateway{})

	snapshot, err := uc.FetchSnapshot(entity.CityQuery("Tokyo"), entity.Metric)
	require.NoError(t, err)
	require.Len(t, snapshot.Forecast, 2)
	require.NotNil(t, snapshot.NextPoint)
	assert.Equal(t, "sunny", snapshot.NextPoint.Description)
}

func TestFetchSnapshotPropagatesCurrentFailure(t *testing.T) {
	gateway := &stubWeatherGateway{
		currentErr: model.NewFetchError(model.KindNotFound, "city not found", nil),
	}
	uc := NewWeatherUseCase(gateway, &stubGeoGateway{})

	_, err := uc.FetchSnapshot(entity.CityQuery("Nowhere"), entity.Metric)
	require.Error(t, err)
	assert.Equal(t, model.KindNotFound, model.KindOf(err))
}

func TestDetectLocation(t *testing.T) {
	query := entity.CityQuery("Berlin")
	uc := NewWeatherUseCase(&stubWeatherGateway{}, &stubGeoGateway{query: &query})

	resolved, err := uc.DetectLocation()
	require.NoError(t, err)
	assert.Equal(t, "Berlin", resolved.City)
}
