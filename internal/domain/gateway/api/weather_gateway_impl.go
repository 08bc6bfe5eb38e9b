package api

import (
	"errors"
	"strconv"
	"time"

	"skycast/internal/domain/entity"
	"skycast/internal/domain/model"
	"skycast/internal/domain/model/external"
	"skycast/pkg/http"
	"skycast/pkg/msg"
)

// weatherGatewayImpl implements the WeatherGateway interface against the
// OpenWeather data/2.5 API.
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
}

var _ WeatherGateway = (*weatherGatewayImpl)(nil)

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseURL string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	httpClient := http.NewHttpClient(baseURL, clientOptions)

	return &weatherGatewayImpl{
		httpClient: httpClient,
		apiKey:     apiKey,
	}
}

// FetchCurrent gets current conditions for a location
func (w *weatherGatewayImpl) FetchCurrent(query entity.LocationQuery, units entity.UnitSystem) (*entity.CurrentConditions, error) {
	if err := w.checkKey(); err != nil {
		return nil, err
	}

	successResp, errResp, status, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/weather").
		WithQueryParams(w.queryParams(query, units)).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, classify(err, errResp, status)
	}

	resp := successResp.(*external.CurrentWeatherResponse)
	if resp.Name == "" && len(resp.Weather) == 0 {
		return nil, model.NewFetchError(model.KindParse, "response missing location and conditions", nil)
	}

	current := &entity.CurrentConditions{
		City:        resp.Name,
		Country:     resp.Sys.Country,
		Timestamp:   time.Unix(resp.Dt, 0),
		Temperature: resp.Main.Temp,
		FeelsLike:   resp.Main.FeelsLike,
		Humidity:    resp.Main.Humidity,
		Pressure:    resp.Main.Pressure,
		WindSpeed:   resp.Wind.Speed,
		Sunrise:     time.Unix(resp.Sys.Sunrise, 0),
		Sunset:      time.Unix(resp.Sys.Sunset, 0),
		Lat:         resp.Coord.Lat,
		Lon:         resp.Coord.Lon,
		Units:       units,
	}
	if resp.Name == "" {
		current.City = query.City
	}
	if len(resp.Weather) > 0 {
		current.Description = resp.Weather[0].Description
		current.Icon = resp.Weather[0].Icon
	}

	return current, nil
}

// FetchForecast gets the provider's native 3-hour forecast points for a location
func (w *weatherGatewayImpl) FetchForecast(query entity.LocationQuery, units entity.UnitSystem) ([]entity.ForecastPoint, error) {
	if err := w.checkKey(); err != nil {
		return nil, err
	}

	successResp, errResp, status, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(w.queryParams(query, units)).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, classify(err, errResp, status)
	}

	resp := successResp.(*external.ForecastResponse)
	if len(resp.List) == 0 {
		return nil, model.NewFetchError(model.KindParse, "forecast response has no data points", nil)
	}

	points := make([]entity.ForecastPoint, 0, len(resp.List))
	for _, item := range resp.List {
		point := entity.ForecastPoint{
			Time:        time.Unix(item.Dt, 0).UTC(),
			Temperature: item.Main.Temp,
			Humidity:    item.Main.Humidity,
		}
		if len(item.Weather) > 0 {
			point.Description = item.Weather[0].Description
			point.Icon = item.Weather[0].Icon
		}
		points = append(points, point)
	}

	return points, nil
}

// queryParams builds the provider request parameters for a location and unit system.
func (w *weatherGatewayImpl) queryParams(query entity.LocationQuery, units entity.UnitSystem) map[string]string {
	params := map[string]string{
		"appid": w.apiKey,
		"units": units.QueryValue(),
	}
	if query.HasCoords {
		params["lat"] = strconv.FormatFloat(query.Lat, 'f', -1, 64)
		params["lon"] = strconv.FormatFloat(query.Lon, 'f', -1, 64)
	} else {
		params["q"] = query.City
	}
	return params
}

// checkKey turns a missing credential into an AuthError on first fetch
// instead of a startup crash.
func (w *weatherGatewayImpl) checkKey() error {
	if w.apiKey == "" {
		return model.NewFetchError(model.KindAuth, msg.GetMessage("error.auth"), nil)
	}
	return nil
}

// classify maps a failed HTTP exchange onto the fetch error taxonomy.
func classify(err error, errResp any, status int) error {
	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		message := ""
		if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil {
			message = apiErr.Message
		}
		switch {
		case status == 404:
			return model.NewFetchError(model.KindNotFound, message, err)
		case status == 401 || status == 403:
			return model.NewFetchError(model.KindAuth, message, err)
		case status >= 500:
			return model.NewFetchError(model.KindNetwork, message, err)
		default:
			return model.NewFetchError(model.KindParse, message, err)
		}
	}

	if status >= 200 && status < 300 {
		// Transport succeeded but the body did not decode.
		return model.NewFetchError(model.KindParse, "malformed provider response", err)
	}

	return model.NewFetchError(model.KindNetwork, "", err)
}
