package api

import (
	"skycast/internal/domain/entity"
	"skycast/internal/domain/model"
	"skycast/internal/domain/model/external"
	"skycast/pkg/http"
	"skycast/pkg/log"
)

// GeoGateway resolves the caller's approximate location from network origin.
// Failure means "no auto-detected location", never a fatal condition.
type GeoGateway interface {
	ResolveLocation() (*entity.LocationQuery, error)
}

// geoGatewayImpl tries a list of free IP-geolocation services in order and
// returns the first usable answer.
type geoGatewayImpl struct {
	clients []*http.Client
}

var _ GeoGateway = (*geoGatewayImpl)(nil)

// NewGeoGateway creates a GeoGateway over the given endpoint URLs.
func NewGeoGateway(endpoints []string, clientOptions http.ClientOptions) GeoGateway {
	clients := make([]*http.Client, 0, len(endpoints))
	for _, endpoint := range endpoints {
		clients = append(clients, http.NewHttpClient(endpoint, clientOptions))
	}
	return &geoGatewayImpl{clients: clients}
}

// ResolveLocation queries the configured services until one answers with a city.
func (g *geoGatewayImpl) ResolveLocation() (*entity.LocationQuery, error) {
	var lastErr error

	for _, client := range g.clients {
		successResp, _, _, err := client.Request().
			WithMethod(http.GET).
			WithPath("/").
			WithSuccessResp(&external.GeoLocationResponse{}).
			Execute()

		if err != nil {
			log.Debugf("geolocation endpoint failed: %v", err)
			lastErr = err
			continue
		}

		resp := successResp.(*external.GeoLocationResponse)
		if city := resp.ResolvedCity(); city != "" {
			query := entity.CityQuery(city)
			return &query, nil
		}
	}

	if lastErr != nil {
		return nil, model.NewFetchError(model.KindNetwork, "could not detect city from network origin", lastErr)
	}
	return nil, model.NewFetchError(model.KindParse, "geolocation services returned no city", nil)
}
