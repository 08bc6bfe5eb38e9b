package external

// GeoLocationResponse covers the common shape of free IP-geolocation services
// (ip-api.com, ipinfo.io, ipapi.co). Providers disagree on field names for the
// city, so all known variants are mapped and the first non-empty one wins.
type GeoLocationResponse struct {
	City     string  `json:"city"`
	Region   string  `json:"region"`
	CityName string  `json:"city_name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// ResolvedCity returns the best available city name, or "".
func (r GeoLocationResponse) ResolvedCity() string {
	if r.City != "" {
		return r.City
	}
	if r.Region != "" {
		return r.Region
	}
	return r.CityName
}
