package external

// DTOs for the OpenWeather data/2.5 API. Only the fields the application
// reads are mapped; everything else in the payload is ignored.

// CurrentWeatherResponse is the /weather endpoint payload.
type CurrentWeatherResponse struct {
	Name string `json:"name"`
	Dt   int64  `json:"dt"`
	Sys  struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Timezone int `json:"timezone"`
	Coord    struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
}

// ForecastResponse is the /forecast endpoint payload: 5 days of 3-hour points.
type ForecastResponse struct {
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
	List []ForecastItem `json:"list"`
}

// ForecastItem is one 3-hour point inside ForecastResponse.
type ForecastItem struct {
	Dt    int64  `json:"dt"`
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// APIErrorResponse is OpenWeather's error body, e.g. {"cod":"404","message":"city not found"}.
type APIErrorResponse struct {
	Message string `json:"message"`
}
