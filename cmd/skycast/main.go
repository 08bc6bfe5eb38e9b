package main

import (
	"fyne.io/fyne/v2/app"

	"skycast/configs"
	"skycast/internal/application/schedule"
	"skycast/internal/application/ui"
	"skycast/internal/domain/gateway/api"
	"skycast/internal/domain/gateway/db"
	"skycast/internal/domain/usecase/favorites"
	"skycast/internal/domain/usecase/weather"
	"skycast/internal/infra/database/gorm"
	"skycast/pkg/http"
	"skycast/pkg/log"
	"skycast/pkg/msg"
	"skycast/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	database, err := gorm.Open(resource.GetString("app.storage.path"))
	if err != nil {
		// A corrupt local store is not fatal; favorites just won't survive restarts.
		log.Errorf("local store unusable, falling back to in-memory: %v", err)
		database, err = gorm.OpenInMemory()
		if err != nil {
			log.Fatalf("failed to open in-memory store: %v", err)
		}
	}

	httpLogger := api.NewHTTPLogger()

	// Init Gateways
	weatherGateway := api.NewWeatherGateway(
		resource.GetString("app.weather.base-url"),
		configs.Env.WeatherAPIKey,
		http.ClientOptions{
			ReadTimeout: resource.GetDuration("app.weather.read-timeout"),
			Logger:      httpLogger,
		},
	)
	geoGateway := api.NewGeoGateway(
		resource.GetStringSlice("app.geo.endpoints"),
		http.ClientOptions{
			ReadTimeout: resource.GetDuration("app.geo.read-timeout"),
			Logger:      httpLogger,
		},
	)
	iconGateway := api.NewIconGateway(
		resource.GetString("app.weather.icon-base-url"),
		resource.GetString("app.icons.dir"),
		http.ClientOptions{Logger: httpLogger},
	)
	favoritesGateway := db.NewGormFavoritesGateway(database)

	// Init UseCases
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, geoGateway)
	favoritesUseCase := favorites.NewFavoritesUseCase(favoritesGateway)

	// Init Shell
	fyneApp := app.NewWithID("io.skycast.app")
	window := ui.NewWindow(fyneApp, weatherUseCase, favoritesUseCase, iconGateway)

	// Init Schedule
	refreshScheduler := schedule.NewRefreshScheduler(window, resource.GetString("app.refresh.cron"))
	refreshScheduler.InitRefreshScheduleTasks()
	defer refreshScheduler.Stop()

	window.ShowAndRun()
	log.Info(msg.GetMessage("app.stopped"))
}
