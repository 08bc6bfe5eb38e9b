package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"skycast/internal/domain/entity"
	"skycast/internal/domain/gateway/api"
	"skycast/internal/domain/model"
	"skycast/internal/domain/usecase/favorites"
	"skycast/internal/domain/usecase/weather"
	"skycast/pkg/log"
	"skycast/pkg/msg"
)

// Window is the application shell: it owns the widgets, collects user input
// and drives the use cases without ever blocking input handling. All widget
// mutation happens on the UI context; network work is dispatched to
// background goroutines and marshalled back via fyne.Do.
type Window struct {
	app    fyne.App
	window fyne.Window

	weatherUseCase   weather.UseCase
	favoritesUseCase favorites.UseCase
	iconGateway      api.IconGateway
	dispatcher       *Dispatcher

	state    *DisplayState
	darkMode bool

	cityEntry     *widget.Entry
	unitsSelect   *widget.Select
	themeButton   *widget.Button
	addFavButton  *widget.Button
	removeButton  *widget.Button
	cityLabel     *widget.Label
	descLabel     *widget.Label
	tempLabel     *widget.Label
	feelsLabel    *widget.Label
	humidityLabel *widget.Label
	windLabel     *widget.Label
	nextLabel     *widget.Label
	statusLabel   *widget.Label
	currentIcon   *canvas.Image
	forecastRow   *fyne.Container
	chart         *TemperatureChart
	favoritesList *widget.List

	favoriteCities []string
}

// NewWindow builds the shell over an existing Fyne app.
func NewWindow(fyneApp fyne.App, weatherUseCase weather.UseCase, favoritesUseCase favorites.UseCase, iconGateway api.IconGateway) *Window {
	w := &Window{
		app:              fyneApp,
		weatherUseCase:   weatherUseCase,
		favoritesUseCase: favoritesUseCase,
		iconGateway:      iconGateway,
	}
	w.dispatcher = NewDispatcher(weatherUseCase, fyne.Do)

	units, err := favoritesUseCase.Units()
	if err != nil {
		log.Warnf("failed to load persisted units, using metric: %v", err)
		units = entity.Metric
	}
	w.state = NewDisplayState(units)

	darkMode, err := favoritesUseCase.DarkMode()
	if err != nil {
		log.Warnf("failed to load persisted theme: %v", err)
	}
	w.darkMode = darkMode
	w.applyTheme()

	w.window = fyneApp.NewWindow("Skycast")
	w.window.Resize(fyne.NewSize(900, 680))

	w.buildWidgets()
	w.window.SetContent(w.buildLayout())
	w.reloadFavorites()

	return w
}

// ShowAndRun shows the window, performs the startup load and runs the event loop.
func (w *Window) ShowAndRun() {
	w.startupLoad()
	w.window.ShowAndRun()
}

// Submit dispatches a fetch for a free-text city, typically from the search
// box, a favorite click or the auto-refresh scheduler. Safe to call from the
// UI context only.
func (w *Window) Submit(city string) {
	query := entity.CityQuery(city)
	if query.IsZero() {
		w.statusLabel.SetText(msg.GetMessage("error.empty-city"))
		return
	}
	w.dispatchFetch(query)
}

// SubmitAsync schedules Submit on the UI context; the auto-refresh scheduler
// calls this from its own goroutine.
func (w *Window) SubmitAsync(city string) {
	fyne.Do(func() { w.Submit(city) })
}

// DisplayedCity returns the city currently on screen, for the refresh scheduler.
func (w *Window) DisplayedCity() string {
	return w.state.City()
}

func (w *Window) buildWidgets() {
	w.cityEntry = widget.NewEntry()
	w.cityEntry.SetPlaceHolder("City name")
	w.cityEntry.OnSubmitted = func(text string) { w.Submit(text) }

	w.unitsSelect = widget.NewSelect(
		[]string{string(entity.Metric), string(entity.Imperial), string(entity.Standard)},
		func(choice string) { w.onUnitsChanged(entity.ParseUnitSystem(choice)) },
	)
	w.unitsSelect.SetSelected(string(w.state.Units))

	w.themeButton = widget.NewButtonWithIcon("Theme", theme.ColorPaletteIcon(), w.toggleTheme)
	w.addFavButton = widget.NewButtonWithIcon("Add Favorite", theme.ContentAddIcon(), w.addFavorite)
	w.removeButton = widget.NewButtonWithIcon("Remove Favorite", theme.ContentRemoveIcon(), w.removeFavorite)
	w.removeButton.Disable()

	w.cityLabel = widget.NewLabelWithStyle("—", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	w.descLabel = widget.NewLabel("—")
	w.tempLabel = widget.NewLabel("Temperature: —")
	w.feelsLabel = widget.NewLabel("Feels like: —")
	w.humidityLabel = widget.NewLabel("Humidity: —")
	w.windLabel = widget.NewLabel("Wind: —")
	w.nextLabel = widget.NewLabel("")
	w.statusLabel = widget.NewLabel(w.state.Status)

	w.currentIcon = canvas.NewImageFromResource(nil)
	w.currentIcon.FillMode = canvas.ImageFillContain
	w.currentIcon.SetMinSize(fyne.NewSize(80, 80))

	w.forecastRow = container.NewHBox()
	w.chart = NewTemperatureChart()

	w.favoritesList = widget.NewList(
		func() int { return len(w.favoriteCities) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, item fyne.CanvasObject) {
			item.(*widget.Label).SetText(w.favoriteCities[id])
		},
	)
	w.favoritesList.OnSelected = func(id widget.ListItemID) {
		w.favoritesList.Unselect(id)
		if id >= 0 && id < len(w.favoriteCities) {
			w.Submit(w.favoriteCities[id])
		}
	}
}

func (w *Window) buildLayout() fyne.CanvasObject {
	searchButton := widget.NewButtonWithIcon("Search", theme.SearchIcon(), func() {
		w.Submit(w.cityEntry.Text)
	})
	refreshButton := widget.NewButtonWithIcon("Refresh", theme.ViewRefreshIcon(), w.refresh)

	controls := container.NewBorder(nil, nil, nil,
		container.NewHBox(searchButton, refreshButton, w.unitsSelect, w.themeButton),
		w.cityEntry,
	)

	currentCard := widget.NewCard("", "", container.NewBorder(nil, nil, w.currentIcon, nil,
		container.NewVBox(w.cityLabel, w.descLabel, w.tempLabel, w.feelsLabel, w.humidityLabel, w.windLabel, w.nextLabel),
	))

	forecastCard := widget.NewCard("5-day forecast", "", container.NewVBox(w.forecastRow, w.chart))

	favoritesPanel := container.NewBorder(
		container.NewHBox(w.addFavButton, w.removeButton), nil, nil, nil,
		w.favoritesList,
	)
	favoritesCard := widget.NewCard("Favorites", "", favoritesPanel)

	center := container.NewVBox(currentCard, forecastCard)

	return container.NewBorder(
		controls,
		w.statusLabel,
		nil,
		favoritesCard,
		container.NewVScroll(center),
	)
}

// startupLoad renders the last displayed city, falling back to IP-based
// location detection when the app has never been used.
func (w *Window) startupLoad() {
	lastCity, err := w.favoritesUseCase.LastCity()
	if err != nil {
		log.Warnf("failed to load last city: %v", err)
	}
	if lastCity != "" {
		w.cityEntry.SetText(lastCity)
		w.Submit(lastCity)
		return
	}

	w.statusLabel.SetText(msg.GetMessage("status.fetching"))
	go func() {
		query, err := w.weatherUseCase.DetectLocation()
		fyne.Do(func() {
			if err != nil {
				// Not fatal: the user can still type a city.
				w.statusLabel.SetText(msg.GetMessage("status.detect-failed"))
				return
			}
			w.cityEntry.SetText(query.City)
			w.dispatchFetch(*query)
		})
	}()
}

func (w *Window) refresh() {
	if city := w.state.City(); city != "" {
		w.Submit(city)
		return
	}
	w.Submit(w.cityEntry.Text)
}

func (w *Window) onUnitsChanged(units entity.UnitSystem) {
	if units == w.state.Units {
		return
	}
	w.state.Units = units
	if err := w.favoritesUseCase.SetUnits(units); err != nil {
		log.Warnf("failed to persist units: %v", err)
	}
	// Re-fetch so the displayed values and the unit label always agree.
	if city := w.state.City(); city != "" {
		w.Submit(city)
	}
}

func (w *Window) toggleTheme() {
	w.darkMode = !w.darkMode
	w.applyTheme()
	if err := w.favoritesUseCase.SetDarkMode(w.darkMode); err != nil {
		log.Warnf("failed to persist theme: %v", err)
	}
}

func (w *Window) applyTheme() {
	variant := theme.VariantLight
	if w.darkMode {
		variant = theme.VariantDark
	}
	w.app.Settings().SetTheme(newVariantTheme(variant))
}

func (w *Window) addFavorite() {
	city := w.state.City()
	if city == "" {
		return
	}
	if err := w.favoritesUseCase.Add(city); err != nil {
		log.Errorf("failed to add favorite %q: %v", city, err)
		return
	}
	w.statusLabel.SetText(msg.GetMessage("favorites.added", city))
	w.reloadFavorites()
}

func (w *Window) removeFavorite() {
	city := w.state.City()
	if city == "" {
		return
	}
	if err := w.favoritesUseCase.Remove(city); err != nil {
		log.Errorf("failed to remove favorite %q: %v", city, err)
		return
	}
	w.statusLabel.SetText(msg.GetMessage("favorites.removed", city))
	w.reloadFavorites()
}

func (w *Window) reloadFavorites() {
	cities, err := w.favoritesUseCase.List()
	if err != nil {
		log.Errorf("failed to load favorites: %v", err)
		return
	}
	w.favoriteCities = cities
	w.favoritesList.Refresh()
	w.updateFavoriteButtons()
}

func (w *Window) updateFavoriteButtons() {
	city := w.state.City()
	if city == "" {
		w.addFavButton.Disable()
		w.removeButton.Disable()
		return
	}
	isFavorite, err := w.favoritesUseCase.IsFavorite(city)
	if err != nil {
		log.Warnf("failed to check favorite state: %v", err)
		return
	}
	if isFavorite {
		w.addFavButton.Disable()
		w.removeButton.Enable()
	} else {
		w.addFavButton.Enable()
		w.removeButton.Disable()
	}
}

// dispatchFetch moves the shell to Pending for this query and hands the
// network work to the dispatcher.
func (w *Window) dispatchFetch(query entity.LocationQuery) {
	w.state.SetPendingCity(query.City)
	w.statusLabel.SetText(msg.GetMessage("status.fetching"))
	w.dispatcher.Dispatch(query, w.state.Units, w.renderSnapshot, w.renderError)
}

// renderSnapshot applies a fresh snapshot to every dependent widget in one
// pass on the UI context, then records the city and raises condition alerts.
func (w *Window) renderSnapshot(snapshot *model.WeatherSnapshot) {
	current := snapshot.Current
	label := snapshot.Units.TemperatureLabel()

	w.state.ApplySnapshot(snapshot, msg.GetMessage("status.updated", current.Timestamp.Format("2006-01-02 15:04:05")))

	cityText := current.City
	if current.Country != "" {
		cityText = fmt.Sprintf("%s, %s", current.City, current.Country)
	}
	w.cityLabel.SetText(cityText)
	w.descLabel.SetText(current.Description)
	w.tempLabel.SetText(fmt.Sprintf("Temperature: %.1f%s", current.Temperature, label))
	w.feelsLabel.SetText(fmt.Sprintf("Feels like: %.1f%s", current.FeelsLike, label))
	w.humidityLabel.SetText(fmt.Sprintf("Humidity: %d%%", current.Humidity))
	w.windLabel.SetText(fmt.Sprintf("Wind: %.1f %s", current.WindSpeed, snapshot.Units.WindLabel()))

	if snapshot.NextPoint != nil {
		next := snapshot.NextPoint
		w.nextLabel.SetText(fmt.Sprintf("Next: %s — %.1f%s — %s",
			next.Time.Format("2006-01-02 15:04"), next.Temperature, label, next.Description))
	} else {
		w.nextLabel.SetText("")
	}

	w.loadIconAsync(current.Icon, w.currentIcon)
	w.renderForecast(snapshot)
	w.statusLabel.SetText(w.state.Status)

	if err := w.favoritesUseCase.SetLastCity(current.City); err != nil {
		log.Warnf("failed to persist last city: %v", err)
	}
	w.updateFavoriteButtons()

	for _, alert := range CheckAlerts(current) {
		w.app.SendNotification(fyne.NewNotification("Skycast", alert))
	}
}

func (w *Window) renderForecast(snapshot *model.WeatherSnapshot) {
	w.forecastRow.RemoveAll()
	label := snapshot.Units.TemperatureLabel()

	for _, entry := range snapshot.Forecast {
		icon := canvas.NewImageFromResource(nil)
		icon.FillMode = canvas.ImageFillContain
		icon.SetMinSize(fyne.NewSize(48, 48))
		w.loadIconAsync(entry.Icon, icon)

		day := container.NewVBox(
			icon,
			widget.NewLabelWithStyle(entry.Date.Format("Mon 02 Jan"), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle(fmt.Sprintf("%.0f / %.0f%s", entry.MinTemp, entry.MaxTemp, label), fyne.TextAlignCenter, fyne.TextStyle{}),
			widget.NewLabelWithStyle(entry.Description, fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
		)
		w.forecastRow.Add(day)
	}

	w.chart.SetData(snapshot.Forecast, snapshot.Units)
	w.forecastRow.Refresh()
}

// renderError surfaces a kind-specific message and leaves the previously
// rendered data untouched.
func (w *Window) renderError(err error) {
	message := w.state.ApplyError(err)
	log.Errorw("fetch failed", "kind", model.KindOf(err), "error", err)
	w.statusLabel.SetText(message)
	w.app.SendNotification(fyne.NewNotification("Skycast", message))
}

// loadIconAsync resolves an icon to a local file off the UI thread, then
// swaps it into the image on the UI context.
func (w *Window) loadIconAsync(code string, image *canvas.Image) {
	if code == "" {
		return
	}
	go func() {
		path, err := w.iconGateway.IconPath(code)
		if err != nil {
			log.Debugf("icon %q unavailable: %v", code, err)
			return
		}
		fyne.Do(func() {
			image.File = path
			image.Refresh()
		})
	}()
}
