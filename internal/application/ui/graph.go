package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"skycast/internal/domain/entity"
)

// TemperatureChart draws the average daily temperature of the forecast as a
// simple line graph with per-day labels.
type TemperatureChart struct {
	widget.BaseWidget
	forecast entity.Forecast
	units    entity.UnitSystem
}

func NewTemperatureChart() *TemperatureChart {
	chart := &TemperatureChart{}
	chart.ExtendBaseWidget(chart)
	return chart
}

// SetData replaces the plotted forecast. Call on the UI context.
func (c *TemperatureChart) SetData(forecast entity.Forecast, units entity.UnitSystem) {
	c.forecast = forecast
	c.units = units
	c.Refresh()
}

func (c *TemperatureChart) CreateRenderer() fyne.WidgetRenderer {
	return &temperatureChartRenderer{chart: c}
}

type temperatureChartRenderer struct {
	chart   *TemperatureChart
	objects []fyne.CanvasObject
}

const (
	chartMinWidth  = float32(360)
	chartMinHeight = float32(150)
	chartPadding   = float32(28)
	markerSize     = float32(6)
)

func (r *temperatureChartRenderer) MinSize() fyne.Size {
	return fyne.NewSize(chartMinWidth, chartMinHeight)
}

func (r *temperatureChartRenderer) Layout(size fyne.Size) {
	r.rebuild(size)
}

func (r *temperatureChartRenderer) Refresh() {
	r.rebuild(r.chart.Size())
	canvas.Refresh(r.chart)
}

func (r *temperatureChartRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *temperatureChartRenderer) Destroy() {}

// rebuild recomputes every canvas primitive for the current data and size.
func (r *temperatureChartRenderer) rebuild(size fyne.Size) {
	r.objects = r.objects[:0]

	forecast := r.chart.forecast
	if len(forecast) == 0 || size.Width <= 2*chartPadding || size.Height <= 2*chartPadding {
		return
	}

	minTemp, maxTemp := forecast[0].AvgTemp, forecast[0].AvgTemp
	for _, entry := range forecast {
		if entry.AvgTemp < minTemp {
			minTemp = entry.AvgTemp
		}
		if entry.AvgTemp > maxTemp {
			maxTemp = entry.AvgTemp
		}
	}
	tempRange := maxTemp - minTemp
	if tempRange == 0 {
		tempRange = 1
	}

	plotWidth := size.Width - 2*chartPadding
	plotHeight := size.Height - 2*chartPadding

	lineColor := theme.Color(theme.ColorNamePrimary)
	textColor := theme.Color(theme.ColorNameForeground)

	positions := make([]fyne.Position, len(forecast))
	for i, entry := range forecast {
		var x float32
		if len(forecast) == 1 {
			x = chartPadding + plotWidth/2
		} else {
			x = chartPadding + plotWidth*float32(i)/float32(len(forecast)-1)
		}
		y := chartPadding + plotHeight*float32(1-(entry.AvgTemp-minTemp)/tempRange)
		positions[i] = fyne.NewPos(x, y)
	}

	for i := 1; i < len(positions); i++ {
		segment := canvas.NewLine(lineColor)
		segment.StrokeWidth = 2
		segment.Position1 = positions[i-1]
		segment.Position2 = positions[i]
		r.objects = append(r.objects, segment)
	}

	for i, position := range positions {
		marker := canvas.NewCircle(lineColor)
		marker.Resize(fyne.NewSize(markerSize, markerSize))
		marker.Move(fyne.NewPos(position.X-markerSize/2, position.Y-markerSize/2))
		r.objects = append(r.objects, marker)

		value := canvas.NewText(fmt.Sprintf("%.1f%s", forecast[i].AvgTemp, r.chart.units.TemperatureLabel()), textColor)
		value.TextSize = theme.CaptionTextSize()
		value.Move(fyne.NewPos(position.X-18, position.Y-20))
		r.objects = append(r.objects, value)

		day := canvas.NewText(forecast[i].Date.Format("Mon 02"), textColor)
		day.TextSize = theme.CaptionTextSize()
		day.Move(fyne.NewPos(position.X-18, size.Height-chartPadding+6))
		r.objects = append(r.objects, day)
	}
}
