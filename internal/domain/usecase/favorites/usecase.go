package favorites

import "skycast/internal/domain/entity"

type UseCase interface {
	// List returns favorite cities in insertion order
	List() ([]string, error)

	// Add pins a city; adding a city twice keeps a single entry
	Add(city string) error

	// Remove unpins a city
	Remove(city string) error

	// IsFavorite reports whether a city is pinned
	IsFavorite(city string) (bool, error)

	// LastCity returns the most recently displayed city, or ""
	LastCity() (string, error)

	// SetLastCity records the most recently displayed city
	SetLastCity(city string) error

	// Units returns the persisted unit system, defaulting to Metric
	Units() (entity.UnitSystem, error)

	// SetUnits persists the chosen unit system
	SetUnits(units entity.UnitSystem) error

	// DarkMode reports whether the dark theme was persisted
	DarkMode() (bool, error)

	// SetDarkMode persists the theme choice
	SetDarkMode(dark bool) error
}
