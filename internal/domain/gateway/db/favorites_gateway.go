package db

// FavoritesGateway persists the favorites list and small key/value settings
// such as the last displayed city. Implementations must preserve insertion
// order and uniqueness across restarts.
type FavoritesGateway interface {
	// List returns favorite cities in insertion order, without duplicates.
	List() ([]string, error)

	// Add appends a city to the favorites. Adding an existing city is a no-op.
	Add(city string) error

	// Remove deletes a city from the favorites. Removing an absent city is a no-op.
	Remove(city string) error

	// Contains reports whether the city is currently a favorite.
	Contains(city string) (bool, error)

	// Setting returns the value stored under key, or "" when unset.
	Setting(key string) (string, error)

	// SaveSetting stores value under key, replacing any previous value.
	SaveSetting(key string, value string) error
}

// Setting keys used by the application shell.
const (
	SettingLastCity = "last_city"
	SettingUnits    = "units"
	SettingTheme    = "theme"
)
