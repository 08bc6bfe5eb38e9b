package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skycast/internal/domain/entity"
	"skycast/internal/domain/gateway/db"
)

// memoryGateway is an in-memory FavoritesGateway for exercising the use case
// without a database.
type memoryGateway struct {
	cities   []string
	settings map[string]string
}

var _ db.FavoritesGateway = (*memoryGateway)(nil)

func newMemoryGateway() *memoryGateway {
	return &memoryGateway{settings: make(map[string]string)}
}

func (g *memoryGateway) List() ([]string, error) {
	return append([]string(nil), g.cities...), nil
}

func (g *memoryGateway) Add(city string) error {
	for _, existing := range g.cities {
		if existing == city {
			return nil
		}
	}
	g.cities = append(g.cities, city)
	return nil
}

func (g *memoryGateway) Remove(city string) error {
	for i, existing := range g.cities {
		if existing == city {
			g.cities = append(g.cities[:i], g.cities[i+1:]...)
			return nil
		}
	}
	return nil
}

func (g *memoryGateway) Contains(city string) (bool, error) {
	for _, existing := range g.cities {
		if existing == city {
			return true, nil
		}
	}
	return false, nil
}

func (g *memoryGateway) Setting(key string) (string, error) {
	return g.settings[key], nil
}

func (g *memoryGateway) SaveSetting(key string, value string) error {
	g.settings[key] = value
	return nil
}

func TestAddTrimsAndRejectsEmpty(t *testing.T) {
	uc := NewFavoritesUseCase(newMemoryGateway())

	require.NoError(t, uc.Add("  Rome  "))
	assert.Error(t, uc.Add("   "))
	assert.Error(t, uc.Remove(""))

	cities, err := uc.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"Rome"}, cities)

	isFavorite, err := uc.IsFavorite(" Rome ")
	require.NoError(t, err)
	assert.True(t, isFavorite)
}

func TestUnitsDefaultToMetric(t *testing.T) {
	uc := NewFavoritesUseCase(newMemoryGateway())

	units, err := uc.Units()
	require.NoError(t, err)
	assert.Equal(t, entity.Metric, units)

	require.NoError(t, uc.SetUnits(entity.Imperial))

	units, err = uc.Units()
	require.NoError(t, err)
	assert.Equal(t, entity.Imperial, units)
}

func TestDarkModeDefaultsToLight(t *testing.T) {
	uc := NewFavoritesUseCase(newMemoryGateway())

	dark, err := uc.DarkMode()
	require.NoError(t, err)
	assert.False(t, dark)

	require.NoError(t, uc.SetDarkMode(true))

	dark, err = uc.DarkMode()
	require.NoError(t, err)
	assert.True(t, dark)
}

func TestLastCityRoundTrip(t *testing.T) {
	uc := NewFavoritesUseCase(newMemoryGateway())

	city, err := uc.LastCity()
	require.NoError(t, err)
	assert.Empty(t, city)

	require.NoError(t, uc.SetLastCity(" Tokyo "))

	city, err = uc.LastCity()
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", city)
}
