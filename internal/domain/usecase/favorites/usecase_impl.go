package favorites

import (
	"errors"
	"strings"

	"skycast/internal/domain/entity"
	"skycast/internal/domain/gateway/db"
)

type favoritesUseCase struct {
	dbGateway db.FavoritesGateway
}

func NewFavoritesUseCase(dbGateway db.FavoritesGateway) UseCase {
	return &favoritesUseCase{dbGateway: dbGateway}
}

func (uc *favoritesUseCase) List() ([]string, error) {
	return uc.dbGateway.List()
}

func (uc *favoritesUseCase) Add(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errors.New("city is required")
	}
	return uc.dbGateway.Add(city)
}

func (uc *favoritesUseCase) Remove(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errors.New("city is required")
	}
	return uc.dbGateway.Remove(city)
}

func (uc *favoritesUseCase) IsFavorite(city string) (bool, error) {
	return uc.dbGateway.Contains(strings.TrimSpace(city))
}

func (uc *favoritesUseCase) LastCity() (string, error) {
	return uc.dbGateway.Setting(db.SettingLastCity)
}

func (uc *favoritesUseCase) SetLastCity(city string) error {
	return uc.dbGateway.SaveSetting(db.SettingLastCity, strings.TrimSpace(city))
}

func (uc *favoritesUseCase) Units() (entity.UnitSystem, error) {
	value, err := uc.dbGateway.Setting(db.SettingUnits)
	if err != nil {
		return entity.Metric, err
	}
	return entity.ParseUnitSystem(value), nil
}

func (uc *favoritesUseCase) SetUnits(units entity.UnitSystem) error {
	return uc.dbGateway.SaveSetting(db.SettingUnits, string(units))
}

func (uc *favoritesUseCase) DarkMode() (bool, error) {
	value, err := uc.dbGateway.Setting(db.SettingTheme)
	if err != nil {
		return false, err
	}
	return value == "dark", nil
}

func (uc *favoritesUseCase) SetDarkMode(dark bool) error {
	value := "light"
	if dark {
		value = "dark"
	}
	return uc.dbGateway.SaveSetting(db.SettingTheme, value)
}
