package db

import (
	"errors"
	"fmt"

	"skycast/internal/domain/entity"

	"gorm.io/gorm"
)

type GormFavoritesGateway struct {
	DB *gorm.DB
}

var _ FavoritesGateway = (*GormFavoritesGateway)(nil)

func NewGormFavoritesGateway(db *gorm.DB) *GormFavoritesGateway {
	return &GormFavoritesGateway{DB: db}
}

// List returns favorite cities in insertion order, without duplicates.
func (gateway *GormFavoritesGateway) List() ([]string, error) {
	var favorites []entity.Favorite
	if err := gateway.DB.Order("position asc, id asc").Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	cities := make([]string, 0, len(favorites))
	for _, favorite := range favorites {
		cities = append(cities, favorite.City)
	}
	return cities, nil
}

// Add appends a city to the favorites. Adding an existing city is a no-op.
func (gateway *GormFavoritesGateway) Add(city string) error {
	return gateway.DB.Transaction(func(tx *gorm.DB) error {
		var existing entity.Favorite
		err := tx.Where("city = ?", city).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check favorite: %w", err)
		}

		var maxPosition int
		if err := tx.Model(&entity.Favorite{}).Select("COALESCE(MAX(position), 0)").Scan(&maxPosition).Error; err != nil {
			return fmt.Errorf("failed to read favorite positions: %w", err)
		}

		favorite := entity.Favorite{City: city, Position: maxPosition + 1}
		if err := tx.Create(&favorite).Error; err != nil {
			return fmt.Errorf("failed to add favorite: %w", err)
		}
		return nil
	})
}

// Remove deletes a city from the favorites. Removing an absent city is a no-op.
func (gateway *GormFavoritesGateway) Remove(city string) error {
	if err := gateway.DB.Where("city = ?", city).Delete(&entity.Favorite{}).Error; err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// Contains reports whether the city is currently a favorite.
func (gateway *GormFavoritesGateway) Contains(city string) (bool, error) {
	var count int64
	if err := gateway.DB.Model(&entity.Favorite{}).Where("city = ?", city).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

// Setting returns the value stored under key, or "" when unset.
func (gateway *GormFavoritesGateway) Setting(key string) (string, error) {
	var setting entity.Setting
	err := gateway.DB.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read setting %q: %w", key, err)
	}
	return setting.Value, nil
}

// SaveSetting stores value under key, replacing any previous value.
func (gateway *GormFavoritesGateway) SaveSetting(key string, value string) error {
	setting := entity.Setting{Key: key, Value: value}
	if err := gateway.DB.Save(&setting).Error; err != nil {
		return fmt.Errorf("failed to save setting %q: %w", key, err)
	}
	return nil
}
