package gorm

import (
	"fmt"

	"skycast/internal/domain/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens (creating if needed) the local application database and runs
// migrations for the persisted state. A corrupt file surfaces as an error so
// the caller can fall back to an in-memory store instead of crashing.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}

	if err := db.AutoMigrate(&entity.Favorite{}, &entity.Setting{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// OpenInMemory opens a throwaway database, used when the on-disk file is
// unusable and by tests.
func OpenInMemory() (*gorm.DB, error) {
	return Open("file::memory:?cache=shared")
}
