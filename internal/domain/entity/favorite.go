package entity

// Favorite is a city the user pinned. Ordering follows insertion (Position),
// uniqueness is enforced on the city name.
type Favorite struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	City     string `json:"city" gorm:"uniqueIndex;not null"`
	Position int    `json:"position" gorm:"index"`
}

// Setting is a single key/value row of persisted application state, such as
// the last displayed city or the chosen unit system.
type Setting struct {
	Key   string `json:"key" gorm:"primaryKey"`
	Value string `json:"value"`
}
