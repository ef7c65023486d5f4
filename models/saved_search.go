package models

import (
	"time"

	"gorm.io/datatypes"
)

// SavedSearch a user's filtered home-page search, unique per exact query string
type SavedSearch struct {
	ID          uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID      uint           `gorm:"column:user_id;not null;uniqueIndex:idx_saved_search_user_query" json:"user_id"`
	SearchQuery string         `gorm:"column:search_query;size:512;not null;uniqueIndex:idx_saved_search_user_query" json:"search_query"`
	DepAirport  *string        `gorm:"column:dep_airport;size:64" json:"dep_airport"`
	ArrAirport  *string        `gorm:"column:arr_airport;size:64" json:"arr_airport"`
	Filters     datatypes.JSON `gorm:"column:filters" json:"filters"`
	CreatedAt   time.Time      `gorm:"column:created_at;index" json:"created_at"`
}

func (SavedSearch) TableName() string {
	return "saved_searches"
}
