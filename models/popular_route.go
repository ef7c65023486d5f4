package models

// PopularRoute cumulative explicit-search counter per (origin, destination)
type PopularRoute struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	DepAirport  string `gorm:"column:dep_airport;size:8;not null;uniqueIndex:idx_popular_route" json:"dep_airport"`
	ArrAirport  string `gorm:"column:arr_airport;size:8;not null;uniqueIndex:idx_popular_route" json:"arr_airport"`
	SearchCount int64  `gorm:"column:search_count;not null;default:0;index" json:"search_count"`
}

func (PopularRoute) TableName() string {
	return "popular_routes"
}
