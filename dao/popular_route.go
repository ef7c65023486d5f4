package dao

import (
	"Skyline/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	TopRoutesLimit = 10
	MapRoutesLimit = 100
)

type PopularRouteDAO struct {
	Repo[models.PopularRoute]
}

func NewPopularRouteDAO(db *gorm.DB) *PopularRouteDAO {
	return &PopularRouteDAO{Repo: NewRepo[models.PopularRoute](db)}
}

// Increment adds one to the route's counter, creating it at 1.
func (d *PopularRouteDAO) Increment(ctx context.Context, dep, arr string) error {
	route := models.PopularRoute{DepAirport: dep, ArrAirport: arr, SearchCount: 1}
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "dep_airport"}, {Name: "arr_airport"}},
			DoUpdates: clause.Assignments(map[string]any{
				"search_count": gorm.Expr("search_count + 1"),
			}),
		}).
		Create(&route).Error
}

// Top 搜索次数最多的航线
func (d *PopularRouteDAO) Top(ctx context.Context, limit int) ([]models.PopularRoute, error) {
	routes := make([]models.PopularRoute, 0)
	err := d.Db.WithContext(ctx).
		Order("search_count DESC").
		Order("id ASC").
		Limit(limit).
		Find(&routes).Error
	return routes, err
}

func (d *PopularRouteDAO) Get(ctx context.Context, dep, arr string) (*models.PopularRoute, error) {
	return d.FindOne(ctx, "dep_airport = ? AND arr_airport = ?", dep, arr)
}
