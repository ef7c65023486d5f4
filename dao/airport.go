package dao

import (
	"Skyline/models"
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const AutocompleteLimit = 30

type AirportDAO struct {
	Repo[models.Airport]
}

func NewAirportDAO(db *gorm.DB) *AirportDAO {
	return &AirportDAO{Repo: NewRepo[models.Airport](db)}
}

// Coordinates 所有机场的代码与经纬度
func (d *AirportDAO) Coordinates(ctx context.Context) ([]models.Airport, error) {
	items := make([]models.Airport, 0)
	err := d.Db.WithContext(ctx).
		Select("airport_id", "latitude", "longitude").
		Order("airport_id ASC").
		Find(&items).Error
	return items, err
}

// Autocomplete ranks exact code matches first, then code prefixes, then
// name matches, ties broken by name.
func (d *AirportDAO) Autocomplete(ctx context.Context, query string, limit int) ([]models.Airport, error) {
	items := make([]models.Airport, 0)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items, nil
	}
	contains := "%" + q + "%"
	prefix := q + "%"

	err := d.Db.WithContext(ctx).
		Where("LOWER(airport_id) LIKE ? OR LOWER(name) LIKE ?", contains, contains).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL: `CASE
				WHEN LOWER(airport_id) = ? THEN 0
				WHEN LOWER(airport_id) LIKE ? THEN 1
				ELSE 2 END, name ASC`,
			Vars:               []any{q, prefix},
			WithoutParentheses: true,
		}}).
		Limit(limit).
		Find(&items).Error
	return items, err
}
