package dao

import (
	"Skyline/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const RecentSavedSearchLimit = 10

type SavedSearchDAO struct {
	Repo[models.SavedSearch]
}

func NewSavedSearchDAO(db *gorm.DB) *SavedSearchDAO {
	return &SavedSearchDAO{Repo: NewRepo[models.SavedSearch](db)}
}

// Upsert records the search; repeating the same query only refreshes its timestamp.
func (d *SavedSearchDAO) Upsert(ctx context.Context, s *models.SavedSearch) error {
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "search_query"}},
			DoUpdates: clause.AssignmentColumns([]string{"created_at"}),
		}).
		Create(s).Error
}

// Recent 用户最近的搜索记录
func (d *SavedSearchDAO) Recent(ctx context.Context, userID uint, limit int) ([]models.SavedSearch, error) {
	items := make([]models.SavedSearch, 0)
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (d *SavedSearchDAO) GetForUser(ctx context.Context, id uint64, userID uint) (*models.SavedSearch, error) {
	return d.FindOne(ctx, "id = ? AND user_id = ?", id, userID)
}
