package dao

import (
	"Skyline/models"
	"context"

	"gorm.io/gorm"
)

const ManualFlightListLimit = 10

type ManualFlightDAO struct {
	Repo[models.ManualFlight]
}

func NewManualFlightDAO(db *gorm.DB) *ManualFlightDAO {
	return &ManualFlightDAO{Repo: NewRepo[models.ManualFlight](db)}
}

// ListByUser 用户手动添加的航班，最新的在前
func (d *ManualFlightDAO) ListByUser(ctx context.Context, userID uint, limit int) ([]models.ManualFlight, error) {
	items := make([]models.ManualFlight, 0)
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (d *ManualFlightDAO) GetForUser(ctx context.Context, id uint64, userID uint) (*models.ManualFlight, error) {
	return d.FindOne(ctx, "id = ? AND user_id = ?", id, userID)
}

// UpdateForUser overwrites the editable columns of a row owned by userID.
// Returns false when no such row exists.
func (d *ManualFlightDAO) UpdateForUser(ctx context.Context, id uint64, userID uint, mf *models.ManualFlight) (bool, error) {
	res := d.Db.WithContext(ctx).
		Model(&models.ManualFlight{}).
		Where("id = ? AND user_id = ?", id, userID).
		Select("flight_id", "airline", "departure", "arrival", "dep_airport", "arr_airport", "note").
		Updates(mf)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	// MySQL reports 0 affected rows when nothing changed
	return d.IsExist(ctx, "id = ? AND user_id = ?", id, userID)
}

func (d *ManualFlightDAO) DeleteForUser(ctx context.Context, id uint64, userID uint) (bool, error) {
	res := d.Db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.ManualFlight{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
