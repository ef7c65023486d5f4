package dao

import (
	"Skyline/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const LatestReviewLimit = 10

type ReviewDAO struct {
	Repo[models.Review]
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{Repo: NewRepo[models.Review](db)}
}

// Upsert stores the passenger's review; a resubmission replaces comment,
// score and timestamp.
func (d *ReviewDAO) Upsert(ctx context.Context, review *models.Review) error {
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "passenger_id"}, {Name: "flight_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"comment_text", "score", "created_at"}),
		}).
		Create(review).Error
}

// Latest 航班最新评论
func (d *ReviewDAO) Latest(ctx context.Context, flightID string, limit int) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	err := d.Db.WithContext(ctx).
		Where("flight_id = ?", flightID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}
