package dao

import (
	"Skyline/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VoteCounts like/dislike totals of one flight
type VoteCounts struct {
	Likes    int64 `gorm:"column:likes" json:"likes"`
	Dislikes int64 `gorm:"column:dislikes" json:"dislikes"`
}

type VoteDAO struct {
	Repo[models.Vote]
}

func NewVoteDAO(db *gorm.DB) *VoteDAO {
	return &VoteDAO{Repo: NewRepo[models.Vote](db)}
}

// Upsert sets the user's vote on a flight, replacing any earlier vote in the
// same statement.
func (d *VoteDAO) Upsert(ctx context.Context, flightID string, userID uint, voteType string) error {
	vote := models.Vote{
		FlightID:  flightID,
		UserID:    userID,
		VoteType:  voteType,
		UpdatedAt: time.Now(),
	}
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "flight_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"vote_type", "updated_at"}),
		}).
		Create(&vote).Error
}

// Counts 统计航班点赞/点踩数
func (d *VoteDAO) Counts(ctx context.Context, flightID string) (VoteCounts, error) {
	var counts VoteCounts
	err := d.Db.WithContext(ctx).
		Model(&models.Vote{}).
		Select(`COALESCE(SUM(CASE WHEN vote_type = 'like' THEN 1 ELSE 0 END), 0) AS likes,
			COALESCE(SUM(CASE WHEN vote_type = 'dislike' THEN 1 ELSE 0 END), 0) AS dislikes`).
		Where("flight_id = ?", flightID).
		Scan(&counts).Error
	return counts, err
}
