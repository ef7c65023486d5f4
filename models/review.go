package models

import "time"

const (
	MinReviewScore = 1
	MaxReviewScore = 5
)

// Review latest review of a passenger for a flight
type Review struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PassengerID uint      `gorm:"column:passenger_id;not null;uniqueIndex:idx_review_passenger_flight" json:"passenger_id"`
	FlightID    string    `gorm:"column:flight_id;size:32;not null;uniqueIndex:idx_review_passenger_flight;index:idx_review_flight_created" json:"flight_id"`
	CommentText string    `gorm:"column:comment_text;type:text" json:"comment_text"`
	Score       int       `gorm:"column:score;not null" json:"score"`
	CreatedAt   time.Time `gorm:"column:created_at;index:idx_review_flight_created" json:"created_at"`
}

func (Review) TableName() string {
	return "review"
}
