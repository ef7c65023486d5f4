package models

import "time"

const (
	VoteLike    = "like"
	VoteDislike = "dislike"
)

// Vote one like/dislike per (flight, user); a new vote overwrites the old one.
type Vote struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FlightID  string    `gorm:"column:flight_id;size:32;not null;uniqueIndex:idx_vote_flight_user" json:"flight_id"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_vote_flight_user" json:"user_id"`
	VoteType  string    `gorm:"column:vote_type;size:8;not null" json:"vote_type"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Vote) TableName() string {
	return "review_votes"
}

// IsValidVoteType reports whether t is like or dislike.
func IsValidVoteType(t string) bool {
	return t == VoteLike || t == VoteDislike
}
