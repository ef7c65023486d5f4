package types

import "time"

type PostReviewRequest struct {
	Comment string `json:"comment"`
	Score   int    `json:"score"`
}

type ReviewItem struct {
	CommentText string    `json:"comment_text"`
	Score       int       `json:"score"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews []ReviewItem `json:"reviews"`
}
