package service

import (
	"Skyline/dao"
	"Skyline/dao/cache"
	"Skyline/models"
	"Skyline/pkg/errs"
	"Skyline/types"
	"context"
	"strings"
	"time"
)

var _ IReviewService = (*ReviewService)(nil)

type IReviewService interface {
	// List 航班最近 10 条评论（缓存）
	List(ctx context.Context, flightID string) ([]types.ReviewItem, error)
	// Post 发表或覆盖评论，返回最新评论列表
	Post(ctx context.Context, flightID string, userID uint, req *types.PostReviewRequest) ([]types.ReviewItem, error)
}

type ReviewService struct {
	ReviewDAO *dao.ReviewDAO
	FlightDAO *dao.FlightDAO
	Cache     *cache.Cache
}

func (s *ReviewService) List(ctx context.Context, flightID string) ([]types.ReviewItem, error) {
	return cache.Wrap(ctx, s.Cache, cache.FlightReviewsKey(flightID), cache.FlightReviewsTTL,
		func(ctx context.Context) ([]types.ReviewItem, error) {
			return s.latest(ctx, flightID)
		})
}

func (s *ReviewService) Post(ctx context.Context, flightID string, userID uint, req *types.PostReviewRequest) ([]types.ReviewItem, error) {
	if userID == 0 {
		return nil, errs.ErrAuthRequired
	}
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return nil, errs.Validation("comment is required")
	}
	if req.Score < models.MinReviewScore || req.Score > models.MaxReviewScore {
		return nil, errs.Validation("score must be between %d and %d", models.MinReviewScore, models.MaxReviewScore)
	}

	exist, err := s.FlightDAO.Exists(ctx, flightID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errs.NotFound("flight")
	}

	review := &models.Review{
		PassengerID: userID,
		FlightID:    flightID,
		CommentText: comment,
		Score:       req.Score,
		CreatedAt:   time.Now(),
	}
	if err := s.ReviewDAO.Upsert(ctx, review); err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, cache.FlightReviewsKey(flightID))

	return s.latest(ctx, flightID)
}

func (s *ReviewService) latest(ctx context.Context, flightID string) ([]types.ReviewItem, error) {
	reviews, err := s.ReviewDAO.Latest(ctx, flightID, dao.LatestReviewLimit)
	if err != nil {
		return nil, err
	}
	items := make([]types.ReviewItem, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, types.ReviewItem{
			CommentText: r.CommentText,
			Score:       r.Score,
			CreatedAt:   r.CreatedAt,
		})
	}
	return items, nil
}
