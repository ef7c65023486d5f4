package service

import (
	"Skyline/dao"
	"Skyline/models"
	"Skyline/pkg/errs"
	"context"
)

var _ ISavedSearchService = (*SavedSearchService)(nil)

type ISavedSearchService interface {
	// Recent 最近 10 条搜索记录
	Recent(ctx context.Context, userID uint) ([]models.SavedSearch, error)
	// SearchAgain 返回保存的搜索地址
	SearchAgain(ctx context.Context, userID uint, id uint64) (string, error)
}

type SavedSearchService struct {
	SavedSearchDAO *dao.SavedSearchDAO
}

func (s *SavedSearchService) Recent(ctx context.Context, userID uint) ([]models.SavedSearch, error) {
	if userID == 0 {
		return nil, errs.ErrAuthRequired
	}
	return s.SavedSearchDAO.Recent(ctx, userID, dao.RecentSavedSearchLimit)
}

func (s *SavedSearchService) SearchAgain(ctx context.Context, userID uint, id uint64) (string, error) {
	if userID == 0 {
		return "", errs.ErrAuthRequired
	}
	saved, err := s.SavedSearchDAO.GetForUser(ctx, id, userID)
	if err != nil {
		return "", err
	}
	if saved == nil {
		return "", errs.NotFound("search")
	}
	return saved.SearchQuery, nil
}
