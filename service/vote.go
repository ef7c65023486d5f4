package service

import (
	"Skyline/dao"
	"Skyline/dao/cache"
	"Skyline/models"
	"Skyline/pkg/errs"
	"Skyline/types"
	"context"
)

var _ IVoteService = (*VoteService)(nil)

type IVoteService interface {
	// Vote 点赞/点踩，同一用户重复投票覆盖之前的选择
	Vote(ctx context.Context, flightID string, userID uint, voteType string) (*types.VoteResponse, error)
}

type VoteService struct {
	VoteDAO   *dao.VoteDAO
	FlightDAO *dao.FlightDAO
	Cache     *cache.Cache
}

func (s *VoteService) Vote(ctx context.Context, flightID string, userID uint, voteType string) (*types.VoteResponse, error) {
	if userID == 0 {
		return nil, errs.ErrAuthRequired
	}
	if !models.IsValidVoteType(voteType) {
		return nil, errs.Validation("unknown vote type %q", voteType)
	}

	exist, err := s.FlightDAO.Exists(ctx, flightID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errs.NotFound("flight")
	}

	if err := s.VoteDAO.Upsert(ctx, flightID, userID, voteType); err != nil {
		return nil, err
	}
	counts, err := s.VoteDAO.Counts(ctx, flightID)
	if err != nil {
		return nil, err
	}

	// vote totals are part of every cached search payload
	s.Cache.Invalidate(ctx, cache.FlightSearchPattern)

	return &types.VoteResponse{
		Success: true,
		Counts:  types.VoteCounts{Likes: counts.Likes, Dislikes: counts.Dislikes},
		MyVote:  voteType,
	}, nil
}
