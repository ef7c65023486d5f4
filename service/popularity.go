package service

import (
	"Skyline/dao"
	"Skyline/dao/cache"
	"Skyline/models"
	"Skyline/pkg/errs"
	"Skyline/types"
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

var _ IPopularityService = (*PopularityService)(nil)

type IPopularityService interface {
	// RecordRouteSearch 航线搜索计数 +1
	RecordRouteSearch(ctx context.Context, dep, arr string) error
	// PopularAirports 机场坐标与热门航线（缓存）
	PopularAirports(ctx context.Context) (*types.PopularAirportsResponse, error)
	// PopularMap 热力图数据，不缓存
	PopularMap(ctx context.Context) (*types.PopularAirportsResponse, error)
}

type PopularityService struct {
	PopularRouteDAO *dao.PopularRouteDAO
	AirportDAO      *dao.AirportDAO
	Cache           *cache.Cache
}

func (s *PopularityService) RecordRouteSearch(ctx context.Context, dep, arr string) error {
	dep = strings.ToUpper(strings.TrimSpace(dep))
	arr = strings.ToUpper(strings.TrimSpace(arr))
	if dep == "" || arr == "" {
		return errs.Validation("missing dep or arr")
	}

	if err := s.PopularRouteDAO.Increment(ctx, dep, arr); err != nil {
		return err
	}

	// search payloads embed the top routes
	s.Cache.Invalidate(ctx, cache.PopularAirportsKey, cache.PopularRoutesKey, cache.FlightSearchPattern)
	return nil
}

func (s *PopularityService) PopularAirports(ctx context.Context) (*types.PopularAirportsResponse, error) {
	return cache.Wrap(ctx, s.Cache, cache.PopularAirportsKey, cache.PopularAirportsTTL,
		func(ctx context.Context) (*types.PopularAirportsResponse, error) {
			return s.airportsAndRoutes(ctx, dao.TopRoutesLimit)
		})
}

func (s *PopularityService) PopularMap(ctx context.Context) (*types.PopularAirportsResponse, error) {
	return s.airportsAndRoutes(ctx, dao.MapRoutesLimit)
}

func (s *PopularityService) airportsAndRoutes(ctx context.Context, routeLimit int) (*types.PopularAirportsResponse, error) {
	var (
		airports []models.Airport
		routes   []models.PopularRoute
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		airports, err = s.AirportDAO.Coordinates(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		routes, err = s.PopularRouteDAO.Top(gctx, routeLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	points := make([]types.AirportPoint, 0, len(airports))
	for _, a := range airports {
		points = append(points, types.AirportPoint{
			AirportID: a.AirportID,
			Latitude:  a.Latitude,
			Longitude: a.Longitude,
		})
	}
	return &types.PopularAirportsResponse{Airports: points, Routes: routes}, nil
}
