package service

import (
	"Skyline/dao"
	"Skyline/dao/cache"
	"Skyline/models"
	"Skyline/pkg/errs"
	"Skyline/pkg/log"
	"Skyline/pkg/utils"
	"Skyline/types"
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

var _ ISearchService = (*SearchService)(nil)

type ISearchService interface {
	// Search 按条件搜索航班，登录用户的有效搜索会被记录
	Search(ctx context.Context, userID uint, req *types.FlightSearchRequest) (*types.FlightSearchResponse, error)
}

// seedRoutes are shown when no route has been searched yet.
var seedRoutes = []models.PopularRoute{
	{DepAirport: "JFK", ArrAirport: "LAX", SearchCount: 1},
	{DepAirport: "ORD", ArrAirport: "SFO", SearchCount: 1},
	{DepAirport: "ATL", ArrAirport: "SEA", SearchCount: 0},
	{DepAirport: "DFW", ArrAirport: "DEN", SearchCount: 0},
	{DepAirport: "MIA", ArrAirport: "BOS", SearchCount: 0},
}

// filterTimeLayouts accepted for the from/to filters, in local time unless
// the layout carries a zone.
var filterTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

type SearchService struct {
	FlightDAO       *dao.FlightDAO
	PopularRouteDAO *dao.PopularRouteDAO
	SavedSearchDAO  *dao.SavedSearchDAO
	Cache           *cache.Cache
}

func (s *SearchService) Search(ctx context.Context, userID uint, req *types.FlightSearchRequest) (*types.FlightSearchResponse, error) {
	in := normalizeSearch(req)
	filter, err := toFlightFilter(in)
	if err != nil {
		return nil, err
	}

	key := cache.FlightSearchKey(in.Dep, in.Arr, in.Airline, in.From, in.To)
	payload, err := cache.Wrap(ctx, s.Cache, key, cache.FlightSearchTTL,
		func(ctx context.Context) (*types.FlightSearchPayload, error) {
			return s.load(ctx, filter)
		})
	if err != nil {
		return nil, err
	}

	// 记录搜索历史，不经过缓存
	if userID != 0 && hasSearchFilter(in) {
		if err := s.saveSearch(ctx, userID, in); err != nil {
			return nil, err
		}
	}

	resp := &types.FlightSearchResponse{
		Flights:       payload.Flights,
		Filters:       in,
		ResultsCount:  payload.ResultsCount,
		PopularRoutes: payload.PopularRoutes,
	}
	if userID != 0 {
		resp.User = &userID
	}
	return resp, nil
}

func (s *SearchService) load(ctx context.Context, filter dao.FlightFilter) (*types.FlightSearchPayload, error) {
	var (
		rows   []dao.FlightVoteRow
		routes []models.PopularRoute
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.FlightDAO.Search(gctx, filter, dao.FlightSearchLimit)
		return err
	})
	g.Go(func() error {
		top, err := s.PopularRouteDAO.Top(gctx, dao.TopRoutesLimit)
		if err != nil {
			log.L.Warn("popular routes unavailable, using seed list", zap.Error(err))
			return nil
		}
		routes = top
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(routes) == 0 {
		routes = append([]models.PopularRoute(nil), seedRoutes...)
	}

	flights := make([]types.FlightItem, 0, len(rows))
	for _, r := range rows {
		flights = append(flights, toFlightItem(r))
	}
	return &types.FlightSearchPayload{
		Flights:       flights,
		PopularRoutes: routes,
		ResultsCount:  len(flights),
	}, nil
}

func (s *SearchService) saveSearch(ctx context.Context, userID uint, in types.FlightSearchRequest) error {
	params := searchParams(in)
	filters, err := json.Marshal(in)
	if err != nil {
		return err
	}

	saved := &models.SavedSearch{
		UserID:      userID,
		SearchQuery: "/?" + params.Encode(),
		DepAirport:  optional(in.Dep),
		ArrAirport:  optional(in.Arr),
		Filters:     datatypes.JSON(filters),
		CreatedAt:   time.Now(),
	}
	return s.SavedSearchDAO.Upsert(ctx, saved)
}

func toFlightItem(r dao.FlightVoteRow) types.FlightItem {
	item := types.FlightItem{
		FlightID:           r.FlightID,
		Airline:            r.AirlineName,
		Status:             r.Status,
		Date:               types.NotAvailable,
		ScheduledDeparture: types.NotAvailable,
		DepartureAirport:   r.DepartureAirportName,
		ScheduledArrival:   types.NotAvailable,
		ArrivalAirport:     r.ArrivalAirportName,
		Likes:              r.Likes,
		Dislikes:           r.Dislikes,
	}
	if !r.ScheduledDeparture.IsZero() {
		item.Date = r.ScheduledDeparture.Format(time.DateOnly)
		item.ScheduledDeparture = r.ScheduledDeparture.Format(time.RFC3339)
	}
	if !r.ScheduledArrival.IsZero() {
		item.ScheduledArrival = r.ScheduledArrival.Format(time.RFC3339)
	}
	return item
}

func normalizeSearch(req *types.FlightSearchRequest) types.FlightSearchRequest {
	if req == nil {
		return types.FlightSearchRequest{}
	}
	return types.FlightSearchRequest{
		Dep:     strings.TrimSpace(req.Dep),
		Arr:     strings.TrimSpace(req.Arr),
		Airline: strings.TrimSpace(req.Airline),
		From:    strings.TrimSpace(req.From),
		To:      strings.TrimSpace(req.To),
	}
}

func hasSearchFilter(in types.FlightSearchRequest) bool {
	return utils.AnyNonBlank(in.Dep, in.Arr, in.Airline, in.From, in.To)
}

// searchParams the non-blank filters; Encode sorts them by name.
func searchParams(in types.FlightSearchRequest) url.Values {
	v := url.Values{}
	for name, val := range map[string]string{
		"dep": in.Dep, "arr": in.Arr, "airline": in.Airline, "from": in.From, "to": in.To,
	} {
		if val != "" {
			v.Set(name, val)
		}
	}
	return v
}

func toFlightFilter(in types.FlightSearchRequest) (dao.FlightFilter, error) {
	f := dao.FlightFilter{Dep: in.Dep, Arr: in.Arr, Airline: in.Airline}
	var err error
	if f.From, err = parseFilterTime("from", in.From); err != nil {
		return f, err
	}
	if f.To, err = parseFilterTime("to", in.To); err != nil {
		return f, err
	}
	return f, nil
}

func parseFilterTime(name, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range filterTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, errs.Validation("invalid %s date %q", name, s)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
