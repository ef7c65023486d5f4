package service

import (
	"Skyline/dao/cache"
	"Skyline/models"
	"Skyline/pkg/errs"
	"Skyline/types"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchService_Search(t *testing.T) {
	env := newTestEnv(t)
	addFlight(t, env.db, "AA100", "American Airlines", "JFK", "LAX", 1)
	addFlight(t, env.db, "UA200", "United Airlines", "ORD", "SFO", 2)
	svc := env.searchService()

	resp, err := svc.Search(context.Background(), 0, &types.FlightSearchRequest{Dep: " jfk "})
	require.NoError(t, err)
	require.Len(t, resp.Flights, 1)
	assert.Equal(t, 1, resp.ResultsCount)
	assert.Nil(t, resp.User)
	assert.Equal(t, "jfk", resp.Filters.Dep)

	f := resp.Flights[0]
	assert.Equal(t, "AA100", f.FlightID)
	assert.Equal(t, "American Airlines", f.Airline)
	assert.Equal(t, "2025-05-01", f.Date)
	assert.Equal(t, "LAX Airport", f.ArrivalAirport)
	assert.Zero(t, f.Likes)

	assert.True(t, env.mr.Exists("flights:jfk:any:any:any:any"))
}

func TestSearchService_ServesCachedPayloadUntilInvalidated(t *testing.T) {
	env := newTestEnv(t)
	addFlight(t, env.db, "AA100", "American Airlines", "JFK", "LAX", 1)
	svc := env.searchService()
	ctx := context.Background()
	req := &types.FlightSearchRequest{Dep: "JFK"}

	first, err := svc.Search(ctx, 0, req)
	require.NoError(t, err)
	require.Len(t, first.Flights, 1)

	addFlight(t, env.db, "AA101", "American Airlines", "JFK", "MIA", 2)

	second, err := svc.Search(ctx, 0, req)
	require.NoError(t, err)
	assert.Len(t, second.Flights, 1, "within TTL the cached payload is served")

	env.cache.Invalidate(ctx, cache.FlightSearchPattern)

	third, err := svc.Search(ctx, 0, req)
	require.NoError(t, err)
	assert.Len(t, third.Flights, 2)
}

func TestSearchService_FallsBackWhenCacheIsDown(t *testing.T) {
	env := newTestEnv(t)
	addFlight(t, env.db, "AA100", "American Airlines", "JFK", "LAX", 1)
	env.mr.Close()

	resp, err := env.searchService().Search(context.Background(), 0, &types.FlightSearchRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Flights, 1)
}

func TestSearchService_PopularRoutes(t *testing.T) {
	env := newTestEnv(t)
	svc := env.searchService()
	ctx := context.Background()

	resp, err := svc.Search(ctx, 0, &types.FlightSearchRequest{})
	require.NoError(t, err)
	require.Len(t, resp.PopularRoutes, 5)
	assert.Equal(t, models.PopularRoute{DepAirport: "JFK", ArrAirport: "LAX", SearchCount: 1}, resp.PopularRoutes[0])
	assert.Equal(t, "MIA", resp.PopularRoutes[4].DepAirport)

	require.NoError(t, env.popularityService().RecordRouteSearch(ctx, "sea", "bos"))

	resp, err = svc.Search(ctx, 0, &types.FlightSearchRequest{})
	require.NoError(t, err)
	require.Len(t, resp.PopularRoutes, 1)
	assert.Equal(t, "SEA", resp.PopularRoutes[0].DepAirport)
	assert.Equal(t, int64(1), resp.PopularRoutes[0].SearchCount)
}

func TestSearchService_SavedSearchSideEffect(t *testing.T) {
	env := newTestEnv(t)
	addFlight(t, env.db, "DL300", "Delta Air Lines", "ATL", "SEA", 1)
	svc := env.searchService()
	ctx := context.Background()

	countSaved := func() int64 {
		var n int64
		require.NoError(t, env.db.Model(&models.SavedSearch{}).Count(&n).Error)
		return n
	}

	// anonymous and unfiltered searches are not recorded
	_, err := svc.Search(ctx, 0, &types.FlightSearchRequest{Dep: "ATL"})
	require.NoError(t, err)
	_, err = svc.Search(ctx, 9, &types.FlightSearchRequest{Dep: "  "})
	require.NoError(t, err)
	assert.Zero(t, countSaved())

	req := &types.FlightSearchRequest{Dep: "ATL", Airline: "Delta"}
	resp, err := svc.Search(ctx, 9, req)
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, uint(9), *resp.User)

	// the second call is a cache hit but still refreshes the saved search
	_, err = svc.Search(ctx, 9, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), countSaved())

	var saved models.SavedSearch
	require.NoError(t, env.db.First(&saved).Error)
	assert.Equal(t, "/?airline=Delta&dep=ATL", saved.SearchQuery)
	require.NotNil(t, saved.DepAirport)
	assert.Equal(t, "ATL", *saved.DepAirport)
	assert.Nil(t, saved.ArrAirport)
	assert.JSONEq(t, `{"dep":"ATL","airline":"Delta"}`, string(saved.Filters))
}

func TestSearchService_DateFilters(t *testing.T) {
	env := newTestEnv(t)
	addFlight(t, env.db, "AA100", "American Airlines", "JFK", "LAX", 1)
	addFlight(t, env.db, "AA200", "American Airlines", "JFK", "LAX", 5)
	svc := env.searchService()
	ctx := context.Background()

	resp, err := svc.Search(ctx, 0, &types.FlightSearchRequest{From: "2025-05-03"})
	require.NoError(t, err)
	require.Len(t, resp.Flights, 1)
	assert.Equal(t, "AA200", resp.Flights[0].FlightID)

	resp, err = svc.Search(ctx, 0, &types.FlightSearchRequest{To: "2025-05-01T08:00"})
	require.NoError(t, err)
	require.Len(t, resp.Flights, 1)
	assert.Equal(t, "AA100", resp.Flights[0].FlightID)

	_, err = svc.Search(ctx, 0, &types.FlightSearchRequest{From: "next tuesday"})
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestSearchParams_SortedNonBlank(t *testing.T) {
	v := searchParams(types.FlightSearchRequest{To: "2025-05-02", Dep: "JFK", Arr: ""})
	assert.Equal(t, "dep=JFK&to=2025-05-02", v.Encode())
}

func TestParseFilterTime(t *testing.T) {
	for _, s := range []string{
		"2025-05-01",
		"2025-05-01T10:30",
		"2025-05-01T10:30:15",
		"2025-05-01 10:30",
		"2025-05-01 10:30:15",
		"2025-05-01T10:30:15Z",
	} {
		got, err := parseFilterTime("from", s)
		require.NoError(t, err, s)
		require.NotNil(t, got, s)
		assert.Equal(t, 2025, got.Year())
	}

	got, err := parseFilterTime("from", "")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseFilterTime("to", "05/01/2025")
	assert.ErrorIs(t, err, errs.ErrValidation)
}
