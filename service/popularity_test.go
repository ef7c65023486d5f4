package service

import (
	"Skyline/dao"
	"Skyline/dao/cache"
	"Skyline/models"
	"Skyline/pkg/errs"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopularityService_RecordRouteSearch(t *testing.T) {
	env := newTestEnv(t)
	svc := env.popularityService()
	ctx := context.Background()

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, svc.RecordRouteSearch(ctx, "jfk", " lax"))
	}

	route, err := dao.NewPopularRouteDAO(env.db).Get(ctx, "JFK", "LAX")
	require.NoError(t, err)
	require.NotNil(t, route)
	assert.Equal(t, int64(n), route.SearchCount)

	var rows int64
	require.NoError(t, env.db.Model(&models.PopularRoute{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestPopularityService_RecordRouteSearchValidates(t *testing.T) {
	env := newTestEnv(t)
	svc := env.popularityService()

	assert.ErrorIs(t, svc.RecordRouteSearch(context.Background(), "", "LAX"), errs.ErrValidation)
	assert.ErrorIs(t, svc.RecordRouteSearch(context.Background(), "JFK", "  "), errs.ErrValidation)
}

func TestPopularityService_RecordRouteSearchInvalidates(t *testing.T) {
	env := newTestEnv(t)
	svc := env.popularityService()

	for _, k := range []string{
		cache.PopularAirportsKey,
		cache.PopularRoutesKey,
		"flights:any:any:any:any:any",
		"flights:JFK:LAX:any:any:any",
		"flight_reviews:AA100",
	} {
		require.NoError(t, env.mr.Set(k, "{}"))
	}

	require.NoError(t, svc.RecordRouteSearch(context.Background(), "JFK", "LAX"))

	assert.False(t, env.mr.Exists(cache.PopularAirportsKey))
	assert.False(t, env.mr.Exists(cache.PopularRoutesKey))
	assert.False(t, env.mr.Exists("flights:any:any:any:any:any"))
	assert.False(t, env.mr.Exists("flights:JFK:LAX:any:any:any"))
	assert.True(t, env.mr.Exists("flight_reviews:AA100"))
}

func TestPopularityService_PopularAirports(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.db.Create(&[]models.Airport{
		{AirportID: "JFK", Name: "John F. Kennedy", Latitude: 40.64, Longitude: -73.78},
		{AirportID: "LAX", Name: "Los Angeles", Latitude: 33.94, Longitude: -118.41},
	}).Error)
	svc := env.popularityService()
	ctx := context.Background()

	resp, err := svc.PopularAirports(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Airports, 2)
	assert.Equal(t, "JFK", resp.Airports[0].AirportID)
	assert.InDelta(t, 40.64, resp.Airports[0].Latitude, 0.001)
	assert.Empty(t, resp.Routes)
	assert.True(t, env.mr.Exists(cache.PopularAirportsKey))

	require.NoError(t, svc.RecordRouteSearch(ctx, "JFK", "LAX"))

	resp, err = svc.PopularAirports(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Routes, 1)
	assert.Equal(t, int64(1), resp.Routes[0].SearchCount)
}

func TestPopularityService_PopularMapIsUncached(t *testing.T) {
	env := newTestEnv(t)
	routes := dao.NewPopularRouteDAO(env.db)
	svc := env.popularityService()
	ctx := context.Background()

	require.NoError(t, routes.Increment(ctx, "ORD", "SFO"))
	resp, err := svc.PopularMap(ctx)
	require.NoError(t, err)
	assert.Len(t, resp.Routes, 1)

	// written behind the service's back, still visible
	require.NoError(t, routes.Increment(ctx, "ATL", "SEA"))
	resp, err = svc.PopularMap(ctx)
	require.NoError(t, err)
	assert.Len(t, resp.Routes, 2)
}
