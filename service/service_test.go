package service

import (
	"Skyline/config"
	"Skyline/dao"
	"Skyline/dao/cache"
	"Skyline/models"
	"Skyline/pkg/database/dbtest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db    *gorm.DB
	mr    *miniredis.Miniredis
	cache *cache.Cache
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rds.Close() })

	return &testEnv{
		db:    dbtest.New(t),
		mr:    mr,
		cache: cache.New(cache.NewRedisStore(rds), &config.Cache{}),
	}
}

func (e *testEnv) searchService() *SearchService {
	return &SearchService{
		FlightDAO:       dao.NewFlightDAO(e.db),
		PopularRouteDAO: dao.NewPopularRouteDAO(e.db),
		SavedSearchDAO:  dao.NewSavedSearchDAO(e.db),
		Cache:           e.cache,
	}
}

func (e *testEnv) popularityService() *PopularityService {
	return &PopularityService{
		PopularRouteDAO: dao.NewPopularRouteDAO(e.db),
		AirportDAO:      dao.NewAirportDAO(e.db),
		Cache:           e.cache,
	}
}

func (e *testEnv) voteService() *VoteService {
	return &VoteService{
		VoteDAO:   dao.NewVoteDAO(e.db),
		FlightDAO: dao.NewFlightDAO(e.db),
		Cache:     e.cache,
	}
}

func (e *testEnv) reviewService() *ReviewService {
	return &ReviewService{
		ReviewDAO: dao.NewReviewDAO(e.db),
		FlightDAO: dao.NewFlightDAO(e.db),
		Cache:     e.cache,
	}
}

func localTime(day, hour int) time.Time {
	return time.Date(2025, time.May, day, hour, 0, 0, 0, time.Local)
}

func addFlight(t *testing.T, db *gorm.DB, id, airline, dep, arr string, day int) {
	t.Helper()
	require.NoError(t, db.Create(&models.Flight{
		FlightID:             id,
		AirlineName:          airline,
		Status:               "scheduled",
		ScheduledDeparture:   localTime(day, 8),
		ScheduledArrival:     localTime(day, 12),
		DepartureAirportID:   dep,
		DepartureAirportName: dep + " Airport",
		ArrivalAirportID:     arr,
		ArrivalAirportName:   arr + " Airport",
	}).Error)
}
