package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewPassengerDAO,
	NewAirportDAO,
	NewFlightDAO,
	NewVoteDAO,
	NewReviewDAO,
	NewSavedSearchDAO,
	NewManualFlightDAO,
	NewPopularRouteDAO,
)
