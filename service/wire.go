package service

import (
	"Skyline/pkg/predictor"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(SearchService), "*"),
	wire.Bind(new(ISearchService), new(*SearchService)),

	wire.Struct(new(PopularityService), "*"),
	wire.Bind(new(IPopularityService), new(*PopularityService)),

	wire.Struct(new(VoteService), "*"),
	wire.Bind(new(IVoteService), new(*VoteService)),

	wire.Struct(new(ReviewService), "*"),
	wire.Bind(new(IReviewService), new(*ReviewService)),

	predictor.NewClient,
	wire.Bind(new(Predictor), new(*predictor.Client)),
	wire.Struct(new(PredictionService), "*"),
	wire.Bind(new(IPredictionService), new(*PredictionService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(ManualFlightService), "*"),
	wire.Bind(new(IManualFlightService), new(*ManualFlightService)),

	wire.Struct(new(SavedSearchService), "*"),
	wire.Bind(new(ISavedSearchService), new(*SavedSearchService)),

	wire.Struct(new(AirportService), "*"),
	wire.Bind(new(IAirportService), new(*AirportService)),
)
