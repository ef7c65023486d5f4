//go:build wireinject
// +build wireinject

package main

import (
	"Skyline/config"
	"Skyline/dao"
	"Skyline/dao/cache"
	"Skyline/handler"
	"Skyline/pkg/client"
	"Skyline/pkg/database"
	"Skyline/pkg/server"
	"Skyline/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		config.ProvideCacheConfig,
		config.ProvideJwtConfig,
		config.ProvidePredictionConfig,

		client.NewRedisClient,
		database.NewDB,
		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Flight), "*"),
		wire.Struct(new(handler.Prediction), "*"),
		wire.Struct(new(handler.PopularMap), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.ManualFlight), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil
}
