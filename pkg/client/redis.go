package client

import (
	"Skyline/config"
	"Skyline/pkg/log"
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to Redis. A failed ping is logged but not fatal:
// the cache layer degrades to direct store reads while Redis is down.
func NewRedisClient(conf *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr(),
		Password: conf.Redis.Password,
		Username: conf.Redis.Username,
		DB:       conf.Redis.Database,
	})
	if _, err := client.Ping(context.TODO()).Result(); err != nil {
		log.L.Error("connect redis error", zap.Error(err))
		return client
	}
	log.L.Info("redis client success")
	return client
}
