package config

const (
	CacheDriverRedis  = "redis"
	CacheDriverMemory = "memory"
)

// Cache read-through cache settings
type Cache struct {
	// Driver is "redis" (default) or "memory".
	Driver string `json:"driver" yaml:"driver"`
	// SingleFlight coalesces concurrent misses on the same key.
	SingleFlight bool `json:"single_flight" yaml:"single_flight"`
}

func ProvideCacheConfig(cfg *Config) *Cache {
	return cfg.Cache
}
