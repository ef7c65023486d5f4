package config

import "time"

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// ExpiresTime session lifetime in seconds
	ExpiresTime int64 `json:"expires_time" yaml:"expires_time"`
}

func (j *Jwt) Expiry() time.Duration {
	return time.Duration(j.ExpiresTime) * time.Second
}

func ProvideJwtConfig(cfg *Config) *Jwt {
	return cfg.Jwt
}
