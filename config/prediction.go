package config

import "time"

// Prediction ML price-prediction collaborator
type Prediction struct {
	URL string `json:"url" yaml:"url"`
	// Timeout for /predict, seconds
	Timeout int `json:"timeout" yaml:"timeout"`
	// HealthTimeout for /health, seconds
	HealthTimeout int `json:"health_timeout" yaml:"health_timeout"`
}

func (p *Prediction) RequestTimeout() time.Duration {
	return time.Duration(p.Timeout) * time.Second
}

func (p *Prediction) HealthRequestTimeout() time.Duration {
	return time.Duration(p.HealthTimeout) * time.Second
}

func ProvidePredictionConfig(cfg *Config) *Prediction {
	return cfg.Prediction
}
