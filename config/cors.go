package config

type Cors struct {
	Origins []string `json:"origins" yaml:"origins"`
}
