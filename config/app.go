package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// Production switches the session cookie to Secure.
	Production bool `json:"production" yaml:"production"`
}
