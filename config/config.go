package config

import (
	"Skyline/pkg/utils"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App        *App        `json:"app" yaml:"app"`
	Server     *Server     `json:"server" yaml:"server"`
	MySQL      *MySQL      `json:"mysql" yaml:"mysql"`
	Redis      *Redis      `json:"redis" yaml:"redis"`
	Cache      *Cache      `json:"cache" yaml:"cache"`
	Jwt        *Jwt        `json:"jwt" yaml:"jwt"`
	Cors       *Cors       `json:"cors" yaml:"cors"`
	Prediction *Prediction `json:"prediction" yaml:"prediction"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New reads a YAML config file. ${VAR} placeholders are expanded from the
// process environment before decoding.
func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}
	return conf
}

// Parse decodes YAML content and fills defaults for omitted sections.
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(content))), &conf); err != nil {
		return nil, err
	}
	conf.applyDefaults()
	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 3000
	}
	if c.MySQL == nil {
		c.MySQL = &MySQL{}
	}
	if c.Redis == nil {
		c.Redis = &Redis{Address: "localhost", Port: 6379}
	}
	if c.Cache == nil {
		c.Cache = &Cache{}
	}
	if c.Cache.Driver == "" {
		c.Cache.Driver = CacheDriverRedis
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	c.Jwt.Secret = utils.OrDefault(c.Jwt.Secret, "default-secret")
	if c.Jwt.ExpiresTime == 0 {
		c.Jwt.ExpiresTime = 24 * 60 * 60
	}
	if c.Cors == nil {
		c.Cors = &Cors{}
	}
	if len(c.Cors.Origins) == 0 {
		c.Cors.Origins = []string{"http://localhost:5173"}
	}
	if c.Prediction == nil {
		c.Prediction = &Prediction{}
	}
	c.Prediction.URL = utils.OrDefault(c.Prediction.URL, "http://ml-service:5001")
	if c.Prediction.Timeout == 0 {
		c.Prediction.Timeout = 5
	}
	if c.Prediction.HealthTimeout == 0 {
		c.Prediction.HealthTimeout = 3
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
