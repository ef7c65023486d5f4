package config

import (
	"net"
	"strconv"
)

// Redis Redis配置信息
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
}

// Addr host:port
func (r *Redis) Addr() string {
	return net.JoinHostPort(r.Address, strconv.Itoa(r.Port))
}
