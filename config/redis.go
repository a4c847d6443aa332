package config

import (
	"fmt"
	"time"
)

// RedisConfig 缓存配置
type RedisConfig struct {
	Host     string `json:"host" yaml:"host"`         // Redis 地址
	Port     int    `json:"port" yaml:"port"`         // Redis 端口
	Password string `json:"password" yaml:"password"` // 密码（可为空）
	DB       int    `json:"db" yaml:"db"`             // 库编号

	// 连接池配置
	PoolSize     int           `json:"poolSize" yaml:"poolSize"`         // 连接池大小
	MinIdleConns int           `json:"minIdleConns" yaml:"minIdleConns"` // 最小空闲连接数
	DialTimeout  time.Duration `json:"dialTimeout" yaml:"dialTimeout"`   // 建连超时
	ReadTimeout  time.Duration `json:"readTimeout" yaml:"readTimeout"`   // 读超时
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"` // 写超时
}

// Addr 返回 host:port 形式的地址
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DefaultRedisConfig 返回本地开发的默认配置
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:         "redis",
		Port:         6379,
		Password:     "",
		DB:           0,
		PoolSize:     64,
		MinIdleConns: 8,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// RedisConfigFromEnv 在默认配置的基础上套用环境变量覆盖
func RedisConfigFromEnv() RedisConfig {
	cfg := DefaultRedisConfig()
	cfg.Host = envString("REDIS_HOST", cfg.Host)
	cfg.Port = envInt("REDIS_PORT", cfg.Port)
	cfg.Password = envString("REDIS_PASSWORD", cfg.Password)
	cfg.DB = envInt("REDIS_DB", cfg.DB)
	return cfg
}
