package config

import "time"

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Host            string        `json:"host" yaml:"host"`                       // 监听地址
	Port            int           `json:"port" yaml:"port"`                       // 监听端口
	Mode            string        `json:"mode" yaml:"mode"`                       // gin 运行模式: debug / release / test
	ReadTimeout     time.Duration `json:"readTimeout" yaml:"readTimeout"`         // 读超时
	WriteTimeout    time.Duration `json:"writeTimeout" yaml:"writeTimeout"`       // 写超时
	HandlerTimeout  time.Duration `json:"handlerTimeout" yaml:"handlerTimeout"`   // 业务处理超时（超时中间件使用）
	ShutdownTimeout time.Duration `json:"shutdownTimeout" yaml:"shutdownTimeout"` // 优雅退出等待时间
}

// DefaultServerConfig 返回本地开发的默认配置
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:            "0.0.0.0",
		Port:            8000,
		Mode:            "debug",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    15 * time.Second,
		HandlerTimeout:  10 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// ServerConfigFromEnv 在默认配置的基础上套用环境变量覆盖
func ServerConfigFromEnv() ServerConfig {
	cfg := DefaultServerConfig()
	cfg.Host = envString("SERVER_HOST", cfg.Host)
	cfg.Port = envInt("SERVER_PORT", cfg.Port)
	cfg.Mode = envString("GIN_MODE", cfg.Mode)
	cfg.HandlerTimeout = envDuration("SERVER_HANDLER_TIMEOUT", cfg.HandlerTimeout)
	cfg.ShutdownTimeout = envDuration("SERVER_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	return cfg
}
