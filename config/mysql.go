package config

import (
	"fmt"
	"time"
)

// MySQLConfig 数据库配置。
// Replicas 非空时启用 dbresolver 读写分离，读请求路由到只读副本。
type MySQLConfig struct {
	Host     string `json:"host" yaml:"host"`         // 主库地址
	Port     int    `json:"port" yaml:"port"`         // 主库端口
	User     string `json:"user" yaml:"user"`         // 用户名
	Password string `json:"password" yaml:"password"` // 密码
	Database string `json:"database" yaml:"database"` // 库名
	Charset  string `json:"charset" yaml:"charset"`   // 字符集

	Replicas []string `json:"replicas" yaml:"replicas"` // 只读副本 DSN 列表（可为空）

	// 连接池配置
	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`       // 最大打开连接数
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`       // 最大空闲连接数
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"` // 连接最长存活时间

	SlowThreshold time.Duration `json:"slowThreshold" yaml:"slowThreshold"` // 慢查询阈值（gorm 日志使用）
}

// DSN 拼出主库连接串。
// clientFoundRows=true 让 RowsAffected 按匹配行数而不是变更行数计算，
// 否则幂等 UPDATE（比如重复停用用户）会被误判成记录不存在。
func (c MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local&clientFoundRows=true",
		c.User, c.Password, c.Host, c.Port, c.Database, c.Charset)
}

// DefaultMySQLConfig 返回本地开发的默认配置（与 docker-compose.yml 对齐）
func DefaultMySQLConfig() MySQLConfig {
	return MySQLConfig{
		Host:            "mysql",
		Port:            3306,
		User:            "root",
		Password:        "root",
		Database:        "weddingserver",
		Charset:         "utf8mb4",
		Replicas:        nil,
		MaxOpenConns:    100,
		MaxIdleConns:    10,
		ConnMaxLifetime: time.Hour,
		SlowThreshold:   200 * time.Millisecond,
	}
}

// MySQLConfigFromEnv 在默认配置的基础上套用环境变量覆盖
func MySQLConfigFromEnv() MySQLConfig {
	cfg := DefaultMySQLConfig()
	cfg.Host = envString("MYSQL_HOST", cfg.Host)
	cfg.Port = envInt("MYSQL_PORT", cfg.Port)
	cfg.User = envString("MYSQL_USER", cfg.User)
	cfg.Password = envString("MYSQL_PASSWORD", cfg.Password)
	cfg.Database = envString("MYSQL_DATABASE", cfg.Database)
	if replica := envString("MYSQL_REPLICA_DSN", ""); replica != "" {
		cfg.Replicas = []string{replica}
	}
	return cfg
}
