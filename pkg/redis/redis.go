package redis

import (
	"context"
	"fmt"
	"time"

	"WeddingServer/config"

	"github.com/redis/go-redis/v9"
)

var global *redis.Client

// Client 返回全局 Redis 客户端（未初始化时为 nil，表示降级到 MySQL-Only）
func Client() *redis.Client {
	return global
}

// ReplaceGlobal 设置全局 Redis 客户端，进程启动时调用一次
func ReplaceGlobal(c *redis.Client) {
	global = c
}

// Build 根据配置创建 Redis 客户端并探活。
// 连不上直接返回错误，由调用方决定是否降级。
func Build(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
