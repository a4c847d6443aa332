package middleware

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"WeddingServer/consts"
	"WeddingServer/pkg/logger"
	"WeddingServer/pkg/result"
)

// ==================== Redis 令牌桶 Lua 脚本 ====================

// luaTokenBucket 原子性地更新令牌桶并判断是否允许通过
// KEYS[1]: 限流 key (如: rate:limit:ip:{ip})
// ARGV[1]: 当前时间戳 (毫秒)
// ARGV[2]: 令牌桶容量
// ARGV[3]: 每秒产生的令牌数
// ARGV[4]: 每次请求消耗的令牌数
// 返回 1 允许通过, 0 令牌不足
const luaTokenBucket = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local rate = tonumber(ARGV[3])
local requested = tonumber(ARGV[4])

local info = redis.call('HMGET', key, 'tokens', 'last_time')
local current_tokens = tonumber(info[1])
local last_time = tonumber(info[2])

if current_tokens == nil then
    current_tokens = capacity
end
if last_time == nil then
    last_time = now
end

-- 计算时间差 (毫秒) 补充令牌
local time_diff = math.max(0, now - last_time)
local new_tokens = math.floor((time_diff * rate) / 1000)

if new_tokens > 0 then
    current_tokens = math.min(capacity, current_tokens + new_tokens)
    last_time = now -- 只有产生了新令牌才更新时间，防止精度丢失
end

local allowed = 0
if current_tokens >= requested then
    current_tokens = current_tokens - requested
    allowed = 1
end

redis.call('HMSET', key, 'tokens', current_tokens, 'last_time', last_time)

-- 过期时间：桶填满所需时间 * 2，至少 60 秒
local fill_time = math.ceil(capacity / rate)
local ttl = math.max(60, fill_time * 2)
redis.call('EXPIRE', key, ttl)

return allowed
`

// ==================== 限流器 ====================

// 本地令牌桶缓存上限：超出后按 LRU 淘汰，闲置的桶也会随 TTL 过期，
// Redis 长时间不可用时 key 数量不会无限增长
const (
	localLimiterCap = 4096
	localLimiterTTL = 10 * time.Minute
)

// RateLimiter 基于 Redis 令牌桶的限流器。
// Redis 不可用时降级为进程内的本地令牌桶，限流退化为单实例粒度但不放飞流量。
type RateLimiter struct {
	redisClient *redis.Client
	rate        float64 // 每秒产生的令牌数
	burst       int     // 令牌桶容量

	mu     sync.Mutex
	locals *expirable.LRU[string, *rate.Limiter] // key -> 本地令牌桶
}

// NewRateLimiter 创建限流器
// r: 每秒产生的令牌数 (如: 10.0 表示每秒10个令牌)
// burst: 令牌桶容量 (如: 20 表示桶最多20个令牌)
func NewRateLimiter(redisClient *redis.Client, r float64, burst int) *RateLimiter {
	return &RateLimiter{
		redisClient: redisClient,
		rate:        r,
		burst:       burst,
		locals:      expirable.NewLRU[string, *rate.Limiter](localLimiterCap, nil, localLimiterTTL),
	}
}

// Allow 检查是否允许请求通过
func (r *RateLimiter) Allow(ctx context.Context, key string) bool {
	if r.redisClient == nil {
		return r.allowLocal(key)
	}

	// 给 Redis 操作一个独立的短超时，防止 Redis 响应慢拖死入口
	redisCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()

	now := time.Now().UnixMilli()
	cmd := r.redisClient.Eval(redisCtx, luaTokenBucket, []string{key}, now, r.burst, r.rate, 1)
	value, err := cmd.Result()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			logger.Warn(ctx, "Redis 限流检查超时，降级为本地限流",
				logger.String("key", key),
				logger.ErrorField(err),
			)
		} else {
			logger.Error(ctx, "Redis 限流检查失败，降级为本地限流",
				logger.String("key", key),
				logger.ErrorField(err),
			)
		}
		return r.allowLocal(key)
	}

	allowed, ok := value.(int64)
	if !ok {
		logger.Warn(ctx, "Redis 限流返回值类型错误，降级放行",
			logger.String("key", key),
			logger.Any("result", value),
		)
		return true
	}
	return allowed == 1
}

// allowLocal 进程内令牌桶兜底
func (r *RateLimiter) allowLocal(key string) bool {
	r.mu.Lock()
	limiter, exists := r.locals.Get(key)
	if !exists {
		limiter = rate.NewLimiter(rate.Limit(r.rate), r.burst)
		r.locals.Add(key, limiter)
	}
	r.mu.Unlock()
	return limiter.Allow()
}

// ==================== IP 限流中间件 ====================

// ipRateLimitKey 构造 IP 限流的 Redis key
func ipRateLimitKey(ip string) string {
	return fmt.Sprintf("rate:limit:ip:%s", ip)
}

// IPRateLimitMiddleware 基于 Redis 的 IP 级别限流中间件
// 使用示例：
//
//	router.Use(IPRateLimitMiddleware(limiter))
func IPRateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip, exists := GetClientIPSafe(c)
		if !exists || ip == "" {
			// 无法获取 IP，放行请求（记录警告）
			logger.Warn(c, "无法获取客户端 IP，跳过限流检查",
				logger.String("path", c.Request.URL.Path),
			)
			c.Next()
			return
		}

		if !limiter.Allow(c, ipRateLimitKey(ip)) {
			logger.Warn(c, "IP 请求被限流",
				logger.String("ip", ip),
				logger.String("path", c.Request.URL.Path),
				logger.String("method", c.Request.Method),
			)
			result.Fail(c, nil, consts.CodeTooManyRequests)
			c.Abort()
			return
		}

		c.Next()
	}
}

// UserRateLimitMiddleware 基于用户 ID 的限流中间件。
// 需要在认证中间件之后使用。
func UserRateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, exists := GetUserId(c)
		if !exists {
			// 未认证请求交给 IP 限流兜底
			c.Next()
			return
		}

		if !limiter.Allow(c, fmt.Sprintf("rate:limit:user:%d", userId)) {
			logger.Warn(c, "用户请求被限流",
				logger.Int64("user_id", userId),
				logger.String("path", c.Request.URL.Path),
			)
			result.Fail(c, nil, consts.CodeTooManyRequests)
			c.Abort()
			return
		}

		c.Next()
	}
}
