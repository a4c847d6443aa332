package middleware

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"WeddingServer/pkg/logger"
)

var mwLoggerOnce sync.Once

func initMiddlewareTestLogger() {
	mwLoggerOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		logger.ReplaceGlobal(zap.NewNop())
	})
}

func TestRateLimiter_LocalFallback(t *testing.T) {
	initMiddlewareTestLogger()
	ctx := context.Background()

	// 没有 Redis 时走进程内令牌桶
	limiter := NewRateLimiter(nil, 1.0, 3)

	allowed := 0
	for i := 0; i < 10; i++ {
		if limiter.Allow(ctx, "rate:limit:ip:1.2.3.4") {
			allowed++
		}
	}
	assert.Equal(t, 3, allowed, "突发额度耗尽后应拒绝")
}

func TestRateLimiter_LocalFallback_PerKey(t *testing.T) {
	initMiddlewareTestLogger()
	ctx := context.Background()

	limiter := NewRateLimiter(nil, 1.0, 1)

	assert.True(t, limiter.Allow(ctx, "rate:limit:ip:1.1.1.1"))
	assert.False(t, limiter.Allow(ctx, "rate:limit:ip:1.1.1.1"))
	// 另一个 key 有独立的桶
	assert.True(t, limiter.Allow(ctx, "rate:limit:ip:2.2.2.2"))
}

func TestRateLimiter_LocalFallback_BoundedKeys(t *testing.T) {
	initMiddlewareTestLogger()
	ctx := context.Background()

	limiter := NewRateLimiter(nil, 1.0, 1)

	// 本地桶放在带上限的 LRU 里，Redis 长时间不可用也不会按客户端数无限涨
	for i := 0; i < 20; i++ {
		limiter.Allow(ctx, fmt.Sprintf("rate:limit:ip:10.0.0.%d", i))
	}
	assert.Equal(t, 20, limiter.locals.Len())
	assert.LessOrEqual(t, limiter.locals.Len(), localLimiterCap)
}
