package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"WeddingServer/consts"
	"WeddingServer/pkg/logger"
	"WeddingServer/pkg/result"
)

// TimeoutMiddleware 请求超时控制中间件。
// 不开启额外 Goroutine，依赖下游对 Context 超时的感知。
func TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		// 替换请求的 context，后续 Handler、数据库调用都能感知超时
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		// 后置兜底：下游没来得及写响应时由这里返回超时
		if ctx.Err() == context.DeadlineExceeded {
			if !c.Writer.Written() {
				logger.Warn(NewContextWithGin(c), "请求强制超时",
					logger.String("path", c.Request.URL.Path),
					logger.Duration("timeout", timeout),
				)
				result.Fail(c, nil, consts.CodeTimeoutError)
			}
		}
	}
}
