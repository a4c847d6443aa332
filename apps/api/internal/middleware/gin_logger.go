package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"WeddingServer/consts"
	"WeddingServer/pkg/logger"
	"WeddingServer/pkg/result"
)

// NewContextWithGin 从 gin.Context 创建包含 trace_id、user_id、client_ip 的 context.Context
// 用于将 Gin 上下文中的链路信息传递到日志系统
func NewContextWithGin(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if traceId, exists := c.Get(consts.ContextKeyTraceID); exists {
		ctx = context.WithValue(ctx, consts.ContextKeyTraceID, traceId)
	}
	if userId, exists := c.Get(consts.ContextKeyUserID); exists {
		ctx = context.WithValue(ctx, consts.ContextKeyUserID, userId)
	}
	if clientIP, exists := c.Get(contextKeyClientIP); exists {
		ctx = context.WithValue(ctx, contextKeyClientIP, clientIP)
	}
	return ctx
}

// GinLogger 接收 gin 框架默认的日志
func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		clientIP := ClientIPFromGinContext(c)
		if clientIP == "" {
			clientIP = c.ClientIP()
		}
		ctx := NewContextWithGin(c)

		logger.Info(ctx, "请求开始",
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.String("query", query),
			logger.String("ip", clientIP),
		)

		c.Next()

		cost := time.Since(start)
		status := c.Writer.Status()

		// 只记录服务端错误(5xx)和慢请求(>2s),正常请求不记录
		if status >= 500 || cost > 2*time.Second {
			logger.Warn(ctx, "慢请求或服务端错误",
				logger.Int("status", status),
				logger.String("method", c.Request.Method),
				logger.String("path", path),
				logger.String("query", query),
				logger.String("ip", clientIP),
				logger.String("user-agent", c.Request.UserAgent()),
				logger.String("errors", c.Errors.ByType(gin.ErrorTypePrivate).String()),
				logger.Duration("cost", cost),
			)
		}
	}
}

// GinRecovery 捕获 handler panic，记录堆栈后返回统一的内部错误响应
func GinRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				ctx := NewContextWithGin(c)
				logger.Error(ctx, "请求处理 panic",
					logger.String("path", c.Request.URL.Path),
					logger.String("method", c.Request.Method),
					logger.Any("panic", recovered),
				)
				if !c.Writer.Written() {
					result.Fail(c, nil, consts.CodeInternalError)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
