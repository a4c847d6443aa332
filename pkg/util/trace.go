package util

import (
	"WeddingServer/consts"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderXRequestID = "X-Request-ID"

// maxTraceIDLen 超长的外部 trace_id 直接丢弃，防止日志被塞爆
const maxTraceIDLen = 64

// TraceLogger 追踪中间件。
// 优先复用网关/客户端带来的 X-Request-ID，没有或不合法时自己生成，
// 并回写到响应头，客户端拿着这个 ID 就能对上服务端日志。
func TraceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceId := c.GetHeader(HeaderXRequestID)
		if traceId == "" || len(traceId) > maxTraceIDLen {
			traceId = uuid.New().String()
		}

		c.Set(consts.ContextKeyTraceID, traceId)
		c.Header(HeaderXRequestID, traceId)

		c.Next()
	}
}

// NewUUID 生成新的 UUID
func NewUUID() string {
	return uuid.New().String()
}
