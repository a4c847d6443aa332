package v1

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"WeddingServer/apps/api/internal/service"
	"WeddingServer/consts"
	"WeddingServer/pkg/logger"
	"WeddingServer/pkg/result"
)

// failFromError 统一的错误出口。
// 业务错误直接回码；内部错误记日志后回 30001，细节不出网。
func failFromError(c *gin.Context, ctx context.Context, err error) {
	code := service.CodeOf(err)
	if code == consts.CodeInternalError {
		logger.Error(ctx, "请求处理内部错误",
			logger.String("path", c.Request.URL.Path),
			logger.ErrorField(err),
		)
	}
	result.Fail(c, nil, code)
}

// parseIdParam 解析路径里的数字 id
func parseIdParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		result.Fail(c, nil, consts.CodeParamError)
		return 0, false
	}
	return id, true
}

// parseWeddingIdQuery 解析 query 里的 wedding_id
func parseWeddingIdQuery(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("wedding_id"), 10, 64)
	if err != nil || id < 1 {
		result.Fail(c, nil, consts.CodeParamError)
		return 0, false
	}
	return id, true
}
