package result

import (
	"net/http"

	"WeddingServer/consts"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构体
type Response struct {
	Code    int32       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	TraceId string      `json:"trace_id"`
}

// Result 返回响应。
// HTTP 状态码由业务错误码映射得到，客户端既能看 HTTP 状态也能看业务码。
func Result(c *gin.Context, data interface{}, message string, code int32) {
	traceId := c.GetString(consts.ContextKeyTraceID)
	if message == "" {
		message = consts.GetMessage(code)
	}
	c.JSON(consts.GetHTTPStatus(code), Response{
		Code:    code,
		Message: message,
		Data:    data,
		TraceId: traceId,
	})
}

// Success 返回成功响应
func Success(c *gin.Context, data interface{}) {
	Result(c, data, "", consts.CodeSuccess)
}

// Created 返回创建成功响应（201）
func Created(c *gin.Context, data interface{}) {
	traceId := c.GetString(consts.ContextKeyTraceID)
	c.JSON(http.StatusCreated, Response{
		Code:    consts.CodeSuccess,
		Message: consts.GetMessage(consts.CodeSuccess),
		Data:    data,
		TraceId: traceId,
	})
}

// Fail 返回失败响应
func Fail(c *gin.Context, data interface{}, code int32) {
	Result(c, data, "", code)
}

// SuccessWithMessage 返回成功响应并自定义消息
func SuccessWithMessage(c *gin.Context, data interface{}, message string) {
	Result(c, data, message, consts.CodeSuccess)
}

// FailWithMessage 返回失败响应并自定义消息
func FailWithMessage(c *gin.Context, data interface{}, message string, code int32) {
	Result(c, data, message, code)
}
