package consts

import "net/http"

// 上下文键。
// 注意：gin 的 c.Set 只接受字符串键，这里统一用字符串常量，
// ctx.Value 在 gin.Context 和标准 context 上都能取到。
const (
	ContextKeyTraceID = "trace_id"     // 请求链路追踪 ID
	ContextKeyUserID  = "user_id"      // 认证通过后的用户 ID
	ContextKeyUser    = "current_user" // 认证通过后的用户实体
)

// 通用错误码
const (
	CodeSuccess = 0 // 成功
)

// 客户端错误 (1xxxx)
const (
	CodeParamError       = 10001 // 参数验证失败
	CodeBodyError        = 10002 // 请求体格式错误
	CodeResourceNotFound = 10003 // 资源不存在
	CodeMethodNotAllowed = 10004 // 请求方法不允许
	CodeTooManyRequests  = 10005 // 请求过于频繁
	CodeBodyTooLarge     = 10006 // 请求体过大
	CodeTimeoutError     = 10007 // 请求处理超时
)

// 认证错误 (2xxxx)
const (
	CodeUnauthorized      = 20001 // 未认证
	CodeInvalidCredential = 20002 // 凭证无效（签名/过期校验失败）
	CodeMissingPhoneClaim = 20003 // 外部凭证缺少手机号声明
	CodePermissionDeny    = 20004 // 权限不足
)

// 用户模块错误 (11xxx)
const (
	CodeUserNotFound         = 11001 // 用户不存在
	CodeUserInactive         = 11002 // 用户已被停用
	CodeDuplicatePhone       = 11003 // 手机号已被注册
	CodeDuplicateFirebaseUID = 11004 // Firebase UID 已被绑定
	CodeDuplicateEmail       = 11005 // 邮箱已被占用
	CodeSignupRequired       = 11006 // 用户不存在，需先完成注册
	CodePhoneNotFound        = 11007 // 手机号未注册（显式查询场景，区别于身份解析的 401）
)

// 亲友关系模块错误 (12xxx)
const (
	CodeRelationshipNotFound  = 12001 // 关系记录不存在
	CodeDuplicateRelationship = 12002 // 关系记录已存在
	CodeRelationshipExpired   = 12003 // 关系请求已过期
	CodeRelatedUserNotFound   = 12004 // 目标用户不存在
)

// 婚礼项目模块错误 (13xxx)
const (
	CodeWeddingNotFound = 13001 // 婚礼项目不存在
)

// 商家/套餐模块错误 (14xxx)
const (
	CodeVendorNotFound  = 14001 // 商家不存在
	CodePackageNotFound = 14002 // 套餐不存在
	CodeUploadFailed    = 14003 // 图片上传失败
)

// 预订清单模块错误 (15xxx)
const (
	CodeCartItemNotFound = 15001 // 预订条目不存在
)

// 宾客模块错误 (16xxx)
const (
	CodeGuestNotFound = 16001 // 宾客不存在
)

// 服务端错误 (3xxxx)
const (
	CodeInternalError      = 30001 // 服务器内部错误
	CodeServiceUnavailable = 30002 // 服务暂不可用
)

// 错误消息映射
var CodeMessage = map[int32]string{
	CodeSuccess: "success",

	// 客户端错误
	CodeParamError:       "参数验证失败",
	CodeBodyError:        "请求体格式错误",
	CodeResourceNotFound: "资源不存在",
	CodeMethodNotAllowed: "请求方法不允许",
	CodeTooManyRequests:  "请求过于频繁",
	CodeBodyTooLarge:     "请求体过大",
	CodeTimeoutError:     "请求处理超时",

	// 认证错误
	CodeUnauthorized:      "未认证",
	CodeInvalidCredential: "凭证无效或已过期",
	CodeMissingPhoneClaim: "凭证中缺少手机号",
	CodePermissionDeny:    "权限不足",

	// 用户模块
	CodeUserNotFound:         "用户不存在",
	CodeUserInactive:         "用户已被停用",
	CodeDuplicatePhone:       "手机号已被注册",
	CodeDuplicateFirebaseUID: "Firebase UID 已被绑定",
	CodeDuplicateEmail:       "邮箱已被占用",
	CodeSignupRequired:       "用户不存在，请先完成注册",
	CodePhoneNotFound:        "该手机号未注册",

	// 亲友关系模块
	CodeRelationshipNotFound:  "关系记录不存在",
	CodeDuplicateRelationship: "关系记录已存在",
	CodeRelationshipExpired:   "关系请求已过期",
	CodeRelatedUserNotFound:   "目标用户不存在",

	// 婚礼项目模块
	CodeWeddingNotFound: "婚礼项目不存在",

	// 商家/套餐模块
	CodeVendorNotFound:  "商家不存在",
	CodePackageNotFound: "套餐不存在",
	CodeUploadFailed:    "图片上传失败",

	// 预订清单模块
	CodeCartItemNotFound: "预订条目不存在",

	// 宾客模块
	CodeGuestNotFound: "宾客不存在",

	// 服务端错误
	CodeInternalError:      "服务器内部错误",
	CodeServiceUnavailable: "服务暂不可用",
}

// httpStatus 业务错误码到 HTTP 状态码的映射。
// 未列出的错误码统一按 500 处理。
var httpStatus = map[int32]int{
	CodeSuccess: http.StatusOK,

	CodeParamError:       http.StatusUnprocessableEntity,
	CodeBodyError:        http.StatusUnprocessableEntity,
	CodeResourceNotFound: http.StatusNotFound,
	CodeMethodNotAllowed: http.StatusMethodNotAllowed,
	CodeTooManyRequests:  http.StatusTooManyRequests,
	CodeBodyTooLarge:     http.StatusRequestEntityTooLarge,
	CodeTimeoutError:     http.StatusGatewayTimeout,

	CodeUnauthorized:      http.StatusUnauthorized,
	CodeInvalidCredential: http.StatusUnauthorized,
	CodeMissingPhoneClaim: http.StatusBadRequest,
	CodePermissionDeny:    http.StatusForbidden,

	CodeUserNotFound:         http.StatusUnauthorized, // 身份解析场景：不暴露用户是否存在
	CodeUserInactive:         http.StatusUnauthorized,
	CodeDuplicatePhone:       http.StatusConflict,
	CodeDuplicateFirebaseUID: http.StatusConflict,
	CodeDuplicateEmail:       http.StatusConflict,
	CodeSignupRequired:       http.StatusNotFound,
	CodePhoneNotFound:        http.StatusNotFound,

	CodeRelationshipNotFound:  http.StatusNotFound,
	CodeDuplicateRelationship: http.StatusBadRequest,
	CodeRelationshipExpired:   http.StatusBadRequest,
	CodeRelatedUserNotFound:   http.StatusNotFound,

	CodeWeddingNotFound: http.StatusNotFound,

	CodeVendorNotFound:  http.StatusNotFound,
	CodePackageNotFound: http.StatusNotFound,
	CodeUploadFailed:    http.StatusInternalServerError,

	CodeCartItemNotFound: http.StatusNotFound,

	CodeGuestNotFound: http.StatusNotFound,

	CodeServiceUnavailable: http.StatusServiceUnavailable,
}

// GetMessage 根据错误码获取错误消息
func GetMessage(code int32) string {
	if msg, ok := CodeMessage[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetHTTPStatus 根据错误码获取对应的 HTTP 状态码
func GetHTTPStatus(code int32) int {
	if status, ok := httpStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
