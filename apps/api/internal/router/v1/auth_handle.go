package v1

import (
	"github.com/gin-gonic/gin"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/middleware"
	"WeddingServer/apps/api/internal/service"
	"WeddingServer/consts"
	"WeddingServer/pkg/result"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	authService service.IAuthService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// FirebaseSignup 注册 / 补全资料接口
// @Summary Firebase 注册
// @Description 用 Firebase 凭证注册，手机号已存在时合并资料
// @Tags 认证接口
// @Accept json
// @Produce json
// @Param request body dto.FirebaseSignupRequest true "注册请求"
// @Success 201 {object} dto.SignupResponse
// @Router /api/v1/auth/firebase-signup [post]
func (h *AuthHandler) FirebaseSignup(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	ident, exists := middleware.GetIdentity(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}

	var req dto.FirebaseSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// 参数错误由客户端输入导致,属于正常业务流程,不记录日志
		result.Fail(c, nil, consts.CodeParamError)
		return
	}

	resp, err := h.authService.FirebaseSignup(ctx, ident, &req)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}

	result.Created(c, resp)
}

// IssueToken 换发本服务访问令牌接口
// @Summary 换发访问令牌
// @Description 用 Firebase 凭证换取本服务的访问令牌，未注册返回 404
// @Tags 认证接口
// @Produce json
// @Success 200 {object} dto.TokenResponse
// @Router /api/v1/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	ident, exists := middleware.GetIdentity(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}

	resp, err := h.authService.IssueToken(ctx, ident)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}

	result.Success(c, resp)
}
