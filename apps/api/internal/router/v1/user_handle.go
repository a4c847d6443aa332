package v1

import (
	"github.com/gin-gonic/gin"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/middleware"
	"WeddingServer/apps/api/internal/service"
	"WeddingServer/consts"
	"WeddingServer/pkg/result"
)

// UserHandler 用户处理器
type UserHandler struct {
	userService service.IUserService
}

// NewUserHandler 创建用户处理器
func NewUserHandler(userService service.IUserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me 查询个人资料接口
// @Summary 个人资料
// @Tags 用户接口
// @Produce json
// @Success 200 {object} dto.UserInfo
// @Router /api/v1/users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}

	info, err := h.userService.GetProfile(ctx, userId)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, info)
}

// UpdateMe 更新个人资料接口
// @Summary 更新个人资料
// @Tags 用户接口
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "更新请求"
// @Success 200 {object} dto.UserInfo
// @Router /api/v1/users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}

	info, err := h.userService.UpdateProfile(ctx, userId, &req)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, info)
}

// DeactivateMe 停用账号接口
// @Summary 停用账号
// @Description 停用后所有凭证即刻失效
// @Tags 用户接口
// @Produce json
// @Router /api/v1/users/me [delete]
func (h *UserHandler) DeactivateMe(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}

	if err := h.userService.Deactivate(ctx, userId); err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, nil)
}

// GetByPhone 按手机号查询用户接口
// @Summary 按手机号查询用户
// @Description 婚礼协作中按手机号定位亲友，未注册返回 404
// @Tags 用户接口
// @Produce json
// @Param phone path string true "手机号(E.164)"
// @Success 200 {object} dto.UserInfo
// @Router /api/v1/users/by-phone/{phone} [get]
func (h *UserHandler) GetByPhone(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	phone := c.Param("phone")
	if phone == "" {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}

	info, err := h.userService.GetByPhone(ctx, phone)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, info)
}
