package v1

import (
	"github.com/gin-gonic/gin"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/middleware"
	"WeddingServer/apps/api/internal/service"
	"WeddingServer/consts"
	"WeddingServer/pkg/result"
)

// GuestHandler 宾客处理器
type GuestHandler struct {
	guestService service.IGuestService
}

// NewGuestHandler 创建宾客处理器
func NewGuestHandler(guestService service.IGuestService) *GuestHandler {
	return &GuestHandler{guestService: guestService}
}

// Create 添加宾客接口
// @Summary 添加宾客
// @Tags 宾客接口
// @Accept json
// @Produce json
// @Param request body dto.CreateGuestRequest true "添加请求"
// @Success 201 {object} dto.GuestItem
// @Router /api/v1/guests [post]
func (h *GuestHandler) Create(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}

	var req dto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}

	item, err := h.guestService.Create(ctx, userId, &req)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Created(c, item)
}

// List 宾客列表接口
// @Summary 宾客列表
// @Tags 宾客接口
// @Produce json
// @Param wedding_id query int true "婚礼 id"
// @Router /api/v1/guests [get]
func (h *GuestHandler) List(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}
	weddingId, ok := parseWeddingIdQuery(c)
	if !ok {
		return
	}

	items, err := h.guestService.List(ctx, userId, weddingId)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, items)
}

// Update 更新宾客接口
// @Summary 更新宾客
// @Tags 宾客接口
// @Accept json
// @Produce json
// @Router /api/v1/guests/{id} [put]
func (h *GuestHandler) Update(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}
	guestId, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}

	item, err := h.guestService.Update(ctx, userId, guestId, &req)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, item)
}

// Delete 移除宾客接口
// @Summary 移除宾客
// @Tags 宾客接口
// @Produce json
// @Router /api/v1/guests/{id} [delete]
func (h *GuestHandler) Delete(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}
	guestId, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if err := h.guestService.Delete(ctx, userId, guestId); err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, nil)
}

// Statistics 宾客统计接口
// @Summary 宾客统计
// @Tags 宾客接口
// @Produce json
// @Param wedding_id query int true "婚礼 id"
// @Success 200 {object} dto.GuestStatsResponse
// @Router /api/v1/guests/statistics [get]
func (h *GuestHandler) Statistics(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}
	weddingId, ok := parseWeddingIdQuery(c)
	if !ok {
		return
	}

	stats, err := h.guestService.Stats(ctx, userId, weddingId)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, stats)
}

// SendInvitation 发送单个宾客邀请接口
// @Summary 发送邀请
// @Description 邀请经消息队列异步发送，宾客标记为已邀请
// @Tags 宾客接口
// @Produce json
// @Success 200 {object} dto.GuestItem
// @Router /api/v1/guests/{id}/send-invitation [post]
func (h *GuestHandler) SendInvitation(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}
	guestId, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	item, err := h.guestService.SendInvitation(ctx, userId, guestId)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, item)
}

// SendInvitations 批量发送邀请接口
// @Summary 批量发送邀请
// @Tags 宾客接口
// @Produce json
// @Param wedding_id query int true "婚礼 id"
// @Success 200 {object} dto.SendInvitationResponse
// @Router /api/v1/guests/send-invitations [post]
func (h *GuestHandler) SendInvitations(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}
	weddingId, ok := parseWeddingIdQuery(c)
	if !ok {
		return
	}

	resp, err := h.guestService.SendInvitations(ctx, userId, weddingId)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, resp)
}
