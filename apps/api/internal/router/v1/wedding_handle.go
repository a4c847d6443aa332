package v1

import (
	"github.com/gin-gonic/gin"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/middleware"
	"WeddingServer/apps/api/internal/service"
	"WeddingServer/consts"
	"WeddingServer/pkg/result"
)

// WeddingHandler 婚礼处理器
type WeddingHandler struct {
	weddingService service.IWeddingService
}

// NewWeddingHandler 创建婚礼处理器
func NewWeddingHandler(weddingService service.IWeddingService) *WeddingHandler {
	return &WeddingHandler{weddingService: weddingService}
}

// Create 创建婚礼接口
// @Summary 创建婚礼
// @Tags 婚礼接口
// @Accept json
// @Produce json
// @Param request body dto.CreateWeddingRequest true "创建请求"
// @Success 201 {object} dto.WeddingItem
// @Router /api/v1/weddings [post]
func (h *WeddingHandler) Create(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}

	var req dto.CreateWeddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}

	item, err := h.weddingService.Create(ctx, userId, &req)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Created(c, item)
}

// List 查询婚礼列表接口
// @Summary 婚礼列表
// @Tags 婚礼接口
// @Produce json
// @Router /api/v1/weddings [get]
func (h *WeddingHandler) List(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}

	items, err := h.weddingService.List(ctx, userId)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, items)
}

// Get 查询单个婚礼接口
// @Summary 婚礼详情
// @Tags 婚礼接口
// @Produce json
// @Router /api/v1/weddings/{id} [get]
func (h *WeddingHandler) Get(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}
	weddingId, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	item, err := h.weddingService.Get(ctx, userId, weddingId)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, item)
}

// Update 更新婚礼接口
// @Summary 更新婚礼
// @Tags 婚礼接口
// @Accept json
// @Produce json
// @Router /api/v1/weddings/{id} [put]
func (h *WeddingHandler) Update(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}
	weddingId, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWeddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}

	item, err := h.weddingService.Update(ctx, userId, weddingId, &req)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, item)
}

// Delete 删除婚礼接口
// @Summary 删除婚礼
// @Tags 婚礼接口
// @Produce json
// @Router /api/v1/weddings/{id} [delete]
func (h *WeddingHandler) Delete(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}
	weddingId, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if err := h.weddingService.Delete(ctx, userId, weddingId); err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, nil)
}
