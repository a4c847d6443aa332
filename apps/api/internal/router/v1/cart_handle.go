package v1

import (
	"github.com/gin-gonic/gin"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/middleware"
	"WeddingServer/apps/api/internal/service"
	"WeddingServer/consts"
	"WeddingServer/pkg/result"
)

// CartHandler 预订清单处理器
type CartHandler struct {
	cartService service.ICartService
}

// NewCartHandler 创建预订清单处理器
func NewCartHandler(cartService service.ICartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Create 加入预订清单接口
// @Summary 加入预订清单
// @Tags 预订清单接口
// @Accept json
// @Produce json
// @Param request body dto.CreateCartItemRequest true "加入请求"
// @Success 201 {object} dto.CartItemView
// @Router /api/v1/cart [post]
func (h *CartHandler) Create(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}

	var req dto.CreateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}

	item, err := h.cartService.Create(ctx, userId, &req)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Created(c, item)
}

// List 预订清单列表接口
// @Summary 预订清单
// @Tags 预订清单接口
// @Produce json
// @Param wedding_id query int true "婚礼 id"
// @Router /api/v1/cart [get]
func (h *CartHandler) List(c *gin.Context) {
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

	items, err := h.cartService.List(ctx, userId, weddingId)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, items)
}

// Update 更新清单条目接口
// @Summary 更新清单条目
// @Description 状态推进到 booked 时返回预订凭证号
// @Tags 预订清单接口
// @Accept json
// @Produce json
// @Router /api/v1/cart/{id} [put]
func (h *CartHandler) Update(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}
	itemId, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}

	item, err := h.cartService.Update(ctx, userId, itemId, &req)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, item)
}

// Delete 移除清单条目接口
// @Summary 移除清单条目
// @Tags 预订清单接口
// @Produce json
// @Router /api/v1/cart/{id} [delete]
func (h *CartHandler) Delete(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}
	itemId, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if err := h.cartService.Delete(ctx, userId, itemId); err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, nil)
}

// Summary 清单汇总接口
// @Summary 清单汇总
// @Tags 预订清单接口
// @Produce json
// @Param wedding_id query int true "婚礼 id"
// @Success 200 {object} dto.CartSummaryResponse
// @Router /api/v1/cart/summary [get]
func (h *CartHandler) Summary(c *gin.Context) {
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

	summary, err := h.cartService.Summary(ctx, userId, weddingId)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, summary)
}
