package v1

import (
	"github.com/gin-gonic/gin"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/middleware"
	"WeddingServer/apps/api/internal/service"
	"WeddingServer/consts"
	"WeddingServer/pkg/result"
)

// RelationshipHandler 亲友关系处理器
type RelationshipHandler struct {
	relationshipService service.IRelationshipService
}

// NewRelationshipHandler 创建亲友关系处理器
func NewRelationshipHandler(relationshipService service.IRelationshipService) *RelationshipHandler {
	return &RelationshipHandler{relationshipService: relationshipService}
}

// Create 发起关系请求接口
// @Summary 发起关系请求
// @Tags 关系接口
// @Accept json
// @Produce json
// @Param request body dto.CreateRelationshipRequest true "关系请求"
// @Success 201 {object} dto.RelationshipItem
// @Router /api/v1/relationships [post]
func (h *RelationshipHandler) Create(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}

	var req dto.CreateRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}

	item, err := h.relationshipService.Create(ctx, userId, &req)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Created(c, item)
}

// List 查询自己发起的关系接口
// @Summary 关系列表
// @Tags 关系接口
// @Produce json
// @Router /api/v1/relationships [get]
func (h *RelationshipHandler) List(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}

	items, err := h.relationshipService.List(ctx, userId)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, items)
}

// ListPending 查询发给自己的待处理请求接口
// @Summary 待处理请求列表
// @Tags 关系接口
// @Produce json
// @Router /api/v1/relationships/pending [get]
func (h *RelationshipHandler) ListPending(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}

	items, err := h.relationshipService.ListPending(ctx, userId)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, items)
}

// Respond 响应关系请求接口
// @Summary 接受或拒绝关系请求
// @Description 仅接收方可操作，过期请求返回 400
// @Tags 关系接口
// @Accept json
// @Produce json
// @Param request body dto.RespondRelationshipRequest true "响应"
// @Router /api/v1/relationships/{id}/respond [post]
func (h *RelationshipHandler) Respond(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}
	relationshipId, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var req dto.RespondRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}

	item, err := h.relationshipService.Respond(ctx, userId, relationshipId, req.Accept)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, item)
}

// Update 更新关系元数据接口
// @Summary 更新关系
// @Description 仅发起方可操作
// @Tags 关系接口
// @Accept json
// @Produce json
// @Router /api/v1/relationships/{id} [put]
func (h *RelationshipHandler) Update(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}
	relationshipId, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}

	item, err := h.relationshipService.Update(ctx, userId, relationshipId, &req)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, item)
}

// Delete 删除关系接口
// @Summary 删除关系
// @Description 仅发起方可操作
// @Tags 关系接口
// @Produce json
// @Router /api/v1/relationships/{id} [delete]
func (h *RelationshipHandler) Delete(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	userId, exists := middleware.GetUserId(c)
	if !exists {
		result.Fail(c, nil, consts.CodeUnauthorized)
		return
	}
	relationshipId, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	if err := h.relationshipService.Delete(ctx, userId, relationshipId); err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, nil)
}
