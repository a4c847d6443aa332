package v1

import (
	"github.com/gin-gonic/gin"

	"WeddingServer/apps/api/internal/middleware"
	"WeddingServer/apps/api/internal/service"
	"WeddingServer/pkg/result"
)

// ReviewHandler Google 评论代理处理器
type ReviewHandler struct {
	reviewService service.IReviewService
}

// NewReviewHandler 创建评论代理处理器
func NewReviewHandler(reviewService service.IReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// List 评论列表接口
// @Summary Google 评论
// @Description 上游不可用时返回内置示例，永不 5xx
// @Tags 评论接口
// @Produce json
// @Success 200 {object} dto.ReviewsResponse
// @Router /api/v1/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	resp, err := h.reviewService.GetReviews(ctx)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, resp)
}

// Rating 总评分接口
// @Summary 商家总评分
// @Tags 评论接口
// @Produce json
// @Router /api/v1/reviews/rating [get]
func (h *ReviewHandler) Rating(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	resp, err := h.reviewService.GetReviews(ctx)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, gin.H{
		"rating": resp.Rating,
		"source": resp.Source,
	})
}

// Stats 评论统计接口
// @Summary 评论统计
// @Tags 评论接口
// @Produce json
// @Router /api/v1/reviews/stats [get]
func (h *ReviewHandler) Stats(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	resp, err := h.reviewService.GetReviews(ctx)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, gin.H{
		"rating":       resp.Rating,
		"review_count": resp.ReviewCount,
		"source":       resp.Source,
	})
}
