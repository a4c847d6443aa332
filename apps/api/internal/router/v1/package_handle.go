package v1

import (
	"github.com/gin-gonic/gin"

	"WeddingServer/apps/api/internal/middleware"
	"WeddingServer/apps/api/internal/service"
	"WeddingServer/pkg/result"
)

// PackageHandler 套餐处理器
type PackageHandler struct {
	packageService service.IPackageService
}

// NewPackageHandler 创建套餐处理器
func NewPackageHandler(packageService service.IPackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

// List 套餐列表接口
// @Summary 套餐列表
// @Tags 套餐接口
// @Produce json
// @Router /api/v1/packages [get]
func (h *PackageHandler) List(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	items, err := h.packageService.List(ctx)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, items)
}

// Popular 热门套餐接口
// @Summary 热门套餐
// @Tags 套餐接口
// @Produce json
// @Router /api/v1/packages/popular [get]
func (h *PackageHandler) Popular(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	items, err := h.packageService.Popular(ctx)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, items)
}

// Get 套餐详情接口
// @Summary 套餐详情
// @Tags 套餐接口
// @Produce json
// @Router /api/v1/packages/{id} [get]
func (h *PackageHandler) Get(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	packageId, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	item, err := h.packageService.Get(ctx, packageId)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, item)
}
