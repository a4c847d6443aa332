package v1

import (
	"github.com/gin-gonic/gin"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/middleware"
	"WeddingServer/apps/api/internal/service"
	"WeddingServer/consts"
	"WeddingServer/pkg/result"
)

// maxImageSize 商家图片大小上限
const maxImageSize = 10 << 20 // 10MB

// VendorHandler 商家处理器
type VendorHandler struct {
	vendorService service.IVendorService
}

// NewVendorHandler 创建商家处理器
func NewVendorHandler(vendorService service.IVendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// List 商家列表接口
// @Summary 商家列表
// @Description 支持类目、城市、推荐位过滤和分页
// @Tags 商家接口
// @Produce json
// @Success 200 {object} dto.ListVendorsResponse
// @Router /api/v1/vendors [get]
func (h *VendorHandler) List(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	var req dto.ListVendorsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}

	resp, err := h.vendorService.List(ctx, &req)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, resp)
}

// Featured 推荐商家列表接口
// @Summary 推荐商家
// @Tags 商家接口
// @Produce json
// @Router /api/v1/vendors/featured [get]
func (h *VendorHandler) Featured(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	var req dto.ListVendorsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}
	featured := true
	req.Featured = &featured

	resp, err := h.vendorService.List(ctx, &req)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, resp)
}

// Categories 商家类目列表接口
// @Summary 类目列表
// @Tags 商家接口
// @Produce json
// @Router /api/v1/vendors/categories [get]
func (h *VendorHandler) Categories(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	categories, err := h.vendorService.Categories(ctx)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, categories)
}

// Localities 商家城市列表接口
// @Summary 城市列表
// @Tags 商家接口
// @Produce json
// @Router /api/v1/vendors/localities [get]
func (h *VendorHandler) Localities(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	localities, err := h.vendorService.Localities(ctx)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, localities)
}

// Get 商家详情接口
// @Summary 商家详情
// @Tags 商家接口
// @Produce json
// @Success 200 {object} dto.VendorItem
// @Router /api/v1/vendors/{id} [get]
func (h *VendorHandler) Get(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	vendorId, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	item, err := h.vendorService.Get(ctx, vendorId)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, item)
}

// Create 创建商家接口
// @Summary 创建商家
// @Tags 商家接口
// @Accept json
// @Produce json
// @Success 201 {object} dto.VendorItem
// @Router /api/v1/vendors [post]
func (h *VendorHandler) Create(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}

	item, err := h.vendorService.Create(ctx, &req)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Created(c, item)
}

// Update 更新商家接口
// @Summary 更新商家
// @Tags 商家接口
// @Accept json
// @Produce json
// @Router /api/v1/vendors/{id} [put]
func (h *VendorHandler) Update(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	vendorId, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}

	item, err := h.vendorService.Update(ctx, vendorId, &req)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Success(c, item)
}

// UploadImage 商家图片上传接口
// @Summary 上传商家图片
// @Description multipart 表单上传，字段名 image，最大 10MB
// @Tags 商家接口
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} dto.UploadImageResponse
// @Router /api/v1/vendors/{id}/images [post]
func (h *VendorHandler) UploadImage(c *gin.Context) {
	ctx := middleware.NewContextWithGin(c)

	vendorId, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}
	if fileHeader.Size <= 0 || fileHeader.Size > maxImageSize {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		result.Fail(c, nil, consts.CodeParamError)
		return
	}
	defer file.Close()

	resp, err := h.vendorService.UploadImage(ctx, vendorId, file, fileHeader.Size, fileHeader.Filename)
	if err != nil {
		failFromError(c, ctx, err)
		return
	}
	result.Created(c, resp)
}
