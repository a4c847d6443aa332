package service

import (
	"context"
	"fmt"
	"io"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/consts"
	"WeddingServer/model"
	"WeddingServer/pkg/logger"
	"WeddingServer/pkg/minio"
)

// vendorServiceImpl 商家服务实现
type vendorServiceImpl struct {
	vendorRepo repository.IVendorRepository
}

// NewVendorService 创建商家服务实例
func NewVendorService(vendorRepo repository.IVendorRepository) IVendorService {
	return &vendorServiceImpl{vendorRepo: vendorRepo}
}

// List 过滤 + 分页查询上架商家
func (s *vendorServiceImpl) List(ctx context.Context, req *dto.ListVendorsRequest) (*dto.ListVendorsResponse, error) {
	filter := repository.VendorFilter{
		Category: req.Category,
		Locality: req.Locality,
		Featured: req.Featured,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	vendors, total, err := s.vendorRepo.List(ctx, filter)
	if err != nil {
		return nil, WrapBizError(consts.CodeInternalError, err)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	return &dto.ListVendorsResponse{
		Items: dto.NewVendorItems(vendors),
		Pagination: &dto.PaginationInfo{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	}, nil
}

// Categories 查询上架商家覆盖的全部类目
func (s *vendorServiceImpl) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.vendorRepo.ListCategories(ctx)
	if err != nil {
		return nil, WrapBizError(consts.CodeInternalError, err)
	}
	return categories, nil
}

// Localities 查询上架商家覆盖的全部城市
func (s *vendorServiceImpl) Localities(ctx context.Context) ([]string, error) {
	localities, err := s.vendorRepo.ListLocalities(ctx)
	if err != nil {
		return nil, WrapBizError(consts.CodeInternalError, err)
	}
	return localities, nil
}

// Get 查询单个商家
func (s *vendorServiceImpl) Get(ctx context.Context, vendorId int64) (*dto.VendorItem, error) {
	vendor, err := s.vendorRepo.GetById(ctx, vendorId)
	if err != nil {
		return nil, mapRepoError(err, consts.CodeVendorNotFound, consts.CodeParamError)
	}
	return dto.NewVendorItem(vendor), nil
}

// Create 创建商家
func (s *vendorServiceImpl) Create(ctx context.Context, req *dto.CreateVendorRequest) (*dto.VendorItem, error) {
	vendor := &model.Vendor{
		Name:           req.Name,
		Category:       req.Category,
		Locality:       req.Locality,
		Description:    req.Description,
		Images:         req.Images,
		PriceMin:       req.PriceMin,
		PriceMax:       req.PriceMax,
		Availability:   req.Availability,
		Services:       req.Services,
		Portfolio:      req.Portfolio,
		ContactPhone:   req.ContactPhone,
		ContactEmail:   req.ContactEmail,
		ContactWebsite: req.ContactWebsite,
		IsActive:       true,
		IsFeatured:     req.IsFeatured,
	}
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, mapRepoError(err, consts.CodeVendorNotFound, consts.CodeParamError)
	}
	logger.Info(ctx, "商家已创建",
		logger.Int64("vendor_id", vendor.Id),
		logger.String("name", vendor.Name),
		logger.String("category", vendor.Category))
	return dto.NewVendorItem(vendor), nil
}

// Update 更新商家
func (s *vendorServiceImpl) Update(ctx context.Context, vendorId int64, req *dto.UpdateVendorRequest) (*dto.VendorItem, error) {
	vendor, err := s.vendorRepo.GetById(ctx, vendorId)
	if err != nil {
		return nil, mapRepoError(err, consts.CodeVendorNotFound, consts.CodeParamError)
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.Category != nil {
		vendor.Category = *req.Category
	}
	if req.Locality != nil {
		vendor.Locality = *req.Locality
	}
	if req.Description != nil {
		vendor.Description = *req.Description
	}
	if req.Images != nil {
		vendor.Images = req.Images
	}
	if req.PriceMin != nil {
		vendor.PriceMin = req.PriceMin
	}
	if req.PriceMax != nil {
		vendor.PriceMax = req.PriceMax
	}
	if req.Availability != nil {
		vendor.Availability = req.Availability
	}
	if req.Services != nil {
		vendor.Services = req.Services
	}
	if req.Portfolio != nil {
		vendor.Portfolio = req.Portfolio
	}
	if req.ContactPhone != nil {
		vendor.ContactPhone = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		vendor.ContactEmail = *req.ContactEmail
	}
	if req.ContactWebsite != nil {
		vendor.ContactWebsite = *req.ContactWebsite
	}
	if req.IsFeatured != nil {
		vendor.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		vendor.IsActive = *req.IsActive
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, mapRepoError(err, consts.CodeVendorNotFound, consts.CodeParamError)
	}
	return dto.NewVendorItem(vendor), nil
}

// UploadImage 上传商家图片并追加到图片列表。
// 对象按 vendors/<id>/ 前缀归档，内容类型以文件魔数为准。
func (s *vendorServiceImpl) UploadImage(ctx context.Context, vendorId int64, reader io.Reader, fileSize int64, fileName string) (*dto.UploadImageResponse, error) {
	vendor, err := s.vendorRepo.GetById(ctx, vendorId)
	if err != nil {
		return nil, mapRepoError(err, consts.CodeVendorNotFound, consts.CodeParamError)
	}

	pathPrefix := fmt.Sprintf("vendors/%d", vendorId)
	result, err := minio.Global().UploadImage(ctx, reader, fileSize, pathPrefix, fileName)
	if err != nil {
		logger.Error(ctx, "商家图片上传失败",
			logger.Int64("vendor_id", vendorId),
			logger.String("file_name", fileName),
			logger.ErrorField(err))
		return nil, WrapBizError(consts.CodeUploadFailed, err)
	}

	vendor.Images = append(vendor.Images, result.URL)
	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, mapRepoError(err, consts.CodeVendorNotFound, consts.CodeParamError)
	}

	logger.Info(ctx, "商家图片上传成功",
		logger.Int64("vendor_id", vendorId),
		logger.String("object_name", result.ObjectName),
		logger.Int64("size", result.Size))
	return &dto.UploadImageResponse{
		URL:         result.URL,
		ObjectName:  result.ObjectName,
		Size:        result.Size,
		ContentType: result.ContentType,
	}, nil
}
