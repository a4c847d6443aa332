package service

import (
	"context"

	"WeddingServer/apps/api/internal/dto"
	"WeddingServer/apps/api/internal/repository"
	"WeddingServer/consts"
)

// packageServiceImpl 套餐服务实现
type packageServiceImpl struct {
	packageRepo repository.IPackageRepository
}

// NewPackageService 创建套餐服务实例
func NewPackageService(packageRepo repository.IPackageRepository) IPackageService {
	return &packageServiceImpl{packageRepo: packageRepo}
}

// List 查询全部上架套餐
func (s *packageServiceImpl) List(ctx context.Context) ([]*dto.PackageItem, error) {
	pkgs, err := s.packageRepo.ListActive(ctx)
	if err != nil {
		return nil, WrapBizError(consts.CodeInternalError, err)
	}
	return dto.NewPackageItems(pkgs), nil
}

// Popular 查询热门套餐
func (s *packageServiceImpl) Popular(ctx context.Context) ([]*dto.PackageItem, error) {
	pkgs, err := s.packageRepo.ListPopular(ctx)
	if err != nil {
		return nil, WrapBizError(consts.CodeInternalError, err)
	}
	return dto.NewPackageItems(pkgs), nil
}

// Get 查询单个套餐
func (s *packageServiceImpl) Get(ctx context.Context, packageId int64) (*dto.PackageItem, error) {
	pkg, err := s.packageRepo.GetById(ctx, packageId)
	if err != nil {
		return nil, mapRepoError(err, consts.CodePackageNotFound, consts.CodeParamError)
	}
	return dto.NewPackageItem(pkg), nil
}
