package repository

import (
	"context"

	"WeddingServer/model"

	"gorm.io/gorm"
)

// packageRepositoryImpl 套餐数据访问层实现
type packageRepositoryImpl struct {
	db *gorm.DB
}

// NewPackageRepository 创建套餐仓储实例
func NewPackageRepository(db *gorm.DB) IPackageRepository {
	return &packageRepositoryImpl{db: db}
}

// ListActive 查询全部上架套餐，热门的在前
func (r *packageRepositoryImpl) ListActive(ctx context.Context) ([]*model.Package, error) {
	var pkgs []*model.Package
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("is_popular DESC, price ASC").
		Find(&pkgs).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return pkgs, nil
}

// ListPopular 查询热门套餐
func (r *packageRepositoryImpl) ListPopular(ctx context.Context) ([]*model.Package, error) {
	var pkgs []*model.Package
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND is_popular = ?", true, true).
		Order("price ASC").
		Find(&pkgs).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return pkgs, nil
}

// GetById 查询单个上架套餐
func (r *packageRepositoryImpl) GetById(ctx context.Context, id int64) (*model.Package, error) {
	var pkg model.Package
	err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&pkg).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return &pkg, nil
}

// Create 创建套餐
func (r *packageRepositoryImpl) Create(ctx context.Context, pkg *model.Package) error {
	if err := r.db.WithContext(ctx).Create(pkg).Error; err != nil {
		return WrapDBError(err)
	}
	return nil
}

// Update 保存套餐全量字段
func (r *packageRepositoryImpl) Update(ctx context.Context, pkg *model.Package) error {
	if err := r.db.WithContext(ctx).Save(pkg).Error; err != nil {
		return WrapDBError(err)
	}
	return nil
}
