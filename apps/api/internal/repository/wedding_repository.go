package repository

import (
	"context"

	"WeddingServer/model"

	"gorm.io/gorm"
)

// weddingRepositoryImpl 婚礼数据访问层实现
type weddingRepositoryImpl struct {
	db *gorm.DB
}

// NewWeddingRepository 创建婚礼仓储实例
func NewWeddingRepository(db *gorm.DB) IWeddingRepository {
	return &weddingRepositoryImpl{db: db}
}

// Create 创建婚礼
func (r *weddingRepositoryImpl) Create(ctx context.Context, wedding *model.Wedding) error {
	if err := r.db.WithContext(ctx).Create(wedding).Error; err != nil {
		return WrapDBError(err)
	}
	return nil
}

// GetByIdForUser 查询归属指定用户的婚礼。
// 归属校验放进 WHERE，别人的婚礼和不存在的婚礼表现一致。
func (r *weddingRepositoryImpl) GetByIdForUser(ctx context.Context, id, userId int64) (*model.Wedding, error) {
	var wedding model.Wedding
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		First(&wedding).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return &wedding, nil
}

// ListByUser 查询用户的全部婚礼
func (r *weddingRepositoryImpl) ListByUser(ctx context.Context, userId int64) ([]*model.Wedding, error) {
	var weddings []*model.Wedding
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&weddings).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return weddings, nil
}

// Update 保存婚礼全量字段
func (r *weddingRepositoryImpl) Update(ctx context.Context, wedding *model.Wedding) error {
	if err := r.db.WithContext(ctx).Save(wedding).Error; err != nil {
		return WrapDBError(err)
	}
	return nil
}

// Delete 软删除婚礼
func (r *weddingRepositoryImpl) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Wedding{}, id)
	if res.Error != nil {
		return WrapDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
