package repository

import (
	"context"

	"WeddingServer/model"

	"gorm.io/gorm"
)

// cartRepositoryImpl 购物车数据访问层实现
type cartRepositoryImpl struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储实例
func NewCartRepository(db *gorm.DB) ICartRepository {
	return &cartRepositoryImpl{db: db}
}

// Create 创建条目
func (r *cartRepositoryImpl) Create(ctx context.Context, item *model.CartItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return WrapDBError(err)
	}
	return nil
}

// GetByIdForUser 查询归属指定用户的条目
func (r *cartRepositoryImpl) GetByIdForUser(ctx context.Context, id, userId int64) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		First(&item).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return &item, nil
}

// ListByWedding 查询某个婚礼下用户的全部条目
func (r *cartRepositoryImpl) ListByWedding(ctx context.Context, userId, weddingId int64) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND wedding_id = ?", userId, weddingId).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return items, nil
}

// Update 保存条目全量字段
func (r *cartRepositoryImpl) Update(ctx context.Context, item *model.CartItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return WrapDBError(err)
	}
	return nil
}

// Delete 软删除条目
func (r *cartRepositoryImpl) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.CartItem{}, id)
	if res.Error != nil {
		return WrapDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// SummaryByWedding 汇总某个婚礼的购物车。
// 一次 GROUP BY 拿到状态分布和合计，不把整表拉回内存。
func (r *cartRepositoryImpl) SummaryByWedding(ctx context.Context, userId, weddingId int64) (*CartSummary, error) {
	type statusRow struct {
		Status string
		Count  int
		Total  float64
	}

	var rows []statusRow
	err := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(price), 0) AS total").
		Where("user_id = ? AND wedding_id = ?", userId, weddingId).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, WrapDBError(err)
	}

	summary := &CartSummary{ByStatus: make(map[string]int)}
	for _, row := range rows {
		summary.TotalItems += row.Count
		summary.TotalPrice += row.Total
		summary.ByStatus[row.Status] = row.Count
	}
	return summary, nil
}
