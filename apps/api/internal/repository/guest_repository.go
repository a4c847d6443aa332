package repository

import (
	"context"

	"WeddingServer/model"

	"gorm.io/gorm"
)

// guestRepositoryImpl 宾客数据访问层实现
type guestRepositoryImpl struct {
	db *gorm.DB
}

// NewGuestRepository 创建宾客仓储实例
func NewGuestRepository(db *gorm.DB) IGuestRepository {
	return &guestRepositoryImpl{db: db}
}

// Create 创建宾客
func (r *guestRepositoryImpl) Create(ctx context.Context, guest *model.Guest) error {
	if err := r.db.WithContext(ctx).Create(guest).Error; err != nil {
		return WrapDBError(err)
	}
	return nil
}

// GetByIdForUser 查询归属指定用户的宾客
func (r *guestRepositoryImpl) GetByIdForUser(ctx context.Context, id, userId int64) (*model.Guest, error) {
	var guest model.Guest
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		First(&guest).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return &guest, nil
}

// ListByWedding 查询某个婚礼下的全部宾客，按分组和姓名排序
func (r *guestRepositoryImpl) ListByWedding(ctx context.Context, userId, weddingId int64) ([]*model.Guest, error) {
	var guests []*model.Guest
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND wedding_id = ?", userId, weddingId).
		Order("category ASC, name ASC").
		Find(&guests).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	return guests, nil
}

// Update 保存宾客全量字段
func (r *guestRepositoryImpl) Update(ctx context.Context, guest *model.Guest) error {
	if err := r.db.WithContext(ctx).Save(guest).Error; err != nil {
		return WrapDBError(err)
	}
	return nil
}

// Delete 软删除宾客
func (r *guestRepositoryImpl) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Guest{}, id)
	if res.Error != nil {
		return WrapDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// StatsByWedding 统计某个婚礼的宾客出席情况
func (r *guestRepositoryImpl) StatsByWedding(ctx context.Context, userId, weddingId int64) (*GuestStats, error) {
	type statusRow struct {
		Status string
		Count  int
	}

	var rows []statusRow
	err := r.db.WithContext(ctx).Model(&model.Guest{}).
		Select("confirmation_status AS status, COUNT(*) AS count").
		Where("user_id = ? AND wedding_id = ?", userId, weddingId).
		Group("confirmation_status").
		Scan(&rows).Error
	if err != nil {
		return nil, WrapDBError(err)
	}

	stats := &GuestStats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case model.GuestStatusConfirmed:
			stats.Confirmed = row.Count
		case model.GuestStatusDeclined:
			stats.Declined = row.Count
		case model.GuestStatusPending:
			stats.Pending = row.Count
		}
	}

	var sent int64
	err = r.db.WithContext(ctx).Model(&model.Guest{}).
		Where("user_id = ? AND wedding_id = ? AND invitation_sent = ?", userId, weddingId, true).
		Count(&sent).Error
	if err != nil {
		return nil, WrapDBError(err)
	}
	stats.InvitationsSent = int(sent)

	return stats, nil
}
